// Package stopwatch accumulates elapsed-time statistics for named intervals.
//
// Callers mark named start and stop events on a Registry, which keeps the
// minimum, maximum, total and count of completed lapses per name and renders
// them as a plain-text report:
//
//	sw := stopwatch.New(stopwatch.WithMode(stopwatch.ModeRealTime))
//	_ = sw.Start("parse")
//	parse()
//	_ = sw.Stop("parse")
//	_ = sw.ReportAll(os.Stdout)
//
// A disabled registry turns every operation into a no-op, including the
// ones that would otherwise fail.
package stopwatch

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/NikitaCOEUR/stopwatch/internal/derrors"
	"github.com/NikitaCOEUR/stopwatch/internal/timing"
)

// Clock is a time source reporting seconds
type Clock = timing.Clock

// Option configures a Registry
type Option func(*Registry)

// WithClock replaces the time source used for mode
func WithClock(mode Mode, clock Clock) Option {
	return func(r *Registry) {
		r.clocks[mode] = clock
	}
}

// WithLogger sets the logger receiving debug traces of every operation
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// WithNotifier sets where TurnOn and TurnOff write their confirmation line
func WithNotifier(w io.Writer) Option {
	return func(r *Registry) {
		if w != nil {
			r.notify = w
		}
	}
}

// WithMode initializes the registry with a time source mode
func WithMode(mode Mode) Option {
	return func(r *Registry) {
		r.mode = mode
	}
}

// Disabled creates the registry switched off
func Disabled() Option {
	return func(r *Registry) {
		r.enabled = false
	}
}

// Registry maps measurement names to their accumulated records.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	enabled bool
	mode    Mode
	clocks  map[Mode]Clock
	records map[string]*Record
	order   []string // insertion order, used by ReportAll and ResetAll
	log     logrus.FieldLogger
	notify  io.Writer
}

// New creates an enabled registry with mode unset.
// Real and CPU clocks are installed by default; see WithClock.
func New(opts ...Option) *Registry {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	r := &Registry{
		enabled: true,
		mode:    ModeUnset,
		clocks: map[Mode]Clock{
			ModeRealTime: timing.NewRealClock(),
			ModeCPUTime:  timing.NewCPUClock(),
		},
		records: make(map[string]*Record),
		order:   make([]string, 0),
		log:     discard,
		notify:  os.Stdout,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Init sets the time source mode.
// Changing the mode while an interval is open makes its lapse meaningless.
func (r *Registry) Init(mode Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mode = mode
	r.log.WithField("mode", mode.String()).Debug("Stopwatch mode set")
}

// Mode returns the current time source mode
func (r *Registry) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// Enabled reports whether operations are currently recorded
func (r *Registry) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// TurnOn enables the registry and writes a confirmation line to the notifier
func (r *Registry) TurnOn() {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.notify, "Stopwatch active.")
	r.enabled = true
}

// TurnOff disables the registry and writes a confirmation line to the notifier
func (r *Registry) TurnOff() {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.notify, "Stopwatch inactive.")
	r.enabled = false
}

// takeTime reads the clock of the current mode. Callers hold r.mu.
func (r *Registry) takeTime() (float64, error) {
	if r.mode == ModeUnset {
		return 0, derrors.NewNotInitializedError("clock not initialized to a time taking mode")
	}

	clock, ok := r.clocks[r.mode]
	if !ok || clock == nil {
		return 0, derrors.NewNotInitializedError(fmt.Sprintf("no clock installed for mode %s", r.mode))
	}

	now, err := clock.Now()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s clock: %w", r.mode, err)
	}

	return now, nil
}

// Start records the current time as the beginning of a lapse for name.
// The record is created on first use; an existing record keeps its statistics.
func (r *Registry) Start(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled {
		return nil
	}

	now, err := r.takeTime()
	if err != nil {
		return err
	}

	rec, ok := r.records[name]
	if !ok {
		rec = &Record{}
		r.records[name] = rec
		r.order = append(r.order, name)
	}
	rec.StartedAt = now

	r.log.WithField("name", name).Debug("Stopwatch started")
	return nil
}

// lapse returns the record for name and the time elapsed since its start
func (r *Registry) lapse(name string) (*Record, float64, error) {
	rec, ok := r.records[name]
	if !ok {
		return nil, 0, notFound(name)
	}

	now, err := r.takeTime()
	if err != nil {
		return nil, 0, err
	}

	return rec, now - rec.StartedAt, nil
}

// Stop completes a lapse for name and folds it into count, min, max and total
func (r *Registry) Stop(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled {
		return nil
	}

	rec, lapse, err := r.lapse(name)
	if err != nil {
		return err
	}
	rec.observe(lapse)

	r.log.WithFields(logrus.Fields{
		"name":  name,
		"lapse": lapse,
		"stops": rec.Stops,
	}).Debug("Stopwatch stopped")
	return nil
}

// Pause adds the time elapsed since the last start to the total of name
// without counting a completed lapse. Count, min and max are untouched.
func (r *Registry) Pause(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled {
		return nil
	}

	rec, lapse, err := r.lapse(name)
	if err != nil {
		return err
	}
	rec.Total += lapse

	r.log.WithFields(logrus.Fields{
		"name":  name,
		"lapse": lapse,
	}).Debug("Stopwatch paused")
	return nil
}

// Reset zeroes every field of the record for name; the record stays registered
func (r *Registry) Reset(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled {
		return nil
	}

	rec, ok := r.records[name]
	if !ok {
		return notFound(name)
	}
	*rec = Record{}

	r.log.WithField("name", name).Debug("Stopwatch reset")
	return nil
}

// ResetAll resets every registered record
func (r *Registry) ResetAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled {
		return
	}

	for _, name := range r.order {
		*r.records[name] = Record{}
	}

	r.log.WithField("records", len(r.order)).Debug("Stopwatch reset all")
}

// Report writes the statistics block of name to w
func (r *Registry) Report(name string, w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled {
		return nil
	}

	rec, ok := r.records[name]
	if !ok {
		return notFound(name)
	}

	return writeReport(w, name, *rec)
}

// ReportAll writes the statistics block of every record, in registration order
func (r *Registry) ReportAll(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled {
		return nil
	}

	for _, name := range r.order {
		if err := writeReport(w, name, *r.records[name]); err != nil {
			return err
		}
	}

	return nil
}

// Lookup returns a copy of the record for name
func (r *Registry) Lookup(name string) (Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[name]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Names returns the registered names in registration order
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered records
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Time runs fn between Start and Stop of name.
// The lapse is recorded even when fn fails; fn's error takes precedence.
func (r *Registry) Time(name string, fn func() error) error {
	if err := r.Start(name); err != nil {
		return err
	}

	fnErr := fn()

	if err := r.Stop(name); err != nil && fnErr == nil {
		return err
	}
	return fnErr
}
