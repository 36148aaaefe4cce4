// Package timing provides the time sources behind the stopwatch registry.
// Every source reports seconds as float64 so lapses from different sources
// share one unit.
package timing

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Clock reports the current reading of a time source in seconds
type Clock interface {
	Now() (float64, error)
}

// ClockFunc adapts a plain function to the Clock interface
type ClockFunc func() (float64, error)

// Now calls f
func (f ClockFunc) Now() (float64, error) {
	return f()
}

// RealClock reads wall-clock seconds elapsed since the clock was created.
// Readings come from the monotonic clock and never go backwards.
type RealClock struct {
	epoch time.Time
}

// NewRealClock creates a real clock whose epoch is the current instant
func NewRealClock() *RealClock {
	return &RealClock{epoch: time.Now()}
}

// Now returns the seconds elapsed since the epoch
func (c *RealClock) Now() (float64, error) {
	return time.Since(c.epoch).Seconds(), nil
}

// CPUClock reads the CPU time (user + system) consumed by a process.
// Resolution is that of the platform's clock ticks, usually 10ms.
type CPUClock struct {
	pid int32

	mu   sync.Mutex
	proc *process.Process
}

// NewCPUClock creates a CPU clock for the current process
func NewCPUClock() *CPUClock {
	return NewProcessCPUClock(int32(os.Getpid()))
}

// NewProcessCPUClock creates a CPU clock for the process with the given pid.
// The process is resolved lazily on the first reading.
func NewProcessCPUClock(pid int32) *CPUClock {
	return &CPUClock{pid: pid}
}

// Now returns the CPU seconds consumed so far
func (c *CPUClock) Now() (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.proc == nil {
		proc, err := process.NewProcess(c.pid)
		if err != nil {
			return 0, fmt.Errorf("failed to open process %d: %w", c.pid, err)
		}
		c.proc = proc
	}

	times, err := c.proc.Times()
	if err != nil {
		return 0, fmt.Errorf("failed to read cpu times: %w", err)
	}

	return times.User + times.System, nil
}
