package stopwatch

import "math"

// Record accumulates the timing statistics of one name.
// All durations are in seconds. Min and Max only carry a value once Stops > 0.
type Record struct {
	StartedAt float64
	Total     float64
	Min       float64
	Max       float64
	Stops     int
}

// HasSamples reports whether at least one lapse was completed with Stop
func (r Record) HasSamples() bool {
	return r.Stops > 0
}

// Average returns Total divided by Stops, NaN when nothing was stopped
func (r Record) Average() float64 {
	if r.Stops == 0 {
		return math.NaN()
	}
	return r.Total / float64(r.Stops)
}

// observe folds a completed lapse into the statistics
func (r *Record) observe(lapse float64) {
	if r.Stops == 0 {
		r.Min = lapse
		r.Max = lapse
	} else {
		if lapse >= r.Max {
			r.Max = lapse
		}
		if lapse <= r.Min {
			r.Min = lapse
		}
	}
	r.Stops++
	r.Total += lapse
}
