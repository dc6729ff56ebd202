// Package timing provides the wall-clock stopwatch that brackets a
// benchmark run. time.Now carries a monotonic reading, so the delta is
// always non-negative and the gettimeofday failure path of the original
// programs has no equivalent here.
package timing

import "time"

// Stopwatch measures one interval. Start it immediately before the
// compute loop and Stop it immediately after.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

// Start returns a running stopwatch.
func Start() *Stopwatch {
	return &Stopwatch{start: time.Now(), running: true}
}

// Stop freezes the stopwatch and returns the elapsed interval. Calling
// Stop again returns the frozen value.
func (s *Stopwatch) Stop() time.Duration {
	if s.running {
		s.elapsed = time.Since(s.start)
		s.running = false
	}
	return s.elapsed
}

// Elapsed returns the interval so far without stopping.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return time.Since(s.start)
	}
	return s.elapsed
}

// Seconds returns the stopped interval as fractional seconds, the unit
// the reporter prints.
func (s *Stopwatch) Seconds() float64 {
	return s.Stop().Seconds()
}
