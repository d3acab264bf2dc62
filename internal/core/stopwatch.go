package core

import "time"

// Clock reports the current time. Frame-driven code samples it once per frame.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock's monotonic reading.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a ManualClock anchored at an arbitrary fixed instant.
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Stopwatch accumulates running time against a Clock.
type Stopwatch struct {
	clock   Clock
	started bool
	running bool
	since   time.Time
	total   time.Duration
}

// NewStopwatch constructs a stopped Stopwatch. A nil clock uses SystemClock.
func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Stopwatch{clock: clock}
}

// Start begins or resumes timing. It is a no-op while running.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.started = true
	s.running = true
	s.since = s.clock.Now()
}

// Pause freezes the elapsed time. It is a no-op unless running.
func (s *Stopwatch) Pause() {
	if !s.running {
		return
	}
	s.total += s.clock.Now().Sub(s.since)
	s.running = false
}

// Started reports whether Start has ever been called.
func (s *Stopwatch) Started() bool { return s.started }

// Running reports whether the stopwatch is currently timing.
func (s *Stopwatch) Running() bool { return s.running }

// Elapsed returns the accumulated running time.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.total + s.clock.Now().Sub(s.since)
	}
	return s.total
}

// Seconds returns the elapsed time truncated to whole seconds.
func (s *Stopwatch) Seconds() int { return int(s.Elapsed() / time.Second) }
