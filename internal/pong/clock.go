package pong

import "time"

// TimeOfDay is the wall-clock reading the scoring rules chase.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// Clock reports the current local time of day.
type Clock interface {
	Now() TimeOfDay
}

// TimeOfDayOf extracts the hour/minute/second fields of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// SystemClock reads the host's local time.
type SystemClock struct{}

func (SystemClock) Now() TimeOfDay { return TimeOfDayOf(time.Now()) }

// FixedClock always returns the same reading.
type FixedClock TimeOfDay

func (c FixedClock) Now() TimeOfDay { return TimeOfDay(c) }

// SimulatedClock advances only when told to. The headless harness moves it
// by each frame's delta so a match can cover hours of clock time in seconds.
type SimulatedClock struct {
	t time.Time
}

// NewSimulatedClock starts a simulated clock at start.
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{t: start}
}

// Advance moves the clock forward by d.
func (c *SimulatedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// Time returns the full simulated timestamp.
func (c *SimulatedClock) Time() time.Time { return c.t }

func (c *SimulatedClock) Now() TimeOfDay { return TimeOfDayOf(c.t) }
