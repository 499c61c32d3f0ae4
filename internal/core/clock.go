package core

import "time"

// Clock is a monotonic time source measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the monotonic wall clock relative to its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to. Used for deterministic simulation.
type ManualClock struct {
	T time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.T
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.T += d
}
