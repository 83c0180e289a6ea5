package scope

import "time"

// Clock drives the sine generators. Its start is reset whenever the mode
// switches into sine; elapsed time never goes negative.
type Clock struct {
	now   func() time.Duration
	start time.Duration
}

// NewClock creates a clock started at now().
func NewClock(now func() time.Duration) *Clock {
	c := &Clock{now: now}
	c.start = now()
	return c
}

// MonotonicNow returns a time source measuring from the moment it is created.
func MonotonicNow() func() time.Duration {
	epoch := time.Now()
	return func() time.Duration {
		return time.Since(epoch)
	}
}

// Now reads the clock's time source.
func (c *Clock) Now() time.Duration {
	return c.now()
}

// Reset restarts elapsed time at the current instant.
func (c *Clock) Reset() {
	c.start = c.now()
}

// Start returns the timestamp elapsed time is measured from.
func (c *Clock) Start() time.Duration {
	return c.start
}

// Elapsed returns the time since the last reset, measured at frame time now.
func (c *Clock) Elapsed(now time.Duration) time.Duration {
	if now < c.start {
		return 0
	}
	return now - c.start
}
