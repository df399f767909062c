package core

import "time"

// Clock tracks per-frame timing for the pipeline.
// Updated exactly once at the top of each frame.
type Clock struct {
	now   time.Time
	delta time.Duration
	frame uint64
}

// NewClock creates a clock starting at the given time
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Tick advances the clock to the new frame time.
// Non-monotonic input is clamped to a zero delta rather than going negative
func (c *Clock) Tick(now time.Time) {
	d := now.Sub(c.now)
	if d < 0 {
		d = 0
	}
	c.delta = d
	c.now = now
	c.frame++
}

// Now returns the current frame timestamp
func (c *Clock) Now() time.Time { return c.now }

// Delta returns the elapsed time since the previous frame
func (c *Clock) Delta() time.Duration { return c.delta }

// Frame returns the current frame number
func (c *Clock) Frame() uint64 { return c.frame }

// Reset rewinds frame counting to the given start time
func (c *Clock) Reset(start time.Time) {
	c.now = start
	c.delta = 0
	c.frame = 0
}
