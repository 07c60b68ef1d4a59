package timer

import "time"

// Clock is a monotonic time source. Now returns time elapsed since an
// arbitrary, fixed origin chosen by the host.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the process monotonic clock relative to its creation.
type SystemClock struct {
	origin time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ManualClock only moves when told to. Used by tests and headless runs.
type ManualClock struct {
	now time.Duration
}

func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Set jumps the clock to t. Moving backwards is ignored.
func (c *ManualClock) Set(t time.Duration) {
	if t > c.now {
		c.now = t
	}
}

// PausableClock derives game time from a host clock, excluding the spans
// during which it was paused.
type PausableClock struct {
	base     Clock
	paused   bool
	pausedAt time.Duration
	offset   time.Duration
}

func NewPausableClock(base Clock) *PausableClock {
	return &PausableClock{base: base}
}

func (c *PausableClock) Now() time.Duration {
	if c.paused {
		return c.pausedAt - c.offset
	}
	return c.base.Now() - c.offset
}

func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.base.Now()
}

func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.offset += c.base.Now() - c.pausedAt
}

func (c *PausableClock) Paused() bool {
	return c.paused
}
