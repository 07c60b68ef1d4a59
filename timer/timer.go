// Package timer provides polled countdown timers driven by a host clock.
// Nothing here runs in the background: expiry is detected when Update is
// called, once per frame.
package timer

import "time"

// Timer fires a callback once its duration has elapsed since activation.
// A repeating timer re-activates itself immediately after firing.
type Timer struct {
	clock    Clock
	duration time.Duration
	repeat   bool
	fn       func()

	start  time.Duration
	active bool
}

// New creates an inactive timer. fn may be nil for pure cooldowns.
func New(clock Clock, duration time.Duration, repeat bool, fn func()) *Timer {
	return &Timer{
		clock:    clock,
		duration: duration,
		repeat:   repeat,
		fn:       fn,
	}
}

// Activate starts (or restarts) the countdown from the current time.
func (t *Timer) Activate() {
	t.active = true
	t.start = t.clock.Now()
}

// Deactivate stops the countdown and forgets its start time.
func (t *Timer) Deactivate() {
	t.active = false
	t.start = 0
}

// Update fires the timer if it is active and its duration has elapsed.
// The callback is skipped when the recorded start is zero, which only
// happens for a timer activated at the clock origin.
func (t *Timer) Update() {
	if !t.active || t.clock.Now()-t.start < t.duration {
		return
	}

	if t.fn != nil && t.start != 0 {
		t.fn()
	}

	t.Deactivate()

	if t.repeat {
		t.Activate()
	}
}

func (t *Timer) Active() bool {
	return t.active
}

func (t *Timer) Repeat() bool {
	return t.repeat
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}

// SetDuration changes the duration. An active countdown keeps its start
// time, so a shorter duration can make it fire on the next Update.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

// Elapsed returns the time since activation, or zero when inactive.
func (t *Timer) Elapsed() time.Duration {
	if !t.active {
		return 0
	}
	return t.clock.Now() - t.start
}
