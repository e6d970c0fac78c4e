package anim

import "time"

// Timer is a one-shot countdown.
type Timer struct {
	remaining time.Duration
	active    bool
}

// Start arms the timer to fire after d.
func (t *Timer) Start(d time.Duration) {
	t.remaining = d
	t.active = true
}

// Stop disarms the timer without firing.
func (t *Timer) Stop() {
	t.remaining = 0
	t.active = false
}

// Active reports whether the timer is counting down.
func (t *Timer) Active() bool { return t.active }

// Remaining returns the time left before the timer fires.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// Advance counts down by dt and reports whether the timer fired on this call.
func (t *Timer) Advance(dt time.Duration) bool {
	if !t.active {
		return false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	t.active = false
	return true
}
