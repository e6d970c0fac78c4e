// Package anim holds the time-driven property animations used by the world.
// Every animation is plain state advanced by the owner's tick.
package anim

import "time"

// Interp selects the easing curve of a Tween.
type Interp uint8

const (
	Linear Interp = iota
	Cubic
)

// Mode selects what a Tween does once it reaches its end value.
type Mode uint8

const (
	// Once stops at To.
	Once Mode = iota
	// Loop jumps back to From and starts over.
	Loop
	// BackAndForth reverses direction at each end.
	BackAndForth
)

// Tween interpolates a scalar from From to To over Duration, after Delay.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Delay    time.Duration
	Interp   Interp
	Mode     Mode

	elapsed time.Duration
	reverse bool
	done    bool
}

// Value returns the current interpolated value.
func (t *Tween) Value() float64 {
	if t.Duration <= 0 {
		return t.To
	}
	p := float64(t.elapsed) / float64(t.Duration)
	if t.reverse {
		p = 1 - p
	}
	if t.Interp == Cubic {
		p = p * p * (3 - 2*p)
	}
	return t.From + (t.To-t.From)*p
}

// Done reports whether a Once tween has reached its end.
func (t *Tween) Done() bool { return t.done }

// Reset rewinds the tween to its start, keeping its configuration.
func (t *Tween) Reset() {
	t.elapsed = 0
	t.reverse = false
	t.done = false
}

// Advance moves the tween forward by dt. finished is true only on the call
// that completes a Once tween.
func (t *Tween) Advance(dt time.Duration) (value float64, finished bool) {
	if t.done || dt <= 0 {
		return t.Value(), false
	}
	if t.Delay > 0 {
		if dt <= t.Delay {
			t.Delay -= dt
			return t.Value(), false
		}
		dt -= t.Delay
		t.Delay = 0
	}
	if t.Duration <= 0 {
		if t.Mode == Once {
			t.done = true
			return t.To, true
		}
		return t.To, false
	}

	t.elapsed += dt
	switch t.Mode {
	case Once:
		if t.elapsed >= t.Duration {
			t.elapsed = t.Duration
			t.done = true
			return t.Value(), true
		}
	case Loop:
		t.elapsed %= t.Duration
	case BackAndForth:
		for t.elapsed >= t.Duration {
			t.elapsed -= t.Duration
			t.reverse = !t.reverse
		}
	}
	return t.Value(), false
}
