package world

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidViewpoint is returned for NaN or infinite viewpoints.
var ErrInvalidViewpoint = errors.New("viewpoint is not finite")

// Span is a horizontal world interval. An empty span has Min >= Max.
type Span struct {
	Min float64
	Max float64
}

// Empty reports whether the span covers nothing.
func (s Span) Empty() bool { return !(s.Min < s.Max) }

// Tracker follows the viewpoint and works out which sliver of the world
// became visible since the previous tick.
type Tracker struct {
	half    float64
	margin  float64
	last    float64
	visible Span
	started bool
}

// NewTracker returns a tracker for a viewport of the given width.
func NewTracker(width, margin float64) *Tracker {
	return &Tracker{half: width / 2, margin: margin}
}

// Visible returns the visible span as of the last accepted viewpoint.
func (t *Tracker) Visible() Span { return t.visible }

// Last returns the last accepted viewpoint and whether there was one.
func (t *Tracker) Last() (float64, bool) { return t.last, t.started }

// Advance accepts a new viewpoint and returns the span that needs
// generating. Invalid viewpoints leave the tracker untouched.
func (t *Tracker) Advance(x float64) (Span, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Span{}, fmt.Errorf("%w: %v", ErrInvalidViewpoint, x)
	}
	visible := Span{Min: x - t.half, Max: x + t.half}
	var want Span
	switch {
	case !t.started:
		want = visible
	case x > t.last:
		want = Span{Min: math.Max(t.last+t.half, visible.Min), Max: visible.Max}
	case x < t.last:
		want = Span{Min: visible.Min, Max: math.Min(t.last-t.half, visible.Max)}
	}
	t.last = x
	t.visible = visible
	t.started = true
	return want, nil
}

// Keep reports whether content at x lies within the visible span widened by
// the margin on both sides. Bounds are inclusive.
func (t *Tracker) Keep(x float64) bool { return t.KeepExtent(x, 0) }

// KeepExtent reports whether content covering [x, x+width) touches the
// widened span, so a column straddling its left edge survives.
func (t *Tracker) KeepExtent(x, width float64) bool {
	lo, hi := t.visible.Min-t.margin, t.visible.Max+t.margin
	return x <= hi && (x >= lo || x+width > lo)
}
