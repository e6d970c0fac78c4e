// Package render projects world entities onto a screen, either as cells for
// text output or through ebiten for the desktop build.
package render

import (
	"cmp"
	"slices"

	"pepse/internal/core"
)

// Camera maps world coordinates onto the viewport.
type Camera struct {
	Offset   core.Vec2
	Viewport core.Vec2
}

// Follow returns a camera centered horizontally on x.
func Follow(x float64, viewport core.Vec2) Camera {
	return Camera{Offset: core.Vec2{X: x - viewport.X/2}, Viewport: viewport}
}

// Project returns the entity rectangle in screen coordinates.
func (c Camera) Project(e *core.Entity) core.Rect {
	r := e.Bounds()
	if !e.Screen {
		r.Min = r.Min.Sub(c.Offset)
	}
	return r
}

// Visible reports whether any part of the projected entity is on screen.
func (c Camera) Visible(e *core.Entity) bool {
	return c.Project(e).Overlaps(core.Rect{Size: c.Viewport})
}

// Insert places e into a layer-ordered list after every entity on the same
// or a lower layer.
func Insert(entities []*core.Entity, e *core.Entity) []*core.Entity {
	layer := core.LayerFor(e.Kind)
	i, _ := slices.BinarySearchFunc(entities, layer+1, func(x *core.Entity, l core.Layer) int {
		return cmp.Compare(core.LayerFor(x.Kind), l)
	})
	return slices.Insert(entities, i, e)
}
