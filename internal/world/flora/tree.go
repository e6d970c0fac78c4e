package flora

import (
	"time"

	"pepse/internal/core"
)

// Tree owns its trunk and every leaf and fruit placed around the trunk top.
type Tree struct {
	X      int
	Anchor core.Vec2
	Seed   int64
	Trunk  *core.Entity
	Leaves []*Leaf
	Fruits []*Fruit
}

// Entities returns every entity owned by the tree, trunk first.
func (t *Tree) Entities() []*core.Entity {
	out := make([]*core.Entity, 0, 1+len(t.Leaves)+len(t.Fruits))
	out = append(out, t.Trunk)
	for _, l := range t.Leaves {
		out = append(out, l.Entity)
	}
	for _, f := range t.Fruits {
		out = append(out, f.Entity)
	}
	return out
}

// Translate moves the tree and everything it owns by d.
func (t *Tree) Translate(d core.Vec2) {
	t.Anchor = t.Anchor.Add(d)
	for _, e := range t.Entities() {
		e.Pos = e.Pos.Add(d)
	}
}

// Advance steps leaf sway and fruit regrowth. It returns the number of fruits
// that regrew during this step.
func (t *Tree) Advance(dt time.Duration) int {
	for _, l := range t.Leaves {
		l.Advance(dt)
	}
	regrown := 0
	for _, f := range t.Fruits {
		if f.Advance(dt) {
			regrown++
		}
	}
	return regrown
}
