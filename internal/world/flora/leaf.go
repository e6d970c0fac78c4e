package flora

import (
	"time"

	"pepse/internal/anim"
	"pepse/internal/core"
)

// Leaf sways its angle and squeezes its width back and forth once its start
// delay has passed.
type Leaf struct {
	Entity *core.Entity

	sway   anim.Tween
	squash anim.Tween
}

func newLeaf(e *core.Entity, cfg Config, wait time.Duration) *Leaf {
	return &Leaf{
		Entity: e,
		sway: anim.Tween{
			From:     cfg.LeafAngleMin,
			To:       cfg.LeafAngleMax,
			Duration: cfg.LeafSwayTime,
			Delay:    wait,
			Mode:     anim.BackAndForth,
		},
		squash: anim.Tween{
			From:     e.Size.X,
			To:       cfg.LeafWidthMin,
			Duration: cfg.LeafSwayTime,
			Delay:    wait,
			Mode:     anim.BackAndForth,
		},
	}
}

// Advance steps both leaf animations.
func (l *Leaf) Advance(dt time.Duration) {
	l.Entity.Angle, _ = l.sway.Advance(dt)
	l.Entity.Size.X, _ = l.squash.Advance(dt)
}
