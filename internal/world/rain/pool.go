// Package rain implements the drifting cloud and the fixed-capacity pool of
// drops it sheds when the avatar jumps.
package rain

import (
	"image/color"
	"time"

	"pepse/internal/anim"
	"pepse/internal/core"
	rng "pepse/pkg/core"
)

// DropColor is the fill of every rain drop.
var DropColor = color.NRGBA{R: 70, G: 130, B: 255, A: 255}

// Drop is a pooled rain drop. Idle drops are hidden with zero opacity.
type Drop struct {
	Entity *core.Entity

	active   bool
	fall     anim.Tween
	fade     anim.Tween
	finished func(*Drop)
}

// Active reports whether the drop is currently falling.
func (d *Drop) Active() bool { return d.active }

func (d *Drop) park() {
	d.active = false
	d.finished = nil
	d.Entity.Hidden = true
	d.Entity.Opacity = 0
	d.Entity.Pos = core.Vec2{}
}

// Pool recycles a fixed set of drops.
type Pool struct {
	cfg   Config
	rng   *rng.RNG
	drops []*Drop
	idle  []*Drop
}

// NewPool preallocates every drop the configuration allows.
func NewPool(cfg Config, seed int64) *Pool {
	n := cfg.Capacity()
	p := &Pool{
		cfg:   cfg,
		rng:   rng.NewRNG(seed),
		drops: make([]*Drop, 0, n),
		idle:  make([]*Drop, 0, n),
	}
	for i := 0; i < n; i++ {
		e := core.NewEntity(core.KindRainDrop, core.Vec2{}, core.Vec2{X: cfg.DropSize, Y: cfg.DropSize}, DropColor)
		e.Screen = true
		d := &Drop{Entity: e}
		d.park()
		p.drops = append(p.drops, d)
		p.idle = append(p.idle, d)
	}
	return p
}

// Capacity returns the total number of drops.
func (p *Pool) Capacity() int { return len(p.drops) }

// Active returns the number of drops currently falling.
func (p *Pool) Active() int { return len(p.drops) - len(p.idle) }

// Drops returns every pooled drop, active or not.
func (p *Pool) Drops() []*Drop { return p.drops }

// CreateRain activates between one and MaxDropsPerBurst idle drops around
// center. An exhausted pool yields fewer drops. onFinished, if set, runs for
// each drop once it has faded, just before the drop returns to the pool.
func (p *Pool) CreateRain(center core.Vec2, onFinished func(*Drop)) []*Drop {
	if p.cfg.MaxDropsPerBurst <= 0 {
		return nil
	}
	n := min(p.rng.IntRange(1, p.cfg.MaxDropsPerBurst), len(p.idle))
	out := make([]*Drop, 0, n)
	for i := 0; i < n; i++ {
		last := len(p.idle) - 1
		d := p.idle[last]
		p.idle = p.idle[:last]

		pos := center.Add(core.Vec2{
			X: p.rng.Range(-p.cfg.Spread, p.cfg.Spread),
			Y: p.rng.Range(0, p.cfg.Spread/2),
		})
		d.Entity.SetCenter(pos)
		d.Entity.Hidden = false
		d.Entity.Opacity = 1
		d.active = true
		d.finished = onFinished
		d.fall = anim.Tween{From: d.Entity.Pos.Y, To: d.Entity.Pos.Y + p.cfg.FallDistance, Duration: p.cfg.FallDuration}
		d.fade = anim.Tween{From: 1, To: 0, Duration: p.cfg.FadeDuration}
		out = append(out, d)
	}
	return out
}

// Advance moves and fades every active drop, recycling the ones that have
// faded out. It returns the number of drops recycled.
func (p *Pool) Advance(dt time.Duration) int {
	recycled := 0
	for _, d := range p.drops {
		if !d.active {
			continue
		}
		d.Entity.Pos.Y, _ = d.fall.Advance(dt)
		opacity, done := d.fade.Advance(dt)
		d.Entity.Opacity = opacity
		if !done {
			continue
		}
		if d.finished != nil {
			d.finished(d)
		}
		d.park()
		p.idle = append(p.idle, d)
		recycled++
	}
	return recycled
}
