package rain

import (
	"image/color"
	"time"

	"pepse/internal/anim"
	"pepse/internal/core"
)

// CloudColor fills each cloud block.
var CloudColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Layout marks the occupied cells of the cloud, row by row.
var Layout = [6][6]uint8{
	{0, 1, 1, 0, 0, 0},
	{1, 1, 1, 0, 1, 0},
	{1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 0, 0},
	{0, 0, 0, 0, 0, 0},
}

// Cloud drifts across the viewport in screen coordinates, wrapping around
// once it has left on the right.
type Cloud struct {
	pos     core.Vec2
	size    core.Vec2
	blocks  []*core.Entity
	offsets []core.Vec2
	drift   anim.Tween
}

// NewCloud builds the cloud just off the left edge of the viewport.
func NewCloud(cfg Config, blockSize int, viewport core.Vec2) *Cloud {
	s := float64(blockSize)
	size := core.Vec2{X: float64(len(Layout[0])) * s, Y: float64(len(Layout)) * s}
	c := &Cloud{
		pos:  core.Vec2{X: -size.X, Y: viewport.Y * cfg.CloudHeightRatio},
		size: size,
		drift: anim.Tween{
			From:     -size.X,
			To:       viewport.X + size.X,
			Duration: cfg.CloudCycle,
			Mode:     anim.Loop,
		},
	}
	for row, cells := range Layout {
		for col, filled := range cells {
			if filled == 0 {
				continue
			}
			off := core.Vec2{X: float64(col) * s, Y: float64(row) * s}
			e := core.NewEntity(core.KindCloud, c.pos.Add(off), core.Vec2{X: s, Y: s}, CloudColor)
			e.Screen = true
			c.blocks = append(c.blocks, e)
			c.offsets = append(c.offsets, off)
		}
	}
	return c
}

// Blocks returns the cloud blocks.
func (c *Cloud) Blocks() []*core.Entity { return c.blocks }

// Pos returns the top-left corner of the cloud.
func (c *Cloud) Pos() core.Vec2 { return c.pos }

// Center returns the midpoint of the cloud bounds.
func (c *Cloud) Center() core.Vec2 { return c.pos.Add(c.size.Scale(0.5)) }

// Advance drifts the cloud and moves its blocks along.
func (c *Cloud) Advance(dt time.Duration) {
	c.pos.X, _ = c.drift.Advance(dt)
	for i, e := range c.blocks {
		e.Pos = c.pos.Add(c.offsets[i])
	}
}
