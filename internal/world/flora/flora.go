// Package flora places trees deterministically along the terrain. Whether a
// grid column carries a tree, and what its crown looks like, depends only on
// the column position and the global seed.
package flora

import (
	"image/color"
	"math"
	"time"

	"pepse/internal/core"
	"pepse/internal/world/terrain"
	rng "pepse/pkg/core"
)

// Fill colors for the parts of a tree.
var (
	TrunkColor = color.NRGBA{R: 100, G: 50, B: 20, A: 255}
	LeafColor  = color.NRGBA{R: 50, G: 200, B: 30, A: 255}
	FruitColor = color.NRGBA{R: 255, G: 100, B: 0, A: 255}
)

// swaySalt separates the leaf delay stream from the layout stream.
const swaySalt = 0x5bd1e995

// Placer decides per grid column whether a tree grows there.
type Placer struct {
	cfg       Config
	blockSize int
	seed      int64
	height    core.HeightFunc
}

// NewPlacer returns a placer on the given grid and height function.
func NewPlacer(cfg Config, blockSize int, seed int64, height core.HeightFunc) *Placer {
	if blockSize <= 0 {
		blockSize = terrain.DefaultConfig().BlockSize
	}
	if cfg.TrunkHeightMax < cfg.TrunkHeightMin {
		cfg.TrunkHeightMax = cfg.TrunkHeightMin
	}
	return &Placer{cfg: cfg, blockSize: blockSize, seed: seed, height: height}
}

// Config returns the placer configuration.
func (p *Placer) Config() Config { return p.cfg }

// CreateInRange returns the trees of every column intersecting [minX, maxX).
func (p *Placer) CreateInRange(minX, maxX float64) []*Tree {
	var trees []*Tree
	for _, x := range terrain.GridXs(minX, maxX, p.blockSize) {
		if t, ok := p.TreeAt(x); ok {
			trees = append(trees, t)
		}
	}
	return trees
}

// TreeAt builds the tree at grid x, if the column carries one.
func (p *Placer) TreeAt(x int) (*Tree, bool) {
	fx := float64(x)
	h := p.height(fx)
	anchor := core.Vec2{X: fx, Y: h + p.cfg.TrackYOffset}
	seed := rng.PositionSeed(anchor.X, anchor.Y, p.seed)

	r := rng.NewRNG(seed)
	if r.Float64() >= p.cfg.TreeThreshold {
		return nil, false
	}
	trunkHeight := r.Range(p.cfg.TrunkHeightMin, p.cfg.TrunkHeightMax)

	size := float64(p.blockSize)
	groundY := math.Floor(h/size) * size
	trunk := core.NewEntity(core.KindTrunk,
		core.Vec2{X: fx, Y: groundY - trunkHeight},
		core.Vec2{X: p.cfg.TrunkWidth, Y: trunkHeight},
		TrunkColor)

	t := &Tree{X: x, Anchor: anchor, Seed: seed, Trunk: trunk}
	p.grow(t, r, rng.NewRNG(seed^swaySalt))
	return t, true
}

// grow fills the crown slot grid centered on the trunk top.
func (p *Placer) grow(t *Tree, layout, sway *rng.RNG) {
	n := p.cfg.LeavesPerRow
	if n <= 0 {
		return
	}
	step := p.cfg.LeafSize + p.cfg.LeafSpace
	span := float64(n) * step
	top := t.Trunk.Center().X
	origin := core.Vec2{X: top - span/2, Y: t.Trunk.Pos.Y - span/2}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			slot := origin.Add(core.Vec2{X: float64(i) * step, Y: float64(j) * step})
			if layout.Float64() < p.cfg.LeafThreshold {
				e := core.NewEntity(core.KindLeaf, slot, core.Vec2{X: p.cfg.LeafSize, Y: p.cfg.LeafSize}, LeafColor)
				wait := time.Duration(sway.Range(0, float64(p.cfg.LeafMaxWait)))
				t.Leaves = append(t.Leaves, newLeaf(e, p.cfg, wait))
				continue
			}
			if layout.Float64() < p.cfg.FruitThreshold {
				e := core.NewEntity(core.KindFruit, core.Vec2{}, core.Vec2{X: p.cfg.FruitSize, Y: p.cfg.FruitSize}, FruitColor)
				e.SetCenter(slot.Add(core.Vec2{X: p.cfg.LeafSize / 2, Y: p.cfg.LeafSize / 2}))
				t.Fruits = append(t.Fruits, newFruit(e, p.cfg.FruitEnergy, p.cfg.RegrowDelay))
			}
		}
	}
}
