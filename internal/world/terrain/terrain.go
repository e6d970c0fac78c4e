package terrain

import (
	"image/color"
	"math"

	"pepse/internal/core"
	rng "pepse/pkg/core"
)

// BaseGroundColor is the unjittered ground block color.
var BaseGroundColor = color.NRGBA{R: 212, G: 123, B: 74, A: 255}

// GridXs returns the grid-aligned x coordinates of every cell of the given
// size that intersects [minX, maxX). Adjacent ranges tile without overlap.
func GridXs(minX, maxX float64, size int) []int {
	if size <= 0 || !(minX < maxX) || math.IsInf(minX, 0) || math.IsInf(maxX, 0) {
		return nil
	}
	s := float64(size)
	lo := int(math.Floor(minX/s)) * size
	hi := int(math.Ceil(maxX/s)) * size
	xs := make([]int, 0, (hi-lo)/size)
	for x := lo; x < hi; x += size {
		xs = append(xs, x)
	}
	return xs
}

// Streamer builds ground columns on demand.
type Streamer struct {
	cfg    Config
	seed   int64
	height core.HeightFunc
}

// NewStreamer returns a streamer sampling the given height function.
func NewStreamer(cfg Config, seed int64, height core.HeightFunc) *Streamer {
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = DefaultConfig().BlockSize
	}
	if cfg.Depth <= 0 {
		cfg.Depth = DefaultConfig().Depth
	}
	return &Streamer{cfg: cfg, seed: seed, height: height}
}

// BlockSize returns the grid cell size.
func (s *Streamer) BlockSize() int { return s.cfg.BlockSize }

// GroundTop returns the y of the topmost block in the column containing x.
func (s *Streamer) GroundTop(x float64) float64 {
	size := float64(s.cfg.BlockSize)
	gx := math.Floor(x/size) * size
	return math.Floor(s.height(gx)/size) * size
}

// CreateInRange returns the blocks of every column intersecting [minX, maxX).
func (s *Streamer) CreateInRange(minX, maxX float64) []*core.Entity {
	xs := GridXs(minX, maxX, s.cfg.BlockSize)
	blocks := make([]*core.Entity, 0, len(xs)*s.cfg.Depth)
	for _, x := range xs {
		blocks = append(blocks, s.Column(x)...)
	}
	return blocks
}

// Column builds the block stack for a single grid-aligned x.
func (s *Streamer) Column(x int) []*core.Entity {
	size := float64(s.cfg.BlockSize)
	top := math.Floor(s.height(float64(x))/size) * size
	column := make([]*core.Entity, 0, s.cfg.Depth)
	for row := 0; row < s.cfg.Depth; row++ {
		pos := core.Vec2{X: float64(x), Y: top + float64(row)*size}
		c := jitterColor(BaseGroundColor, s.cfg.ColorJitter, rng.NewRNG(blockSeed(x, row, s.seed)))
		column = append(column, core.NewEntity(core.KindGround, pos, core.Vec2{X: size, Y: size}, c))
	}
	return column
}

func blockSeed(x, row int, seed int64) int64 {
	return int64(x)*73856093 ^ int64(row)*19349663 ^ seed
}

func jitterColor(base color.NRGBA, delta int, r *rng.RNG) color.NRGBA {
	if delta <= 0 {
		return base
	}
	return color.NRGBA{
		R: clampChannel(int(base.R) + r.IntRange(-delta, delta)),
		G: clampChannel(int(base.G) + r.IntRange(-delta, delta)),
		B: clampChannel(int(base.B) + r.IntRange(-delta, delta)),
		A: base.A,
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
