package terrain

import (
	"github.com/aquilax/go-perlin"

	rng "pepse/pkg/core"
)

const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
	// offsetSalt keeps the offset draw apart from the jitter streams.
	offsetSalt = 0x2545f491
)

// NoiseField is the seeded terrain height function. It holds no mutable
// state after construction, so every caller sharing it sees the same surface.
type NoiseField struct {
	base      float64
	amplitude float64
	scale     float64
	offset    float64
	seed      int64
	noise     *perlin.Perlin
}

// NewNoiseField builds the height field for a viewport of the given height.
func NewNoiseField(cfg Config, seed int64, viewportHeight float64) *NoiseField {
	scale := cfg.NoiseScale
	if scale <= 0 {
		scale = DefaultConfig().NoiseScale
	}
	return &NoiseField{
		base:      viewportHeight * cfg.HeightRatio,
		amplitude: cfg.NoiseFactor,
		scale:     scale,
		offset:    noiseOffset(seed, scale),
		seed:      seed,
		noise:     perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
	}
}

// noiseOffset shifts the sample point off the integer lattice, where
// gradient noise is always zero. The fractional part lands in [0.25, 0.75).
func noiseOffset(seed int64, scale float64) float64 {
	r := rng.NewRNG(seed ^ offsetSalt)
	return scale * (float64(r.IntRange(0, 1023)) + 0.25 + 0.5*r.Float64())
}

// Height returns the surface y at x.
func (n *NoiseField) Height(x float64) float64 {
	return n.base + n.amplitude*n.noise.Noise1D((x+n.offset)/n.scale)
}

// Offset returns the seed-derived shift applied to x before scaling.
func (n *NoiseField) Offset() float64 { return n.offset }

// Base returns the height the noise oscillates around.
func (n *NoiseField) Base() float64 { return n.base }

// Seed returns the seed the field was built with.
func (n *NoiseField) Seed() int64 { return n.seed }
