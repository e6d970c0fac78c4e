package terrain

import "strconv"

// Config controls the height field and the ground columns built from it.
type Config struct {
	BlockSize   int     `yaml:"block_size"`
	Depth       int     `yaml:"depth"`
	NoiseFactor float64 `yaml:"noise_factor"`
	NoiseScale  float64 `yaml:"noise_scale"`
	HeightRatio float64 `yaml:"height_ratio"`
	ColorJitter int     `yaml:"color_jitter"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		BlockSize:   30,
		Depth:       20,
		NoiseFactor: 200,
		NoiseScale:  100,
		HeightRatio: 2.0 / 3.0,
		ColorJitter: 10,
	}
}

// FromMap overlays flag-style key/value pairs onto the defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["block_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BlockSize = parsed
		}
	}
	if v, ok := cfg["depth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Depth = parsed
		}
	}
	if v, ok := cfg["noise_factor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.NoiseFactor = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.NoiseScale = parsed
		}
	}
	if v, ok := cfg["height_ratio"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 1 {
			c.HeightRatio = parsed
		}
	}
	if v, ok := cfg["color_jitter"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ColorJitter = parsed
		}
	}
	return c
}
