package rain

import (
	"strconv"
	"time"
)

// Config sizes the drop pool and times the drop and cloud animations.
type Config struct {
	MaxDropsPerBurst  int           `yaml:"max_drops_per_burst"`
	OpacityFadeCycles int           `yaml:"opacity_fade_cycles"`
	DropSize          float64       `yaml:"drop_size"`
	Spread            float64       `yaml:"spread"`
	FallDistance      float64       `yaml:"fall_distance"`
	FallDuration      time.Duration `yaml:"fall_duration"`
	FadeDuration      time.Duration `yaml:"fade_duration"`

	CloudCycle       time.Duration `yaml:"cloud_cycle"`
	CloudHeightRatio float64       `yaml:"cloud_height_ratio"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MaxDropsPerBurst:  8,
		OpacityFadeCycles: 3,
		DropSize:          10,
		Spread:            60,
		FallDistance:      360,
		FallDuration:      2 * time.Second,
		FadeDuration:      time.Second,
		CloudCycle:        20 * time.Second,
		CloudHeightRatio:  0.2,
	}
}

// Capacity is the number of drops the pool preallocates.
func (c Config) Capacity() int {
	if c.MaxDropsPerBurst <= 0 || c.OpacityFadeCycles <= 0 {
		return 0
	}
	return c.MaxDropsPerBurst * c.OpacityFadeCycles
}

// FromMap overlays flag-style key/value pairs onto the defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["max_drops_per_burst"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxDropsPerBurst = parsed
		}
	}
	if v, ok := cfg["opacity_fade_cycles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.OpacityFadeCycles = parsed
		}
	}
	if v, ok := cfg["fall_duration"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.FallDuration = parsed
		}
	}
	if v, ok := cfg["fade_duration"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.FadeDuration = parsed
		}
	}
	if v, ok := cfg["cloud_cycle"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.CloudCycle = parsed
		}
	}
	return c
}
