package world

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"pepse/internal/world/avatar"
	"pepse/internal/world/daynight"
	"pepse/internal/world/flora"
	"pepse/internal/world/rain"
	"pepse/internal/world/terrain"

	"gopkg.in/yaml.v3"
)

// Config aggregates the world settings and every component's tunables.
type Config struct {
	Seed           int64   `yaml:"seed"`
	ViewportWidth  int     `yaml:"viewport_width"`
	ViewportHeight int     `yaml:"viewport_height"`
	Margin         float64 `yaml:"margin"`

	Terrain  terrain.Config  `yaml:"terrain"`
	Flora    flora.Config    `yaml:"flora"`
	Rain     rain.Config     `yaml:"rain"`
	DayNight daynight.Config `yaml:"day_night"`
	Avatar   avatar.Config   `yaml:"avatar"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:           42,
		ViewportWidth:  1280,
		ViewportHeight: 720,
		Margin:         50,
		Terrain:        terrain.DefaultConfig(),
		Flora:          flora.DefaultConfig(),
		Rain:           rain.DefaultConfig(),
		DayNight:       daynight.DefaultConfig(),
		Avatar:         avatar.DefaultConfig(),
	}
}

// FromMap populates the config from flag-style key/value pairs. Component
// keys are shared with the component FromMap helpers.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Terrain = terrain.FromMap(cfg)
	c.Flora = flora.FromMap(cfg)
	c.Rain = rain.FromMap(cfg)
	c.DayNight = daynight.FromMap(cfg)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ViewportWidth = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ViewportHeight = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Margin = parsed
		}
	}
	return c
}

// Validate reports the first setting the world cannot run with.
func (c *Config) Validate() error {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return errors.New("viewport dimensions must be positive")
	}
	if c.Margin < 0 {
		return errors.New("margin cannot be negative")
	}
	if c.Terrain.BlockSize <= 0 {
		return errors.New("terrain.block_size must be positive")
	}
	if c.Terrain.Depth <= 0 {
		return errors.New("terrain.depth must be positive")
	}
	if c.Terrain.NoiseScale <= 0 {
		return errors.New("terrain.noise_scale must be positive")
	}
	if c.Terrain.ColorJitter < 0 || c.Terrain.ColorJitter > 255 {
		return fmt.Errorf("terrain.color_jitter %d outside [0, 255]", c.Terrain.ColorJitter)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"flora.tree_threshold", c.Flora.TreeThreshold},
		{"flora.leaf_threshold", c.Flora.LeafThreshold},
		{"flora.fruit_threshold", c.Flora.FruitThreshold},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%s %v outside [0, 1]", p.name, p.value)
		}
	}
	if c.Flora.TrunkHeightMin <= 0 {
		return errors.New("flora.trunk_height_min must be positive")
	}
	if c.Flora.TrunkHeightMax < c.Flora.TrunkHeightMin {
		return errors.New("flora.trunk_height_max must be >= trunk_height_min")
	}
	if c.Flora.LeavesPerRow < 0 {
		return errors.New("flora.leaves_per_row cannot be negative")
	}
	if c.Rain.MaxDropsPerBurst <= 0 || c.Rain.OpacityFadeCycles <= 0 {
		return errors.New("rain.max_drops_per_burst and rain.opacity_fade_cycles must be positive")
	}
	if c.Rain.FadeDuration <= 0 {
		return errors.New("rain.fade_duration must be positive")
	}
	if c.Rain.FallDuration < c.Rain.FadeDuration {
		return errors.New("rain.fall_duration must be >= fade_duration")
	}
	if c.Rain.CloudCycle <= 0 {
		return errors.New("rain.cloud_cycle must be positive")
	}
	if c.DayNight.DayLength <= 0 {
		return errors.New("day_night.day_length must be positive")
	}
	if c.Avatar.MaxEnergy <= 0 {
		return errors.New("avatar.max_energy must be positive")
	}
	return nil
}

// LoadTuning overlays a YAML tuning file onto the defaults and validates the
// result. An empty path returns the defaults.
func LoadTuning(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse tuning: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate tuning: %w", err)
	}
	return cfg, nil
}
