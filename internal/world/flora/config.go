package flora

import (
	"strconv"
	"time"
)

// Config holds the placement thresholds and tree geometry.
type Config struct {
	TrackYOffset   float64 `yaml:"track_y_offset"`
	TreeThreshold  float64 `yaml:"tree_threshold"`
	TrunkHeightMin float64 `yaml:"trunk_height_min"`
	TrunkHeightMax float64 `yaml:"trunk_height_max"`
	TrunkWidth     float64 `yaml:"trunk_width"`

	LeavesPerRow   int     `yaml:"leaves_per_row"`
	LeafSize       float64 `yaml:"leaf_size"`
	LeafSpace      float64 `yaml:"leaf_space"`
	LeafThreshold  float64 `yaml:"leaf_threshold"`
	FruitThreshold float64 `yaml:"fruit_threshold"`
	FruitSize      float64 `yaml:"fruit_size"`
	FruitEnergy    float64 `yaml:"fruit_energy"`

	LeafMaxWait  time.Duration `yaml:"leaf_max_wait"`
	LeafSwayTime time.Duration `yaml:"leaf_sway_time"`
	LeafAngleMin float64       `yaml:"leaf_angle_min"`
	LeafAngleMax float64       `yaml:"leaf_angle_max"`
	LeafWidthMin float64       `yaml:"leaf_width_min"`

	// RegrowDelay is the time a consumed fruit stays depleted. The world sets
	// it to the day length.
	RegrowDelay time.Duration `yaml:"-"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		TrackYOffset:   -10,
		TreeThreshold:  0.1,
		TrunkHeightMin: 90,
		TrunkHeightMax: 180,
		TrunkWidth:     25,
		LeavesPerRow:   6,
		LeafSize:       25,
		LeafSpace:      3,
		LeafThreshold:  0.6,
		FruitThreshold: 0.2,
		FruitSize:      20,
		FruitEnergy:    10,
		LeafMaxWait:    2 * time.Second,
		LeafSwayTime:   2 * time.Second,
		LeafAngleMin:   -10,
		LeafAngleMax:   10,
		LeafWidthMin:   20,
		RegrowDelay:    30 * time.Second,
	}
}

// FromMap overlays flag-style key/value pairs onto the defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["track_y_offset"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.TrackYOffset = parsed
		}
	}
	if v, ok := cfg["tree_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.TreeThreshold = parsed
		}
	}
	if v, ok := cfg["trunk_height_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.TrunkHeightMin = parsed
		}
	}
	if v, ok := cfg["trunk_height_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.TrunkHeightMax = parsed
		}
	}
	if c.TrunkHeightMax < c.TrunkHeightMin {
		c.TrunkHeightMax = c.TrunkHeightMin
	}
	if v, ok := cfg["leaves_per_row"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.LeavesPerRow = parsed
		}
	}
	if v, ok := cfg["leaf_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.LeafThreshold = parsed
		}
	}
	if v, ok := cfg["fruit_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.FruitThreshold = parsed
		}
	}
	if v, ok := cfg["fruit_energy"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.FruitEnergy = parsed
		}
	}
	return c
}
