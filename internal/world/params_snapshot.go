package world

import (
	"strconv"
	"time"

	"pepse/internal/core"
)

// Parameters groups the active configuration for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	c := w.cfg
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				int64Param("seed", "Seed", c.Seed),
				intParam("w", "Viewport width", c.ViewportWidth),
				intParam("h", "Viewport height", c.ViewportHeight),
				floatParam("margin", "Stream margin", c.Margin),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				intParam("block_size", "Block size", c.Terrain.BlockSize),
				intParam("depth", "Column depth", c.Terrain.Depth),
				floatParam("noise_factor", "Noise amplitude", c.Terrain.NoiseFactor),
				floatParam("noise_scale", "Noise scale", c.Terrain.NoiseScale),
				intParam("color_jitter", "Color jitter", c.Terrain.ColorJitter),
			},
		},
		{
			Name: "Flora",
			Params: []core.Parameter{
				floatParam("tree_threshold", "Tree chance", c.Flora.TreeThreshold),
				floatParam("trunk_height_min", "Trunk height min", c.Flora.TrunkHeightMin),
				floatParam("trunk_height_max", "Trunk height max", c.Flora.TrunkHeightMax),
				intParam("leaves_per_row", "Leaves per row", c.Flora.LeavesPerRow),
				floatParam("leaf_threshold", "Leaf chance", c.Flora.LeafThreshold),
				floatParam("fruit_threshold", "Fruit chance", c.Flora.FruitThreshold),
				floatParam("fruit_energy", "Fruit energy", c.Flora.FruitEnergy),
			},
		},
		{
			Name: "Rain",
			Params: []core.Parameter{
				intParam("max_drops_per_burst", "Drops per burst", c.Rain.MaxDropsPerBurst),
				intParam("opacity_fade_cycles", "Fade cycles", c.Rain.OpacityFadeCycles),
				durationParam("fall_duration", "Fall duration", c.Rain.FallDuration),
				durationParam("fade_duration", "Fade duration", c.Rain.FadeDuration),
				durationParam("cloud_cycle", "Cloud cycle", c.Rain.CloudCycle),
			},
		},
		{
			Name: "Day",
			Params: []core.Parameter{
				durationParam("day_length", "Day length", c.DayNight.DayLength),
				floatParam("midnight_opacity", "Midnight opacity", c.DayNight.MidnightOpacity),
				floatParam("sun_size", "Sun size", c.DayNight.SunSize),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func durationParam(key, label string, value time.Duration) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeDuration,
		Value: value.String(),
	}
}
