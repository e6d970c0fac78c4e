// Package daynight drives the sky, the darkening night overlay and the sun
// orbiting above the terrain.
package daynight

import (
	"image/color"
	"strconv"
	"time"

	"pepse/internal/anim"
	"pepse/internal/core"
)

var (
	SkyColor   = color.NRGBA{R: 128, G: 198, B: 229, A: 255}
	NightColor = color.NRGBA{A: 255}
	SunColor   = color.NRGBA{R: 255, G: 255, A: 255}
	HaloColor  = color.NRGBA{R: 255, G: 255, A: 20}
)

// Config times the day cycle and sizes the sun.
type Config struct {
	DayLength       time.Duration `yaml:"day_length"`
	MidnightOpacity float64       `yaml:"midnight_opacity"`
	SunSize         float64       `yaml:"sun_size"`
	HaloRatio       float64       `yaml:"halo_ratio"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		DayLength:       30 * time.Second,
		MidnightOpacity: 0.5,
		SunSize:         80,
		HaloRatio:       1.5,
	}
}

// FromMap overlays flag-style key/value pairs onto the defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["day_length"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.DayLength = parsed
		}
	}
	if v, ok := cfg["midnight_opacity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.MidnightOpacity = parsed
		}
	}
	if v, ok := cfg["sun_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.SunSize = parsed
		}
	}
	return c
}

// Cycle owns the screen-space sky, night, sun and halo entities.
type Cycle struct {
	Sky   *core.Entity
	Night *core.Entity
	Sun   *core.Entity
	Halo  *core.Entity

	start  core.Vec2
	center core.Vec2
	dark   anim.Tween
	orbit  anim.Tween
}

// New builds the cycle for a viewport. The sun orbits a point on the
// terrain surface at the middle of the screen.
func New(cfg Config, viewport core.Vec2, height core.HeightFunc) *Cycle {
	c := &Cycle{
		Sky:   screen(core.NewEntity(core.KindSky, core.Vec2{}, viewport, SkyColor)),
		Night: screen(core.NewEntity(core.KindNight, core.Vec2{}, viewport, NightColor)),
		Sun:   screen(core.NewEntity(core.KindSun, core.Vec2{}, core.Vec2{X: cfg.SunSize, Y: cfg.SunSize}, SunColor)),
		dark: anim.Tween{
			From:     0,
			To:       cfg.MidnightOpacity,
			Duration: cfg.DayLength / 2,
			Interp:   anim.Cubic,
			Mode:     anim.BackAndForth,
		},
		orbit: anim.Tween{
			From:     0,
			To:       360,
			Duration: cfg.DayLength,
			Mode:     anim.Loop,
		},
	}
	c.Night.Opacity = 0

	sunX := viewport.X/2 - cfg.SunSize/2
	c.start = core.Vec2{X: sunX, Y: (viewport.Y - height(sunX)) / 2}
	c.center = core.Vec2{X: viewport.X / 2, Y: height(viewport.X / 2)}
	c.Sun.SetCenter(c.start)

	halo := cfg.SunSize * cfg.HaloRatio
	c.Halo = screen(core.NewEntity(core.KindHalo, core.Vec2{}, core.Vec2{X: halo, Y: halo}, HaloColor))
	c.Halo.SetCenter(c.Sun.Center())
	return c
}

func screen(e *core.Entity) *core.Entity {
	e.Screen = true
	return e
}

// Entities returns the cycle entities in drawing order.
func (c *Cycle) Entities() []*core.Entity {
	return []*core.Entity{c.Sky, c.Sun, c.Halo, c.Night}
}

// OrbitCenter returns the point the sun circles.
func (c *Cycle) OrbitCenter() core.Vec2 { return c.center }

// SunAngle returns the current orbit angle in degrees.
func (c *Cycle) SunAngle() float64 { return c.orbit.Value() }

// Advance moves the day forward by dt.
func (c *Cycle) Advance(dt time.Duration) {
	c.Night.Opacity, _ = c.dark.Advance(dt)
	angle, _ := c.orbit.Advance(dt)
	c.Sun.SetCenter(c.start.Sub(c.center).Rotated(angle).Add(c.center))
	c.Halo.SetCenter(c.Sun.Center())
}
