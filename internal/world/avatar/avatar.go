// Package avatar is the player helper hosts drive from input: energy
// bookkeeping, horizontal running, jumping and gravity against the terrain top.
package avatar

import (
	"image/color"
	"time"

	"pepse/internal/core"
)

// Color is the avatar fill.
var Color = color.NRGBA{R: 60, G: 60, B: 200, A: 255}

// Config holds the energy rules and motion constants.
type Config struct {
	Size      float64 `yaml:"size"`
	MaxEnergy float64 `yaml:"max_energy"`
	RunCost   float64 `yaml:"run_cost"`
	JumpCost  float64 `yaml:"jump_cost"`
	IdleGain  float64 `yaml:"idle_gain"`
	SpeedX    float64 `yaml:"speed_x"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Gravity   float64 `yaml:"gravity"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:      50,
		MaxEnergy: 100,
		RunCost:   0.5,
		JumpCost:  10,
		IdleGain:  1,
		SpeedX:    400,
		JumpSpeed: 650,
		Gravity:   600,
	}
}

// Input is the key state sampled by the host for one tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// State is the avatar's animation state.
type State uint8

const (
	Idle State = iota
	Running
	Jumping
)

func (s State) String() string {
	switch s {
	case Running:
		return "run"
	case Jumping:
		return "jump"
	default:
		return "idle"
	}
}

// Avatar is the player character.
type Avatar struct {
	Entity *core.Entity

	cfg        Config
	vel        core.Vec2
	energy     float64
	facingLeft bool
}

// New places a full-energy avatar with its top-left corner at pos.
func New(cfg Config, pos core.Vec2) *Avatar {
	return &Avatar{
		Entity: core.NewEntity(core.KindAvatar, pos, core.Vec2{X: cfg.Size, Y: cfg.Size}, Color),
		cfg:    cfg,
		energy: cfg.MaxEnergy,
	}
}

// Energy returns the current energy.
func (a *Avatar) Energy() float64 { return a.energy }

// AddEnergy adds e, capped at the maximum.
func (a *Avatar) AddEnergy(e float64) {
	a.energy = min(a.energy+e, a.cfg.MaxEnergy)
}

// Velocity returns the current velocity in pixels per second.
func (a *Avatar) Velocity() core.Vec2 { return a.vel }

// FacingLeft reports the direction of the last run.
func (a *Avatar) FacingLeft() bool { return a.facingLeft }

// State derives the animation state from the velocity.
func (a *Avatar) State() State {
	switch {
	case a.vel.X != 0:
		return Running
	case a.vel.Y != 0:
		return Jumping
	default:
		return Idle
	}
}

// Update applies one tick of input and motion. ground returns the terrain top
// under an x coordinate. It reports whether the avatar jumped this tick.
func (a *Avatar) Update(dt time.Duration, in Input, ground core.HeightFunc) (jumped bool) {
	vx := 0.0
	if in.Left && a.energy >= a.cfg.RunCost {
		vx -= a.cfg.SpeedX
		a.facingLeft = true
	}
	if in.Right && a.energy >= a.cfg.RunCost {
		vx += a.cfg.SpeedX
		a.facingLeft = false
	}
	a.vel.X = vx
	if vx != 0 {
		a.energy -= a.cfg.RunCost
	}

	if in.Jump && a.vel.Y == 0 && a.energy >= a.cfg.JumpCost {
		a.vel.Y = -a.cfg.JumpSpeed
		a.energy -= a.cfg.JumpCost
		jumped = true
	}

	if a.vel == (core.Vec2{}) {
		a.AddEnergy(a.cfg.IdleGain)
	}

	sec := dt.Seconds()
	a.vel.Y += a.cfg.Gravity * sec
	a.Entity.Pos = a.Entity.Pos.Add(a.vel.Scale(sec))

	if ground == nil {
		return jumped
	}
	top := ground(a.Entity.Center().X)
	if a.Entity.Pos.Y+a.Entity.Size.Y >= top {
		a.Entity.Pos.Y = top - a.Entity.Size.Y
		a.vel.Y = 0
	}
	return jumped
}
