package app

import (
	"log"
	"time"

	"pepse/internal/core"
	"pepse/internal/render"
	"pepse/internal/world"
	"pepse/internal/world/avatar"
)

// Session couples a world with the avatar walking through it. Both hosts
// drive it once per tick.
type Session struct {
	World  *world.World
	Avatar *avatar.Avatar

	// OnRain runs after a jump shed a burst of drops.
	OnRain func(drops int)

	cfg    world.Config
	logger *log.Logger
}

// NewSession builds a world and drops the avatar onto the ground at x=0.
func NewSession(cfg world.Config) *Session {
	s := &Session{cfg: cfg}
	s.Reset(cfg.Seed)
	return s
}

// Reset rebuilds the world with the given seed. The host must be attached
// again afterwards.
func (s *Session) Reset(seed int64) {
	s.cfg.Seed = seed
	s.World = world.New(s.cfg)
	if s.logger != nil {
		s.World.SetLogger(s.logger)
	}
	size := s.cfg.Avatar.Size
	pos := core.Vec2{X: -size / 2, Y: s.World.GroundTop(0) - size}
	s.Avatar = avatar.New(s.cfg.Avatar, pos)
}

// SetLogger routes world logs to l, across resets too.
func (s *Session) SetLogger(l *log.Logger) {
	s.logger = l
	s.World.SetLogger(l)
}

// Seed returns the seed of the current world.
func (s *Session) Seed() int64 { return s.cfg.Seed }

// Viewport returns the viewport size.
func (s *Session) Viewport() core.Vec2 {
	return core.Vec2{X: float64(s.cfg.ViewportWidth), Y: float64(s.cfg.ViewportHeight)}
}

// Step applies input to the avatar, settles rain and fruit, and advances the
// world around the avatar.
func (s *Session) Step(dt time.Duration, in avatar.Input) (added, removed []*core.Entity) {
	if s.Avatar.Update(dt, in, s.World.GroundTop) {
		n := s.World.Rain()
		if s.OnRain != nil {
			s.OnRain(n)
		}
	}
	if e := s.World.Harvest(s.Avatar.Entity.Bounds()); e > 0 {
		s.Avatar.AddEnergy(e)
	}
	return s.World.Update(dt, s.Avatar.Entity.Center().X)
}

// Camera follows the avatar.
func (s *Session) Camera() render.Camera {
	return render.Follow(s.Avatar.Entity.Center().X, s.Viewport())
}

// Entities returns the world entities with the avatar in its layer.
func (s *Session) Entities() []*core.Entity {
	return render.Insert(s.World.Entities(), s.Avatar.Entity)
}
