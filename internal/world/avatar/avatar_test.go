package avatar

import (
	"testing"
	"time"

	"pepse/internal/core"
)

const tick = time.Second / 60

func ground(float64) float64 { return 480 }

func settled(t *testing.T) *Avatar {
	t.Helper()
	a := New(DefaultConfig(), core.Vec2{X: 100, Y: 430})
	a.Update(tick, Input{}, ground)
	if a.State() != Idle {
		t.Fatalf("avatar on the ground should be idle, got %v", a.State())
	}
	return a
}

func TestRunCostsEnergy(t *testing.T) {
	a := settled(t)
	x := a.Entity.Pos.X
	a.Update(tick, Input{Right: true}, ground)
	if got := a.Energy(); got != 99.5 {
		t.Fatalf("energy after one run tick = %f, want 99.5", got)
	}
	if a.Entity.Pos.X <= x || a.FacingLeft() {
		t.Fatalf("avatar should move right, x %f -> %f", x, a.Entity.Pos.X)
	}
	a.Update(tick, Input{Left: true}, ground)
	if !a.FacingLeft() || a.Velocity().X != -400 {
		t.Fatalf("avatar should face left at -400, got %+v", a.Velocity())
	}
}

func TestIdleRegeneratesUpToMax(t *testing.T) {
	a := settled(t)
	a.Update(tick, Input{Right: true}, ground)
	a.Update(tick, Input{Right: true}, ground)
	a.Update(tick, Input{}, ground)
	if got := a.Energy(); got != 100 {
		t.Fatalf("energy = %f, want 100 after one idle tick", got)
	}
	a.Update(tick, Input{}, ground)
	if got := a.Energy(); got != 100 {
		t.Fatalf("energy exceeded max: %f", got)
	}
}

func TestJumpReportsAndCosts(t *testing.T) {
	a := settled(t)
	if !a.Update(tick, Input{Jump: true}, ground) {
		t.Fatal("grounded avatar with energy should jump")
	}
	if got := a.Energy(); got != 90 {
		t.Fatalf("energy after jump = %f, want 90", got)
	}
	if a.State() != Jumping {
		t.Fatalf("state = %v, want jump", a.State())
	}
	if a.Update(tick, Input{Jump: true}, ground) {
		t.Fatal("airborne avatar must not jump again")
	}
	for i := 0; i < 300 && a.State() != Idle; i++ {
		a.Update(tick, Input{}, ground)
	}
	if bottom := a.Entity.Pos.Y + a.Entity.Size.Y; bottom != 480 {
		t.Fatalf("avatar landed at %f, want 480", bottom)
	}
}

func TestLowEnergyBlocksActions(t *testing.T) {
	a := settled(t)
	a.energy = 5
	if a.Update(tick, Input{Jump: true}, ground) {
		t.Fatal("jump should need 10 energy")
	}
	a.energy = 0.25
	a.Update(tick, Input{Right: true}, ground)
	if a.Velocity().X != 0 {
		t.Fatal("run should need 0.5 energy")
	}
}

func TestAddEnergyCaps(t *testing.T) {
	a := settled(t)
	a.energy = 95
	a.AddEnergy(10)
	if a.Energy() != 100 {
		t.Fatalf("energy = %f, want capped 100", a.Energy())
	}
}
