package rain

import (
	"math"
	"testing"
	"time"

	"pepse/internal/core"
)

func TestPoolPreallocatesHiddenDrops(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPool(cfg, 42)
	if got, want := p.Capacity(), cfg.MaxDropsPerBurst*cfg.OpacityFadeCycles; got != want {
		t.Fatalf("capacity = %d, want %d", got, want)
	}
	for i, d := range p.Drops() {
		if !d.Entity.Hidden || d.Entity.Opacity != 0 || d.Active() {
			t.Fatalf("drop %d should start parked: %+v", i, d.Entity)
		}
		if d.Entity.Kind != core.KindRainDrop || !d.Entity.Screen {
			t.Fatalf("drop %d has kind %v screen=%v", i, d.Entity.Kind, d.Entity.Screen)
		}
	}
}

func TestCreateRainBurstSize(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPool(cfg, 1)
	center := core.Vec2{X: 300, Y: 150}
	drops := p.CreateRain(center, nil)
	if len(drops) < 1 || len(drops) > cfg.MaxDropsPerBurst {
		t.Fatalf("burst of %d drops, want [1, %d]", len(drops), cfg.MaxDropsPerBurst)
	}
	for _, d := range drops {
		if d.Entity.Hidden || d.Entity.Opacity != 1 || !d.Active() {
			t.Fatalf("activated drop not visible: %+v", d.Entity)
		}
		c := d.Entity.Center()
		if math.Abs(c.X-center.X) > cfg.Spread || c.Y < center.Y || c.Y > center.Y+cfg.Spread/2 {
			t.Fatalf("drop center %+v too far from %+v", c, center)
		}
	}
	if p.Active() != len(drops) {
		t.Fatalf("active = %d, want %d", p.Active(), len(drops))
	}
}

func TestPoolNeverExceedsCapacity(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPool(cfg, 5)
	for i := 0; i < 50; i++ {
		p.CreateRain(core.Vec2{X: 100, Y: 100}, nil)
		if p.Active() > p.Capacity() {
			t.Fatalf("burst %d: %d active drops exceed capacity %d", i, p.Active(), p.Capacity())
		}
	}
	if p.Active() != p.Capacity() {
		t.Fatalf("repeated bursts should drain the pool, active = %d", p.Active())
	}
	if got := p.CreateRain(core.Vec2{}, nil); len(got) != 0 {
		t.Fatalf("exhausted pool returned %d drops", len(got))
	}
}

func TestDropsFadeAndReturnToPool(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPool(cfg, 9)
	var finished []*Drop
	drops := p.CreateRain(core.Vec2{X: 200, Y: 100}, func(d *Drop) {
		if !d.Active() || d.Entity.Hidden {
			t.Fatalf("callback should see the drop before it is parked")
		}
		finished = append(finished, d)
	})
	startY := drops[0].Entity.Pos.Y

	p.Advance(cfg.FadeDuration / 2)
	if op := drops[0].Entity.Opacity; math.Abs(op-0.5) > 1e-9 {
		t.Fatalf("opacity at half fade = %f, want 0.5", op)
	}
	if drops[0].Entity.Pos.Y <= startY {
		t.Fatal("drop did not fall")
	}

	if got := p.Advance(cfg.FadeDuration / 2); got != len(drops) {
		t.Fatalf("recycled %d drops, want %d", got, len(drops))
	}
	if len(finished) != len(drops) {
		t.Fatalf("callback ran %d times, want %d", len(finished), len(drops))
	}
	if p.Active() != 0 {
		t.Fatalf("active = %d after fade, want 0", p.Active())
	}
	for _, d := range drops {
		if !d.Entity.Hidden || d.Entity.Opacity != 0 || d.Entity.Pos != (core.Vec2{}) {
			t.Fatalf("recycled drop not parked: %+v", d.Entity)
		}
	}
}

func TestDropsAreReused(t *testing.T) {
	p := NewPool(DefaultConfig(), 3)
	seen := make(map[*Drop]bool)
	for _, d := range p.Drops() {
		seen[d] = true
	}
	for i := 0; i < 20; i++ {
		for _, d := range p.CreateRain(core.Vec2{X: 10, Y: 10}, nil) {
			if !seen[d] {
				t.Fatal("CreateRain allocated a drop outside the pool")
			}
		}
		p.Advance(time.Second)
	}
}

func TestCloudLoopsAcrossViewport(t *testing.T) {
	cfg := DefaultConfig()
	viewport := core.Vec2{X: 1280, Y: 720}
	c := NewCloud(cfg, 30, viewport)

	filled := 0
	for _, row := range Layout {
		for _, cell := range row {
			filled += int(cell)
		}
	}
	if len(c.Blocks()) != filled {
		t.Fatalf("cloud has %d blocks, want %d", len(c.Blocks()), filled)
	}
	if c.Pos().X != -180 || math.Abs(c.Pos().Y-144) > 1e-9 {
		t.Fatalf("start = %+v, want (-180, 144)", c.Pos())
	}

	c.Advance(cfg.CloudCycle / 2)
	if math.Abs(c.Pos().X-640) > 1e-6 {
		t.Fatalf("half-cycle x = %f, want 640", c.Pos().X)
	}
	if first := c.Blocks()[0]; first.Pos.X != c.Pos().X+30 || first.Pos.Y != c.Pos().Y {
		t.Fatalf("first block at %+v did not follow the cloud at %+v", first.Pos, c.Pos())
	}
	c.Advance(cfg.CloudCycle / 2)
	if c.Pos().X != -180 {
		t.Fatalf("after one cycle x = %f, want -180", c.Pos().X)
	}
	if got := c.Center(); got.X != -90 || math.Abs(got.Y-234) > 1e-9 {
		t.Fatalf("center = %+v, want (-90, 234)", got)
	}
}
