package render

import (
	"image/color"
	"testing"

	"pepse/internal/core"
)

var viewport = core.Vec2{X: 100, Y: 50}

func TestCameraProjectsWorldEntities(t *testing.T) {
	cam := Follow(500, viewport)
	block := core.NewEntity(core.KindGround, core.Vec2{X: 460, Y: 30}, core.Vec2{X: 10, Y: 10}, color.NRGBA{A: 255})
	if got := cam.Project(block).Min; got != (core.Vec2{X: 10, Y: 30}) {
		t.Fatalf("projected to %+v, want (10, 30)", got)
	}
	sky := core.NewEntity(core.KindSky, core.Vec2{}, viewport, color.NRGBA{A: 255})
	sky.Screen = true
	if got := cam.Project(sky).Min; got != (core.Vec2{}) {
		t.Fatalf("screen entity moved to %+v", got)
	}
	far := core.NewEntity(core.KindGround, core.Vec2{X: 900, Y: 0}, core.Vec2{X: 10, Y: 10}, color.NRGBA{A: 255})
	if cam.Visible(far) {
		t.Fatal("entity past the right edge reported visible")
	}
}

func TestRasterLayersAndBlending(t *testing.T) {
	r := NewRaster(10, 5, viewport)
	cam := Follow(50, viewport)

	sky := core.NewEntity(core.KindSky, core.Vec2{}, viewport, color.NRGBA{R: 0, G: 0, B: 200, A: 255})
	sky.Screen = true
	ground := core.NewEntity(core.KindGround, core.Vec2{X: 0, Y: 30}, core.Vec2{X: 100, Y: 20}, color.NRGBA{R: 200, A: 255})
	night := core.NewEntity(core.KindNight, core.Vec2{}, viewport, color.NRGBA{A: 255})
	night.Screen = true
	night.Opacity = 0.5
	hidden := core.NewEntity(core.KindFruit, core.Vec2{}, viewport, color.NRGBA{G: 255, A: 255})
	hidden.Hidden = true

	r.Draw([]*core.Entity{sky, ground, hidden, night}, cam)

	kind, c, ok := r.At(0, 0)
	if !ok || kind != core.KindSky {
		t.Fatalf("top-left kind = %v (%v), want sky", kind, ok)
	}
	if c.B != 100 {
		t.Fatalf("sky under half night = %+v, want blue 100", c)
	}
	kind, c, _ = r.At(9, 4)
	if kind != core.KindGround || c.R != 100 {
		t.Fatalf("bottom-right = %v %+v, want ground with red 100", kind, c)
	}
	if _, _, ok := r.At(10, 0); ok {
		t.Fatal("out-of-range cell reported ok")
	}
}

func TestRasterRoundKinds(t *testing.T) {
	r := NewRaster(10, 10, core.Vec2{X: 100, Y: 100})
	sun := core.NewEntity(core.KindSun, core.Vec2{}, core.Vec2{X: 100, Y: 100}, color.NRGBA{R: 255, G: 255, A: 255})
	sun.Screen = true
	r.Draw([]*core.Entity{sun}, Camera{Viewport: core.Vec2{X: 100, Y: 100}})
	if _, _, ok := r.At(0, 0); ok {
		t.Fatal("sun should not cover the corner cell")
	}
	if k, _, ok := r.At(5, 5); !ok || k != core.KindSun {
		t.Fatal("sun should cover the center cell")
	}
}

func TestRasterImage(t *testing.T) {
	r := NewRaster(4, 2, core.Vec2{X: 40, Y: 20})
	e := core.NewEntity(core.KindGround, core.Vec2{X: 20}, core.Vec2{X: 20, Y: 20}, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	r.Draw([]*core.Entity{e}, Camera{Offset: core.Vec2{}, Viewport: core.Vec2{X: 40, Y: 20}})
	img := r.Image()
	if got := img.NRGBAAt(3, 1); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Fatalf("pixel (3,1) = %+v", got)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{A: 255}) {
		t.Fatalf("background pixel = %+v, want opaque black", got)
	}
}

func TestInsertKeepsLayerOrder(t *testing.T) {
	mk := func(k core.Kind) *core.Entity { return core.NewEntity(k, core.Vec2{}, core.Vec2{}, color.NRGBA{}) }
	list := []*core.Entity{mk(core.KindSky), mk(core.KindGround), mk(core.KindCloud), mk(core.KindNight)}
	avatar := mk(core.KindAvatar)
	list = Insert(list, avatar)
	if list[len(list)-1].Kind != core.KindNight {
		t.Fatalf("night should stay on top, got %v", list[len(list)-1].Kind)
	}
	if list[3] != avatar {
		t.Fatalf("avatar should sit between cloud and night")
	}
}

func TestShadeClamps(t *testing.T) {
	c := color.NRGBA{R: 1, A: 200}
	if got := Shade(c, 0.5).A; got != 100 {
		t.Fatalf("alpha = %d, want 100", got)
	}
	if got := Shade(c, 2).A; got != 200 {
		t.Fatalf("alpha = %d, want 200", got)
	}
}
