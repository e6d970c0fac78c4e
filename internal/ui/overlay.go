//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"pepse/internal/render"
	"pepse/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws streaming diagnostics on top of the world. F1 toggles it.
type Overlay struct {
	world *world.World
	show  bool
}

// NewOverlay constructs an overlay for w.
func NewOverlay(w *world.World) *Overlay {
	return &Overlay{world: w}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.show = !o.show
	}
}

// Draw marks the column grid and the rain spawn point and prints the
// streaming counters.
func (o *Overlay) Draw(screen *ebiten.Image, cam render.Camera) {
	if o == nil || !o.show {
		return
	}
	grid := color.RGBA{R: 255, G: 255, B: 255, A: 40}
	for _, x := range o.world.ColumnXs() {
		sx := float32(float64(x) - cam.Offset.X)
		if sx < 0 || float64(sx) > cam.Viewport.X {
			continue
		}
		vector.StrokeLine(screen, sx, 0, sx, float32(cam.Viewport.Y), 1, grid, false)
	}

	c := o.world.Cloud().Center()
	mark := color.RGBA{R: 255, G: 60, B: 60, A: 255}
	vector.StrokeLine(screen, float32(c.X-6), float32(c.Y), float32(c.X+6), float32(c.Y), 2, mark, false)
	vector.StrokeLine(screen, float32(c.X), float32(c.Y-6), float32(c.X), float32(c.Y+6), 2, mark, false)

	pool := o.world.RainPool()
	v := o.world.Tracker().Visible()
	msg := fmt.Sprintf("visible [%.0f, %.0f]\ncolumns %d  trees %d\ndrops %d/%d  finished %d\nsun %.0f deg\nFPS %.1f",
		v.Min, v.Max, o.world.ColumnCount(), o.world.TreeCount(),
		pool.Active(), pool.Capacity(), o.world.DropsFinished(),
		o.world.Cycle().SunAngle(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, msg, panelPadding, panelPadding+headerBaseline+8)
}
