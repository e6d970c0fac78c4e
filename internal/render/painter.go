//go:build ebiten

package render

import (
	"image/color"
	"math"

	"pepse/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws entities onto an ebiten image.
type Painter struct {
	pixel *ebiten.Image
}

// NewPainter allocates the shared 1x1 source image.
func NewPainter() *Painter {
	p := &Painter{pixel: ebiten.NewImage(1, 1)}
	p.pixel.Fill(color.White)
	return p
}

// Draw paints the layer-ordered entities through cam, skipping hidden and
// off-screen ones.
func (p *Painter) Draw(dst *ebiten.Image, entities []*core.Entity, cam Camera) {
	for _, e := range entities {
		if e.Hidden || e.Opacity <= 0 || !cam.Visible(e) {
			continue
		}
		r := cam.Project(e)
		c := Shade(e.Color, e.Opacity)
		switch e.Kind {
		case core.KindSun, core.KindHalo:
			center := r.Min.Add(r.Size.Scale(0.5))
			vector.DrawFilledCircle(dst, float32(center.X), float32(center.Y), float32(r.Size.X/2), c, true)
		case core.KindLeaf:
			p.rotated(dst, r, e.Angle, c)
		default:
			vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Size.X), float32(r.Size.Y), c, false)
		}
	}
}

func (p *Painter) rotated(dst *ebiten.Image, r core.Rect, deg float64, c color.NRGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Size.X, r.Size.Y)
	op.GeoM.Translate(-r.Size.X/2, -r.Size.Y/2)
	op.GeoM.Rotate(deg * math.Pi / 180)
	op.GeoM.Translate(r.Min.X+r.Size.X/2, r.Min.Y+r.Size.Y/2)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(p.pixel, op)
}
