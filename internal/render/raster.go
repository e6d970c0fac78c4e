package render

import (
	"image"
	"image/color"
	"math"

	"pepse/internal/core"
)

// Glyph returns the character a text host draws for a cell of the given kind.
func Glyph(k core.Kind) rune {
	switch k {
	case core.KindRainDrop:
		return '|'
	case core.KindFruit:
		return 'o'
	case core.KindLeaf:
		return '#'
	case core.KindSun:
		return '@'
	case core.KindAvatar:
		return 'A'
	default:
		return ' '
	}
}

// Raster samples entities at cell centers into a coarse color grid. Kinds
// holds kind+1 of the topmost mostly opaque entity per cell, 0 for none.
type Raster struct {
	Kinds *core.ByteGrid

	cells []color.NRGBA
	cellW float64
	cellH float64
}

// NewRaster returns a cols x rows raster covering the viewport.
func NewRaster(cols, rows int, viewport core.Vec2) *Raster {
	g := core.NewByteGrid(cols, rows)
	return &Raster{
		Kinds: g,
		cells: make([]color.NRGBA, g.W*g.H),
		cellW: viewport.X / float64(g.W),
		cellH: viewport.Y / float64(g.H),
	}
}

// At returns the kind and color of a cell. ok is false when no entity
// claimed the cell.
func (r *Raster) At(x, y int) (kind core.Kind, c color.NRGBA, ok bool) {
	if !r.Kinds.In(x, y) {
		return 0, color.NRGBA{}, false
	}
	c = r.cells[r.Kinds.Index(x, y)]
	v := r.Kinds.At(x, y)
	if v == 0 {
		return 0, c, false
	}
	return core.Kind(v - 1), c, true
}

// Draw clears the raster and paints the layer-ordered entities through cam.
func (r *Raster) Draw(entities []*core.Entity, cam Camera) {
	r.Kinds.Clear()
	for i := range r.cells {
		r.cells[i] = color.NRGBA{A: 255}
	}
	for _, e := range entities {
		if e.Hidden || e.Opacity <= 0 {
			continue
		}
		r.paint(e, cam.Project(e))
	}
}

func (r *Raster) paint(e *core.Entity, rect core.Rect) {
	x0 := max(0, int(math.Floor(rect.Min.X/r.cellW)))
	y0 := max(0, int(math.Floor(rect.Min.Y/r.cellH)))
	x1 := min(r.Kinds.W, int(math.Ceil((rect.Min.X+rect.Size.X)/r.cellW)))
	y1 := min(r.Kinds.H, int(math.Ceil((rect.Min.Y+rect.Size.Y)/r.cellH)))
	round := e.Kind == core.KindSun || e.Kind == core.KindHalo
	center := rect.Min.Add(rect.Size.Scale(0.5))
	alpha := e.Opacity * float64(e.Color.A) / 255

	for y := y0; y < y1; y++ {
		py := (float64(y) + 0.5) * r.cellH
		for x := x0; x < x1; x++ {
			px := (float64(x) + 0.5) * r.cellW
			if !covers(rect, center, round, px, py) {
				continue
			}
			i := r.Kinds.Index(x, y)
			r.cells[i] = blend(r.cells[i], e.Color, e.Opacity)
			if alpha > 0.5 {
				r.Kinds.Set(x, y, uint8(e.Kind)+1)
			}
		}
	}
}

func covers(rect core.Rect, center core.Vec2, round bool, px, py float64) bool {
	if px < rect.Min.X || px >= rect.Min.X+rect.Size.X || py < rect.Min.Y || py >= rect.Min.Y+rect.Size.Y {
		return false
	}
	if !round {
		return true
	}
	dx := (px - center.X) / (rect.Size.X / 2)
	dy := (py - center.Y) / (rect.Size.Y / 2)
	return dx*dx+dy*dy <= 1
}

// Image returns the raster as an image with one pixel per cell.
func (r *Raster) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Kinds.W, r.Kinds.H))
	fillRGBA(img.Pix, r.cells)
	return img
}
