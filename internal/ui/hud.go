//go:build ebiten

package ui

import (
	"image/color"

	"pepse/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type energySource interface {
	Energy() float64
}

// HUD draws the energy readout and, when toggled with Tab, the parameter
// panel.
type HUD struct {
	params parameterProvider
	energy energySource

	showParams bool
	lines      []string
	panel      *ebiten.Image
}

// NewHUD constructs a HUD reading from the given sources.
func NewHUD(params parameterProvider, energy energySource) *HUD {
	return &HUD{params: params, energy: energy}
}

// Update handles the panel toggle and refreshes the cached parameters.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.showParams = !h.showParams
	}
	if h.showParams && h.params != nil {
		h.lines = ParameterLines(h.params.Parameters())
	}
}

// Draw paints the HUD in screen space.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	if h.energy != nil {
		e := h.energy.Energy()
		text.Draw(screen, EnergyText(e), face, panelPadding, panelPadding+headerBaseline, EnergyColor(e))
	}
	if !h.showParams || len(h.lines) == 0 {
		return
	}

	height := panelPadding*2 + len(h.lines)*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, line := range h.lines {
		text.Draw(h.panel, line, face, panelPadding, panelPadding+(i+1)*lineHeight-4, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-panelWidth-panelPadding), panelPadding)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	panelWidth     = 260
	lineHeight     = 16
	headerBaseline = 18
)
