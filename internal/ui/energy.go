package ui

import (
	"fmt"
	"image/color"

	"pepse/internal/core"
)

var (
	energyLow    = color.NRGBA{R: 230, G: 40, B: 40, A: 255}
	energyMedium = color.NRGBA{R: 240, G: 220, B: 40, A: 255}
	energyHigh   = color.NRGBA{R: 40, G: 220, B: 60, A: 255}
)

// EnergyText formats the avatar energy readout.
func EnergyText(energy float64) string {
	return fmt.Sprintf("Energy: %.0f%%", energy)
}

// EnergyColor picks the readout color: red below 20, yellow below 50.
func EnergyColor(energy float64) color.NRGBA {
	switch {
	case energy < 20:
		return energyLow
	case energy < 50:
		return energyMedium
	default:
		return energyHigh
	}
}

// ParameterLines flattens a parameter snapshot into display lines, one header
// per group.
func ParameterLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		lines = append(lines, "["+g.Name+"]")
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
