// Package palette derives semantic color sets from a base hue.
//
// Each pane in sigmaterm carries its own accent palette, generated from a
// hue that advances as panes are added. The rest of the codebase consumes
// only named roles (Primary, Alert, Warning, ...) and never raw hues, so the
// generation scheme can change without touching consumers.
package palette

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Set is a named collection of semantic colors derived from a single hue.
// All values are hex colors usable directly as lipgloss colors.
type Set struct {
	// Primary is the accent color: pane headers, active borders.
	Primary lipgloss.Color
	// Light and Dark are the terminal background tints for the two color modes.
	Light lipgloss.Color
	Dark  lipgloss.Color

	// OnPrimary, OnLight and OnDark are text colors readable on the
	// corresponding backgrounds.
	OnPrimary lipgloss.Color
	OnLight   lipgloss.Color
	OnDark    lipgloss.Color

	// Alert and Warning are fixed across hues so that error output reads
	// the same in every pane.
	Alert   lipgloss.Color
	Warning lipgloss.Color

	// Alternate1..3 are hue rotations used for the remaining ANSI colors.
	Alternate1 lipgloss.Color
	Alternate2 lipgloss.Color
	Alternate3 lipgloss.Color
}

// DefaultHue is the hue of the first pane's palette.
const DefaultHue = 180.0

// Default returns the palette used before any pane-specific hue is assigned.
func Default() Set {
	return FromHue(DefaultHue)
}

// FromHue derives a full semantic color set from a base hue in degrees.
// The same hue always yields the same set.
func FromHue(h float64) Set {
	h = normalizeHue(h)
	return Set{
		Primary:    hsl(h, 0.6, 0.6),
		Light:      hsl(normalizeHue(h+10), 0.6, 0.95),
		Dark:       hsl(normalizeHue(h-10), 0.1, 0.15),
		OnPrimary:  hsl(h, 0.6, 0.2),
		OnLight:    lipgloss.Color("#000000"),
		OnDark:     lipgloss.Color("#ffffff"),
		Alert:      lipgloss.Color("#ff0000"),
		Warning:    lipgloss.Color("#ffff00"),
		Alternate1: hsl(normalizeHue(h+90), 0.6, 0.6),
		Alternate2: hsl(normalizeHue(h+180), 0.6, 0.6),
		Alternate3: hsl(normalizeHue(h+270), 0.6, 0.6),
	}
}

// Background returns the terminal background color for the given color mode.
func (s Set) Background(dark bool) lipgloss.Color {
	if dark {
		return s.Dark
	}
	return s.Light
}

// Foreground returns the default text color for the given color mode.
func (s Set) Foreground(dark bool) lipgloss.Color {
	if dark {
		return s.OnDark
	}
	return s.OnLight
}

func hsl(h, s, l float64) lipgloss.Color {
	return lipgloss.Color(colorful.Hsl(h, s, l).Clamped().Hex())
}

func normalizeHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
