package components

import (
	"image/color"
	"math"

	"github.com/pthm-cable/shoal/config"
)

// Color indexes into a Palette.
type Color uint8

// Palette is the fixed set of fish colors.
type Palette []color.NRGBA

// PaletteFromConfig converts configured RGBA entries into a Palette.
// Opacity is given in [0, 1] and clamped.
func PaletteFromConfig(entries []config.ColorConfig) Palette {
	p := make(Palette, len(entries))
	for i, e := range entries {
		a := math.Max(0, math.Min(1, e.A))
		p[i] = color.NRGBA{R: e.R, G: e.G, B: e.B, A: uint8(math.Round(a * 255))}
	}
	return p
}

// At returns the color for an index, wrapping out-of-range indices.
func (p Palette) At(c Color) color.NRGBA {
	if len(p) == 0 {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return p[int(c)%len(p)]
}
