package trace

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// FromColorful converts c to an RGBA with the given alpha.
func FromColorful(c colorful.Color, alpha float64) RGBA {
	return RGBA{c.R, c.G, c.B, alpha}
}

// ColorFromHex parses a "#rrggbb" (or "#rgb") colour.
func ColorFromHex(hex string, alpha float64) (RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	return FromColorful(c, alpha), nil
}

// Colorful drops alpha and returns the colour as a colorful.Color.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}
