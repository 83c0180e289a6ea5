package scope

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultAccent is used when no accent colour is configured or it cannot be parsed.
const DefaultAccent = "#33FF33"

// RGB is an opaque theme colour.
type RGB struct {
	R, G, B uint8
}

// Alpha returns the colour with the given alpha.
func (c RGB) Alpha(a float64) Color {
	return Color{R: c.R, G: c.G, B: c.B}.WithAlpha(a)
}

// Theme holds the visual styling shared by both renderers.
type Theme struct {
	// Accent tints the beam spot, its glow and the vista beam lines.
	Accent RGB

	// Background is the phosphor "off" colour.
	Background RGB

	// FrameColor outlines the vista viewports.
	FrameColor Color
	FrameWidth float64
}

// NewTheme builds a theme around an accent hex string.
func NewTheme(accent string) *Theme {
	return &Theme{
		Accent:     ParseAccent(accent),
		Background: RGB{},
		FrameColor: Color{R: 255, G: 255, B: 255, A: 0.04},
		FrameWidth: 1,
	}
}

// ParseAccent converts a 3 or 6 digit hex colour, with or without '#', to RGB.
// Empty or malformed input yields DefaultAccent.
func ParseAccent(hex string) RGB {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil || len(hex) != 6 {
		c, _ = colorful.Hex(DefaultAccent)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}
