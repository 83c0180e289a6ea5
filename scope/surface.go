package scope

import (
	"strconv"

	"github.com/simukka/crtscope/common"
)

// Point is a position in logical (CSS) pixels.
type Point struct {
	X, Y float64
}

// Color is an 8-bit RGB colour with a float alpha, as used by canvas styles.
type Color struct {
	R, G, B uint8
	A       float64
}

// Transparent is fully transparent black.
var Transparent = Color{}

// WithAlpha returns the colour with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = common.Clamp01(a)
	return c
}

// CSS renders the colour as an rgba() style string.
func (c Color) CSS() string {
	return "rgba(" + strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," +
		strconv.Itoa(int(c.B)) + "," + strconv.FormatFloat(common.Clamp01(c.A), 'f', 3, 64) + ")"
}

// ColorStop is one stop of a gradient; Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  Color
}

// LinearGradient runs from From (offset 0) to To (offset 1).
type LinearGradient struct {
	From, To Point
	Stops    []ColorStop
}

// Composite selects how a fill combines with what is already drawn.
type Composite int

const (
	// CompositeOver is normal alpha blending ("source-over").
	CompositeOver Composite = iota
	// CompositeLighter adds the source to the destination ("lighter").
	CompositeLighter
)

// Surface is a 2D drawing target measured in logical pixels. Implementations
// apply the device pixel ratio themselves.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h float64)

	// Clear resets every pixel to transparent.
	Clear()

	FillRect(x, y, w, h float64, c Color)
	FillCircle(center Point, r float64, c Color)

	// FillRadial fills a circle of radius r with a radial gradient from the
	// centre (offset 0) to the rim (offset 1).
	FillRadial(center Point, r float64, stops []ColorStop)

	StrokeRect(x, y, w, h, width float64, c Color)

	// StrokeLine strokes a segment with round caps.
	StrokeLine(from, to Point, width float64, c Color)

	// FillPolygon fills a closed polygon with a linear gradient.
	FillPolygon(pts []Point, g LinearGradient, op Composite)
}
