package scope

import (
	"math"

	"github.com/simukka/crtscope/common"
)

const (
	// MinCanvasSize is the smallest logical side of the oscilloscope face.
	MinCanvasSize = 64.0

	// DeflectionMargin keeps a full-amplitude beam off the canvas edge.
	DeflectionMargin = 0.95
)

// Viewport is the geometry of one canvas: its logical (CSS) size, the device
// pixel ratio, and the backing-store size in device pixels.
type Viewport struct {
	Width, Height           float64
	Ratio                   float64
	PixelWidth, PixelHeight int
}

// Center returns the logical centre of the viewport.
func (v Viewport) Center() Point {
	return Point{X: v.Width / 2, Y: v.Height / 2}
}

// DeviceRatio sanitises a device pixel ratio, defaulting to 1.
func DeviceRatio(r float64) float64 {
	if !(r > 0) || math.IsInf(r, 0) {
		return 1
	}
	return r
}

// FitSquare sizes the oscilloscope face: a square of side min(w, h) of the
// container, never smaller than MinCanvasSize.
func FitSquare(containerW, containerH, ratio float64) Viewport {
	ratio = DeviceRatio(ratio)
	size := math.Min(common.Finite(containerW, 0), common.Finite(containerH, 0))
	size = math.Max(MinCanvasSize, size)
	px := int(math.Round(size * ratio))
	return Viewport{
		Width:       size,
		Height:      size,
		Ratio:       ratio,
		PixelWidth:  px,
		PixelHeight: px,
	}
}

// FitBox sizes an overlay canvas to exactly cover a w x h box.
func FitBox(w, h, ratio float64) Viewport {
	ratio = DeviceRatio(ratio)
	w = math.Max(0, common.Finite(w, 0))
	h = math.Max(0, common.Finite(h, 0))
	return Viewport{
		Width:       w,
		Height:      h,
		Ratio:       ratio,
		PixelWidth:  int(math.Max(1, math.Round(w*ratio))),
		PixelHeight: int(math.Max(1, math.Round(h*ratio))),
	}
}

// PixelsPerVolt is the deflection scale for a w x h area: a full-amplitude
// beam reaches DeflectionMargin of the half extent. The amplitude is clamped
// to at least 1 before dividing.
func PixelsPerVolt(w, h, amplitude float64) float64 {
	half := math.Min(common.Finite(w, 0), common.Finite(h, 0)) / 2
	return DeflectionMargin * math.Max(0, half) / math.Max(1, common.Finite(amplitude, 1))
}

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the rectangle centre.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Shrink returns r inset by d on every side.
func (r Rect) Shrink(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// FracRect is a rectangle given as fractions of a bounding box.
type FracRect struct {
	X, Y, W, H float64
}

// In maps the fractional rectangle onto a w x h box.
func (f FracRect) In(w, h float64) Rect {
	return Rect{X: f.X * w, Y: f.Y * h, W: f.W * w, H: f.H * h}
}

// Positions of the two schematic viewports within the vista image.
var (
	LateralView = FracRect{X: 0.24, Y: 0.12, W: 0.10, H: 0.31}
	TopView     = FracRect{X: 0.24, Y: 0.575, W: 0.10, H: 0.31}
)
