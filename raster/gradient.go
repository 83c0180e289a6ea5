package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/simukka/crtscope/common"
	"github.com/simukka/crtscope/scope"
)

// everywhere is the bounds of the unbounded gradient sources.
var everywhere = image.Rect(-1e9, -1e9, 1e9, 1e9)

// premul is a premultiplied colour with components in [0, 1].
type premul struct {
	r, g, b, a float64
}

func toPremul(c scope.Color) premul {
	a := common.Clamp01(c.A)
	return premul{
		r: float64(c.R) / 255 * a,
		g: float64(c.G) / 255 * a,
		b: float64(c.B) / 255 * a,
		a: a,
	}
}

func (p premul) rgba64() color.RGBA64 {
	return color.RGBA64{
		R: uint16(p.r*0xffff + 0.5),
		G: uint16(p.g*0xffff + 0.5),
		B: uint16(p.b*0xffff + 0.5),
		A: uint16(p.a*0xffff + 0.5),
	}
}

// sampleStops evaluates a gradient at t, interpolating in premultiplied
// space like the canvas does.
func sampleStops(stops []scope.ColorStop, t float64) premul {
	if len(stops) == 0 {
		return premul{}
	}
	t = common.Clamp01(t)
	if t <= stops[0].Offset {
		return toPremul(stops[0].Color)
	}
	for i := 1; i < len(stops); i++ {
		hi := stops[i]
		if t > hi.Offset {
			continue
		}
		lo := stops[i-1]
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return toPremul(hi.Color)
		}
		f := (t - lo.Offset) / span
		a, b := toPremul(lo.Color), toPremul(hi.Color)
		return premul{
			r: a.r + (b.r-a.r)*f,
			g: a.g + (b.g-a.g)*f,
			b: a.b + (b.b-a.b)*f,
			a: a.a + (b.a-a.a)*f,
		}
	}
	return toPremul(stops[len(stops)-1].Color)
}

// radialGradient is an image source fading from the centre outward.
// Coordinates are device pixels.
type radialGradient struct {
	cx, cy, r float64
	stops     []scope.ColorStop
}

func (g *radialGradient) ColorModel() color.Model { return color.RGBA64Model }
func (g *radialGradient) Bounds() image.Rectangle { return everywhere }

func (g *radialGradient) At(x, y int) color.Color {
	return g.premulAt(x, y).rgba64()
}

func (g *radialGradient) premulAt(x, y int) premul {
	if g.r <= 0 {
		return sampleStops(g.stops, 1)
	}
	d := math.Hypot(float64(x)+0.5-g.cx, float64(y)+0.5-g.cy)
	return sampleStops(g.stops, d/g.r)
}

// linearGradient is an image source varying along the from-to axis.
type linearGradient struct {
	x0, y0, dx, dy float64
	invLen2        float64
	stops          []scope.ColorStop
}

func newLinearGradient(x0, y0, x1, y1 float64, stops []scope.ColorStop) *linearGradient {
	g := &linearGradient{x0: x0, y0: y0, dx: x1 - x0, dy: y1 - y0, stops: stops}
	if l2 := g.dx*g.dx + g.dy*g.dy; l2 > 0 {
		g.invLen2 = 1 / l2
	}
	return g
}

func (g *linearGradient) ColorModel() color.Model { return color.RGBA64Model }
func (g *linearGradient) Bounds() image.Rectangle { return everywhere }

func (g *linearGradient) At(x, y int) color.Color {
	return g.premulAt(x, y).rgba64()
}

func (g *linearGradient) premulAt(x, y int) premul {
	t := ((float64(x)+0.5-g.x0)*g.dx + (float64(y)+0.5-g.y0)*g.dy) * g.invLen2
	return sampleStops(g.stops, t)
}

// premulSource is implemented by the gradient sources so the additive path
// can skip the colour.Color round trip.
type premulSource interface {
	premulAt(x, y int) premul
}
