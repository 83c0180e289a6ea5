// Package raster draws oscilloscope frames into an in-memory RGBA image so the
// native frontends can present them without a browser canvas.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/simukka/crtscope/common"
	"github.com/simukka/crtscope/scope"
)

// kappa places cubic control points so four arcs approximate a circle.
const kappa = 0.5522847498

// capSegments is the number of chords used for each round line cap.
const capSegments = 8

// Canvas is a scope.Surface backed by an *image.RGBA. Logical coordinates
// are multiplied by the viewport's device ratio.
type Canvas struct {
	img  *image.RGBA
	mask *image.Alpha
	view scope.Viewport
	z    vector.Rasterizer
}

// New returns a canvas sized for v.
func New(v scope.Viewport) *Canvas {
	c := &Canvas{}
	c.Resize(v)
	return c
}

// Resize reallocates the backing image. Contents are lost.
func (c *Canvas) Resize(v scope.Viewport) {
	v.Ratio = scope.DeviceRatio(v.Ratio)
	if v.PixelWidth < 1 {
		v.PixelWidth = 1
	}
	if v.PixelHeight < 1 {
		v.PixelHeight = 1
	}
	c.view = v
	bounds := image.Rect(0, 0, v.PixelWidth, v.PixelHeight)
	c.img = image.NewRGBA(bounds)
	c.mask = image.NewAlpha(bounds)
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Viewport returns the current geometry.
func (c *Canvas) Viewport() scope.Viewport { return c.view }

func (c *Canvas) Size() (float64, float64) {
	return c.view.Width, c.view.Height
}

func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

func (c *Canvas) FillRect(x, y, w, h float64, col scope.Color) {
	if !(w > 0) || !(h > 0) {
		return
	}
	c.fill(rectPath(x, y, w, h), uniform(col), scope.CompositeOver)
}

func (c *Canvas) FillCircle(center scope.Point, r float64, col scope.Color) {
	if !(r > 0) {
		return
	}
	c.fill(circlePath(center, r), uniform(col), scope.CompositeOver)
}

func (c *Canvas) FillRadial(center scope.Point, r float64, stops []scope.ColorStop) {
	if !(r > 0) || len(stops) == 0 {
		return
	}
	k := c.view.Ratio
	src := &radialGradient{cx: center.X * k, cy: center.Y * k, r: r * k, stops: stops}
	c.fill(circlePath(center, r), src, scope.CompositeOver)
}

func (c *Canvas) StrokeRect(x, y, w, h, width float64, col scope.Color) {
	if !(width > 0) || w < 0 || h < 0 {
		return
	}
	hw := width / 2
	outer := rectPath(x-hw, y-hw, w+width, h+width)
	if w <= width || h <= width {
		c.fill(outer, uniform(col), scope.CompositeOver)
		return
	}
	// The inner contour runs the other way so the non-zero rule leaves a hole.
	ix, iy, iw, ih := x+hw, y+hw, w-width, h-width
	inner := path{
		{op: opMove, pts: []scope.Point{{X: ix, Y: iy}}},
		{op: opLine, pts: []scope.Point{{X: ix, Y: iy + ih}}},
		{op: opLine, pts: []scope.Point{{X: ix + iw, Y: iy + ih}}},
		{op: opLine, pts: []scope.Point{{X: ix + iw, Y: iy}}},
		{op: opClose},
	}
	c.fill(append(outer, inner...), uniform(col), scope.CompositeOver)
}

func (c *Canvas) StrokeLine(from, to scope.Point, width float64, col scope.Color) {
	if !(width > 0) {
		return
	}
	hw := width / 2
	dx, dy := to.X-from.X, to.Y-from.Y
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		c.FillCircle(from, hw, col)
		return
	}
	theta := math.Atan2(dx/l, -dy/l)
	pts := make([]scope.Point, 0, 2*capSegments+2)
	for i := 0; i <= capSegments; i++ {
		a := theta - math.Pi*float64(i)/capSegments
		pts = append(pts, scope.Point{X: to.X + hw*math.Cos(a), Y: to.Y + hw*math.Sin(a)})
	}
	for i := 0; i <= capSegments; i++ {
		a := theta - math.Pi - math.Pi*float64(i)/capSegments
		pts = append(pts, scope.Point{X: from.X + hw*math.Cos(a), Y: from.Y + hw*math.Sin(a)})
	}
	c.fill(polygonPath(pts), uniform(col), scope.CompositeOver)
}

func (c *Canvas) FillPolygon(pts []scope.Point, g scope.LinearGradient, op scope.Composite) {
	if len(pts) < 3 || len(g.Stops) == 0 {
		return
	}
	k := c.view.Ratio
	src := newLinearGradient(g.From.X*k, g.From.Y*k, g.To.X*k, g.To.Y*k, g.Stops)
	c.fill(polygonPath(pts), src, op)
}

// fill rasterizes p, restricted to its device bounding box, and composites
// src through it.
func (c *Canvas) fill(p path, src image.Image, op scope.Composite) {
	bb := p.bounds(c.view.Ratio).Intersect(c.img.Bounds())
	if bb.Empty() {
		return
	}
	c.z.Reset(bb.Dx(), bb.Dy())
	p.trace(&c.z, c.view.Ratio, bb.Min)

	if op != scope.CompositeLighter {
		c.z.DrawOp = draw.Over
		c.z.Draw(c.img, bb, src, bb.Min)
		return
	}

	c.z.DrawOp = draw.Src
	c.z.Draw(c.mask, bb, image.Opaque, image.Point{})
	c.addThrough(bb, src)
}

// addThrough adds src, scaled by the coverage mask, into the image with
// saturation.
func (c *Canvas) addThrough(bb image.Rectangle, src image.Image) {
	ps, fast := src.(premulSource)
	for y := bb.Min.Y; y < bb.Max.Y; y++ {
		for x := bb.Min.X; x < bb.Max.X; x++ {
			m := c.mask.AlphaAt(x, y).A
			if m == 0 {
				continue
			}
			var s premul
			if fast {
				s = ps.premulAt(x, y)
			} else {
				r, g, b, a := src.At(x, y).RGBA()
				s = premul{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff, float64(a) / 0xffff}
			}
			cov := float64(m) / 255
			i := c.img.PixOffset(x, y)
			px := c.img.Pix[i : i+4 : i+4]
			px[0] = addSat(px[0], s.r*cov)
			px[1] = addSat(px[1], s.g*cov)
			px[2] = addSat(px[2], s.b*cov)
			px[3] = addSat(px[3], s.a*cov)
		}
	}
}

func addSat(dst uint8, v float64) uint8 {
	sum := float64(dst) + v*255 + 0.5
	if sum >= 255 {
		return 255
	}
	return uint8(sum)
}

func uniform(c scope.Color) *image.Uniform {
	return image.NewUniform(color.NRGBA{
		R: c.R,
		G: c.G,
		B: c.B,
		A: uint8(common.Clamp01(c.A)*255 + 0.5),
	})
}

type pathOp int

const (
	opMove pathOp = iota
	opLine
	opCube
	opClose
)

type segment struct {
	op  pathOp
	pts []scope.Point
}

// path is a list of segments in logical coordinates.
type path []segment

func rectPath(x, y, w, h float64) path {
	return polygonPath([]scope.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	})
}

func polygonPath(pts []scope.Point) path {
	p := make(path, 0, len(pts)+1)
	for i, pt := range pts {
		op := opLine
		if i == 0 {
			op = opMove
		}
		p = append(p, segment{op: op, pts: []scope.Point{pt}})
	}
	return append(p, segment{op: opClose})
}

func circlePath(c scope.Point, r float64) path {
	k := kappa * r
	cube := func(pts ...scope.Point) segment { return segment{op: opCube, pts: pts} }
	return path{
		{op: opMove, pts: []scope.Point{{X: c.X + r, Y: c.Y}}},
		cube(scope.Point{X: c.X + r, Y: c.Y + k}, scope.Point{X: c.X + k, Y: c.Y + r}, scope.Point{X: c.X, Y: c.Y + r}),
		cube(scope.Point{X: c.X - k, Y: c.Y + r}, scope.Point{X: c.X - r, Y: c.Y + k}, scope.Point{X: c.X - r, Y: c.Y}),
		cube(scope.Point{X: c.X - r, Y: c.Y - k}, scope.Point{X: c.X - k, Y: c.Y - r}, scope.Point{X: c.X, Y: c.Y - r}),
		cube(scope.Point{X: c.X + k, Y: c.Y - r}, scope.Point{X: c.X + r, Y: c.Y - k}, scope.Point{X: c.X + r, Y: c.Y}),
		{op: opClose},
	}
}

// bounds returns the device-pixel box covering every point of p.
func (p path) bounds(ratio float64) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range p {
		for _, pt := range s.pts {
			minX = math.Min(minX, pt.X*ratio)
			minY = math.Min(minY, pt.Y*ratio)
			maxX = math.Max(maxX, pt.X*ratio)
			maxY = math.Max(maxY, pt.Y*ratio)
		}
	}
	if math.IsInf(minX, 0) || math.IsNaN(minX+minY+maxX+maxY) {
		return image.Rectangle{}
	}
	// Clamp before converting so far off-screen paths cannot overflow int.
	lim := 1e7
	return image.Rect(
		int(math.Floor(common.Clamp(minX, -lim, lim))),
		int(math.Floor(common.Clamp(minY, -lim, lim))),
		int(math.Ceil(common.Clamp(maxX, -lim, lim))),
		int(math.Ceil(common.Clamp(maxY, -lim, lim))),
	)
}

// trace feeds p to z in device pixels relative to origin.
func (p path) trace(z *vector.Rasterizer, ratio float64, origin image.Point) {
	ox, oy := float64(origin.X), float64(origin.Y)
	dev := func(pt scope.Point) (float32, float32) {
		return float32(pt.X*ratio - ox), float32(pt.Y*ratio - oy)
	}
	for _, s := range p {
		switch s.op {
		case opMove:
			z.MoveTo(dev(s.pts[0]))
		case opLine:
			z.LineTo(dev(s.pts[0]))
		case opCube:
			bx, by := dev(s.pts[0])
			cx, cy := dev(s.pts[1])
			dx, dy := dev(s.pts[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case opClose:
			z.ClosePath()
		}
	}
}
