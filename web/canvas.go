package web

import (
	"math"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/crtscope/scope"
)

// Canvas is a scope.Surface drawing into an HTML canvas 2D context. Drawing
// uses logical pixels; Apply sets the device-ratio transform.
type Canvas struct {
	El   *js.Object
	Ctx  *js.Object
	view scope.Viewport
}

func NewCanvas(el *js.Object) *Canvas {
	return &Canvas{
		El:  el,
		Ctx: el.Call("getContext", "2d"),
		view: scope.Viewport{
			Width:       el.Get("width").Float(),
			Height:      el.Get("height").Float(),
			Ratio:       1,
			PixelWidth:  el.Get("width").Int(),
			PixelHeight: el.Get("height").Int(),
		},
	}
}

// Apply resizes the backing store and CSS box and resets the transform.
// Resizing a canvas clears it.
func (c *Canvas) Apply(v scope.Viewport) {
	c.view = v
	c.El.Set("width", v.PixelWidth)
	c.El.Set("height", v.PixelHeight)
	style := c.El.Get("style")
	style.Set("width", px(v.Width))
	style.Set("height", px(v.Height))
	c.Ctx.Call("setTransform", v.Ratio, 0, 0, v.Ratio, 0, 0)
}

func (c *Canvas) Viewport() scope.Viewport { return c.view }

func (c *Canvas) Size() (float64, float64) {
	return c.view.Width, c.view.Height
}

func (c *Canvas) Clear() {
	c.Ctx.Call("save")
	c.Ctx.Call("setTransform", 1, 0, 0, 1, 0, 0)
	c.Ctx.Call("clearRect", 0, 0, c.view.PixelWidth, c.view.PixelHeight)
	c.Ctx.Call("restore")
}

func (c *Canvas) FillRect(x, y, w, h float64, col scope.Color) {
	c.Ctx.Set("fillStyle", col.CSS())
	c.Ctx.Call("fillRect", x, y, w, h)
}

func (c *Canvas) FillCircle(center scope.Point, r float64, col scope.Color) {
	if !(r > 0) {
		return
	}
	c.Ctx.Set("fillStyle", col.CSS())
	c.circle(center, r)
	c.Ctx.Call("fill")
}

func (c *Canvas) FillRadial(center scope.Point, r float64, stops []scope.ColorStop) {
	if !(r > 0) {
		return
	}
	g := c.Ctx.Call("createRadialGradient", center.X, center.Y, 0, center.X, center.Y, r)
	addStops(g, stops)
	c.Ctx.Set("fillStyle", g)
	c.circle(center, r)
	c.Ctx.Call("fill")
}

func (c *Canvas) StrokeRect(x, y, w, h, width float64, col scope.Color) {
	c.Ctx.Set("lineWidth", width)
	c.Ctx.Set("strokeStyle", col.CSS())
	c.Ctx.Call("strokeRect", x, y, w, h)
}

func (c *Canvas) StrokeLine(from, to scope.Point, width float64, col scope.Color) {
	c.Ctx.Set("lineWidth", width)
	c.Ctx.Set("lineCap", "round")
	c.Ctx.Set("strokeStyle", col.CSS())
	c.Ctx.Call("beginPath")
	c.Ctx.Call("moveTo", from.X, from.Y)
	c.Ctx.Call("lineTo", to.X, to.Y)
	c.Ctx.Call("stroke")
}

func (c *Canvas) FillPolygon(pts []scope.Point, g scope.LinearGradient, op scope.Composite) {
	if len(pts) < 3 {
		return
	}
	c.Ctx.Call("save")
	if op == scope.CompositeLighter {
		c.Ctx.Set("globalCompositeOperation", "lighter")
	}
	grad := c.Ctx.Call("createLinearGradient", g.From.X, g.From.Y, g.To.X, g.To.Y)
	addStops(grad, g.Stops)
	c.Ctx.Set("fillStyle", grad)
	c.Ctx.Call("beginPath")
	c.Ctx.Call("moveTo", pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.Ctx.Call("lineTo", p.X, p.Y)
	}
	c.Ctx.Call("closePath")
	c.Ctx.Call("fill")
	c.Ctx.Call("restore")
}

func (c *Canvas) circle(center scope.Point, r float64) {
	c.Ctx.Call("beginPath")
	c.Ctx.Call("arc", center.X, center.Y, r, 0, 2*math.Pi)
}

func addStops(g *js.Object, stops []scope.ColorStop) {
	for _, s := range stops {
		g.Call("addColorStop", s.Offset, s.Color.CSS())
	}
}
