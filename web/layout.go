package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/crtscope/scope"
)

// Layout keeps both canvases matched to their boxes and the device pixel
// ratio.
type Layout struct {
	wrap    *js.Object
	image   *js.Object
	face    *Canvas
	overlay *Canvas

	// OnResize runs after the canvases have been resized.
	OnResize func()
}

func NewLayout(wrap, image *js.Object, face, overlay *Canvas) *Layout {
	return &Layout{wrap: wrap, image: image, face: face, overlay: overlay}
}

func devicePixelRatio() float64 {
	return scope.DeviceRatio(js.Global.Get("devicePixelRatio").Float())
}

// Resize fits the face into its container and lays the overlay over the
// vista image.
func (l *Layout) Resize() {
	ratio := devicePixelRatio()

	w, h := 0.0, 0.0
	if l.wrap != nil {
		rect := l.wrap.Call("getBoundingClientRect")
		w, h = rect.Get("width").Float(), rect.Get("height").Float()
	}
	l.face.Apply(scope.FitSquare(w, h, ratio))

	if l.overlay != nil && l.image != nil {
		l.overlay.Apply(scope.FitBox(l.image.Get("clientWidth").Float(), l.image.Get("clientHeight").Float(), ratio))
		style := l.overlay.El.Get("style")
		style.Set("left", px(l.image.Get("offsetLeft").Float()))
		style.Set("top", px(l.image.Get("offsetTop").Float()))
	}

	Debug("layout:", l.face.Viewport().Width, "ratio", ratio)
	if l.OnResize != nil {
		l.OnResize()
	}
}

// Watch re-runs Resize on window resize, image load and device pixel ratio
// changes.
func (l *Layout) Watch() {
	js.Global.Call("addEventListener", "resize", func(*js.Object) { l.Resize() })
	if l.image != nil {
		l.image.Call("addEventListener", "load", func(*js.Object) { l.Resize() })
	}
	l.watchRatio()
}

// watchRatio registers a one-shot media query for the current ratio and
// registers a new one each time it fires.
func (l *Layout) watchRatio() {
	if !present(js.Global.Get("matchMedia")) {
		return
	}
	q := js.Global.Call("matchMedia", "(resolution: "+FormatPlain(devicePixelRatio())+"dppx)")
	q.Call("addEventListener", "change", func(*js.Object) {
		l.Resize()
		l.watchRatio()
	}, map[string]interface{}{"once": true})
}
