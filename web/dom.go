package web

import (
	"math"
	"strconv"
	"strings"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/crtscope/scope"
)

// present reports whether a JS value is neither null nor undefined.
func present(o *js.Object) bool {
	return o != nil && o != js.Undefined
}

func document() *js.Object {
	return js.Global.Get("document")
}

// byID returns the element with the given id, or nil.
func byID(id string) *js.Object {
	el := document().Call("getElementById", id)
	if !present(el) {
		return nil
	}
	return el
}

// ParseNumber parses an input value the way the page reads sliders. Empty or
// malformed strings, NaN and infinities return fallback.
func ParseNumber(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// FormatFixed formats v with a fixed number of decimals, like toFixed.
func FormatFixed(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// FormatPlain formats v with the shortest representation, like String(v).
func FormatPlain(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseRange reads min and max attribute strings. A missing or malformed
// side keeps the fallback's value.
func ParseRange(min, max string, fallback scope.Range) scope.Range {
	return scope.Range{
		Min: ParseNumber(min, fallback.Min),
		Max: ParseNumber(max, fallback.Max),
	}
}

// attr returns an element attribute, "" when unset.
func attr(el *js.Object, name string) string {
	v := el.Call("getAttribute", name)
	if !present(v) {
		return ""
	}
	return v.String()
}

func setText(el *js.Object, s string) {
	if el != nil {
		el.Set("textContent", s)
	}
}

func setDisplay(el *js.Object, visible bool) {
	if el == nil {
		return
	}
	if visible {
		el.Get("style").Set("display", "")
		return
	}
	el.Get("style").Set("display", "none")
}

func px(v float64) string {
	return FormatPlain(v) + "px"
}

// cssVar reads a custom property from the document element's computed style.
func cssVar(name string) string {
	style := js.Global.Call("getComputedStyle", document().Get("documentElement"))
	return strings.TrimSpace(style.Call("getPropertyValue", name).String())
}
