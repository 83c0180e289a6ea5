package web

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
)

// FrameClock schedules frames with requestAnimationFrame. Its handles are
// the browser's request IDs.
type FrameClock struct{}

func (FrameClock) RequestFrame(fn func(now time.Duration)) int {
	return js.Global.Call("requestAnimationFrame", func(ts float64) {
		fn(Millis(ts))
	}).Int()
}

func (FrameClock) CancelFrame(handle int) {
	js.Global.Call("cancelAnimationFrame", handle)
}

// Now reads performance.now(), the clock rAF timestamps are measured on.
func Now() time.Duration {
	return Millis(js.Global.Get("performance").Call("now").Float())
}

// Millis converts a DOMHighResTimeStamp to a Duration.
func Millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
