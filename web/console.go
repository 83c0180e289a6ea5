package web

import (
	"log"

	"github.com/gopherjs/gopherjs/js"
)

var EnableDebug = false

// console returns the browser console, or nil when not running in a page.
func console() *js.Object {
	if js.Global == nil {
		return nil
	}
	c := js.Global.Get("console")
	if !present(c) {
		return nil
	}
	return c
}

func logTo(method string, args ...interface{}) {
	if c := console(); c != nil {
		c.Call(method, args...)
		return
	}
	log.Println(append([]interface{}{method + ":"}, args...)...)
}

// Debug logs a message to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		logTo("log", args...)
	}
}

// DebugWarn logs a warning to the browser console if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		logTo("warn", args...)
	}
}

// DebugError logs an error to the browser console. Errors are always shown.
func DebugError(args ...interface{}) {
	logTo("error", args...)
}
