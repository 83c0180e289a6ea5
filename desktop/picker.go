//go:build !js

package main

import (
	"errors"
	"image/color"
	"log"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/ncruces/zenity"

	"github.com/simukka/crtscope/scope"
)

// accentHex converts a picked colour to the "#rrggbb" form the theme parses.
func accentHex(c color.Color) string {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return scope.DefaultAccent
	}
	return cc.Clamped().Hex()
}

// pickAccent shows the colour dialog and sends the choice on out, or "" when
// the dialog is dismissed. It blocks until the dialog closes, so it runs on
// its own goroutine.
func pickAccent(current scope.RGB, out chan<- string) {
	c, err := zenity.SelectColor(
		zenity.Title("Beam colour"),
		zenity.Color(color.RGBA{R: current.R, G: current.G, B: current.B, A: 255}),
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			log.Printf("colour picker: %v", err)
		}
		out <- ""
		return
	}
	out <- accentHex(c)
}
