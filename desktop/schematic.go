//go:build !js

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/simukka/crtscope/raster"
	"github.com/simukka/crtscope/scope"
)

var schematicLabels = []struct {
	text string
	x, y float64
}{
	{"LATERAL VIEW (Y)", 40, 24},
	{"TOP VIEW (X)", 40, 259},
}

func rgba(c scope.Color) color.RGBA {
	a := c.A
	return color.RGBA{
		R: uint8(float64(c.R)*a + 0.5),
		G: uint8(float64(c.G)*a + 0.5),
		B: uint8(float64(c.B)*a + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// drawSchematic paints the tube diagram into dst with ebiten's vector
// strokes, scaled to its size.
func drawSchematic(dst *ebiten.Image, accent scope.RGB) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	sx, sy := float64(w)/raster.SchematicW, float64(h)/raster.SchematicH
	line := func(s raster.Stroke, c color.Color) {
		vector.StrokeLine(dst,
			float32(s.X0*sx), float32(s.Y0*sy), float32(s.X1*sx), float32(s.Y1*sy),
			float32(s.Width*sx), c, true)
	}

	dst.Fill(rgba(raster.SchematicBg))
	for _, s := range raster.SchematicStrokes {
		line(s, rgba(raster.SchematicInk))
	}
	for _, s := range raster.ScreenStrokes {
		line(s, rgba(accent.Alpha(0.5)))
	}
	for _, l := range schematicLabels {
		ebitenutil.DebugPrintAt(dst, l.text, int(l.x*sx), int(l.y*sy))
	}
}
