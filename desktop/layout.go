//go:build !js

package main

import (
	"image"
	"math"

	"github.com/simukka/crtscope/raster"
	"github.com/simukka/crtscope/scope"
)

const margin = 12.0

// windowLayout places the face and the vista panel in a window of the given
// logical size. Offsets are device pixels.
type windowLayout struct {
	ratio    float64
	face     scope.Viewport
	faceAt   image.Point
	vista    scope.Viewport
	vistaAt  image.Point
	statusAt image.Point
}

func computeLayout(w, h, ratio float64) windowLayout {
	ratio = scope.DeviceRatio(ratio)
	side := math.Min(w/2, h-2*margin)
	face := scope.FitSquare(side, side, ratio)

	vx := margin + face.Width + margin
	bw := math.Max(1, w-vx-margin)
	bh := math.Max(1, math.Min(h-2*margin, bw*raster.SchematicH/raster.SchematicW))
	vista := scope.FitBox(bw, bh, ratio)

	dev := func(x, y float64) image.Point {
		return image.Pt(int(math.Round(x*ratio)), int(math.Round(y*ratio)))
	}
	return windowLayout{
		ratio:    ratio,
		face:     face,
		faceAt:   dev(margin, (h-face.Height)/2),
		vista:    vista,
		vistaAt:  dev(vx, (h-bh)/2),
		statusAt: dev(vx, margin),
	}
}
