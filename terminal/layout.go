//go:build !js

package main

import (
	"image"

	"github.com/simukka/crtscope/raster"
	"github.com/simukka/crtscope/scope"
)

// cellLayout places the face and the vista on the character grid. A cell
// shows two pixels stacked vertically, so one pixel is one column wide and
// half a row tall. Offsets are in cells; the last row holds the status line.
type cellLayout struct {
	face      scope.Viewport
	faceAt    image.Point
	vista     scope.Viewport
	vistaAt   image.Point
	statusRow int
}

func computeLayout(cols, rows int) cellLayout {
	body := max(rows-1, 1)
	side := max(min(cols/2, 2*body), 2)

	vx := side + 1
	bw := max(cols-vx, 1)
	bh := max(min(2*body, int(float64(bw)*raster.SchematicH/raster.SchematicW)), 2)

	return cellLayout{
		face:      scope.FitBox(float64(side), float64(side), 1),
		faceAt:    image.Pt(0, max(0, (body-cellRows(side))/2)),
		vista:     scope.FitBox(float64(bw), float64(bh), 1),
		vistaAt:   image.Pt(vx, max(0, (body-cellRows(bh))/2)),
		statusRow: max(rows-1, 0),
	}
}

// cellRows is the number of rows needed for h pixel rows.
func cellRows(h int) int {
	return (h + 1) / 2
}
