package raster

import "github.com/simukka/crtscope/scope"

// The tube schematic behind the vista beams, in a SchematicW x SchematicH
// coordinate space matching the page's vistas.svg. The deflection plates
// bracket scope.LateralView and scope.TopView.
const (
	SchematicW = 1000.0
	SchematicH = 500.0

	// topViewOffset is how far the top view sits below the lateral view.
	topViewOffset = 227.0
)

// Stroke is one schematic line segment.
type Stroke struct {
	X0, Y0, X1, Y1 float64
	Width          float64
}

func tubeOutline(dy float64) []Stroke {
	return []Stroke{
		// gun
		{40, 115 + dy, 200, 115 + dy, 2},
		{200, 115 + dy, 240, 100 + dy, 2},
		{40, 160 + dy, 200, 160 + dy, 2},
		{200, 160 + dy, 240, 175 + dy, 2},
		// deflection plates
		{250, 56 + dy, 330, 56 + dy, 5},
		{250, 219 + dy, 330, 219 + dy, 5},
		// funnel
		{340, 100 + dy, 900, 30 + dy, 2},
		{340, 175 + dy, 900, 245 + dy, 2},
	}
}

var (
	// SchematicStrokes is the lateral view followed by the top view.
	SchematicStrokes = append(tubeOutline(0), tubeOutline(topViewOffset)...)

	// ScreenStrokes are the phosphor screens, drawn in the accent colour.
	ScreenStrokes = []Stroke{
		{900, 30, 900, 245, 6},
		{900, 30 + topViewOffset, 900, 245 + topViewOffset, 6},
	}

	SchematicInk = scope.Color{R: 0x6a, G: 0x7a, B: 0x6a, A: 1}
	SchematicBg  = scope.Color{R: 5, G: 8, B: 5, A: 1}
)

// DrawSchematic paints the tube diagram scaled to the surface.
func DrawSchematic(s scope.Surface, accent scope.RGB) {
	w, h := s.Size()
	sx, sy := w/SchematicW, h/SchematicH
	line := func(st Stroke, c scope.Color) {
		s.StrokeLine(
			scope.Point{X: st.X0 * sx, Y: st.Y0 * sy},
			scope.Point{X: st.X1 * sx, Y: st.Y1 * sy},
			st.Width*sx, c)
	}

	s.FillRect(0, 0, w, h, SchematicBg)
	for _, st := range SchematicStrokes {
		line(st, SchematicInk)
	}
	for _, st := range ScreenStrokes {
		line(st, accent.Alpha(0.5))
	}
}
