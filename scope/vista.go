package scope

import (
	"math"

	"github.com/simukka/crtscope/common"
)

// Beam angle mapping for the schematic views, in degrees. Both views use the
// same deflection range.
const (
	LateralAngleBaseDeg  = 0.0
	LateralAngleRangeDeg = 40.0
	TopAngleBaseDeg      = 0.0
	TopAngleRangeDeg     = 40.0
)

const (
	beamLengthFactor = 0.9
	minInset         = 8.0
	insetFactor      = 0.04
	minBeamWidth     = 2.0
	maxBeamWidth     = 6.0
	beamWidthFactor  = 0.02
	beamAlpha        = 0.95
)

// Glow band profile along the beam line: dark at both ends, brightest at
// the midpoint.
var bandProfile = []struct{ offset, alpha float64 }{
	{0, 0},
	{0.45, 0.14},
	{0.5, 0.22},
	{0.55, 0.14},
	{1, 0},
}

// BeamLine is the deflected beam drawn inside one schematic viewport.
type BeamLine struct {
	Start, End Point
	Width      float64
}

// Normal returns the unit perpendicular of the segment, (0, 1) when the
// segment has no length.
func (b BeamLine) Normal() Point {
	dx, dy := b.End.X-b.Start.X, b.End.Y-b.Start.Y
	l := math.Hypot(dx, dy)
	if !(l > 0) {
		return Point{X: 0, Y: 1}
	}
	return Point{X: -dy / l, Y: dx / l}
}

// Inset is the margin kept between a beam line and its viewport border.
func Inset(r Rect) float64 {
	inset := math.Max(minInset, r.W*insetFactor)
	return math.Max(0, math.Min(inset, math.Min(r.W, r.H)/2))
}

// BeamWidth is the stroke width of the beam line for a viewport.
func BeamWidth(r Rect) float64 {
	return common.Clamp(math.Min(r.W, r.H)*beamWidthFactor, minBeamWidth, maxBeamWidth)
}

// VistaAngle maps a normalised voltage to a beam angle in radians. The angle
// is negated so a positive voltage tilts the beam toward screen-up.
func VistaAngle(norm, baseDeg, rangeDeg float64) float64 {
	norm = common.Clamp(common.Finite(norm, 0), -1, 1)
	return -common.DegToRad(baseDeg + norm*rangeDeg)
}

// BeamLineIn lays out a beam inside r: it starts at the left inset on the
// vertical centre, runs along angle, is displaced perpendicular to the angle
// by offset pixels, and is clamped so it never crosses the inset border.
func BeamLineIn(r Rect, offset, angle float64) BeamLine {
	inset := Inset(r)
	start := Point{X: r.X + inset, Y: r.Y + r.H/2}
	length := math.Max(r.W, r.H) * beamLengthFactor

	offset = common.Finite(offset, 0)
	angle = common.Finite(angle, 0)
	dx, dy := math.Cos(angle)*length, math.Sin(angle)*length
	px, py := -math.Sin(angle), math.Cos(angle)

	end := Point{
		X: common.Clamp(start.X+dx+px*offset, r.X+inset, r.X+r.W-inset),
		Y: common.Clamp(start.Y+dy+py*offset, r.Y+inset, r.Y+r.H-inset),
	}
	return BeamLine{Start: start, End: end, Width: BeamWidth(r)}
}

// Vista renders the lateral and top schematic views onto an overlay surface.
type Vista struct {
	surface Surface
	cfg     *Config
	theme   *Theme

	Lateral FracRect
	Top     FracRect
}

func NewVista(surface Surface, cfg *Config, theme *Theme) *Vista {
	return &Vista{
		surface: surface,
		cfg:     cfg,
		theme:   theme,
		Lateral: LateralView,
		Top:     TopView,
	}
}

// Geometry returns both viewports in absolute pixels for the current
// surface size.
func (v *Vista) Geometry() (lateral, top Rect) {
	w, h := v.surface.Size()
	return v.Lateral.In(w, h), v.Top.In(w, h)
}

// Beams computes both beam lines for a sample. The lateral view follows the
// Y deflection and the top view the X deflection.
func (v *Vista) Beams(s Sample) (lateral, top BeamLine) {
	latRect, topRect := v.Geometry()
	amp := v.cfg.ScaleAmplitude()

	latPPV := PixelsPerVolt(latRect.W, latRect.H, amp)
	topPPV := PixelsPerVolt(topRect.W, topRect.H, amp)

	lateral = BeamLineIn(latRect, -s.Y*latPPV, VistaAngle(s.NormY, LateralAngleBaseDeg, LateralAngleRangeDeg))
	top = BeamLineIn(topRect, -s.X*topPPV, VistaAngle(s.NormX, TopAngleBaseDeg, TopAngleRangeDeg))
	return lateral, top
}

// RenderFrame clears the overlay and draws both views for s.
func (v *Vista) RenderFrame(s Sample) {
	v.surface.Clear()

	latRect, topRect := v.Geometry()
	v.surface.StrokeRect(latRect.X, latRect.Y, latRect.W, latRect.H, v.theme.FrameWidth, v.theme.FrameColor)
	v.surface.StrokeRect(topRect.X, topRect.Y, topRect.W, topRect.H, v.theme.FrameWidth, v.theme.FrameColor)

	lateral, top := v.Beams(s)
	v.drawBeam(lateral)
	v.drawBeam(top)
}

func (v *Vista) drawBeam(b BeamLine) {
	v.surface.StrokeLine(b.Start, b.End, b.Width, v.theme.Accent.Alpha(beamAlpha))

	// Wide faint band under a narrow bright one so the glow also fades
	// toward the edges of the line.
	v.surface.FillPolygon(bandQuad(b, b.Width*2), bandGradient(b, v.theme.Accent, 0.5), CompositeLighter)
	v.surface.FillPolygon(bandQuad(b, b.Width), bandGradient(b, v.theme.Accent, 1), CompositeLighter)
}

func bandQuad(b BeamLine, half float64) []Point {
	n := b.Normal()
	return []Point{
		{X: b.Start.X - n.X*half, Y: b.Start.Y - n.Y*half},
		{X: b.End.X - n.X*half, Y: b.End.Y - n.Y*half},
		{X: b.End.X + n.X*half, Y: b.End.Y + n.Y*half},
		{X: b.Start.X + n.X*half, Y: b.Start.Y + n.Y*half},
	}
}

func bandGradient(b BeamLine, accent RGB, gain float64) LinearGradient {
	stops := make([]ColorStop, len(bandProfile))
	for i, p := range bandProfile {
		c := Transparent
		if p.alpha > 0 {
			c = accent.Alpha(p.alpha * gain)
		}
		stops[i] = ColorStop{Offset: p.offset, Color: c}
	}
	return LinearGradient{From: b.Start, To: b.End, Stops: stops}
}
