package scope

import (
	"math"

	"github.com/simukka/crtscope/common"
)

// Beam spot constants.
const (
	MinOverlayAlpha = 0.01
	BaseBrightness  = 0.2
	MinSpotRadius   = 1.0
	BaseSpotRadius  = 2.0
	SpotRadiusRange = 6.0
	GlowScale       = 6.0

	glowOuterAlpha = 0.45
	glowMidAlpha   = 0.25
	glowMidOffset  = 0.3
	coreAlpha      = 0.9
)

// OverlayAlpha is the alpha of the black fill laid over the previous frame.
// Low latency fades old spots almost at once; latency 1 still fades at 0.01.
func OverlayAlpha(latency float64) float64 {
	return math.Max(MinOverlayAlpha, 1-common.Clamp01(common.Finite(latency, 0)))
}

// BeamPosition maps deflection voltages to canvas coordinates. Positive Y
// deflects up.
func BeamPosition(center Point, ppv, vx, vy float64) Point {
	return Point{
		X: center.X + vx*ppv,
		Y: center.Y - vy*ppv,
	}
}

// Spot is the beam spot drawn for one frame.
type Spot struct {
	Center     Point
	Radius     float64
	Brightness float64
}

// SpotLevels derives brightness and core radius from the accelerating voltage's
// position within its range.
func SpotLevels(vacc float64, r Range) (brightness, radius float64) {
	vnorm := r.Norm(vacc)
	brightness = BaseBrightness + (1-BaseBrightness)*vnorm
	radius = math.Max(MinSpotRadius, BaseSpotRadius+SpotRadiusRange*vnorm)
	return brightness, radius
}

// GlowStops is the radial gradient around the spot, fading to transparent at
// GlowScale times the core radius.
func GlowStops(accent RGB, brightness float64) []ColorStop {
	return []ColorStop{
		{Offset: 0, Color: accent.Alpha(glowOuterAlpha * brightness)},
		{Offset: glowMidOffset, Color: accent.Alpha(glowMidAlpha * brightness)},
		{Offset: 1, Color: Transparent},
	}
}

// Display renders the oscilloscope face: a decaying phosphor with the beam
// spot drawn on top each frame.
type Display struct {
	surface Surface
	cfg     *Config
	theme   *Theme
}

func NewDisplay(surface Surface, cfg *Config, theme *Theme) *Display {
	return &Display{surface: surface, cfg: cfg, theme: theme}
}

// Clear paints the whole face with the background colour.
func (d *Display) Clear() {
	w, h := d.surface.Size()
	d.surface.FillRect(0, 0, w, h, d.theme.Background.Alpha(1))
}

// PixelsPerVolt is the current deflection scale of the face.
func (d *Display) PixelsPerVolt() float64 {
	w, h := d.surface.Size()
	return PixelsPerVolt(w, h, d.cfg.ScaleAmplitude())
}

// Spot computes where and how the beam lands for a sample.
func (d *Display) Spot(s Sample) Spot {
	w, h := d.surface.Size()
	center := Point{X: w / 2, Y: h / 2}
	brightness, radius := SpotLevels(d.cfg.Vacc, d.cfg.VaccRange)
	return Spot{
		Center:     BeamPosition(center, d.PixelsPerVolt(), s.X, s.Y),
		Radius:     radius,
		Brightness: brightness,
	}
}

// RenderFrame fades the previous frame and draws the spot for s.
func (d *Display) RenderFrame(s Sample) {
	w, h := d.surface.Size()
	d.surface.FillRect(0, 0, w, h, d.theme.Background.Alpha(OverlayAlpha(d.cfg.Latency)))

	spot := d.Spot(s)
	d.surface.FillRadial(spot.Center, spot.Radius*GlowScale, GlowStops(d.theme.Accent, spot.Brightness))
	d.surface.FillCircle(spot.Center, spot.Radius, d.theme.Accent.Alpha(coreAlpha*spot.Brightness))
}
