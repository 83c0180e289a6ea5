package web

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/crtscope/scope"
)

// StatsOverlay displays frame and signal statistics. It is drawn on the
// vista overlay canvas, which is cleared every frame.
type StatsOverlay struct {
	Visible bool

	Stats  *scope.FrameStats
	Config *scope.Config
	ctx    *js.Object

	// Position and styling
	PanelX      int
	PanelY      int
	LineHeight  int
	PanelWidth  int
	PanelHeight int
}

func NewStatsOverlay(ctx *js.Object, stats *scope.FrameStats, cfg *scope.Config) *StatsOverlay {
	return &StatsOverlay{
		Stats:       stats,
		Config:      cfg,
		ctx:         ctx,
		PanelX:      8,
		PanelY:      8,
		LineHeight:  16,
		PanelWidth:  190,
		PanelHeight: 150,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// StatLines returns the label/value pairs shown for a sample.
func StatLines(stats *scope.FrameStats, cfg *scope.Config, smp scope.Sample) [][2]string {
	return [][2]string{
		{"FPS", strconv.FormatFloat(stats.FPS, 'f', 1, 64)},
		{"Frames", strconv.FormatUint(stats.Frames, 10)},
		{"Mode", smp.Mode.String()},
		{"Vx", strconv.FormatFloat(smp.X, 'f', 2, 64)},
		{"Vy", strconv.FormatFloat(smp.Y, 'f', 2, 64)},
		{"t", strconv.FormatFloat(smp.Elapsed.Seconds(), 'f', 2, 64) + "s"},
		{"Scale", strconv.FormatFloat(cfg.ScaleAmplitude(), 'f', 0, 64) + " V"},
	}
}

// RenderFrame draws the overlay panel.
func (s *StatsOverlay) RenderFrame(smp scope.Sample) {
	if !s.Visible {
		return
	}
	ctx := s.ctx

	ctx.Set("fillStyle", "rgba(0, 0, 0, 0.75)")
	ctx.Call("fillRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	ctx.Set("strokeStyle", "#00aaff")
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	ctx.Set("fillStyle", "#00aaff")
	ctx.Set("font", "bold 12px monospace")
	ctx.Set("textAlign", "left")
	ctx.Call("fillText", "SCOPE STATS [F10]", s.PanelX+10, s.PanelY+16)

	ctx.Set("font", "11px monospace")
	y := s.PanelY + 34
	for _, line := range StatLines(s.Stats, s.Config, smp) {
		s.drawStatLine(line[0], line[1], "#00ff00", y)
		y += s.LineHeight
	}
}

// drawStatLine draws a single stat line with label and value
func (s *StatsOverlay) drawStatLine(label, value, valueColor string, y int) {
	s.ctx.Set("fillStyle", "#cccccc")
	s.ctx.Call("fillText", label+":", s.PanelX+10, y)

	s.ctx.Set("fillStyle", valueColor)
	s.ctx.Set("textAlign", "right")
	s.ctx.Call("fillText", value, s.PanelX+s.PanelWidth-10, y)
	s.ctx.Set("textAlign", "left")
}
