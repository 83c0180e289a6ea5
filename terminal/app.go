//go:build !js

package main

import (
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/simukka/crtscope/raster"
	"github.com/simukka/crtscope/scope"
)

const helpLine = "M mode  arrows adjust  [ ] latency  - = Vacc  , . VM  1-8 presets  Tab stats  Q quit"

// app draws both views into software canvases and blits them to the
// terminal as half blocks.
type app struct {
	screen  tcell.Screen
	signal  *scope.Signal
	theme   *scope.Theme
	loop    *scope.Loop
	display *scope.Display
	now     func() time.Duration

	face     *raster.Canvas
	overlay  *raster.Canvas
	backdrop *raster.Canvas
	composed *image.RGBA

	backdropFor   scope.RGB
	backdropFresh bool

	layout    cellLayout
	showStats bool
}

func newApp(screen tcell.Screen, cfg *scope.Config, accent string) *app {
	now := scope.MonotonicNow()
	a := &app{
		screen: screen,
		signal: scope.NewSignal(cfg, scope.NewClock(now)),
		theme:  scope.NewTheme(accent),
		now:    now,
	}
	a.face = raster.New(scope.FitBox(2, 2, 1))
	a.overlay = raster.New(scope.FitBox(1, 1, 1))
	a.backdrop = raster.New(scope.FitBox(1, 1, 1))
	a.display = scope.NewDisplay(a.face, cfg, a.theme)
	a.loop = scope.NewLoop(a.signal, a.display, scope.NewVista(a.overlay, cfg, a.theme))
	a.resize(screen.Size())
	return a
}

// resize lays the views out for a cols x rows terminal. Canvas contents
// are lost.
func (a *app) resize(cols, rows int) {
	a.layout = computeLayout(cols, rows)
	a.face.Resize(a.layout.face)
	a.overlay.Resize(a.layout.vista)
	a.backdrop.Resize(a.layout.vista)
	a.composed = image.NewRGBA(image.Rect(0, 0, a.layout.vista.PixelWidth, a.layout.vista.PixelHeight))
	a.backdropFresh = false
	a.display.Clear()
	a.screen.Clear()
}

// handle processes one terminal event and reports whether to keep running.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if ev.Key() == tcell.KeyTab {
			a.showStats = !a.showStats
			return true
		}
		if cmd := commandFor(ev); cmd != scope.CmdNone {
			a.signal.Apply(cmd)
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize(ev.Size())
	}
	return true
}

// draw ticks the loop once and repaints the screen.
func (a *app) draw() {
	a.loop.Tick(a.now())

	if !a.backdropFresh || a.backdropFor != a.theme.Accent {
		raster.DrawSchematic(a.backdrop, a.theme.Accent)
		a.backdropFor = a.theme.Accent
		a.backdropFresh = true
	}
	compose(a.composed, a.backdrop.Image(), a.overlay.Image())

	blit(a.screen, a.face.Image(), a.layout.faceAt)
	blit(a.screen, a.composed, a.layout.vistaAt)

	line, style := helpLine, tcell.StyleDefault.Foreground(tcell.ColorGray)
	if a.showStats {
		accent := a.theme.Accent
		line = a.status()
		style = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(accent.R), int32(accent.G), int32(accent.B)))
	}
	a.drawText(a.layout.statusRow, line, style)
	a.screen.Show()
}

// drawText writes a full row, padding with blanks.
func (a *app) drawText(row int, text string, style tcell.Style) {
	cols, _ := a.screen.Size()
	runes := []rune(text)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		a.screen.SetContent(x, row, r, nil, style)
	}
}

func (a *app) status() string {
	cfg := a.signal.Config()
	s := a.loop.Last()
	return fmt.Sprintf("%s  Vx %.2f  Vy %.2f  fx %.2f  fy %.2f  phase %.2f  VM %.0f  Vacc %.0f  lat %.2f  %.1f FPS",
		s.Mode, s.X, s.Y, cfg.FreqX, cfg.FreqY, cfg.Phase, cfg.Amplitude, cfg.Vacc, cfg.Latency, a.loop.Stats.FPS)
}

// run polls terminal events on a goroutine and redraws on every tick until
// a quit key arrives.
func (a *app) run(fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.draw()
		}
	}
}
