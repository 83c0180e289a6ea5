// Package web runs the oscilloscope in a browser page: canvas surfaces,
// slider bindings and the requestAnimationFrame loop.
package web

import (
	"errors"
	"fmt"

	"github.com/simukka/crtscope/scope"
)

// ErrNoCanvas is returned when the page has no #crt canvas.
var ErrNoCanvas = errors.New("canvas element not found")

// App holds the browser frontend state.
type App struct {
	Signal   *scope.Signal
	Theme    *scope.Theme
	Face     *Canvas
	Overlay  *Canvas
	Display  *scope.Display
	Vista    *scope.Vista
	Loop     *scope.Loop
	Animator *scope.Animator
	Controls *Controls
	Layout   *Layout
	Stats    *StatsOverlay

	Paused bool
}

// NewApp binds to the page. Only the #crt canvas is required; without the
// vista overlay the schematic beams are not drawn.
func NewApp() (*App, error) {
	faceEl := byID("crt")
	if faceEl == nil {
		return nil, fmt.Errorf("#crt: %w", ErrNoCanvas)
	}

	cfg := scope.DefaultConfig()
	sig := scope.NewSignal(cfg, scope.NewClock(Now))
	a := &App{
		Signal: sig,
		Theme:  scope.NewTheme(cssVar("--accent")),
		Face:   NewCanvas(faceEl),
	}
	a.Display = scope.NewDisplay(a.Face, cfg, a.Theme)
	a.Loop = scope.NewLoop(sig, a.Display)

	if el := byID("vistas-overlay"); el != nil {
		a.Overlay = NewCanvas(el)
		a.Vista = scope.NewVista(a.Overlay, cfg, a.Theme)
		a.Stats = NewStatsOverlay(a.Overlay.Ctx, a.Loop.Stats, cfg)
		a.Loop.Add(a.Vista)
		a.Loop.Add(a.Stats)
	} else {
		DebugWarn("vista overlay not found")
	}

	a.Animator = scope.NewAnimator(FrameClock{}, a.Loop)
	a.Animator.OnError = func(err error) { DebugError(err.Error()) }

	a.Controls = NewControls(sig)
	a.Layout = NewLayout(byID("crt-wrap"), byID("vistas"), a.Face, a.Overlay)
	a.Layout.OnResize = a.Display.Clear
	return a, nil
}

// Start binds the controls, sizes the canvases and starts the loop.
func (a *App) Start() {
	a.Controls.Bind()
	a.Layout.Resize()
	a.Layout.Watch()
	a.SetupInputHandlers()
	a.Animator.Start()
	Debug("started in", a.Signal.Config().Mode.String(), "mode")
}

// Run creates and starts the browser frontend.
func Run() error {
	a, err := NewApp()
	if err != nil {
		return err
	}
	a.Start()
	return nil
}
