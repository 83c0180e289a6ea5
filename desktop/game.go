//go:build !js

package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/simukka/crtscope/raster"
	"github.com/simukka/crtscope/scope"
)

// game is the ebiten frontend: both renderers draw into software canvases
// that are uploaded to textures every frame.
type game struct {
	signal  *scope.Signal
	theme   *scope.Theme
	loop    *scope.Loop
	display *scope.Display
	now     func() time.Duration

	face    *raster.Canvas
	overlay *raster.Canvas

	faceImg     *ebiten.Image
	overlayImg  *ebiten.Image
	backdrop    *ebiten.Image
	backdropFor scope.RGB

	layout      windowLayout
	outside     [2]int
	ratio       float64
	showStats   bool
	pickerOpen  bool
	accentPicks chan string
}

func newGame(cfg *scope.Config, accent string) *game {
	now := scope.MonotonicNow()
	g := &game{
		signal:      scope.NewSignal(cfg, scope.NewClock(now)),
		theme:       scope.NewTheme(accent),
		now:         now,
		accentPicks: make(chan string, 1),
	}
	g.face = raster.New(scope.FitSquare(scope.MinCanvasSize, scope.MinCanvasSize, 1))
	g.overlay = raster.New(scope.FitBox(1, 1, 1))
	g.display = scope.NewDisplay(g.face, cfg, g.theme)
	g.loop = scope.NewLoop(g.signal, g.display, scope.NewVista(g.overlay, cfg, g.theme))
	return g
}

// resize applies a new window layout. Canvas contents are lost.
func (g *game) resize(l windowLayout) {
	g.layout = l
	g.face.Resize(l.face)
	g.overlay.Resize(l.vista)
	g.display.Clear()

	for _, img := range []*ebiten.Image{g.faceImg, g.overlayImg, g.backdrop} {
		if img != nil {
			img.Deallocate()
		}
	}
	g.faceImg = ebiten.NewImage(l.face.PixelWidth, l.face.PixelHeight)
	g.overlayImg = ebiten.NewImage(l.vista.PixelWidth, l.vista.PixelHeight)
	g.backdrop = nil
}

func (g *game) Update() error {
	if justPressed(ebiten.KeyEscape, ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyTab) {
		g.showStats = !g.showStats
	}
	if justPressed(ebiten.KeyC) && !g.pickerOpen {
		g.pickerOpen = true
		go pickAccent(g.theme.Accent, g.accentPicks)
	}

	select {
	case hex := <-g.accentPicks:
		if hex != "" {
			g.theme.Accent = scope.ParseAccent(hex)
		}
		g.pickerOpen = false
	default:
	}

	for _, cmd := range pressedCommands(inpututil.KeyPressDuration) {
		g.signal.Apply(cmd)
	}

	want := computeLayout(float64(g.outside[0]), float64(g.outside[1]), g.ratio)
	if want.face != g.layout.face || want.vista != g.layout.vista || g.faceImg == nil {
		g.resize(want)
	}
	g.layout = want

	g.loop.Tick(g.now())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.faceImg == nil {
		return
	}
	if g.backdrop == nil || g.backdropFor != g.theme.Accent {
		if g.backdrop == nil {
			g.backdrop = ebiten.NewImage(g.layout.vista.PixelWidth, g.layout.vista.PixelHeight)
		}
		drawSchematic(g.backdrop, g.theme.Accent)
		g.backdropFor = g.theme.Accent
	}

	g.faceImg.WritePixels(g.face.Image().Pix)
	g.overlayImg.WritePixels(g.overlay.Image().Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.layout.faceAt.X), float64(g.layout.faceAt.Y))
	screen.DrawImage(g.faceImg, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.layout.vistaAt.X), float64(g.layout.vistaAt.Y))
	screen.DrawImage(g.backdrop, op)
	screen.DrawImage(g.overlayImg, op)

	if g.showStats {
		ebitenutil.DebugPrintAt(screen, g.status(), g.layout.statusAt.X, g.layout.statusAt.Y)
	}
}

// status is the stats line shown with Tab.
func (g *game) status() string {
	cfg := g.signal.Config()
	s := g.loop.Last()
	return fmt.Sprintf("%s  Vx %.2f  Vy %.2f  fx %.2f  fy %.2f  phase %.2f  VM %.0f  Vacc %.0f  lat %.2f  %.1f FPS",
		s.Mode, s.X, s.Y, cfg.FreqX, cfg.FreqY, cfg.Phase, cfg.Amplitude, cfg.Vacc, cfg.Latency, g.loop.Stats.FPS)
}

// Layout records the window size and returns the device-pixel screen size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outside = [2]int{outsideWidth, outsideHeight}
	g.ratio = ebiten.Monitor().DeviceScaleFactor()
	r := scope.DeviceRatio(g.ratio)
	return int(float64(outsideWidth) * r), int(float64(outsideHeight) * r)
}
