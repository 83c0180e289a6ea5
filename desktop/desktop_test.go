//go:build !js

package main

import (
	"image/color"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/simukka/crtscope/scope"
)

func TestFires_RepeatTiming(t *testing.T) {
	tests := []struct {
		d        int
		repeat   bool
		expected bool
	}{
		{0, true, false},
		{1, false, true},
		{2, false, false},
		{repeatDelay, false, false},
		{repeatDelay - 1, true, false},
		{repeatDelay, true, true},
		{repeatDelay + 1, true, false},
		{repeatDelay + repeatInterval, true, true},
	}
	for _, tt := range tests {
		if got := fires(tt.d, tt.repeat); got != tt.expected {
			t.Errorf("Expected fires(%d, %v) = %v, got %v", tt.d, tt.repeat, tt.expected, got)
		}
	}
}

func TestPressedCommands(t *testing.T) {
	held := map[ebiten.Key]int{
		ebiten.KeyArrowRight: 1,
		ebiten.KeyM:          repeatDelay,
		ebiten.Key3:          1,
		ebiten.KeyEqual:      repeatDelay,
	}
	cmds := pressedCommands(func(k ebiten.Key) int { return held[k] })

	expected := []scope.Command{scope.CmdRight, scope.CmdVaccUp, scope.CmdRatioPreset3}
	if len(cmds) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, cmds)
	}
	for i := range expected {
		if cmds[i] != expected[i] {
			t.Errorf("Expected command %d to be %d, got %d", i, expected[i], cmds[i])
		}
	}
}

func TestKeyBindings_Unique(t *testing.T) {
	seen := map[ebiten.Key]bool{}
	for _, b := range keyBindings {
		if seen[b.key] {
			t.Errorf("Key %v bound twice", b.key)
		}
		seen[b.key] = true
		if b.key == ebiten.KeyC || b.key == ebiten.KeyQ || b.key == ebiten.KeyTab {
			t.Errorf("Key %v is reserved for the window", b.key)
		}
	}
}

func TestComputeLayout(t *testing.T) {
	l := computeLayout(1100, 520, 2)

	if l.face.Width != 496 || l.face.PixelWidth != 992 {
		t.Errorf("Expected a 496px face at 992 device px, got %+v", l.face)
	}
	if l.faceAt.X != 24 || l.faceAt.Y != 24 {
		t.Errorf("Expected face at (24, 24), got %v", l.faceAt)
	}
	if l.vista.Width != 568 || l.vista.Height != 284 {
		t.Errorf("Expected a 568x284 vista box, got %fx%f", l.vista.Width, l.vista.Height)
	}
	if l.vistaAt.X != 1040 {
		t.Errorf("Expected vista at device x 1040, got %d", l.vistaAt.X)
	}
}

func TestComputeLayout_TinyWindow(t *testing.T) {
	l := computeLayout(0, 0, 0)
	if l.face.Width != scope.MinCanvasSize {
		t.Errorf("Expected the minimum face size, got %f", l.face.Width)
	}
	if l.vista.PixelWidth < 1 || l.vista.PixelHeight < 1 {
		t.Errorf("Expected a non-empty vista, got %+v", l.vista)
	}
}

func TestAccentHex(t *testing.T) {
	got := accentHex(color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff})
	if got != "#ff8000" {
		t.Errorf("Expected #ff8000, got %s", got)
	}
	if rgb := scope.ParseAccent(got); rgb != (scope.RGB{R: 255, G: 128, B: 0}) {
		t.Errorf("Expected the hex to parse back, got %+v", rgb)
	}
}

func TestRGBA_Premultiplies(t *testing.T) {
	got := rgba(scope.Color{R: 200, G: 100, B: 0, A: 0.5})
	if got != (color.RGBA{R: 100, G: 50, B: 0, A: 128}) {
		t.Errorf("Expected premultiplied (100, 50, 0, 128), got %+v", got)
	}
}

func TestGame_TickRendersAndReports(t *testing.T) {
	cfg := scope.DefaultConfig()
	g := newGame(cfg, "#ff0000")
	g.signal.Apply(scope.CmdRight)

	s := g.loop.Tick(g.now())
	if s.X != scope.VoltageStep {
		t.Errorf("Expected Vx %f, got %f", scope.VoltageStep, s.X)
	}
	if !strings.HasPrefix(g.status(), "manual  Vx 0.50") {
		t.Errorf("Unexpected status %q", g.status())
	}

	var lit bool
	pix := g.face.Image().Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i] > 0 {
			lit = true
			break
		}
	}
	if !lit {
		t.Error("Expected the red beam to be drawn on the face")
	}
}
