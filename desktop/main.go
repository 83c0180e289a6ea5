//go:build !js

// Command desktop shows the oscilloscope in a native window.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/simukka/crtscope/scope"
)

func main() {
	width := flag.Int("width", 1100, "Window width")
	height := flag.Int("height", 520, "Window height")
	accent := flag.String("accent", scope.DefaultAccent, "Beam colour as 3 or 6 digit hex")
	mode := flag.String("mode", "manual", "Signal mode: manual or sine")
	latency := flag.Float64("latency", scope.DefaultLatency, "Phosphor persistence in [0, 1]")
	flag.Parse()

	cfg := scope.DefaultConfig()
	cfg.SetLatency(*latency)

	g := newGame(cfg, *accent)
	g.signal.SetMode(scope.ParseMode(*mode))

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("crtscope - M mode, arrows adjust, C colour, Tab stats, Esc/Q quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	log.Printf("crtscope desktop: %dx%d, %s mode", *width, *height, cfg.Mode)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
