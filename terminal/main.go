//go:build !js

// Command terminal shows the oscilloscope in a true-colour terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/simukka/crtscope/scope"
)

func openScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

func main() {
	accent := flag.String("accent", scope.DefaultAccent, "Beam colour as 3 or 6 digit hex")
	mode := flag.String("mode", "manual", "Signal mode: manual or sine")
	latency := flag.Float64("latency", scope.DefaultLatency, "Phosphor persistence in [0, 1]")
	fps := flag.Int("fps", 60, "Frames per second")
	flag.Parse()

	screen, err := openScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	cfg := scope.DefaultConfig()
	cfg.SetLatency(*latency)

	a := newApp(screen, cfg, *accent)
	a.signal.SetMode(scope.ParseMode(*mode))
	a.run(*fps)
	screen.Fini()

	log.Printf("crtscope terminal: %d frames, %.1f FPS", a.loop.Stats.Frames, a.loop.Stats.FPS)
}
