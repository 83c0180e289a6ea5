//go:build !js

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/simukka/crtscope/scope"
)

// Key repeat timing, in ticks.
const (
	repeatDelay    = 20
	repeatInterval = 4
)

// keyBinding maps a key to a signal command. Repeating keys keep firing
// while held.
type keyBinding struct {
	key    ebiten.Key
	cmd    scope.Command
	repeat bool
}

var keyBindings = []keyBinding{
	{ebiten.KeyM, scope.CmdToggleMode, false},
	{ebiten.KeyArrowLeft, scope.CmdLeft, true},
	{ebiten.KeyArrowRight, scope.CmdRight, true},
	{ebiten.KeyArrowUp, scope.CmdUp, true},
	{ebiten.KeyArrowDown, scope.CmdDown, true},
	{ebiten.KeyBracketLeft, scope.CmdLatencyDown, true},
	{ebiten.KeyBracketRight, scope.CmdLatencyUp, true},
	{ebiten.KeyMinus, scope.CmdVaccDown, true},
	{ebiten.KeyEqual, scope.CmdVaccUp, true},
	{ebiten.KeyComma, scope.CmdAmplitudeDown, true},
	{ebiten.KeyPeriod, scope.CmdAmplitudeUp, true},
	{ebiten.Key1, scope.CmdRatioPreset1, false},
	{ebiten.Key2, scope.CmdRatioPreset2, false},
	{ebiten.Key3, scope.CmdRatioPreset3, false},
	{ebiten.Key4, scope.CmdRatioPreset4, false},
	{ebiten.Key5, scope.CmdPhasePreset1, false},
	{ebiten.Key6, scope.CmdPhasePreset2, false},
	{ebiten.Key7, scope.CmdPhasePreset3, false},
	{ebiten.Key8, scope.CmdPhasePreset4, false},
}

// fires reports whether a key held for d ticks triggers this tick.
func fires(d int, repeat bool) bool {
	if d == 1 {
		return true
	}
	return repeat && d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// pressedCommands returns the commands triggered by the keyboard this tick.
func pressedCommands(duration func(ebiten.Key) int) []scope.Command {
	var cmds []scope.Command
	for _, b := range keyBindings {
		if fires(duration(b.key), b.repeat) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
