//go:build !js

package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/simukka/crtscope/scope"
)

var runeCommands = map[rune]scope.Command{
	'm': scope.CmdToggleMode,
	'M': scope.CmdToggleMode,
	'[': scope.CmdLatencyDown,
	']': scope.CmdLatencyUp,
	'-': scope.CmdVaccDown,
	'=': scope.CmdVaccUp,
	'+': scope.CmdVaccUp,
	',': scope.CmdAmplitudeDown,
	'.': scope.CmdAmplitudeUp,
	'1': scope.CmdRatioPreset1,
	'2': scope.CmdRatioPreset2,
	'3': scope.CmdRatioPreset3,
	'4': scope.CmdRatioPreset4,
	'5': scope.CmdPhasePreset1,
	'6': scope.CmdPhasePreset2,
	'7': scope.CmdPhasePreset3,
	'8': scope.CmdPhasePreset4,
}

var keyCommands = map[tcell.Key]scope.Command{
	tcell.KeyLeft:  scope.CmdLeft,
	tcell.KeyRight: scope.CmdRight,
	tcell.KeyUp:    scope.CmdUp,
	tcell.KeyDown:  scope.CmdDown,
}

// commandFor maps a key press to a signal command, CmdNone if unbound.
// The terminal repeats held keys itself.
func commandFor(ev *tcell.EventKey) scope.Command {
	if ev.Key() == tcell.KeyRune {
		return runeCommands[ev.Rune()]
	}
	return keyCommands[ev.Key()]
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
