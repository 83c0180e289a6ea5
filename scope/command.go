package scope

import "math"

// Command is a discrete control action issued by a keyboard frontend.
type Command int

const (
	CmdNone Command = iota
	CmdToggleMode
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdLatencyDown
	CmdLatencyUp
	CmdVaccDown
	CmdVaccUp
	CmdAmplitudeDown
	CmdAmplitudeUp
	CmdRatioPreset1
	CmdRatioPreset2
	CmdRatioPreset3
	CmdRatioPreset4
	CmdPhasePreset1
	CmdPhasePreset2
	CmdPhasePreset3
	CmdPhasePreset4
)

// Step sizes for the keyboard controls.
const (
	VoltageStep   = 0.5
	FreqStep      = 0.05
	LatencyStep   = 0.05
	VaccStep      = 500.0
	AmplitudeStep = 1.0
)

// RatioPreset is an X:Y frequency ratio r:s; applying it sets fy = fx * s / r.
type RatioPreset struct {
	R, S float64
}

// Preset buttons, in the order they appear on the page.
var (
	RatioPresets = []RatioPreset{{R: 1, S: 1}, {R: 1, S: 2}, {R: 2, S: 3}, {R: 3, S: 4}}
	PhasePresets = []float64{0, math.Pi / 4, math.Pi / 2, math.Pi}
)

// Apply executes a command against the signal's configuration. The arrow
// commands move the manual voltages in manual mode and the generator
// frequencies in sine mode.
func (s *Signal) Apply(cmd Command) {
	c := s.cfg
	sine := c.Mode == ModeSine

	switch cmd {
	case CmdToggleMode:
		s.ToggleMode()
	case CmdLeft, CmdRight:
		dir := 1.0
		if cmd == CmdLeft {
			dir = -1
		}
		if sine {
			c.SetFreqX(c.FreqX + dir*FreqStep)
		} else {
			c.SetVx(c.Vx + dir*VoltageStep)
		}
	case CmdUp, CmdDown:
		dir := 1.0
		if cmd == CmdDown {
			dir = -1
		}
		if sine {
			c.SetFreqY(c.FreqY + dir*FreqStep)
		} else {
			c.SetVy(c.Vy + dir*VoltageStep)
		}
	case CmdLatencyDown:
		c.SetLatency(c.Latency - LatencyStep)
	case CmdLatencyUp:
		c.SetLatency(c.Latency + LatencyStep)
	case CmdVaccDown:
		c.SetVacc(c.Vacc - VaccStep)
	case CmdVaccUp:
		c.SetVacc(c.Vacc + VaccStep)
	case CmdAmplitudeDown:
		c.SetAmplitude(c.Amplitude - AmplitudeStep)
	case CmdAmplitudeUp:
		c.SetAmplitude(c.Amplitude + AmplitudeStep)
	case CmdRatioPreset1, CmdRatioPreset2, CmdRatioPreset3, CmdRatioPreset4:
		p := RatioPresets[cmd-CmdRatioPreset1]
		c.ApplyRatioPreset(p.R, p.S)
	case CmdPhasePreset1, CmdPhasePreset2, CmdPhasePreset3, CmdPhasePreset4:
		c.ApplyPhasePreset(PhasePresets[cmd-CmdPhasePreset1])
	}
}
