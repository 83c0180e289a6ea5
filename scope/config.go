package scope

import (
	"math"

	"github.com/simukka/crtscope/common"
)

// Mode selects where the deflection voltages come from.
type Mode int

const (
	ModeManual Mode = iota
	ModeSine
)

// ModeNames maps modes to the values used by the mode selector.
var ModeNames = map[Mode]string{
	ModeManual: "manual",
	ModeSine:   "sine",
}

func (m Mode) String() string {
	if name, ok := ModeNames[m]; ok {
		return name
	}
	return ModeNames[ModeManual]
}

// ParseMode converts a selector value to a Mode. Unknown values are manual.
func ParseMode(s string) Mode {
	if s == ModeNames[ModeSine] {
		return ModeSine
	}
	return ModeManual
}

// Default control values and bounds.
const (
	DefaultVoltageLimit = 10.0
	DefaultVaccMin      = 1000.0
	DefaultVaccMax      = 20000.0
	DefaultVacc         = 10000.0
	DefaultLatency      = 0.5
	DefaultFreqX        = 1.0
	DefaultFreqY        = 2.0
	MinFreq             = 0.1
	MaxFreq             = 10.0
	DefaultPhase        = math.Pi / 2
	DefaultAmplitude    = 10.0
	MaxAmplitude        = 20.0
)

// Range is the min/max bound carried by a ranged input.
type Range struct {
	Min, Max float64
}

// Clamp limits v to the range. An inverted range collapses to Min.
func (r Range) Clamp(v float64) float64 {
	if r.Max < r.Min {
		return r.Min
	}
	return common.Clamp(v, r.Min, r.Max)
}

// Bound is the larger-magnitude extreme of the range.
func (r Range) Bound() float64 {
	return common.MaxAbs(r.Min, r.Max)
}

// Norm maps v to its position within the range in [0, 1].
// Degenerate ranges give 0.
func (r Range) Norm(v float64) float64 {
	span := r.Max - r.Min
	if !(span > 0) || math.IsInf(span, 0) {
		return 0
	}
	return common.Clamp01((common.Finite(v, r.Min) - r.Min) / span)
}

// Config is the shared control state. A single writer (the UI) mutates it
// through the setters; the renderers read it every frame.
type Config struct {
	Mode Mode

	Vx, Vy           float64
	VxRange, VyRange Range

	Vacc      float64
	VaccRange Range

	// Latency is the phosphor persistence in [0, 1].
	Latency float64

	FreqX, FreqY           float64
	FreqXRange, FreqYRange Range

	// Phase is the Y generator phase offset in radians.
	Phase      float64
	PhaseRange Range

	// Amplitude is the VM control. It sets the volts-to-pixels scale and
	// limits the sine amplitude.
	Amplitude      float64
	AmplitudeRange Range
}

// DefaultConfig returns the control state the page starts with.
func DefaultConfig() *Config {
	voltage := Range{Min: -DefaultVoltageLimit, Max: DefaultVoltageLimit}
	freq := Range{Min: MinFreq, Max: MaxFreq}
	return &Config{
		Mode:           ModeManual,
		VxRange:        voltage,
		VyRange:        voltage,
		Vacc:           DefaultVacc,
		VaccRange:      Range{Min: DefaultVaccMin, Max: DefaultVaccMax},
		Latency:        DefaultLatency,
		FreqX:          DefaultFreqX,
		FreqY:          DefaultFreqY,
		FreqXRange:     freq,
		FreqYRange:     freq,
		Phase:          DefaultPhase,
		PhaseRange:     Range{Min: 0, Max: 2 * math.Pi},
		Amplitude:      DefaultAmplitude,
		AmplitudeRange: Range{Min: 0, Max: MaxAmplitude},
	}
}

// SetVx sets the manual X voltage. Malformed input becomes 0.
func (c *Config) SetVx(v float64) {
	c.Vx = c.VxRange.Clamp(common.Finite(v, 0))
}

// SetVy sets the manual Y voltage. Malformed input becomes 0.
func (c *Config) SetVy(v float64) {
	c.Vy = c.VyRange.Clamp(common.Finite(v, 0))
}

func (c *Config) SetVacc(v float64) {
	c.Vacc = c.VaccRange.Clamp(common.Finite(v, c.VaccRange.Min))
}

// SetLatency sets the persistence. Missing or malformed input becomes 0.
func (c *Config) SetLatency(v float64) {
	c.Latency = common.Clamp01(common.Finite(v, 0))
}

func (c *Config) SetFreqX(v float64) {
	c.FreqX = c.FreqXRange.Clamp(common.Finite(v, c.FreqXRange.Min))
}

func (c *Config) SetFreqY(v float64) {
	c.FreqY = c.FreqYRange.Clamp(common.Finite(v, c.FreqYRange.Min))
}

func (c *Config) SetPhase(v float64) {
	c.Phase = c.PhaseRange.Clamp(common.Finite(v, 0))
}

func (c *Config) SetAmplitude(v float64) {
	c.Amplitude = c.AmplitudeRange.Clamp(common.Finite(v, c.AmplitudeRange.Min))
}

// Normalize re-applies every setter, for use after the ranges change.
func (c *Config) Normalize() {
	c.SetVx(c.Vx)
	c.SetVy(c.Vy)
	c.SetVacc(c.Vacc)
	c.SetLatency(c.Latency)
	c.SetFreqX(c.FreqX)
	c.SetFreqY(c.FreqY)
	c.SetPhase(c.Phase)
	c.SetAmplitude(c.Amplitude)
}

// ScaleAmplitude is VM made safe for use as a divisor.
func (c *Config) ScaleAmplitude() float64 {
	return math.Max(1, common.Finite(c.Amplitude, 1))
}

// XBound is the amplitude bound of the X axis.
func (c *Config) XBound() float64 {
	return axisBound(c.VxRange, c.ScaleAmplitude())
}

// YBound is the amplitude bound of the Y axis.
func (c *Config) YBound() float64 {
	return axisBound(c.VyRange, c.ScaleAmplitude())
}

func axisBound(r Range, amplitude float64) float64 {
	return math.Min(common.Finite(r.Bound(), 0), amplitude)
}

// ApplyRatioPreset sets fy = fx * (s / r), rounded to two decimals and
// clamped to the fy range. A zero denominator is ignored.
func (c *Config) ApplyRatioPreset(r, s float64) bool {
	if r == 0 || math.IsNaN(r) || math.IsNaN(s) {
		return false
	}
	fy := c.FreqX * (s / r)
	if math.IsInf(fy, 0) || math.IsNaN(fy) {
		return false
	}
	c.SetFreqY(common.Round2(fy))
	return true
}

// ApplyPhasePreset sets the phase offset in radians.
func (c *Config) ApplyPhasePreset(p float64) {
	c.SetPhase(p)
}
