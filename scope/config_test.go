package scope

import (
	"math"
	"testing"
)

func TestDefaultConfig_WithinRanges(t *testing.T) {
	c := DefaultConfig()

	if c.Mode != ModeManual {
		t.Errorf("Expected manual mode, got %s", c.Mode)
	}
	if c.Vacc < c.VaccRange.Min || c.Vacc > c.VaccRange.Max {
		t.Errorf("Expected Vacc within range, got %f", c.Vacc)
	}
	if c.ScaleAmplitude() != DefaultAmplitude {
		t.Errorf("Expected amplitude %f, got %f", DefaultAmplitude, c.ScaleAmplitude())
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("sine") != ModeSine {
		t.Error("Expected sine mode")
	}
	if ParseMode("manual") != ModeManual {
		t.Error("Expected manual mode")
	}
	if ParseMode("bogus") != ModeManual {
		t.Error("Expected unknown values to fall back to manual")
	}
	if ModeSine.String() != "sine" {
		t.Errorf("Expected sine, got %s", ModeSine.String())
	}
}

func TestConfig_SettersClamp(t *testing.T) {
	c := DefaultConfig()

	c.SetVx(50)
	if c.Vx != DefaultVoltageLimit {
		t.Errorf("Expected Vx %f, got %f", DefaultVoltageLimit, c.Vx)
	}
	c.SetVy(-50)
	if c.Vy != -DefaultVoltageLimit {
		t.Errorf("Expected Vy %f, got %f", -DefaultVoltageLimit, c.Vy)
	}
	c.SetLatency(1.5)
	if c.Latency != 1 {
		t.Errorf("Expected latency 1, got %f", c.Latency)
	}
	c.SetVacc(0)
	if c.Vacc != DefaultVaccMin {
		t.Errorf("Expected Vacc %f, got %f", DefaultVaccMin, c.Vacc)
	}
	c.SetFreqX(100)
	if c.FreqX != MaxFreq {
		t.Errorf("Expected FreqX %f, got %f", MaxFreq, c.FreqX)
	}
}

func TestConfig_MalformedInputDefaults(t *testing.T) {
	c := DefaultConfig()

	c.SetLatency(math.NaN())
	if c.Latency != 0 {
		t.Errorf("Expected latency 0 for NaN, got %f", c.Latency)
	}
	c.SetVx(math.Inf(1))
	if c.Vx != 0 {
		t.Errorf("Expected Vx 0 for Inf, got %f", c.Vx)
	}
	c.SetAmplitude(math.NaN())
	if c.Amplitude != c.AmplitudeRange.Min {
		t.Errorf("Expected amplitude %f, got %f", c.AmplitudeRange.Min, c.Amplitude)
	}
}

func TestConfig_ScaleAmplitudeNeverBelowOne(t *testing.T) {
	c := DefaultConfig()

	for _, vm := range []float64{0, -5, 0.25, math.NaN()} {
		c.Amplitude = vm
		if got := c.ScaleAmplitude(); got < 1 {
			t.Errorf("Expected amplitude >= 1 for VM=%f, got %f", vm, got)
		}
	}
}

func TestRange_BoundUsesLargerMagnitude(t *testing.T) {
	r := Range{Min: -8, Max: 5}
	if r.Bound() != 8 {
		t.Errorf("Expected bound 8, got %f", r.Bound())
	}
}

func TestRange_NormDegenerate(t *testing.T) {
	if got := (Range{Min: 5, Max: 5}).Norm(5); got != 0 {
		t.Errorf("Expected 0 for empty range, got %f", got)
	}
	if got := (Range{Min: 10, Max: 0}).Norm(5); got != 0 {
		t.Errorf("Expected 0 for inverted range, got %f", got)
	}
	if got := (Range{Min: 0, Max: 10}).Norm(5); got != 0.5 {
		t.Errorf("Expected 0.5, got %f", got)
	}
}

func TestConfig_AxisBoundAsymmetricLimitedByAmplitude(t *testing.T) {
	c := DefaultConfig()
	c.VxRange = Range{Min: -4, Max: 6}
	c.Amplitude = 20

	if got := c.XBound(); got != 6 {
		t.Errorf("Expected X bound 6, got %f", got)
	}

	c.Amplitude = 3
	if got := c.XBound(); got != 3 {
		t.Errorf("Expected X bound limited to 3, got %f", got)
	}
}

func TestConfig_ApplyRatioPreset(t *testing.T) {
	c := DefaultConfig()
	c.SetFreqX(1.5)

	if !c.ApplyRatioPreset(3, 4) {
		t.Fatal("Expected preset to apply")
	}
	if math.Abs(c.FreqY-2.0) > 0.001 {
		t.Errorf("Expected FreqY 2.0, got %f", c.FreqY)
	}

	c.SetFreqX(1)
	c.ApplyRatioPreset(3, 1)
	if math.Abs(c.FreqY-0.33) > 0.001 {
		t.Errorf("Expected FreqY rounded to 0.33, got %f", c.FreqY)
	}
}

func TestConfig_ApplyRatioPresetClampsAndIgnoresZero(t *testing.T) {
	c := DefaultConfig()
	c.SetFreqX(8)
	c.ApplyRatioPreset(1, 2)
	if c.FreqY != MaxFreq {
		t.Errorf("Expected FreqY clamped to %f, got %f", MaxFreq, c.FreqY)
	}

	before := c.FreqY
	if c.ApplyRatioPreset(0, 2) {
		t.Error("Expected zero denominator to be ignored")
	}
	if c.FreqY != before {
		t.Errorf("Expected FreqY unchanged, got %f", c.FreqY)
	}
}

func TestConfig_NormalizeAfterRangeChange(t *testing.T) {
	c := DefaultConfig()
	c.SetVx(9)
	c.VxRange = Range{Min: -5, Max: 5}
	c.Normalize()

	if c.Vx != 5 {
		t.Errorf("Expected Vx 5 after normalize, got %f", c.Vx)
	}
}
