package common

import (
	"math"
	"testing"
)

func TestClamp_Bounds(t *testing.T) {
	if got := Clamp(-5, -1, 1); got != -1 {
		t.Errorf("Expected -1, got %f", got)
	}
	if got := Clamp(5, -1, 1); got != 1 {
		t.Errorf("Expected 1, got %f", got)
	}
	if got := Clamp(0.25, -1, 1); got != 0.25 {
		t.Errorf("Expected 0.25, got %f", got)
	}
}

func TestClamp_NaNIsLowerBound(t *testing.T) {
	if got := Clamp(math.NaN(), 2, 3); got != 2 {
		t.Errorf("Expected 2, got %f", got)
	}
}

func TestFinite_Fallback(t *testing.T) {
	if got := Finite(math.Inf(1), 7); got != 7 {
		t.Errorf("Expected 7, got %f", got)
	}
	if got := Finite(math.NaN(), 0); got != 0 {
		t.Errorf("Expected 0, got %f", got)
	}
	if got := Finite(1.5, 0); got != 1.5 {
		t.Errorf("Expected 1.5, got %f", got)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(1.3333); math.Abs(got-1.33) > 1e-9 {
		t.Errorf("Expected 1.33, got %f", got)
	}
	if got := Round2(2.675001); math.Abs(got-2.68) > 1e-9 {
		t.Errorf("Expected 2.68, got %f", got)
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > 0.001 {
		t.Errorf("Expected pi, got %f", got)
	}
}

func TestMaxAbs_Asymmetric(t *testing.T) {
	if got := MaxAbs(-8, 5); got != 8 {
		t.Errorf("Expected 8, got %f", got)
	}
}
