package common

import "math"

// Clamp limits v to [lo, hi]. NaN is returned as lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Finite returns v, or fallback when v is NaN or infinite.
func Finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// DegToRad converts degrees to radians.
func DegToRad(d float64) float64 {
	return d * math.Pi / 180
}

// Round2 rounds v to two decimal places, the precision the preset buttons
// and readouts work with.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MaxAbs returns the larger magnitude of a and b.
func MaxAbs(a, b float64) float64 {
	return math.Max(math.Abs(a), math.Abs(b))
}
