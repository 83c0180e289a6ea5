package scope

import (
	"math"
	"reflect"
	"testing"
)

func TestOverlayAlpha_Range(t *testing.T) {
	for lat := 0.0; lat <= 1.0; lat += 0.05 {
		a := OverlayAlpha(lat)
		if a < 0.01 || a > 1 {
			t.Errorf("Expected alpha in [0.01, 1] for latency %f, got %f", lat, a)
		}
	}
	if OverlayAlpha(0) != 1 {
		t.Errorf("Expected alpha 1 at latency 0, got %f", OverlayAlpha(0))
	}
	if OverlayAlpha(1) != 0.01 {
		t.Errorf("Expected alpha 0.01 at latency 1, got %f", OverlayAlpha(1))
	}
	if OverlayAlpha(math.NaN()) != 1 {
		t.Errorf("Expected missing latency to act as 0, got %f", OverlayAlpha(math.NaN()))
	}
}

func TestBeamPosition_InvertsY(t *testing.T) {
	p := BeamPosition(Point{X: 100, Y: 100}, 10, 5, -3)
	if p.X != 150 || p.Y != 130 {
		t.Errorf("Expected (150, 130), got (%f, %f)", p.X, p.Y)
	}
}

func TestSpotLevels_Monotonic(t *testing.T) {
	r := Range{Min: DefaultVaccMin, Max: DefaultVaccMax}
	prevB, prevR := SpotLevels(r.Min, r)
	for v := r.Min + 250; v <= r.Max; v += 250 {
		b, rad := SpotLevels(v, r)
		if b < prevB {
			t.Errorf("Brightness decreased at Vacc=%f: %f < %f", v, b, prevB)
		}
		if rad < prevR {
			t.Errorf("Radius decreased at Vacc=%f: %f < %f", v, rad, prevR)
		}
		prevB, prevR = b, rad
	}
}

func TestSpotLevels_Endpoints(t *testing.T) {
	r := Range{Min: 1000, Max: 20000}
	b, rad := SpotLevels(1000, r)
	if math.Abs(b-0.2) > 0.001 || math.Abs(rad-2) > 0.001 {
		t.Errorf("Expected (0.2, 2) at the minimum, got (%f, %f)", b, rad)
	}
	b, rad = SpotLevels(20000, r)
	if math.Abs(b-1) > 0.001 || math.Abs(rad-8) > 0.001 {
		t.Errorf("Expected (1, 8) at the maximum, got (%f, %f)", b, rad)
	}
	_, rad = SpotLevels(5000, Range{Min: 5000, Max: 5000})
	if rad < MinSpotRadius {
		t.Errorf("Expected radius >= %f for a degenerate range, got %f", MinSpotRadius, rad)
	}
}

func TestGlowStops(t *testing.T) {
	accent := RGB{R: 51, G: 255, B: 51}
	stops := GlowStops(accent, 0.5)

	if len(stops) != 3 {
		t.Fatalf("Expected 3 stops, got %d", len(stops))
	}
	if stops[0].Offset != 0 || stops[1].Offset != 0.3 || stops[2].Offset != 1 {
		t.Errorf("Unexpected offsets %+v", stops)
	}
	if math.Abs(stops[0].Color.A-0.225) > 0.001 {
		t.Errorf("Expected outer alpha 0.225, got %f", stops[0].Color.A)
	}
	if math.Abs(stops[1].Color.A-0.125) > 0.001 {
		t.Errorf("Expected mid alpha 0.125, got %f", stops[1].Color.A)
	}
	if stops[2].Color.A != 0 {
		t.Errorf("Expected transparent rim, got %f", stops[2].Color.A)
	}
}

func TestDisplay_RenderFrameSequence(t *testing.T) {
	surf := newRecordingSurface(200, 200)
	cfg := DefaultConfig()
	cfg.SetLatency(0.75)
	cfg.SetAmplitude(10)
	theme := NewTheme(DefaultAccent)
	d := NewDisplay(surf, cfg, theme)

	d.RenderFrame(Sample{X: 10, Y: 0})

	expected := []string{"fillRect", "fillRadial", "fillCircle"}
	if !reflect.DeepEqual(surf.ops(), expected) {
		t.Fatalf("Expected %v, got %v", expected, surf.ops())
	}

	fade := surf.calls[0]
	if math.Abs(fade.Color.A-0.25) > 0.001 {
		t.Errorf("Expected fade alpha 0.25, got %f", fade.Color.A)
	}
	if fade.Rect.W != 200 || fade.Rect.H != 200 {
		t.Errorf("Expected full-canvas fade, got %+v", fade.Rect)
	}

	core := surf.calls[2]
	if math.Abs(core.Center.X-195) > 0.001 || math.Abs(core.Center.Y-100) > 0.001 {
		t.Errorf("Expected spot at (195, 100), got (%f, %f)", core.Center.X, core.Center.Y)
	}
	glow := surf.calls[1]
	if math.Abs(glow.Radius-core.Radius*GlowScale) > 0.001 {
		t.Errorf("Expected glow radius %f, got %f", core.Radius*GlowScale, glow.Radius)
	}
	if core.Color.G != theme.Accent.G {
		t.Errorf("Expected accent tint, got %+v", core.Color)
	}
}

func TestDisplay_ZeroAmplitudeFiniteSpot(t *testing.T) {
	surf := newRecordingSurface(100, 100)
	cfg := DefaultConfig()
	cfg.Amplitude = -3
	d := NewDisplay(surf, cfg, NewTheme(""))

	spot := d.Spot(Sample{X: 1, Y: 1})
	if math.IsNaN(spot.Center.X) || math.IsInf(spot.Center.Y, 0) {
		t.Errorf("Expected finite spot, got %+v", spot.Center)
	}
}

func TestDisplay_ClearPaintsBackground(t *testing.T) {
	surf := newRecordingSurface(64, 64)
	d := NewDisplay(surf, DefaultConfig(), NewTheme(""))
	d.Clear()

	if len(surf.calls) != 1 || surf.calls[0].Color.A != 1 {
		t.Errorf("Expected one opaque fill, got %+v", surf.calls)
	}
}
