package scope

import (
	"math"
	"testing"
)

func TestInset_MinimumAndLimit(t *testing.T) {
	if got := Inset(Rect{W: 100, H: 100}); got != 8 {
		t.Errorf("Expected inset 8, got %f", got)
	}
	if got := Inset(Rect{W: 500, H: 500}); got != 20 {
		t.Errorf("Expected inset 20, got %f", got)
	}
	if got := Inset(Rect{W: 10, H: 6}); got != 3 {
		t.Errorf("Expected inset limited to 3, got %f", got)
	}
}

func TestBeamWidth_Clamped(t *testing.T) {
	if got := BeamWidth(Rect{W: 10, H: 10}); got != 2 {
		t.Errorf("Expected 2, got %f", got)
	}
	if got := BeamWidth(Rect{W: 1000, H: 1000}); got != 6 {
		t.Errorf("Expected 6, got %f", got)
	}
}

func TestVistaAngle_NegatedAndClamped(t *testing.T) {
	got := VistaAngle(0.5, 0, 40)
	expected := -20 * math.Pi / 180
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected %f, got %f", expected, got)
	}
	if VistaAngle(3, 0, 40) != VistaAngle(1, 0, 40) {
		t.Error("Expected normalised voltage to be clamped to 1")
	}
	if VistaAngle(math.NaN(), 10, 40) != -10*math.Pi/180 {
		t.Error("Expected NaN voltage to map to the base angle")
	}
}

func TestBeamLineIn_StartsAtInsetCentre(t *testing.T) {
	r := Rect{X: 100, Y: 50, W: 100, H: 200}
	b := BeamLineIn(r, 0, 0)

	if b.Start.X != 108 || b.Start.Y != 150 {
		t.Errorf("Expected start (108, 150), got (%f, %f)", b.Start.X, b.Start.Y)
	}
	// The 180px line overshoots the 100px wide rect and is held at the right inset.
	if b.End.X != 192 || b.End.Y != 150 {
		t.Errorf("Expected end (192, 150), got (%f, %f)", b.End.X, b.End.Y)
	}
}

func TestBeamLineIn_EndpointAlwaysInside(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, W: 60, H: 186},
		{X: 240, Y: 230, W: 100, H: 124},
		{X: 5, Y: 5, W: 12, H: 9},
	}
	for _, r := range rects {
		inset := Inset(r)
		for angle := -math.Pi; angle <= math.Pi; angle += math.Pi / 16 {
			for offset := -500.0; offset <= 500; offset += 25 {
				b := BeamLineIn(r, offset, angle)
				if b.End.X < r.X+inset-1e-9 || b.End.X > r.X+r.W-inset+1e-9 ||
					b.End.Y < r.Y+inset-1e-9 || b.End.Y > r.Y+r.H-inset+1e-9 {
					t.Fatalf("Endpoint (%f, %f) escaped %+v (inset %f) at angle %f offset %f",
						b.End.X, b.End.Y, r, inset, angle, offset)
				}
			}
		}
	}
}

func TestBeamLine_Normal(t *testing.T) {
	b := BeamLine{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 0}}
	n := b.Normal()
	if math.Abs(n.X) > 1e-9 || math.Abs(n.Y-1) > 1e-9 {
		t.Errorf("Expected (0, 1), got (%f, %f)", n.X, n.Y)
	}
	zero := BeamLine{}
	if zero.Normal() != (Point{X: 0, Y: 1}) {
		t.Errorf("Expected fallback normal, got %+v", zero.Normal())
	}
}

func TestVista_PositiveVoltageTiltsUp(t *testing.T) {
	surf := newRecordingSurface(1000, 400)
	v := NewVista(surf, DefaultConfig(), NewTheme(DefaultAccent))

	lateral, top := v.Beams(Sample{X: 5, Y: 5, NormX: 0.5, NormY: 0.5})
	if lateral.End.Y >= lateral.Start.Y {
		t.Errorf("Expected lateral beam to rise, start %f end %f", lateral.Start.Y, lateral.End.Y)
	}
	if top.End.Y >= top.Start.Y {
		t.Errorf("Expected top beam to rise, start %f end %f", top.Start.Y, top.End.Y)
	}
}

func TestVista_ViewsFollowTheirAxis(t *testing.T) {
	surf := newRecordingSurface(1000, 400)
	v := NewVista(surf, DefaultConfig(), NewTheme(DefaultAccent))

	restLat, restTop := v.Beams(Sample{})
	lateral, top := v.Beams(Sample{X: 8, NormX: 0.8})

	if lateral != restLat {
		t.Errorf("Expected lateral view to ignore X, got %+v", lateral)
	}
	if top == restTop {
		t.Error("Expected top view to follow X")
	}
}

func TestVista_RenderFrame(t *testing.T) {
	surf := newRecordingSurface(800, 300)
	v := NewVista(surf, DefaultConfig(), NewTheme(DefaultAccent))

	v.RenderFrame(Sample{Y: 2, NormY: 0.2})

	ops := surf.ops()
	if len(ops) == 0 || ops[0] != "clear" {
		t.Fatalf("Expected frame to start with clear, got %v", ops)
	}
	var frames, lines, bands int
	for _, c := range surf.calls {
		switch c.Op {
		case "strokeRect":
			frames++
		case "strokeLine":
			lines++
			if math.Abs(c.Color.A-0.95) > 0.001 {
				t.Errorf("Expected beam alpha 0.95, got %f", c.Color.A)
			}
		case "fillPolygon":
			bands++
			if c.Mode != CompositeLighter {
				t.Error("Expected additive glow band")
			}
			if len(c.Stops) != 5 || c.Stops[2].Offset != 0.5 {
				t.Errorf("Unexpected band stops %+v", c.Stops)
			}
		}
	}
	if frames != 2 || lines != 2 || bands != 4 {
		t.Errorf("Expected 2 frames, 2 lines, 4 bands, got %d, %d, %d", frames, lines, bands)
	}
}
