package scope

import (
	"math"
	"time"

	"github.com/simukka/crtscope/common"
)

// Sample is the deflection signal for one frame.
type Sample struct {
	// X and Y are the deflection voltages.
	X, Y float64

	// NormX and NormY are the components in [-1, 1]: the raw sine values in
	// sine mode, voltage over axis bound in manual mode.
	NormX, NormY float64

	Mode    Mode
	Elapsed time.Duration
}

// Signal computes deflection samples from a Config and a Clock.
type Signal struct {
	cfg   *Config
	clock *Clock
}

func NewSignal(cfg *Config, clock *Clock) *Signal {
	return &Signal{cfg: cfg, clock: clock}
}

func (s *Signal) Config() *Config {
	return s.cfg
}

func (s *Signal) Clock() *Clock {
	return s.clock
}

// SetMode switches the signal source. Entering sine mode restarts the clock
// so the generators start from t = 0.
func (s *Signal) SetMode(m Mode) {
	if m == ModeSine && s.cfg.Mode != ModeSine {
		s.clock.Reset()
	}
	s.cfg.Mode = m
}

// ToggleMode flips between manual and sine.
func (s *Signal) ToggleMode() {
	if s.cfg.Mode == ModeSine {
		s.SetMode(ModeManual)
		return
	}
	s.SetMode(ModeSine)
}

// Sample computes the deflection at frame time now.
func (s *Signal) Sample(now time.Duration) Sample {
	cfg := s.cfg
	elapsed := s.clock.Elapsed(now)
	bx, by := cfg.XBound(), cfg.YBound()

	if cfg.Mode == ModeSine {
		t := elapsed.Seconds()
		nx := common.Finite(math.Sin(2*math.Pi*cfg.FreqX*t), 0)
		ny := common.Finite(math.Sin(2*math.Pi*cfg.FreqY*t+cfg.Phase), 0)
		return Sample{
			X:       nx * bx,
			Y:       ny * by,
			NormX:   nx,
			NormY:   ny,
			Mode:    ModeSine,
			Elapsed: elapsed,
		}
	}

	vx := common.Finite(cfg.Vx, 0)
	vy := common.Finite(cfg.Vy, 0)
	return Sample{
		X:       vx,
		Y:       vy,
		NormX:   normalize(vx, bx),
		NormY:   normalize(vy, by),
		Mode:    ModeManual,
		Elapsed: elapsed,
	}
}

func normalize(v, bound float64) float64 {
	if bound <= 0 {
		return 0
	}
	return common.Clamp(v/bound, -1, 1)
}
