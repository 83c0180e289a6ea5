package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/crtscope/scope"
)

// slider binds one range input to a Config field.
type slider struct {
	id     string
	digits int // -1 shows the value as entered
	rng    func(c *scope.Config) *scope.Range
	get    func(c *scope.Config) float64
	set    func(c *scope.Config, v float64)

	el      *js.Object
	readout *js.Object
}

func newSliders() []*slider {
	return []*slider{
		{id: "vx", digits: -1,
			rng: func(c *scope.Config) *scope.Range { return &c.VxRange },
			get: func(c *scope.Config) float64 { return c.Vx },
			set: (*scope.Config).SetVx},
		{id: "vy", digits: -1,
			rng: func(c *scope.Config) *scope.Range { return &c.VyRange },
			get: func(c *scope.Config) float64 { return c.Vy },
			set: (*scope.Config).SetVy},
		{id: "vacc", digits: -1,
			rng: func(c *scope.Config) *scope.Range { return &c.VaccRange },
			get: func(c *scope.Config) float64 { return c.Vacc },
			set: (*scope.Config).SetVacc},
		{id: "lat", digits: -1,
			get: func(c *scope.Config) float64 { return c.Latency },
			set: (*scope.Config).SetLatency},
		{id: "fx", digits: 2,
			rng: func(c *scope.Config) *scope.Range { return &c.FreqXRange },
			get: func(c *scope.Config) float64 { return c.FreqX },
			set: (*scope.Config).SetFreqX},
		{id: "fy", digits: 2,
			rng: func(c *scope.Config) *scope.Range { return &c.FreqYRange },
			get: func(c *scope.Config) float64 { return c.FreqY },
			set: (*scope.Config).SetFreqY},
		{id: "phase", digits: 2,
			rng: func(c *scope.Config) *scope.Range { return &c.PhaseRange },
			get: func(c *scope.Config) float64 { return c.Phase },
			set: (*scope.Config).SetPhase},
		{id: "vm", digits: -1,
			rng: func(c *scope.Config) *scope.Range { return &c.AmplitudeRange },
			get: func(c *scope.Config) float64 { return c.Amplitude },
			set: (*scope.Config).SetAmplitude},
	}
}

// Readout formats a control value for its "Val" element.
func Readout(v float64, digits int) string {
	if digits < 0 {
		return FormatPlain(v)
	}
	return FormatFixed(v, digits)
}

// Controls wires the page's inputs to the signal's Config. The page is the
// only writer; every handler runs on the browser's event loop.
type Controls struct {
	signal  *scope.Signal
	sliders []*slider
	byID    map[string]*slider

	mode   *js.Object
	sine   *js.Object
	manual *js.Object
}

func NewControls(sig *scope.Signal) *Controls {
	c := &Controls{
		signal:  sig,
		sliders: newSliders(),
		byID:    make(map[string]*slider),
	}
	for _, s := range c.sliders {
		c.byID[s.id] = s
	}
	return c
}

// Bind looks up the inputs, seeds the Config from their attributes and
// installs the event handlers. Missing inputs are skipped.
func (c *Controls) Bind() {
	cfg := c.signal.Config()

	for _, s := range c.sliders {
		s.el = byID(s.id)
		s.readout = byID(s.id + "Val")
		if s.el == nil {
			DebugWarn("control not found:", s.id)
			continue
		}
		if s.rng != nil {
			r := s.rng(cfg)
			*r = ParseRange(attr(s.el, "min"), attr(s.el, "max"), *r)
		}
		s.set(cfg, ParseNumber(s.el.Get("value").String(), s.get(cfg)))

		s.el.Call("addEventListener", "input", func(*js.Object) {
			s.set(cfg, ParseNumber(s.el.Get("value").String(), s.get(cfg)))
			c.syncSlider(s)
		})
	}
	cfg.Normalize()
	c.Sync()

	c.mode = byID("mode")
	c.sine = byID("sineControls")
	c.manual = byID("manualControls")
	if c.mode != nil {
		c.signal.SetMode(scope.ParseMode(c.mode.Get("value").String()))
		c.mode.Call("addEventListener", "change", func(*js.Object) {
			c.signal.SetMode(scope.ParseMode(c.mode.Get("value").String()))
			c.SyncMode()
		})
	}
	c.SyncMode()

	c.bindPresets()
}

func (c *Controls) bindPresets() {
	cfg := c.signal.Config()

	forEach("#ratioPresets [data-r]", func(btn *js.Object) {
		btn.Call("addEventListener", "click", func(*js.Object) {
			r := ParseNumber(attr(btn, "data-r"), 0)
			s := ParseNumber(attr(btn, "data-s"), 0)
			if cfg.ApplyRatioPreset(r, s) {
				c.syncSlider(c.byID["fy"])
			}
		})
	})

	forEach("#phasePresets [data-p]", func(btn *js.Object) {
		btn.Call("addEventListener", "click", func(*js.Object) {
			cfg.ApplyPhasePreset(ParseNumber(attr(btn, "data-p"), cfg.Phase))
			c.syncSlider(c.byID["phase"])
		})
	})
}

// Sync writes every Config value back to its input and readout.
func (c *Controls) Sync() {
	for _, s := range c.sliders {
		c.syncSlider(s)
	}
}

func (c *Controls) syncSlider(s *slider) {
	if s == nil || s.el == nil {
		return
	}
	v := s.get(c.signal.Config())
	s.el.Set("value", FormatPlain(v))
	setText(s.readout, Readout(v, s.digits))
}

// SyncMode shows the control group of the current mode.
func (c *Controls) SyncMode() {
	mode := c.signal.Config().Mode
	if c.mode != nil {
		c.mode.Set("value", mode.String())
	}
	setDisplay(c.sine, mode == scope.ModeSine)
	setDisplay(c.manual, mode == scope.ModeManual)
}

// ToggleMode flips the mode from the keyboard and updates the page.
func (c *Controls) ToggleMode() {
	c.signal.ToggleMode()
	c.SyncMode()
}

func forEach(selector string, fn func(el *js.Object)) {
	list := document().Call("querySelectorAll", selector)
	for i := 0; i < list.Get("length").Int(); i++ {
		fn(list.Call("item", i))
	}
}
