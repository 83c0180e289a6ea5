package scope

import (
	"fmt"
	"time"
)

// Renderer draws one frame from a signal sample.
type Renderer interface {
	RenderFrame(s Sample)
}

// Loop computes one sample per tick and hands it to every renderer, so the
// oscilloscope face and the vista never disagree about the beam.
type Loop struct {
	signal    *Signal
	renderers []Renderer
	Stats     *FrameStats
	last      Sample
}

func NewLoop(signal *Signal, renderers ...Renderer) *Loop {
	return &Loop{
		signal:    signal,
		renderers: renderers,
		Stats:     &FrameStats{},
	}
}

// Add appends a renderer; it is drawn after the existing ones.
func (l *Loop) Add(r Renderer) {
	l.renderers = append(l.renderers, r)
}

// Tick renders one frame at frame time now.
func (l *Loop) Tick(now time.Duration) Sample {
	s := l.signal.Sample(now)
	for _, r := range l.renderers {
		r.RenderFrame(s)
	}
	l.Stats.Update(now)
	l.last = s
	return s
}

// Last returns the sample of the most recent tick.
func (l *Loop) Last() Sample {
	return l.last
}

// FrameScheduler schedules a callback for the next display refresh, in the
// manner of requestAnimationFrame.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Duration)) int
	CancelFrame(handle int)
}

// Animator keeps a Loop ticking on a FrameScheduler until stopped. The
// running flag is checked before every reschedule.
type Animator struct {
	sched   FrameScheduler
	loop    *Loop
	handle  int
	running bool

	// OnError receives a panic recovered from a frame. The loop keeps going.
	OnError func(err error)
}

func NewAnimator(sched FrameScheduler, loop *Loop) *Animator {
	return &Animator{sched: sched, loop: loop}
}

// Start schedules the first frame. Starting a running animator is a no-op.
func (a *Animator) Start() {
	if a.running {
		return
	}
	a.running = true
	a.handle = a.sched.RequestFrame(a.frame)
}

// Stop cancels the pending frame.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.sched.CancelFrame(a.handle)
	a.handle = 0
}

// Toggle pauses or resumes the animation.
func (a *Animator) Toggle() {
	if a.running {
		a.Stop()
		return
	}
	a.Start()
}

func (a *Animator) Running() bool {
	return a.running
}

// Handle returns the pending frame handle, 0 when stopped.
func (a *Animator) Handle() int {
	return a.handle
}

func (a *Animator) frame(now time.Duration) {
	defer func() {
		if r := recover(); r != nil && a.OnError != nil {
			a.OnError(fmt.Errorf("frame at %v: %v", now, r))
		}
		if a.running {
			a.handle = a.sched.RequestFrame(a.frame)
		}
	}()
	if !a.running {
		return
	}
	a.loop.Tick(now)
}
