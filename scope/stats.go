package scope

import "time"

// FrameStats counts frames and derives the frame rate over one-second windows.
type FrameStats struct {
	Frames     uint64
	FrameCount int
	LastUpdate time.Duration
	FPS        float64
}

// Update records a frame at time now.
func (s *FrameStats) Update(now time.Duration) {
	s.Frames++
	s.FrameCount++

	elapsed := now - s.LastUpdate
	if elapsed >= time.Second {
		s.FPS = float64(s.FrameCount) / elapsed.Seconds()
		s.FrameCount = 0
		s.LastUpdate = now
	}
}
