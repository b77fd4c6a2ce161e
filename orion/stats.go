package orion

import (
	"time"
)

type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta time to previous frame
	Delta time.Duration

	// frames per second measured over the last full second
	SampledFPS float64

	lastTime time.Time

	sampleStart  time.Time
	sampleFrames uint64
}

func (t *FrameTimes) update(d time.Duration) {
	const window = 64

	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}
}

// FPS returns the frame rate derived from the rolling average frame duration.
func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}

// Tick records a frame starting at now. It returns true whenever a new
// SampledFPS value is available, which happens about once per second.
func (t *FrameTimes) Tick(now time.Time) bool {
	if t.FrameCount > 0 {
		dt := now.Sub(t.lastTime)
		t.update(dt)

		t.sampleFrames += 1
	} else {
		t.sampleStart = now
	}

	t.lastTime = now
	t.FrameCount += 1

	elapsed := now.Sub(t.sampleStart)
	if elapsed < time.Second {
		return false
	}

	t.SampledFPS = float64(t.sampleFrames) / elapsed.Seconds()
	t.sampleFrames = 0
	t.sampleStart = now

	return true
}
