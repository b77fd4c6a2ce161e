package orion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimesSamplesOncePerSecond(t *testing.T) {
	var times FrameTimes

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, times.Tick(start))
	assert.False(t, times.Tick(start.Add(500*time.Millisecond)))
	assert.True(t, times.Tick(start.Add(1000*time.Millisecond)))

	assert.Equal(t, uint64(3), times.FrameCount)
	assert.InDelta(t, 2.0, times.SampledFPS, 1e-9)
	assert.Equal(t, 500*time.Millisecond, times.Delta)
	assert.Equal(t, 500*time.Millisecond, times.MaxDuration)
	assert.InDelta(t, 2.0, times.FPS(), 1e-9)

	// the sample window restarts
	assert.False(t, times.Tick(start.Add(1250*time.Millisecond)))
	assert.Equal(t, 500*time.Millisecond, times.MaxDuration)
	assert.Equal(t, 250*time.Millisecond, times.Delta)
}

func TestFrameTimesWithoutFrames(t *testing.T) {
	var times FrameTimes
	assert.Equal(t, 0.0, times.FPS())
}
