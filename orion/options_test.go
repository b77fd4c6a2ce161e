package orion

import (
	"testing"

	"github.com/oliverbestmann/sketch/pulse"
	"github.com/stretchr/testify/assert"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()

	assert.Equal(t, 1280, opts.WindowWidth)
	assert.Equal(t, 720, opts.WindowHeight)
	assert.Equal(t, "Motion Sketch", opts.WindowTitle)
	assert.Equal(t, pulse.PresentModeAuto, opts.PresentMode)
	assert.Zero(t, opts.TargetFPS)
}

func TestOptionsKeepExplicitValues(t *testing.T) {
	opts := Options{
		WindowWidth:  640,
		WindowHeight: 480,
		WindowTitle:  "Sketch",
		TargetFPS:    30,
	}.withDefaults()

	assert.Equal(t, 640, opts.WindowWidth)
	assert.Equal(t, 480, opts.WindowHeight)
	assert.Equal(t, "Sketch", opts.WindowTitle)
	assert.Equal(t, 30.0, opts.TargetFPS)
}
