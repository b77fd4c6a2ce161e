package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestZeroColorIsWhite(t *testing.T) {
	var color Color
	assert.Equal(t, ColorLinearRGBA(1, 1, 1, 1), color)
}

func TestColorToWGPU(t *testing.T) {
	color := ColorLinearRGBA(1.0, 0.5, 0.25, 1.0)
	assert.Equal(t, wgpu.Color{R: 1.0, G: 0.5, B: 0.25, A: 1.0}, color.ToWGPU())
}

func TestColorComponents(t *testing.T) {
	r, g, b, a := ColorLinearRGBA(1.0, 0.2, 0.3, 0.5).Components()

	assert.InDelta(t, 1.0, r, 1e-6)
	assert.InDelta(t, 0.2, g, 1e-6)
	assert.InDelta(t, 0.3, b, 1e-6)
	assert.InDelta(t, 0.5, a, 1e-6)
}
