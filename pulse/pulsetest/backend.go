// Package pulsetest provides a pulse.Backend that records the calls made
// to it, for testing code that drives a pulse.Presenter without a GPU.
package pulsetest

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/sketch/pulse"
)

const (
	CallConfigure = "configure"
	CallAcquire   = "acquire"
	CallClear     = "clear"
	CallPresent   = "present"
)

type Size struct {
	Width  uint32
	Height uint32
}

// Backend is a fake pulse.Backend.
type Backend struct {
	Caps pulse.SurfaceCapabilities

	// Errors returned by the next calls to Acquire, in order. A nil entry
	// acquires a frame.
	AcquireErrors []error

	// If set, acquired frames have this size instead of the configured one.
	FrameSize *Size

	// Calls made to the backend, in order.
	Calls []string

	Configs   []pulse.SurfaceConfig
	Cleared   []pulse.Color
	Presented []Size

	// number of frames released
	Released int
}

var _ pulse.Backend = (*Backend)(nil)

// NewBackend returns a backend offering a linear and an srgb format,
// vsync and immediate presentation and opaque alpha.
func NewBackend() *Backend {
	return &Backend{
		Caps: pulse.SurfaceCapabilities{
			Formats:      []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb},
			PresentModes: []wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeImmediate},
			AlphaModes:   []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque},
		},
	}
}

func (b *Backend) Capabilities() pulse.SurfaceCapabilities {
	return b.Caps
}

func (b *Backend) Configure(config pulse.SurfaceConfig) error {
	b.Calls = append(b.Calls, CallConfigure)
	b.Configs = append(b.Configs, config)
	return nil
}

// Reconfigurations returns the number of Configure calls after the first one.
func (b *Backend) Reconfigurations() int {
	return max(0, len(b.Configs)-1)
}

func (b *Backend) Acquire() (pulse.Frame, error) {
	b.Calls = append(b.Calls, CallAcquire)

	if len(b.AcquireErrors) > 0 {
		err := b.AcquireErrors[0]
		b.AcquireErrors = b.AcquireErrors[1:]

		if err != nil {
			return nil, err
		}
	}

	size := b.FrameSize
	if size == nil {
		current := b.Configs[len(b.Configs)-1]
		size = &Size{Width: current.Width, Height: current.Height}
	}

	return &frame{backend: b, size: *size}, nil
}

func (b *Backend) Clear(f pulse.Frame, color pulse.Color) error {
	b.Calls = append(b.Calls, CallClear)
	b.Cleared = append(b.Cleared, color)
	return nil
}

func (b *Backend) Present(f pulse.Frame) error {
	b.Calls = append(b.Calls, CallPresent)

	width, height := f.Size()
	b.Presented = append(b.Presented, Size{Width: width, Height: height})

	return nil
}

type frame struct {
	backend *Backend
	size    Size
}

func (f *frame) Size() (uint32, uint32) {
	return f.size.Width, f.size.Height
}

func (f *frame) Release() {
	f.backend.Released += 1
}
