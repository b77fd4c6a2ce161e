package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Backend is the GPU side driven by a Presenter: one surface bound to one device.
type Backend interface {
	Capabilities() SurfaceCapabilities
	Configure(config SurfaceConfig) error

	// Acquire returns the next surface texture. Acquisition failures are
	// reported using the surface sentinel errors where possible.
	Acquire() (Frame, error)

	// Clear records and submits a render pass that clears the frame.
	Clear(frame Frame, color Color) error

	Present(frame Frame) error
}

// Frame is one acquired surface texture. It is valid for exactly one
// clear and present cycle and must be released afterwards.
type Frame interface {
	Size() (uint32, uint32)
	Release()
}

type surfaceFrame struct {
	texture *wgpu.Texture
	target  RenderTarget
}

func (f *surfaceFrame) Size() (uint32, uint32) {
	return f.target.Width, f.target.Height
}

func (f *surfaceFrame) Release() {
	f.target.View.Release()
	f.texture.Release()
}

// surfaceBackend presents to the surface of a Context.
type surfaceBackend struct {
	ctx   *Context
	clear *ClearCommand
}

func NewSurfaceBackend(ctx *Context) Backend {
	return &surfaceBackend{ctx: ctx, clear: NewClear(ctx)}
}

func (b *surfaceBackend) Capabilities() SurfaceCapabilities {
	caps := b.ctx.Surface.GetCapabilities(b.ctx.Adapter)

	return SurfaceCapabilities{
		Formats:      caps.Formats,
		PresentModes: caps.PresentModes,
		AlphaModes:   caps.AlphaModes,
	}
}

func (b *surfaceBackend) Configure(config SurfaceConfig) error {
	b.ctx.Surface.Configure(b.ctx.Adapter, b.ctx.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      config.Format,
		Width:       config.Width,
		Height:      config.Height,
		PresentMode: config.PresentMode,
		AlphaMode:   config.AlphaMode,
	})

	return nil
}

func (b *surfaceBackend) Acquire() (Frame, error) {
	texture, err := b.ctx.Surface.GetCurrentTexture()
	if err != nil {
		return nil, classifySurfaceError(err)
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create surface view: %w", err)
	}

	frame := &surfaceFrame{
		texture: texture,
		target: RenderTarget{
			View:   view,
			Width:  texture.GetWidth(),
			Height: texture.GetHeight(),
		},
	}

	return frame, nil
}

func (b *surfaceBackend) Clear(frame Frame, color Color) error {
	return b.clear.Clear(&frame.(*surfaceFrame).target, color)
}

func (b *surfaceBackend) Present(frame Frame) error {
	b.ctx.Surface.Present()
	return nil
}
