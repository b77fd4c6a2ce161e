package pulse

import "github.com/cogentcore/webgpu/wgpu"

// RenderTarget holds all the information of something that can be rendered to.
// For this program that is always the current surface texture.
type RenderTarget struct {
	View *wgpu.TextureView

	// Size of the target to render to
	Width  uint32
	Height uint32
}
