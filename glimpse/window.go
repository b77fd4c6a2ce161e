package glimpse

import "github.com/cogentcore/webgpu/wgpu"

// Window is a single platform window. All methods must be called from the
// thread that created the window.
type Window interface {
	// Size returns the last known framebuffer size in pixels. It is updated
	// before the matching Resized event is returned by PollEvents.
	Size() (uint32, uint32)

	// SetTitle updates the window title, best effort.
	SetTitle(title string)

	// RequestRedraw schedules a RedrawRequested event for the next call
	// to PollEvents. Requests between two polls are coalesced.
	RequestRedraw()

	// PollEvents processes pending platform events and returns them in
	// arrival order. If no redraw is pending, it blocks until at least one
	// platform event arrives.
	PollEvents() []Event

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	Terminate()
}
