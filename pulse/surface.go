package pulse

import (
	"errors"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// PresentMode controls how presented frames are delivered to the display.
type PresentMode int

const (
	// PresentModeAuto uses the first mode the surface offers.
	PresentModeAuto PresentMode = iota

	// PresentModeVSync waits for the vertical blank, never tears.
	PresentModeVSync

	// PresentModeUncapped presents immediately and may tear.
	PresentModeUncapped

	// PresentModeMailbox replaces the queued frame with the newest one.
	PresentModeMailbox
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "VSync"
	case PresentModeUncapped:
		return "Uncapped"
	case PresentModeMailbox:
		return "Mailbox"
	default:
		return "Auto"
	}
}

// SurfaceCapabilities lists what a surface supports, in the order the
// backend prefers them.
type SurfaceCapabilities struct {
	Formats      []wgpu.TextureFormat
	PresentModes []wgpu.PresentMode
	AlphaModes   []wgpu.CompositeAlphaMode
}

// SurfaceConfig describes how the surface is configured. Width and
// Height are always greater than zero once applied.
//
// The number of frames queued for presentation is not part of the
// configuration: wgpu.SurfaceConfiguration has no field for it, so the
// native default applies.
type SurfaceConfig struct {
	Format      wgpu.TextureFormat
	PresentMode wgpu.PresentMode
	AlphaMode   wgpu.CompositeAlphaMode

	Width  uint32
	Height uint32
}

var errNoSurfaceFormat = errors.New("surface offers no texture format")
var errNoAlphaMode = errors.New("surface offers no alpha mode")
var errNoPresentMode = errors.New("surface offers no present mode")

// chooseFormat picks the first srgb format, falling back to the first
// format offered.
func chooseFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	if len(formats) == 0 {
		return 0, errNoSurfaceFormat
	}

	for _, format := range formats {
		if isSRGB(format) {
			return format, nil
		}
	}

	return formats[0], nil
}

func isSRGB(format wgpu.TextureFormat) bool {
	switch format {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	default:
		return false
	}
}

// choosePresentMode returns the requested mode if the surface offers it,
// otherwise the first mode offered.
func choosePresentMode(offered []wgpu.PresentMode, requested PresentMode) (wgpu.PresentMode, error) {
	if len(offered) == 0 {
		return 0, errNoPresentMode
	}

	var want wgpu.PresentMode
	switch requested {
	case PresentModeVSync:
		want = wgpu.PresentModeFifo
	case PresentModeUncapped:
		want = wgpu.PresentModeImmediate
	case PresentModeMailbox:
		want = wgpu.PresentModeMailbox
	default:
		return offered[0], nil
	}

	for _, mode := range offered {
		if mode == want {
			return mode, nil
		}
	}

	slog.Warn("Requested present mode not supported, using the surface default",
		slog.String("requested", requested.String()),
	)

	return offered[0], nil
}
