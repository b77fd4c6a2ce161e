package pulse

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSurfaceLost means the surface must be configured again before use.
	ErrSurfaceLost = errors.New("surface lost")

	// ErrSurfaceOutdated means the surface no longer matches the window.
	ErrSurfaceOutdated = errors.New("surface outdated")

	// ErrSurfaceTimeout means no surface texture became available in time.
	// The frame is dropped.
	ErrSurfaceTimeout = errors.New("surface timeout")

	// ErrOutOfMemory is not recoverable.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrNotConfigured is returned by RenderFrame until the surface has
	// been configured with a non zero size.
	ErrNotConfigured = errors.New("surface not configured")
)

// NeedsReconfigure reports whether err is resolved by configuring the
// surface again with its last known size.
func NeedsReconfigure(err error) bool {
	return errors.Is(err, ErrSurfaceLost) || errors.Is(err, ErrSurfaceOutdated)
}

// classifySurfaceError maps an error from acquiring a surface texture to
// one of the surface sentinels. wgpu.Surface.GetCurrentTexture does not
// return the surface status, it only reports errors captured by the
// device's validation error scope. Messages naming a surface condition are
// mapped, everything else is returned as is. Size changes never get here,
// the driver loop reconfigures before acquiring.
func classifySurfaceError(err error) error {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "devicelost"), strings.Contains(msg, "device lost"):
		return err

	case strings.Contains(msg, "outofmemory"), strings.Contains(msg, "out of memory"):
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)

	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %w", ErrSurfaceOutdated, err)

	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %w", ErrSurfaceLost, err)

	case strings.Contains(msg, "timeout"):
		return fmt.Errorf("%w: %w", ErrSurfaceTimeout, err)

	default:
		return err
	}
}
