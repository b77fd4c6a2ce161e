package pulse

import (
	"errors"
	"fmt"
	"log/slog"
)

type PresenterOptions struct {
	// color every frame is cleared to
	ClearColor Color

	PresentMode PresentMode
}

// Presenter owns the surface configuration and runs one clear and present
// cycle per RenderFrame call.
type Presenter struct {
	backend Backend
	opts    PresenterOptions

	config      SurfaceConfig
	initialized bool

	// true once the surface was configured with a non zero size
	configured bool

	presented uint64
}

func NewPresenter(backend Backend, opts PresenterOptions) *Presenter {
	return &Presenter{backend: backend, opts: opts}
}

// Initialize derives the surface configuration from the surface
// capabilities and configures the surface for the given size. With a zero
// dimension the surface stays unconfigured until the first valid Reconfigure.
func (p *Presenter) Initialize(width, height uint32) error {
	if p.initialized {
		return errors.New("presenter already initialized")
	}

	caps := p.backend.Capabilities()

	format, err := chooseFormat(caps.Formats)
	if err != nil {
		return err
	}

	presentMode, err := choosePresentMode(caps.PresentModes, p.opts.PresentMode)
	if err != nil {
		return err
	}

	if len(caps.AlphaModes) == 0 {
		return errNoAlphaMode
	}

	p.config = SurfaceConfig{
		Format:      format,
		PresentMode: presentMode,
		AlphaMode:   caps.AlphaModes[0],
	}

	p.initialized = true

	slog.Info("Surface capabilities",
		slog.Any("formats", caps.Formats),
		slog.Any("presentModes", caps.PresentModes),
		slog.Any("selectedFormat", format),
		slog.Any("selectedPresentMode", presentMode),
	)

	if width == 0 || height == 0 {
		slog.Info("Window has no area yet, deferring surface configuration")
		return nil
	}

	return p.configure(width, height)
}

// Reconfigure applies a new surface size. A zero dimension, as reported
// while a window is minimized, keeps the current configuration.
func (p *Presenter) Reconfigure(width, height uint32) error {
	if !p.initialized {
		return errors.New("presenter not initialized")
	}

	if width == 0 || height == 0 {
		slog.Debug("Ignore resize to zero size",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)

		return nil
	}

	return p.configure(width, height)
}

// Restore configures the surface again using the last applied size.
func (p *Presenter) Restore() error {
	if !p.configured {
		return nil
	}

	return p.configure(p.config.Width, p.config.Height)
}

func (p *Presenter) configure(width, height uint32) error {
	config := p.config
	config.Width = width
	config.Height = height

	if err := p.backend.Configure(config); err != nil {
		return fmt.Errorf("configure surface %dx%d: %w", width, height, err)
	}

	p.config = config
	p.configured = true

	return nil
}

// RenderFrame acquires the next surface texture, clears it and presents
// it. Acquisition failures are reported using ErrSurfaceLost,
// ErrSurfaceOutdated, ErrSurfaceTimeout and ErrOutOfMemory.
func (p *Presenter) RenderFrame() error {
	if !p.configured {
		return ErrNotConfigured
	}

	frame, err := p.backend.Acquire()
	if err != nil {
		return fmt.Errorf("acquire frame: %w", err)
	}

	frameGuard := NewReleaseGuard(frame)
	defer frameGuard.Release()

	// never present an image that does not match the configured size
	width, height := frame.Size()
	if width != p.config.Width || height != p.config.Height {
		return fmt.Errorf("frame is %dx%d, surface is %dx%d: %w",
			width, height, p.config.Width, p.config.Height, ErrSurfaceOutdated)
	}

	if err := p.backend.Clear(frame, p.opts.ClearColor); err != nil {
		return fmt.Errorf("clear frame: %w", err)
	}

	if err := p.backend.Present(frame); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}

	p.presented += 1

	return nil
}

// Config returns the surface configuration last applied.
func (p *Presenter) Config() SurfaceConfig {
	return p.config
}

// Presented returns the number of frames presented so far.
func (p *Presenter) Presented() uint64 {
	return p.presented
}
