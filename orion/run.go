package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/sketch/glimpse"
	"github.com/oliverbestmann/sketch/pulse"
)

// Run opens the window and presents cleared frames until the window is
// closed or Escape is pressed. It returns an error for fatal conditions only.
func Run(opts Options) error {
	opts = opts.withDefaults()

	prof, err := startProfile(opts.Profile)
	if err != nil {
		return err
	}

	defer prof.Stop()

	// create a new window
	win, err := glimpse.NewWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.NewContext(win.SurfaceDescriptor(), opts.PowerPreference)
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	presenter := pulse.NewPresenter(pulse.NewSurfaceBackend(ctx), pulse.PresenterOptions{
		ClearColor:  opts.ClearColor,
		PresentMode: opts.PresentMode,
	})

	if err := presenter.Initialize(win.Size()); err != nil {
		return fmt.Errorf("initialize presenter: %w", err)
	}

	loop := NewLoop(win, presenter, LoopOptions{
		Title:     opts.WindowTitle,
		TargetFPS: opts.TargetFPS,
		ShowFPS:   opts.ShowFPS,
	})

	err = loop.Run()

	times := loop.FrameTimes()
	slog.Info("Loop stopped",
		slog.Uint64("frames", times.FrameCount),
		slog.Float64("fps", times.FPS()),
		slog.Duration("maxFrameTime", times.MaxDuration),
	)

	return err
}
