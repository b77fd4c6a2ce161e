package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/sketch/glimpse"
	"github.com/oliverbestmann/sketch/pulse"
)

// Presenter is the part of *pulse.Presenter driven by the loop.
type Presenter interface {
	Config() pulse.SurfaceConfig
	Reconfigure(width, height uint32) error
	Restore() error
	RenderFrame() error
}

var _ Presenter = (*pulse.Presenter)(nil)

type LoopOptions struct {
	// base window title, used when showing the frame rate
	Title string

	TargetFPS float64
	ShowFPS   bool
}

// Loop dispatches window events to a presenter, one event at a time.
type Loop struct {
	window    glimpse.Window
	presenter Presenter
	opts      LoopOptions

	pacer *Pacer
	times FrameTimes
}

func NewLoop(window glimpse.Window, presenter Presenter, opts LoopOptions) *Loop {
	return &Loop{
		window:    window,
		presenter: presenter,
		opts:      opts,
		pacer:     NewPacer(opts.TargetFPS),
	}
}

// Run processes events until the window is closed, Escape is pressed or
// a fatal error occurs.
func (l *Loop) Run() error {
	if budget := l.pacer.Budget(); budget > 0 {
		slog.Info("Pacing frames", slog.Duration("budget", budget))
	}

	l.window.RequestRedraw()

	for {
		for _, event := range l.window.PollEvents() {
			done, err := l.handle(event)
			if err != nil {
				return err
			}

			if done {
				return nil
			}
		}
	}
}

// FrameTimes returns the statistics of the frames rendered so far.
func (l *Loop) FrameTimes() FrameTimes {
	return l.times
}

func (l *Loop) handle(event glimpse.Event) (done bool, err error) {
	switch event := event.(type) {
	case glimpse.CloseRequested:
		slog.Info("Close requested")
		return true, nil

	case glimpse.KeyPressed:
		if event.Key == glimpse.KeyEscape {
			slog.Info("Escape pressed")
			return true, nil
		}

	case glimpse.Resized:
		slog.Debug("Resize surface",
			slog.Int("width", int(event.Width)),
			slog.Int("height", int(event.Height)),
		)

		if err := l.presenter.Reconfigure(event.Width, event.Height); err != nil {
			return true, fmt.Errorf("resize surface: %w", err)
		}

		l.window.RequestRedraw()

	case glimpse.RedrawRequested:
		return l.redraw()
	}

	return false, nil
}

func (l *Loop) redraw() (done bool, err error) {
	width, height := l.window.Size()
	if width == 0 || height == 0 {
		// minimized, the next resize requests a redraw
		return false, nil
	}

	// the surface does not report when it is outdated, so follow the
	// window size before acquiring a frame
	if config := l.presenter.Config(); config.Width != width || config.Height != height {
		if err := l.presenter.Reconfigure(width, height); err != nil {
			return true, fmt.Errorf("resize surface: %w", err)
		}
	}

	l.pacer.Wait()

	if l.times.Tick(l.pacer.now()) {
		slog.Debug("Frame times",
			slog.Float64("fps", l.times.SampledFPS),
			slog.Duration("average", l.times.AverageDuration),
			slog.Duration("max", l.times.MaxDuration),
		)

		if l.opts.ShowFPS {
			l.window.SetTitle(fmt.Sprintf("%s - FPS: %1.0f", l.opts.Title, l.times.SampledFPS))
		}
	}

	err = l.presenter.RenderFrame()

	switch {
	case err == nil:

	case errors.Is(err, pulse.ErrNotConfigured):
		// nothing to draw to, wait for the next resize
		return false, nil

	case pulse.NeedsReconfigure(err):
		slog.Info("Reconfigure surface", slog.String("reason", err.Error()))

		if err := l.presenter.Restore(); err != nil {
			return true, fmt.Errorf("restore surface: %w", err)
		}

	case errors.Is(err, pulse.ErrSurfaceTimeout):
		slog.Warn("Surface timeout, dropping frame")

	case errors.Is(err, pulse.ErrOutOfMemory):
		slog.Error("Out of memory, stopping")
		return true, fmt.Errorf("render frame: %w", err)

	default:
		return true, fmt.Errorf("render frame: %w", err)
	}

	l.window.RequestRedraw()

	return false, nil
}
