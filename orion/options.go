package orion

import "github.com/oliverbestmann/sketch/pulse"

type Options struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// color the window is cleared to every frame. The zero value is white.
	ClearColor pulse.Color

	PowerPreference pulse.PowerPreference
	PresentMode     pulse.PresentMode

	// caps the frame rate if greater than zero
	TargetFPS float64

	// show the measured frames per second in the window title
	ShowFPS bool

	// profile the session using github.com/pkg/profile, "cpu" or "mem"
	Profile string
}

func (opts Options) withDefaults() Options {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1280
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 720
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Motion Sketch"
	}

	return opts
}
