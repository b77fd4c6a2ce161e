package orion

import (
	"fmt"
	"strings"

	"github.com/pkg/profile"
)

type noopProfile struct{}

func (noopProfile) Stop() {}

func startProfile(mode string) (interface{ Stop() }, error) {
	switch strings.ToLower(mode) {
	case "":
		return noopProfile{}, nil

	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil

	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil

	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}
