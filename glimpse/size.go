package glimpse

import (
	"math"

	"golang.org/x/exp/constraints"
)

// pixels converts a platform reported size to surface pixels. Negative
// values become zero.
func pixels[T constraints.Integer](width, height T) (uint32, uint32) {
	return clampPixels(width), clampPixels(height)
}

func clampPixels[T constraints.Integer](value T) uint32 {
	if value <= 0 {
		return 0
	}

	if uint64(value) > math.MaxUint32 {
		return math.MaxUint32
	}

	return uint32(value)
}
