// Package noise provides deterministic hash-based pseudo-random generators.
//
// Every generator maps an input coordinate to a value in [0, 1] with no
// internal state, so the same coordinate always produces the same value and
// generators can be shared freely between goroutines.
package noise

import "fmt"

// Source maps coordinates to deterministic pseudo-random values in [0, 1]
type Source interface {
	Rand21(x, y float32) float32
	Rand22(x, y float32) (float32, float32)
	Rand33(x, y, z float32) (float32, float32, float32)
}

// Source names accepted by NewSource
const (
	SourceXorshift = "xorshift"
	SourceFractSin = "fractsin"
)

// NewSource returns the generator registered under name
func NewSource(name string) (Source, error) {
	switch name {
	case SourceXorshift, "":
		return Xorshift{}, nil
	case SourceFractSin:
		return FractSin{}, nil
	default:
		return nil, fmt.Errorf("unknown noise source %q (available: %s, %s)", name, SourceXorshift, SourceFractSin)
	}
}
