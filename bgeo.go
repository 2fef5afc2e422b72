package bgeo

import (
	"errors"
	"math"
)

// Epsilon is the tolerance used for all fuzzy-zero comparisons in this
// package: the smallest relative step between adjacent float32 values.
// Quantities whose magnitude falls below it are treated as zero.
const Epsilon float32 = 1.1920929e-07

// ErrInvalidArgument is returned, wrapped with detail, when an operation is
// called with an argument outside its domain, such as a non-positive radius
// or part count. It is distinct from an empty result: degenerate geometry
// (zero-length segments, non-intersecting shapes) reports a valid absence,
// not an error.
var ErrInvalidArgument = errors.New("invalid argument")

func sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}

func hypot32(x, y float32) float32 {
	return float32(math.Hypot(float64(x), float64(y)))
}

// nearZero reports whether f is within Epsilon of zero.
func nearZero(f float32) bool {
	return abs32(f) < Epsilon
}

func abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
