package util

import "math"

// Midpoint returns the value halfway between a and b without
// overflowing at the float64 extremes. A NaN result from ordered
// inputs, which only arises when averaging opposite infinities, is
// canonicalized to 0; a NaN input propagates.
func Midpoint(a, b float64) float64 {
	mid := a/2 + b/2
	if math.IsNaN(mid) && !math.IsNaN(a) && !math.IsNaN(b) {
		return 0
	}
	return mid
}
