package fractal

import "math"

// InteriorSentinel marks points that never escaped. Every potential of an
// escaped point is >= 0, so the sentinel cannot collide with real data.
const InteriorSentinel = -1.0

// SmoothPotential converts an escape result into a continuous iteration count.
//
// For escaped points it returns
//
//	n + 1 - log2(log2(|z|²) / 2)
//
// which interpolates between integer iteration counts and removes banding.
// |z|² > 4 on escape, so both logarithms are of values greater than 1.
// An overflowed magnitude is treated as math.MaxFloat64, and the result is
// clamped at 0 for orbits that overshoot far past the radius on their first
// iteration. Points that did not escape return InteriorSentinel.
func SmoothPotential(r EscapeResult) float64 {
	if !r.Escaped {
		return InteriorSentinel
	}

	mag := r.MagnitudeSquared
	if !(mag <= math.MaxFloat64) {
		mag = math.MaxFloat64
	}

	nu := math.Log2(math.Log2(mag) / 2)
	return math.Max(0, float64(r.Iterations)+1-nu)
}
