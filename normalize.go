package fractal

import "math"

// machineEpsilon is the gap between 1.0 and the next float64.
const machineEpsilon = 0x1p-52

// NormalizeValue folds a potential into a periodic value in [0, 1).
//
//	x = log2(potential + 1) * multiplier + offset
//	v = (0.5*sin(2πx) + 0.5) / (1 + ε)
//
// Dividing by 1+ε keeps the maximum strictly below 1, so a color table indexed
// by floor(v*n) stays in range. Negative potentials (the interior sentinel)
// return InteriorSentinel. A phase that overflows to ±Inf is treated as 0.
func NormalizeValue(potential, multiplier, offset float64) float64 {
	if !(potential >= 0) {
		return InteriorSentinel
	}

	x := math.Log2(potential+1)*multiplier + offset
	if math.IsInf(x, 0) || math.IsNaN(x) {
		x = 0
	}
	// Reducing to [0, 1) first keeps the sine argument small, so shifting
	// offset by whole periods does not lose precision.
	x -= math.Floor(x)

	return (0.5*math.Sin(2*math.Pi*x) + 0.5) / (1 + machineEpsilon)
}

// Normalize replaces every potential in f with its normalized value and
// returns f. The field is consumed: afterwards it holds color-table inputs,
// not potentials.
func Normalize(f *Field, multiplier, offset float64) *Field {
	normalizeSlice(f.data, multiplier, offset)
	return f
}

func normalizeSlice(values []float64, multiplier, offset float64) {
	for i, p := range values {
		values[i] = NormalizeValue(p, multiplier, offset)
	}
}
