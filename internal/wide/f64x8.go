package wide

// Lanes is the number of values carried by F64x8 and Mask8.
const Lanes = 8

// F64x8 represents 8 float64 values for SIMD-style operations.
type F64x8 [Lanes]float64

// Add performs element-wise addition.
func (v F64x8) Add(other F64x8) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F64x8) Sub(other F64x8) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
// Each product is rounded to float64 before it is returned, so a following
// Add is never fused with it.
func (v F64x8) Mul(other F64x8) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = float64(v[i] * other[i])
	}
	return result
}

// Scale multiplies every element by s.
func (v F64x8) Scale(s float64) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = float64(v[i] * s)
	}
	return result
}

// Select returns v in the lanes set in m and other in the remaining lanes.
func (v F64x8) Select(m Mask8, other F64x8) F64x8 {
	var result F64x8
	for i := range v {
		if m&(1<<i) != 0 {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Exceeds returns the lanes whose value is not <= limit.
// NaN lanes are reported as exceeding, as are +Inf lanes.
func (v F64x8) Exceeds(limit float64) Mask8 {
	var m Mask8
	for i := range v {
		if !(v[i] <= limit) {
			m |= 1 << i
		}
	}
	return m
}

