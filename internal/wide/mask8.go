package wide

// Mask8 holds one bit per lane of an F64x8. Bit i set means lane i is selected.
type Mask8 uint8

// MaskAll selects every lane.
const MaskAll Mask8 = 0xFF

// FirstN returns a mask selecting lanes [0, n). n is clamped to [0, Lanes].
func FirstN(n int) Mask8 {
	if n <= 0 {
		return 0
	}
	if n >= Lanes {
		return MaskAll
	}
	return Mask8(1<<n - 1)
}

// Any reports whether at least one lane is selected.
func (m Mask8) Any() bool { return m != 0 }

// Has reports whether lane i is selected.
func (m Mask8) Has(i int) bool { return m&(1<<i) != 0 }

// And returns the lanes selected in both m and other.
func (m Mask8) And(other Mask8) Mask8 { return m & other }

// Or returns the lanes selected in either m or other.
func (m Mask8) Or(other Mask8) Mask8 { return m | other }

// AndNot returns the lanes selected in m but not in other.
func (m Mask8) AndNot(other Mask8) Mask8 { return m &^ other }
