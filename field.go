package fractal

import "math"

// Field is a row-major grid of one float64 per pixel.
//
// A render produces a field of potentials; Normalize turns it, in place, into
// a field of color-table inputs in [0, 1). In both forms InteriorSentinel
// marks points inside the set.
type Field struct {
	width  int
	height int
	data   []float64
}

// NewField allocates a zeroed width x height field.
func NewField(width, height int) *Field {
	return &Field{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
}

// NewFieldFrom wraps data as a width x height field. It returns nil if the
// length does not match.
func NewFieldFrom(width, height int, data []float64) *Field {
	if width < 0 || height < 0 || len(data) != width*height {
		return nil
	}
	return &Field{width: width, height: height, data: data}
}

// Width returns the field width in pixels.
func (f *Field) Width() int {
	return f.width
}

// Height returns the field height in pixels.
func (f *Field) Height() int {
	return f.height
}

// Data returns the underlying values in row-major order.
func (f *Field) Data() []float64 {
	return f.data
}

// At returns the value at pixel (x, y).
func (f *Field) At(x, y int) float64 {
	return f.data[y*f.width+x]
}

// Set stores v at pixel (x, y).
func (f *Field) Set(x, y int, v float64) {
	f.data[y*f.width+x] = v
}

// Row returns the values of row y. The slice aliases the field.
func (f *Field) Row(y int) []float64 {
	return f.data[y*f.width : (y+1)*f.width]
}

// FieldStats summarizes a field.
type FieldStats struct {
	// Min and Max range over non-sentinel values. Both are NaN if every
	// point is interior.
	Min, Max float64

	// Interior counts points holding InteriorSentinel.
	Interior int
}

// Stats computes the field's value range and interior count.
func (f *Field) Stats() FieldStats {
	s := FieldStats{Min: math.NaN(), Max: math.NaN()}
	for _, v := range f.data {
		if v < 0 {
			s.Interior++
			continue
		}
		if math.IsNaN(s.Min) || v < s.Min {
			s.Min = v
		}
		if math.IsNaN(s.Max) || v > s.Max {
			s.Max = v
		}
	}
	return s
}
