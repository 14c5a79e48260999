package color

import (
	"fmt"
	"math"
	"sort"
)

// DefaultTableSize is the number of entries in a palette table.
// 1024 entries keep neighboring bands visually continuous at 8 bits.
const DefaultTableSize = 1024

// Table maps normalized values in [0, 1) to colors.
//
// Negative inputs (the interior sentinel) map to the interior color.
// A Table is immutable and safe for concurrent use.
type Table struct {
	entries  []RGB
	interior RGB
}

// NewTable builds a table of size entries by blending stops.
//
// Stops need not be sorted. Positions before the first stop or after the last
// take that stop's color. Entry i samples the palette at (i+0.5)/size, the
// center of the interval it is looked up for.
func NewTable(stops []Stop, size int, blend Blend, interior RGB) (*Table, error) {
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	if size <= 0 {
		return nil, fmt.Errorf("color: table size %d must be positive", size)
	}

	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	t := &Table{
		entries:  make([]RGB, size),
		interior: interior,
	}
	for i := range t.entries {
		pos := (float64(i) + 0.5) / float64(size)
		t.entries[i] = sample(sorted, pos, blend)
	}
	return t, nil
}

// sample returns the palette color at pos. stops must be sorted.
func sample(stops []Stop, pos float64, blend Blend) RGB {
	if pos <= stops[0].Offset {
		return FromColorful(stops[0].Color)
	}
	last := stops[len(stops)-1]
	if pos >= last.Offset {
		return FromColorful(last.Color)
	}

	// First stop strictly after pos; it exists because pos < last.Offset.
	j := sort.Search(len(stops), func(k int) bool { return stops[k].Offset > pos })
	lo, hi := stops[j-1], stops[j]

	span := hi.Offset - lo.Offset
	if span <= 0 {
		return FromColorful(hi.Color)
	}
	return FromColorful(blend.mix(lo.Color, hi.Color, (pos-lo.Offset)/span))
}

// Lookup returns the color for a normalized value.
//
// v in [0, 1) selects entries[floor(v*len)]. Negative v returns the interior
// color. Values at or above 1 clamp to the last entry and NaN maps to the
// interior color, so a malformed field never indexes out of range.
func (t *Table) Lookup(v float64) RGB {
	if v < 0 || math.IsNaN(v) {
		return t.interior
	}
	idx := int(v * float64(len(t.entries)))
	if idx >= len(t.entries) {
		idx = len(t.entries) - 1
	}
	return t.entries[idx]
}

// RGB returns Lookup(v) as separate components.
func (t *Table) RGB(v float64) (r, g, b uint8) {
	c := t.Lookup(v)
	return c.R, c.G, c.B
}
