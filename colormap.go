package fractal

import intColor "github.com/gogpu/fractal/internal/color"

// ColorMap turns a normalized value into a color. Values in [0, 1) select a
// gradient color; negative values (InteriorSentinel) select the interior color.
type ColorMap interface {
	RGB(v float64) (r, g, b uint8)
}

// DefaultPalette names the palette used when none is given.
const DefaultPalette = intColor.DefaultPalette

// Palette returns the named built-in palette. The empty name selects
// DefaultPalette.
func Palette(name string) (ColorMap, error) {
	t, err := intColor.Named(name)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// PaletteNames lists the built-in palettes in sorted order.
func PaletteNames() []string {
	return intColor.Names()
}

func colorizeSlice(dst []uint8, values []float64, cm ColorMap) {
	for i, v := range values {
		r, g, b := cm.RGB(v)
		dst[i*3+0] = r
		dst[i*3+1] = g
		dst[i*3+2] = b
	}
}
