package color

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette is the palette used when none is named.
const DefaultPalette = "hot"

type paletteDef struct {
	blend    Blend
	interior RGB
	stops    func() ([]Stop, error)
}

func hexStops(offsets []float64, hexes ...string) func() ([]Stop, error) {
	return func() ([]Stop, error) {
		stops := make([]Stop, len(hexes))
		for i, h := range hexes {
			s, err := HexStop(offsets[i], h)
			if err != nil {
				return nil, err
			}
			stops[i] = s
		}
		return stops, nil
	}
}

// hueStops walks the HSV hue circle once at full saturation and value.
func hueStops(n int) func() ([]Stop, error) {
	return func() ([]Stop, error) {
		stops := make([]Stop, n+1)
		for i := range stops {
			t := float64(i) / float64(n)
			stops[i] = Stop{Offset: t, Color: colorful.Hsv(360*t, 1, 1)}
		}
		return stops, nil
	}
}

var black = RGB{}

var palettes = map[string]paletteDef{
	// Black through red and yellow to white, with the breakpoints of the
	// classic "hot" colormap.
	"hot": {
		blend:    BlendRGB,
		interior: black,
		stops: hexStops([]float64{0, 0.365079, 0.746032, 1},
			"#0b0000", "#ff0000", "#ffff00", "#ffffff"),
	},
	"gray": {
		blend:    BlendRGB,
		interior: black,
		stops:    hexStops([]float64{0, 1}, "#000000", "#ffffff"),
	},
	"ocean": {
		blend:    BlendLab,
		interior: black,
		stops: hexStops([]float64{0, 0.16, 0.42, 0.6425, 0.8575, 1},
			"#000764", "#206bcb", "#edffff", "#ffaa00", "#000200", "#000764"),
	},
	"fire": {
		blend:    BlendHcl,
		interior: black,
		stops: hexStops([]float64{0, 0.3, 0.6, 0.85, 1},
			"#120308", "#8e0e00", "#f25c05", "#fcd116", "#fff7d6"),
	},
	"rainbow": {
		blend:    BlendRGB,
		interior: black,
		stops:    hueStops(6),
	},
}

// Names returns the registered palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named builds the table for a registered palette.
// An empty name selects DefaultPalette.
func Named(name string) (*Table, error) {
	if name == "" {
		name = DefaultPalette
	}
	def, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	stops, err := def.stops()
	if err != nil {
		return nil, fmt.Errorf("color: palette %q: %w", name, err)
	}
	return NewTable(stops, DefaultTableSize, def.blend, def.interior)
}
