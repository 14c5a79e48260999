// Package color turns normalized escape values into RGB triples.
//
// A Table is a lookup table of RGB entries built once from a handful of
// palette stops. Lookups are a multiply, a truncation, and an index, so
// coloring a field costs no more than copying it.
//
// Stops are blended with go-colorful in the color space chosen by the
// palette: straight RGB for palettes that must reproduce a fixed ramp
// (hot, gray), CIE L*a*b* or HCL for perceptually even ramps.
package color

import (
	"errors"

	"github.com/lucasb-eyer/go-colorful"
)

// Errors returned while building tables.
var (
	// ErrNoStops is returned when a palette has no color stops.
	ErrNoStops = errors.New("color: palette has no stops")

	// ErrUnknownPalette is returned by Named for an unregistered name.
	ErrUnknownPalette = errors.New("color: unknown palette")
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// FromColorful converts a go-colorful color, clamping out-of-gamut values.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Blend selects the color space stops are interpolated in.
type Blend uint8

const (
	// BlendRGB interpolates sRGB components directly.
	BlendRGB Blend = iota
	// BlendLab interpolates in CIE L*a*b*.
	BlendLab
	// BlendHcl interpolates in HCL (polar L*a*b*), taking the short way round the hue circle.
	BlendHcl
)

// String returns the blend name.
func (b Blend) String() string {
	switch b {
	case BlendRGB:
		return "rgb"
	case BlendLab:
		return "lab"
	case BlendHcl:
		return "hcl"
	default:
		return "unknown"
	}
}

func (b Blend) mix(c1, c2 colorful.Color, t float64) colorful.Color {
	switch b {
	case BlendLab:
		return c1.BlendLab(c2, t)
	case BlendHcl:
		return c1.BlendHcl(c2, t)
	default:
		return c1.BlendRgb(c2, t)
	}
}

// Stop is a palette color at a position in [0, 1].
type Stop struct {
	Offset float64
	Color  colorful.Color
}

// HexStop builds a Stop from a "#rrggbb" string.
func HexStop(offset float64, hex string) (Stop, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Stop{}, err
	}
	return Stop{Offset: offset, Color: c}, nil
}
