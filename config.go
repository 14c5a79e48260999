package fractal

import (
	"errors"
	"fmt"
	"math"
)

// Mode selects the fractal family.
type Mode uint8

const (
	// Mandelbrot starts every orbit at 0 and uses the pixel's point as c.
	Mandelbrot Mode = iota
	// Julia starts the orbit at the pixel's point and uses the configured constant as c.
	Julia
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Mandelbrot, Julia:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("fractal: unknown mode %d", uint8(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "mandelbrot":
		*m = Mandelbrot
	case "julia":
		*m = Julia
	default:
		return fmt.Errorf("fractal: unknown mode %q", text)
	}
	return nil
}

// RenderConfig describes one render. It is built once, validated, and then
// only read; it may be shared by any number of goroutines.
type RenderConfig struct {
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	MaxIterations int     `json:"max_iterations"`
	CenterReal    float64 `json:"center_r"`
	CenterImag    float64 `json:"center_i"`
	Zoom          float64 `json:"zoom"`

	// Julia constant, used only when Mode is Julia.
	JuliaReal float64 `json:"cr"`
	JuliaImag float64 `json:"ci"`

	Mode Mode `json:"mode"`

	// ColorMultiplier scales the color period; ColorOffset shifts its phase.
	// An offset of 1 is a full period.
	ColorMultiplier float64 `json:"multiplier"`
	ColorOffset     float64 `json:"offset"`
}

// DefaultConfig returns the classic full view of the Mandelbrot set:
// 800x800 pixels, 256 iterations, centered on the origin at zoom 1.
// The Julia constant components default independently to zero.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		Width:           800,
		Height:          800,
		MaxIterations:   256,
		Zoom:            1,
		Mode:            Mandelbrot,
		ColorMultiplier: 1,
	}
}

// Validate reports every violated invariant, joined, each wrapping
// ErrInvalidConfig. The numeric core assumes a config that passes Validate.
func (c RenderConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Width <= 0 {
		bad("width %d must be positive", c.Width)
	}
	if c.Height <= 0 {
		bad("height %d must be positive", c.Height)
	}
	if c.MaxIterations <= 0 {
		bad("max iterations %d must be positive", c.MaxIterations)
	}
	if !(c.Zoom > 0) || math.IsInf(c.Zoom, 0) {
		bad("zoom %v must be positive and finite", c.Zoom)
	}
	if c.Mode != Mandelbrot && c.Mode != Julia {
		bad("unknown mode %d", uint8(c.Mode))
	}

	finite := []struct {
		name string
		v    float64
	}{
		{"center real", c.CenterReal},
		{"center imag", c.CenterImag},
		{"julia real", c.JuliaReal},
		{"julia imag", c.JuliaImag},
		{"color multiplier", c.ColorMultiplier},
		{"color offset", c.ColorOffset},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			bad("%s %v must be finite", f.name, f.v)
		}
	}

	return errors.Join(errs...)
}

// Pixels returns Width * Height.
func (c RenderConfig) Pixels() int {
	return c.Width * c.Height
}

// scaled returns a copy with the pixel grid multiplied by factor. The plane
// extent is unchanged, so the copy frames the same region at higher density.
func (c RenderConfig) scaled(factor int) RenderConfig {
	c.Width *= factor
	c.Height *= factor
	return c
}
