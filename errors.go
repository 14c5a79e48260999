package fractal

import (
	"errors"
	"fmt"

	intColor "github.com/gogpu/fractal/internal/color"
	intImage "github.com/gogpu/fractal/internal/image"
)

// Sentinel errors.
var (
	// ErrInvalidConfig is returned when a RenderConfig violates its invariants.
	ErrInvalidConfig = errors.New("fractal: invalid config")

	// ErrNoRawField is returned by Recolor when no raw field file exists.
	ErrNoRawField = errors.New("fractal: no raw field for output")

	// ErrFieldSize is returned when a raw field's length does not match the
	// dimensions recorded in its metadata.
	ErrFieldSize = errors.New("fractal: raw field size mismatch")

	// ErrUnsupportedFormat is returned when the output extension names no
	// known image format.
	ErrUnsupportedFormat = intImage.ErrUnsupportedFormat

	// ErrUnknownPalette is returned for a palette name that is not built in.
	ErrUnknownPalette = intColor.ErrUnknownPalette
)

// IOError reports a failed file operation at the I/O boundary: reading the
// metadata cache, writing the image, the raw field or the metadata.
type IOError struct {
	Op   string // "read metadata", "write image", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("fractal: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func ioError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}
