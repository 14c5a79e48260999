// Package image encodes rendered rasters to files.
//
// The output format is chosen from the file extension: PNG (the default),
// JPEG, BMP and TIFF. PNG and JPEG use the standard library encoders; BMP
// and TIFF come from golang.org/x/image.
package image

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when the output extension is not recognized.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// Format identifies a raster file format.
type Format uint8

const (
	// FormatPNG is lossless PNG. It is used for paths with no extension.
	FormatPNG Format = iota

	// FormatJPEG is baseline JPEG.
	FormatJPEG

	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP

	// FormatTIFF is TIFF with deflate compression.
	FormatTIFF
)

var extensions = map[string]Format{
	"":      FormatPNG,
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// FormatFromPath returns the format implied by path's extension.
// Matching is case-insensitive.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extensions[ext]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}
