package fractal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Metadata is everything that determines an output image. It is stored as
// <output>.json beside the image and compared byte-for-byte to decide
// whether a render can be skipped.
type Metadata struct {
	Config      RenderConfig `json:"config"`
	Palette     string       `json:"palette"`
	Supersample int          `json:"supersample"`
	Label       bool         `json:"label"`
}

// Encode returns the canonical encoding: indented JSON and a trailing newline.
// Equal metadata always encodes to equal bytes.
func (m Metadata) Encode() ([]byte, error) {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("fractal: encode metadata: %w", err)
	}
	return append(b, '\n'), nil
}

// DecodeMetadata parses metadata written by Encode.
func DecodeMetadata(data []byte) (Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return Metadata{}, fmt.Errorf("fractal: decode metadata: %w", err)
	}
	return m, nil
}

// MetadataPath returns the metadata file path for an output image.
func MetadataPath(output string) string {
	return output + ".json"
}

// metadataMatches reports whether the file at path holds exactly want.
// A missing file is a miss, not an error.
func metadataMatches(path string, want []byte) (bool, error) {
	got, err := os.ReadFile(path) //nolint:gosec // path derives from the user's output path
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, ioError("read metadata", path, err)
	}
	return bytes.Equal(got, want), nil
}

// readMetadata loads and decodes the metadata stored for output.
func readMetadata(output string) (Metadata, error) {
	path := MetadataPath(output)
	data, err := os.ReadFile(path) //nolint:gosec // path derives from the user's output path
	if err != nil {
		return Metadata{}, ioError("read metadata", path, err)
	}
	return DecodeMetadata(data)
}

func writeMetadata(path string, data []byte) error {
	return ioError("write metadata", path, os.WriteFile(path, data, 0o644)) //nolint:gosec // metadata is not secret
}
