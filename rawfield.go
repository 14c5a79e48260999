package fractal

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Raw field files hold the potentials before normalization so an image can be
// recolored later without iterating again. The layout is a little-endian
// uint64 element count followed by that many little-endian float32 values,
// row-major.

// rawChunk is the number of values converted per buffered write or read.
const rawChunk = 4096

// RawPath returns the raw field file path for an output image.
func RawPath(output string, compressed bool) string {
	if compressed {
		return output + ".bin.zst"
	}
	return output + ".bin"
}

// WriteRawField writes f's values as float32 to w.
func WriteRawField(w io.Writer, f *Field) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, uint64(len(f.data))); err != nil {
		return err
	}

	buf := make([]byte, 0, rawChunk*4)
	for start := 0; start < len(f.data); start += rawChunk {
		buf = buf[:0]
		for _, v := range f.data[start:min(start+rawChunk, len(f.data))] {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v)))
		}
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadRawField reads a raw field written by WriteRawField. The stored count
// must equal width*height, otherwise ErrFieldSize is returned.
func ReadRawField(r io.Reader, width, height int) (*Field, error) {
	br := bufio.NewReader(r)

	var n uint64
	if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("fractal: read raw field header: %w", err)
	}
	if width < 0 || height < 0 || n != uint64(width)*uint64(height) {
		return nil, fmt.Errorf("%w: file has %d values, want %dx%d", ErrFieldSize, n, width, height)
	}

	f := NewField(width, height)
	buf := make([]byte, rawChunk*4)
	for start := 0; start < len(f.data); start += rawChunk {
		end := min(start+rawChunk, len(f.data))
		chunk := buf[:(end-start)*4]
		if _, err := io.ReadFull(br, chunk); err != nil {
			return nil, fmt.Errorf("fractal: read raw field: %w", err)
		}
		for i := range end - start {
			f.data[start+i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(chunk[i*4:])))
		}
	}

	return f, nil
}

// writeRawFile stores f as the raw field for output, through zstd when
// compress is set. A raw file left in the other format by an earlier render
// is removed, so readRawFile never picks up stale potentials.
func writeRawFile(output string, f *Field, compress bool) (err error) {
	stale := RawPath(output, !compress)
	if err := os.Remove(stale); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ioError("remove raw field", stale, err)
	}

	path := RawPath(output, compress)
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return ioError("write raw field", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = ioError("write raw field", path, cerr)
		}
	}()

	if !compress {
		return ioError("write raw field", path, WriteRawField(file, f))
	}

	enc, err := zstd.NewWriter(file)
	if err != nil {
		return ioError("write raw field", path, err)
	}
	if err := WriteRawField(enc, f); err != nil {
		_ = enc.Close()
		return ioError("write raw field", path, err)
	}
	return ioError("write raw field", path, enc.Close())
}

// rawFileExists reports whether output has a raw field in the given format.
func rawFileExists(output string, compressed bool) bool {
	_, err := os.Stat(RawPath(output, compressed))
	return err == nil
}

// readRawFile loads the raw field stored for output. writeRawFile keeps at
// most one format on disk; the compressed file is tried first.
func readRawFile(output string, width, height int) (*Field, error) {
	for _, compressed := range []bool{true, false} {
		path := RawPath(output, compressed)
		file, err := os.Open(filepath.Clean(path))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, ioError("read raw field", path, err)
		}

		f, err := decodeRawFile(file, width, height, compressed)
		_ = file.Close()
		if err != nil {
			if errors.Is(err, ErrFieldSize) {
				return nil, err
			}
			return nil, ioError("read raw field", path, err)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoRawField, output)
}

func decodeRawFile(r io.Reader, width, height int, compressed bool) (*Field, error) {
	if !compressed {
		return ReadRawField(r, width, height)
	}
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return ReadRawField(dec, width, height)
}
