package fractal

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteRawField_Layout(t *testing.T) {
	f := NewFieldFrom(2, 1, []float64{1.5, InteriorSentinel})

	var buf bytes.Buffer
	if err := WriteRawField(&buf, f); err != nil {
		t.Fatal(err)
	}

	b := buf.Bytes()
	if len(b) != 8+2*4 {
		t.Fatalf("len = %d, want 16", len(b))
	}
	if n := binary.LittleEndian.Uint64(b); n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
	if v := math.Float32frombits(binary.LittleEndian.Uint32(b[8:])); v != 1.5 {
		t.Errorf("first value = %v, want 1.5", v)
	}
	if v := math.Float32frombits(binary.LittleEndian.Uint32(b[12:])); v != -1 {
		t.Errorf("second value = %v, want -1", v)
	}
}

func TestRawField_RoundTrip(t *testing.T) {
	// Wider than one conversion chunk.
	const w, h = 97, 61
	f := NewField(w, h)
	for i := range f.Data() {
		if i%7 == 0 {
			f.Data()[i] = InteriorSentinel
		} else {
			f.Data()[i] = float64(i) / 3
		}
	}

	var buf bytes.Buffer
	if err := WriteRawField(&buf, f); err != nil {
		t.Fatal(err)
	}
	got, err := ReadRawField(&buf, w, h)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range got.Data() {
		if want := float64(float32(f.Data()[i])); v != want {
			t.Fatalf("index %d = %v, want %v", i, v, want)
		}
	}
}

func TestReadRawField_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRawField(&buf, NewField(4, 4)); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	if _, err := ReadRawField(bytes.NewReader(data), 4, 5); !errors.Is(err, ErrFieldSize) {
		t.Errorf("wrong size: %v, want ErrFieldSize", err)
	}
	if _, err := ReadRawField(bytes.NewReader(data[:20]), 4, 4); err == nil || errors.Is(err, ErrFieldSize) {
		t.Errorf("truncated: %v, want read error", err)
	}
	if _, err := ReadRawField(bytes.NewReader(data[:3]), 4, 4); err == nil {
		t.Error("truncated header: nil error")
	}
}

func TestRawFile_Formats(t *testing.T) {
	out := filepath.Join(t.TempDir(), "z.png")
	f := ComputePotentials(smallConfig())
	w, h := f.Width(), f.Height()

	if err := writeRawFile(out, f, false); err != nil {
		t.Fatalf("writeRawFile(plain) = %v", err)
	}
	plain, err := os.Stat(RawPath(out, false))
	if err != nil {
		t.Fatal(err)
	}
	if plain.Size() != int64(8+4*w*h) {
		t.Errorf("plain size = %d, want %d", plain.Size(), 8+4*w*h)
	}

	if err := writeRawFile(out, f, true); err != nil {
		t.Fatalf("writeRawFile(compressed) = %v", err)
	}
	packed, err := os.ReadFile(RawPath(out, true))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(packed, []byte{0x28, 0xb5, 0x2f, 0xfd}) {
		t.Errorf("compressed file lacks the zstd frame magic: % x", packed[:min(4, len(packed))])
	}
	if _, err := os.Stat(RawPath(out, false)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("plain raw field survived a compressed write: %v", err)
	}

	got, err := readRawFile(out, w, h)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range got.Data() {
		if want := float64(float32(f.Data()[i])); v != want {
			t.Fatalf("index %d = %v, want %v", i, v, want)
		}
	}

	if err := writeRawFile(out, f, false); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(RawPath(out, true)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("compressed raw field survived a plain write: %v", err)
	}
}

func TestReadRawFile_Missing(t *testing.T) {
	_, err := readRawFile(filepath.Join(t.TempDir(), "none.png"), 4, 4)
	if !errors.Is(err, ErrNoRawField) {
		t.Errorf("readRawFile = %v, want ErrNoRawField", err)
	}
}

func TestRawPath(t *testing.T) {
	if got := RawPath("x.png", false); got != "x.png.bin" {
		t.Errorf("RawPath plain = %q", got)
	}
	if got := RawPath("x.png", true); got != "x.png.bin.zst" {
		t.Errorf("RawPath compressed = %q", got)
	}
}
