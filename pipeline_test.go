package fractal

import (
	"bytes"
	"errors"
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func quietOutput(path string) OutputOptions {
	return OutputOptions{Path: path, Quiet: true}
}

// decodeImage reads back an image written by the pipeline.
func decodeImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

func TestWriteFractal_WritesImageAndMetadata(t *testing.T) {
	out := filepath.Join(t.TempDir(), "m.png")
	cfg := smallConfig()

	res, err := WriteFractal(cfg, quietOutput(out))
	if err != nil {
		t.Fatalf("WriteFractal() = %v", err)
	}
	if res.Skipped || res.Evaluated != cfg.Pixels() {
		t.Errorf("Result = %+v", res)
	}
	if res.Width != cfg.Width || res.Height != cfg.Height {
		t.Errorf("Result size = %dx%d", res.Width, res.Height)
	}

	img, err := decodeImage(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != cfg.Width || b.Dy() != cfg.Height {
		t.Errorf("image is %v", b)
	}

	data, err := os.ReadFile(MetadataPath(out))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Metadata{Config: cfg, Palette: DefaultPalette, Supersample: 1}.Encode()
	if !bytes.Equal(data, want) {
		t.Errorf("metadata =\n%s\nwant\n%s", data, want)
	}
	if _, err := os.Stat(RawPath(out, false)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("raw field written without WriteRaw: %v", err)
	}
}

func TestWriteFractal_CacheHit(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cached.png")
	cfg := smallConfig()

	r := NewRenderer(WithWorkers(2))
	defer r.Close()

	if _, err := r.WriteFractal(cfg, quietOutput(out)); err != nil {
		t.Fatal(err)
	}

	// Replace the image with a marker; a cache hit must leave it alone.
	marker := []byte("not an image")
	if err := os.WriteFile(out, marker, 0o644); err != nil {
		t.Fatal(err)
	}
	before := r.Evaluated()

	res, err := r.WriteFractal(cfg, quietOutput(out))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Skipped || res.Evaluated != 0 {
		t.Errorf("second call Result = %+v, want skipped", res)
	}
	if r.Evaluated() != before {
		t.Errorf("Evaluated grew from %d to %d on a cache hit", before, r.Evaluated())
	}
	if got, _ := os.ReadFile(out); !bytes.Equal(got, marker) {
		t.Error("cache hit rewrote the image")
	}

	// Any change renders again.
	cfg.Zoom = 2
	res, err = r.WriteFractal(cfg, quietOutput(out))
	if err != nil {
		t.Fatal(err)
	}
	if res.Skipped {
		t.Error("changed config was skipped")
	}
	if _, err := decodeImage(out); err != nil {
		t.Errorf("image not rewritten: %v", err)
	}

	opts := quietOutput(out)
	opts.Palette = "gray"
	if res, _ := r.WriteFractal(cfg, opts); res.Skipped {
		t.Error("changed palette was skipped")
	}
}

func TestWriteFractal_InvalidConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bad.png")
	cfg := smallConfig()
	cfg.MaxIterations = 0

	if _, err := WriteFractal(cfg, quietOutput(out)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("WriteFractal() = %v, want ErrInvalidConfig", err)
	}
	for _, p := range []string{out, MetadataPath(out)} {
		if _, err := os.Stat(p); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s exists after invalid config", p)
		}
	}
}

func TestWriteFractal_OutputErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig()

	if _, err := WriteFractal(cfg, quietOutput(filepath.Join(dir, "x.gif"))); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("gif: %v, want ErrUnsupportedFormat", err)
	}

	opts := quietOutput(filepath.Join(dir, "x.png"))
	opts.Palette = "plaid"
	if _, err := WriteFractal(cfg, opts); !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("palette: %v, want ErrUnknownPalette", err)
	}

	missing := filepath.Join(dir, "no", "such", "dir.png")
	res, err := WriteFractal(cfg, quietOutput(missing))
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "write image" {
		t.Fatalf("missing dir: %v, want write image IOError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("IOError does not unwrap to ErrNotExist: %v", err)
	}
	if res.Evaluated != cfg.Pixels() {
		t.Errorf("Result.Evaluated = %d after image failure", res.Evaluated)
	}
}

func TestWriteFractal_FormatsSupersampleLabel(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig()

	for _, name := range []string{"a.png", "a.jpg", "a.bmp", "a.tiff"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name)
			opts := OutputOptions{Path: out, Supersample: 2, Label: true, Quiet: true}

			res, err := WriteFractal(cfg, opts)
			if err != nil {
				t.Fatalf("WriteFractal() = %v", err)
			}
			if res.Evaluated != cfg.Pixels()*4 {
				t.Errorf("Evaluated = %d, want %d", res.Evaluated, cfg.Pixels()*4)
			}
			img, err := decodeImage(out)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if b := img.Bounds(); b.Dx() != cfg.Width || b.Dy() != cfg.Height {
				t.Errorf("image is %v, want %dx%d", b, cfg.Width, cfg.Height)
			}
		})
	}
}

func TestRecolor(t *testing.T) {
	for _, compress := range []bool{false, true} {
		name := "plain"
		if compress {
			name = "zstd"
		}
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "r.png")
			cfg := smallConfig()

			r := NewRenderer()
			defer r.Close()

			opts := OutputOptions{Path: out, WriteRaw: true, CompressRaw: compress, Quiet: true}
			if _, err := r.WriteFractal(cfg, opts); err != nil {
				t.Fatal(err)
			}
			if _, err := os.Stat(RawPath(out, compress)); err != nil {
				t.Fatalf("raw field missing: %v", err)
			}
			first, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			evaluated := r.Evaluated()

			res, err := r.Recolor(quietOutput(out), 3, 0.5)
			if err != nil {
				t.Fatalf("Recolor() = %v", err)
			}
			if res.Evaluated != 0 || r.Evaluated() != evaluated {
				t.Errorf("Recolor iterated: Result %+v, Evaluated %d -> %d", res, evaluated, r.Evaluated())
			}
			if res.Field.Interior == 0 {
				t.Error("recolored field has no interior points")
			}
			second, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if bytes.Equal(first, second) {
				t.Error("recolor produced an identical image")
			}

			// The metadata now describes the recolored image, so a render
			// with the new colors is a cache hit.
			cfg.ColorMultiplier, cfg.ColorOffset = 3, 0.5
			again, err := r.WriteFractal(cfg, quietOutput(out))
			if err != nil {
				t.Fatal(err)
			}
			if !again.Skipped {
				t.Error("render after recolor was not a cache hit")
			}
		})
	}
}

func TestRecolor_ReadsLatestRawField(t *testing.T) {
	out := filepath.Join(t.TempDir(), "switch.png")
	r := NewRenderer()
	defer r.Close()

	first := smallConfig()
	opts := OutputOptions{Path: out, WriteRaw: true, CompressRaw: true, Quiet: true}
	if _, err := r.WriteFractal(first, opts); err != nil {
		t.Fatal(err)
	}

	// Same size, different view, plain raw file. Every point escapes.
	second := smallConfig()
	second.CenterReal = 5
	opts.CompressRaw = false
	res, err := r.WriteFractal(second, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Field.Interior != 0 {
		t.Fatalf("second view has %d interior points, want 0", res.Field.Interior)
	}
	if _, err := os.Stat(RawPath(out, true)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("compressed raw field from the first render survived: %v", err)
	}

	got, err := r.Recolor(quietOutput(out), 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Field.Interior != 0 {
		t.Errorf("recolor read %d interior points, want the second view's 0", got.Field.Interior)
	}
	if math.Abs(got.Field.Max-res.Field.Max) > 1e-4*res.Field.Max {
		t.Errorf("recolor field max = %v, want %v", got.Field.Max, res.Field.Max)
	}
}

func TestWriteFractal_CacheHitWithoutRawField(t *testing.T) {
	out := filepath.Join(t.TempDir(), "later.png")
	cfg := smallConfig()
	r := NewRenderer()
	defer r.Close()

	if _, err := r.WriteFractal(cfg, quietOutput(out)); err != nil {
		t.Fatal(err)
	}

	opts := OutputOptions{Path: out, WriteRaw: true, Quiet: true}
	res, err := r.WriteFractal(cfg, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Skipped {
		t.Fatal("render skipped although the requested raw field is missing")
	}
	if _, err := r.Recolor(quietOutput(out), 2, 0); err != nil {
		t.Fatalf("Recolor() = %v", err)
	}

	// The metadata now carries the recolor; render that config with raw output.
	cfg.ColorMultiplier = 2
	if res, _ := r.WriteFractal(cfg, opts); !res.Skipped {
		t.Error("render with raw field present was not a cache hit")
	}
	opts.CompressRaw = true
	if res, _ := r.WriteFractal(cfg, opts); res.Skipped {
		t.Error("render asking for a compressed raw field was skipped with only a plain one")
	}
}

func TestRecolor_KeepsSupersample(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ss.png")
	cfg := smallConfig()

	opts := OutputOptions{Path: out, Supersample: 2, WriteRaw: true, Quiet: true}
	if _, err := WriteFractal(cfg, opts); err != nil {
		t.Fatal(err)
	}
	if _, err := Recolor(OutputOptions{Path: out, Palette: "ocean", Quiet: true}, 0.5, 0); err != nil {
		t.Fatalf("Recolor() = %v", err)
	}

	meta, err := readMetadata(out)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Supersample != 2 || meta.Palette != "ocean" || meta.Config.ColorMultiplier != 0.5 {
		t.Errorf("metadata after recolor = %+v", meta)
	}
	img, err := decodeImage(out)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != cfg.Width || b.Dy() != cfg.Height {
		t.Errorf("recolored image is %v", b)
	}
}

func TestRecolor_Errors(t *testing.T) {
	dir := t.TempDir()

	var ioErr *IOError
	if _, err := Recolor(quietOutput(filepath.Join(dir, "never.png")), 1, 0); !errors.As(err, &ioErr) {
		t.Errorf("no metadata: %v, want IOError", err)
	}

	out := filepath.Join(dir, "noraw.png")
	if _, err := WriteFractal(smallConfig(), quietOutput(out)); err != nil {
		t.Fatal(err)
	}
	if _, err := Recolor(quietOutput(out), 2, 0); !errors.Is(err, ErrNoRawField) {
		t.Errorf("no raw field: %v, want ErrNoRawField", err)
	}

	raw := filepath.Join(dir, "raw.png")
	if _, err := WriteFractal(smallConfig(), OutputOptions{Path: raw, WriteRaw: true, Quiet: true}); err != nil {
		t.Fatal(err)
	}
	if err := writeRawFile(raw, NewField(3, 3), false); err != nil {
		t.Fatal(err)
	}
	if _, err := Recolor(quietOutput(raw), 2, 0); !errors.Is(err, ErrFieldSize) {
		t.Errorf("short raw field: %v, want ErrFieldSize", err)
	}
	if _, err := Recolor(quietOutput(raw), 2, math.NaN()); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("nan offset: %v, want ErrInvalidConfig", err)
	}
}
