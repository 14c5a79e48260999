package fractal

import (
	"image"
	"time"

	intImage "github.com/gogpu/fractal/internal/image"
)

// OutputOptions controls how a render is written to disk.
type OutputOptions struct {
	// Path is the image file. Its extension picks the format (.png, .jpg,
	// .bmp, .tif); metadata and raw field files are named after it.
	Path string

	// Palette names a built-in palette; empty selects DefaultPalette.
	Palette string

	// Supersample renders the field at Supersample times the configured
	// width and height and downsamples the colored image. Values below 1
	// mean 1.
	Supersample int

	// Label draws the render parameters in the bottom-left corner.
	Label bool

	// WriteRaw stores the potential field next to the image for Recolor.
	// It is not part of the cache key, but a cached render that lacks the
	// requested raw file is computed again.
	WriteRaw bool

	// CompressRaw compresses the raw field with zstd. Writing one format
	// removes a raw file in the other.
	CompressRaw bool

	// Quiet suppresses the Info-level render diagnostics.
	Quiet bool
}

func (o OutputOptions) supersample() int {
	return max(1, o.Supersample)
}

func (o OutputOptions) palette() string {
	if o.Palette == "" {
		return DefaultPalette
	}
	return o.Palette
}

func (o OutputOptions) metadata(cfg RenderConfig) Metadata {
	return Metadata{
		Config:      cfg,
		Palette:     o.palette(),
		Supersample: o.supersample(),
		Label:       o.Label,
	}
}

// Result describes a finished WriteFractal or Recolor call.
type Result struct {
	// Skipped is true when the metadata cache matched and nothing was done.
	Skipped bool

	// Width and Height are the output image dimensions.
	Width, Height int

	// Evaluated is the number of field samples iterated; zero for cache
	// hits and recolors.
	Evaluated int

	// Field summarizes the potential field (before normalization).
	Field FieldStats

	// Elapsed is the wall time of the call.
	Elapsed time.Duration
}

// WriteFractal renders cfg to out.Path on a temporary Renderer.
func WriteFractal(cfg RenderConfig, out OutputOptions) (Result, error) {
	r := NewRenderer()
	defer r.Close()
	return r.WriteFractal(cfg, out)
}

// WriteFractal renders cfg and writes the image, the optional raw field and
// the metadata file.
//
// If <out.Path>.json already holds exactly the metadata this call would
// write, nothing is computed or written and Result.Skipped is set. With
// out.WriteRaw the raw file in the requested format must also exist.
//
// Invalid configs return an error wrapping ErrInvalidConfig before any work.
// File failures return an *IOError. A failure to write the metadata after the
// image was written still returns the complete Result alongside the error.
func (r *Renderer) WriteFractal(cfg RenderConfig, out OutputOptions) (Result, error) {
	start := time.Now()
	log := Logger()

	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	cmap, err := Palette(out.Palette)
	if err != nil {
		return Result{}, err
	}
	if _, err := intImage.FormatFromPath(out.Path); err != nil {
		return Result{}, err
	}

	meta := out.metadata(cfg)
	metaBytes, err := meta.Encode()
	if err != nil {
		return Result{}, err
	}
	metaPath := MetadataPath(out.Path)

	hit, err := metadataMatches(metaPath, metaBytes)
	if err != nil {
		return Result{}, err
	}
	if hit && out.WriteRaw && !rawFileExists(out.Path, out.CompressRaw) {
		hit = false
	}
	res := Result{Width: cfg.Width, Height: cfg.Height}
	if hit {
		if !out.Quiet {
			log.Info("found existing render", "path", out.Path)
		}
		res.Skipped = true
		res.Elapsed = time.Since(start)
		return res, nil
	}

	ss := out.supersample()
	field := r.Potentials(cfg.scaled(ss))
	res.Evaluated = cfg.Pixels() * ss * ss
	res.Field = field.Stats()
	if !out.Quiet {
		log.Info("field computed",
			"min", res.Field.Min, "max", res.Field.Max, "interior", res.Field.Interior)
	}

	if out.WriteRaw {
		if err := writeRawFile(out.Path, field, out.CompressRaw); err != nil {
			return res, err
		}
		if !out.Quiet {
			log.Info("wrote raw field", "path", RawPath(out.Path, out.CompressRaw))
		}
	}

	if err := r.finish(field, meta, out, cmap); err != nil {
		return res, err
	}

	res.Elapsed = time.Since(start)
	if err := writeMetadata(metaPath, metaBytes); err != nil {
		log.Warn("metadata not written; next run will render again", "err", err)
		return res, err
	}
	if !out.Quiet {
		log.Info("render complete", "path", out.Path, "elapsed", res.Elapsed)
	}
	return res, nil
}

// Recolor rewrites out.Path from the raw field saved by an earlier
// WriteFractal with WriteRaw, using a new color multiplier and offset.
// The escape-time iteration is not repeated.
//
// The render parameters and supersample factor come from the stored
// metadata. out.Palette overrides the stored palette when set; out.Label
// applies as given. The metadata file is rewritten to describe the new image.
func (r *Renderer) Recolor(out OutputOptions, multiplier, offset float64) (Result, error) {
	start := time.Now()
	log := Logger()

	old, err := readMetadata(out.Path)
	if err != nil {
		return Result{}, err
	}

	cfg := old.Config
	cfg.ColorMultiplier = multiplier
	cfg.ColorOffset = offset
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	if out.Palette == "" {
		out.Palette = old.Palette
	}
	out.Supersample = old.Supersample
	cmap, err := Palette(out.Palette)
	if err != nil {
		return Result{}, err
	}

	ss := out.supersample()
	field, err := readRawFile(out.Path, cfg.Width*ss, cfg.Height*ss)
	if err != nil {
		return Result{}, err
	}

	res := Result{Width: cfg.Width, Height: cfg.Height, Field: field.Stats()}
	meta := out.metadata(cfg)
	if err := r.finish(field, meta, out, cmap); err != nil {
		return res, err
	}

	metaBytes, err := meta.Encode()
	if err != nil {
		return res, err
	}
	res.Elapsed = time.Since(start)
	if err := writeMetadata(MetadataPath(out.Path), metaBytes); err != nil {
		return res, err
	}
	if !out.Quiet {
		log.Info("recolor complete", "path", out.Path, "elapsed", res.Elapsed)
	}
	return res, nil
}

// Recolor recolors out.Path on a temporary Renderer.
func Recolor(out OutputOptions, multiplier, offset float64) (Result, error) {
	r := NewRenderer()
	defer r.Close()
	return r.Recolor(out, multiplier, offset)
}

// finish normalizes and colorizes field, scales it to the configured size,
// draws the optional caption, and saves the image. field is consumed.
func (r *Renderer) finish(field *Field, meta Metadata, out OutputOptions, cmap ColorMap) error {
	cfg := meta.Config
	r.Normalize(field, cfg.ColorMultiplier, cfg.ColorOffset)
	pm := r.Colorize(field, cmap)

	if !out.Quiet {
		lo, hi := pm.MinMax()
		Logger().Info("colorized", "palette", meta.Palette, "min", lo, "max", hi)
	}

	var img *image.RGBA
	if meta.Supersample > 1 {
		img = intImage.Downsample(pm.ToImage(), cfg.Width, cfg.Height)
	} else {
		img = pm.ToImage()
	}

	if meta.Label {
		if err := drawCaption(img, captionText(cfg)); err != nil {
			return err
		}
	}

	if err := intImage.Save(out.Path, img); err != nil {
		return ioError("write image", out.Path, err)
	}
	return nil
}
