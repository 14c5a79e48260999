package fractal

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var captionFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// captionText describes the render parameters in one line, with locale
// grouping for the iteration count.
func captionText(cfg RenderConfig) string {
	p := message.NewPrinter(language.English)
	s := p.Sprintf("%s  %.12g %+.12gi  zoom %g  %d iterations",
		cfg.Mode, cfg.CenterReal, cfg.CenterImag, cfg.Zoom, cfg.MaxIterations)
	if cfg.Mode == Julia {
		s += p.Sprintf("  c = %.6g %+.6gi", cfg.JuliaReal, cfg.JuliaImag)
	}
	return s
}

// drawCaption draws text in the bottom-left corner of img over a
// translucent dark band. The font size follows the image height.
func drawCaption(img *image.RGBA, text string) error {
	f, err := captionFont()
	if err != nil {
		return fmt.Errorf("fractal: parse caption font: %w", err)
	}

	b := img.Bounds()
	size := max(10, float64(b.Dy())/48)
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("fractal: caption face: %w", err)
	}
	defer func() { _ = face.Close() }()

	pad := int(size / 2)
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()
	x := b.Min.X + pad
	y := b.Max.Y - pad - descent

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		Face: face,
	}
	width := d.MeasureString(text).Ceil()

	band := image.Rect(x-pad, y-ascent-pad/2, min(x+width+pad, b.Max.X), b.Max.Y)
	draw.Draw(img, band, image.NewUniform(color.RGBA{A: 0xa0}), image.Point{}, draw.Over)

	d.Dot = fixed.P(x, y)
	d.DrawString(text)
	return nil
}
