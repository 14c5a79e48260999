package fractal

import (
	"image"
	"image/color"
)

// Pixmap is an opaque RGB pixel buffer, 3 bytes per pixel, row-major.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a black pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGB format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetRGB sets the color of a single pixel. Out-of-range coordinates are ignored.
func (p *Pixmap) SetRGB(x, y int, r, g, b uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 3
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
}

// RGBAt returns the color of a single pixel, or black outside the pixmap.
func (p *Pixmap) RGBAt(x, y int) (r, g, b uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0
	}
	i := (y*p.width + x) * 3
	return p.data[i+0], p.data[i+1], p.data[i+2]
}

// MinMax returns the smallest and largest channel value in the pixmap.
func (p *Pixmap) MinMax() (lo, hi uint8) {
	if len(p.data) == 0 {
		return 0, 0
	}
	lo, hi = 255, 0
	for _, v := range p.data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// ToImage converts the pixmap to an opaque image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, j := 0, 0; i < len(p.data); i, j = i+3, j+4 {
		img.Pix[j+0] = p.data[i+0]
		img.Pix[j+1] = p.data[i+1]
		img.Pix[j+2] = p.data[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b := p.RGBAt(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
