package fractal

// BaseExtent is the width of the complex plane, in plane units, spanned by
// the shorter image side at zoom 1. 4.0 frames the whole Mandelbrot set
// (real range [-2.5, 1]) with a margin when centered near the origin.
const BaseExtent = 4.0

// Point is a point in the complex plane.
type Point struct {
	Re, Im float64
}

// Viewport maps pixel coordinates to the complex plane.
//
// The shorter image side spans BaseExtent/Zoom plane units and both axes use
// the same units per pixel, so circles stay round at any aspect ratio.
// Pixel (Width/2, Height/2) maps exactly to the configured center.
type Viewport struct {
	centerRe, centerIm float64
	halfW, halfH       int
	scale              float64
}

// NewViewport precomputes the pixel-to-plane mapping for cfg.
func NewViewport(cfg RenderConfig) Viewport {
	short := min(cfg.Width, cfg.Height)
	return Viewport{
		centerRe: cfg.CenterReal,
		centerIm: cfg.CenterImag,
		halfW:    cfg.Width / 2,
		halfH:    cfg.Height / 2,
		scale:    BaseExtent / cfg.Zoom / float64(short),
	}
}

// Point returns the plane coordinate of pixel (x, y).
// y grows downwards in the image and the imaginary part grows upwards.
func (v Viewport) Point(x, y int) Point {
	return Point{
		Re: v.centerRe + float64(x-v.halfW)*v.scale,
		Im: v.centerIm - float64(y-v.halfH)*v.scale,
	}
}

// Scale returns the plane units covered by one pixel.
func (v Viewport) Scale() float64 {
	return v.scale
}

// MapPixel returns the plane coordinate of pixel (x, y) under cfg.
func MapPixel(x, y int, cfg RenderConfig) Point {
	return NewViewport(cfg).Point(x, y)
}
