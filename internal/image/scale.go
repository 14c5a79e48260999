package image

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Downsample scales src to width x height with Catmull-Rom filtering.
//
// Rendering at an integer multiple of the target size and downsampling
// averages several field samples into each output pixel, which smooths the
// aliasing along the set boundary.
func Downsample(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
