// Package fractal renders escape-time fractals (Mandelbrot and Julia sets).
//
// # Overview
//
// A render turns a RenderConfig into a Field of per-pixel values and the Field
// into an image. The numeric core runs in four stages:
//
//   - Viewport mapping: pixel (x, y) to a point in the complex plane
//   - Escape-time evaluation: iterate z = z² + c until |z|² > 4 or the bound
//   - Smooth potential: fractional iteration count from the final magnitude
//   - Normalization: fold the potential into a periodic value in [0, 1)
//
// Points that never escape carry the InteriorSentinel (-1) through every stage.
//
// # Quick Start
//
//	import "github.com/gogpu/fractal"
//
//	cfg := fractal.DefaultConfig()
//	cfg.Zoom = 100
//	cfg.CenterReal, cfg.CenterImag = -0.743643887037151, 0.131825904205330
//	cfg.MaxIterations = 2048
//
//	res, err := fractal.WriteFractal(cfg, fractal.OutputOptions{Path: "out.png"})
//
// # Parallelism
//
// A Renderer splits the field into 64x64 tiles and evaluates them on a worker
// pool. Within a tile, pixels are iterated eight at a time in lockstep lanes;
// a lane that escapes is retired by mask while the others continue. Every
// stage is a pure per-pixel function, so results do not depend on the worker
// count or on how pixels are grouped into lanes.
//
// # Caching
//
// WriteFractal stores the render parameters next to the image as
// <output>.json. When the stored bytes match the current parameters exactly,
// the render is skipped and the existing image is left untouched.
//
// # Coordinate System
//
// Pixel (0, 0) is the top-left corner. The real axis increases to the right
// and the imaginary axis increases upwards, so images appear the way the
// complex plane is usually drawn.
package fractal
