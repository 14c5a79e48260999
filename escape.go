package fractal

// EscapeRadius bounds the orbit: once |z| > 2 the recurrence z² + c diverges.
const EscapeRadius = 2.0

const escapeRadiusSquared = EscapeRadius * EscapeRadius

// EscapeResult is the outcome of iterating one point.
type EscapeResult struct {
	// MagnitudeSquared is |z|² after the last iteration performed. It is
	// only meaningful for escaped points, where it exceeds EscapeRadius².
	MagnitudeSquared float64

	// Iterations is the zero-based index of the escaping iteration, or
	// MaxIterations if the point never escaped.
	Iterations int

	// Escaped is true if the orbit left the escape radius within the bound.
	Escaped bool
}

// orbitStart returns the initial z and the constant c for point p.
func orbitStart(p Point, cfg RenderConfig) (z, c Point) {
	if cfg.Mode == Julia {
		return p, Point{Re: cfg.JuliaReal, Im: cfg.JuliaImag}
	}
	return Point{}, p
}

// Evaluate iterates the point p under cfg and reports how it escaped.
//
// Iteration i (counting from 0) computes z = z² + c and then tests
// |z|² > EscapeRadius². A non-finite magnitude counts as escaped.
// The starting value is never tested: in Julia mode a point with |p| > 2
// still runs iteration 0 and reports the magnitude of z₁, the same way
// Mandelbrot mode reports (2, 0) as escaping at iteration 1.
// Renderer uses the lane kernel instead; both produce identical results.
func Evaluate(p Point, cfg RenderConfig) EscapeResult {
	z, c := orbitStart(p, cfg)
	return iterate(z, c, cfg.MaxIterations)
}

func iterate(z, c Point, maxIter int) EscapeResult {
	zr, zi := z.Re, z.Im
	var mag float64

	for i := range maxIter {
		// Products are converted explicitly so the expression is never fused
		// into an FMA; the lane kernel rounds at the same points.
		re := float64(zr*zr) - float64(zi*zi) + c.Re
		im := float64(float64(zr*zi)*2) + c.Im
		zr, zi = re, im

		mag = float64(zr*zr) + float64(zi*zi)
		if !(mag <= escapeRadiusSquared) {
			return EscapeResult{MagnitudeSquared: mag, Iterations: i, Escaped: true}
		}
	}

	return EscapeResult{MagnitudeSquared: mag, Iterations: maxIter}
}
