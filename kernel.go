package fractal

import "github.com/gogpu/fractal/internal/wide"

// lanes holds the orbit state of up to wide.Lanes points.
type lanes struct {
	zr, zi wide.F64x8
	cr, ci wide.F64x8
	active wide.Mask8
}

// load fills lanes [0, n) with pixels (x0..x0+n-1, y).
func (l *lanes) load(vp Viewport, cfg RenderConfig, x0, y, n int) {
	*l = lanes{active: wide.FirstN(n)}
	for i := range n {
		z, c := orbitStart(vp.Point(x0+i, y), cfg)
		l.zr[i], l.zi[i] = z.Re, z.Im
		l.cr[i], l.ci[i] = c.Re, c.Im
	}
}

// evaluateLanes iterates every active lane in lockstep.
//
// A lane whose magnitude exceeds the escape radius (or stops being finite)
// is retired from the active mask, and its z and magnitude are frozen by
// masked select. The loop ends when no lane is active or the bound is hit.
// Each lane's result is identical to iterate on the same point.
func evaluateLanes(l lanes, maxIter int) [wide.Lanes]EscapeResult {
	var (
		mag     wide.F64x8
		iters   [wide.Lanes]int
		escaped wide.Mask8
	)
	zr, zi := l.zr, l.zi
	live := l.active

	for i := 0; i < maxIter && live.Any(); i++ {
		nzr := zr.Mul(zr).Sub(zi.Mul(zi)).Add(l.cr)
		nzi := zr.Mul(zi).Scale(2).Add(l.ci)
		nmag := nzr.Mul(nzr).Add(nzi.Mul(nzi))

		zr = nzr.Select(live, zr)
		zi = nzi.Select(live, zi)
		mag = nmag.Select(live, mag)

		out := nmag.Exceeds(escapeRadiusSquared).And(live)
		if out.Any() {
			for lane := range wide.Lanes {
				if out.Has(lane) {
					iters[lane] = i
				}
			}
			escaped = escaped.Or(out)
			live = live.AndNot(out)
		}
	}

	var res [wide.Lanes]EscapeResult
	for lane := range wide.Lanes {
		if !l.active.Has(lane) {
			continue
		}
		if escaped.Has(lane) {
			res[lane] = EscapeResult{MagnitudeSquared: mag[lane], Iterations: iters[lane], Escaped: true}
		} else {
			res[lane] = EscapeResult{MagnitudeSquared: mag[lane], Iterations: maxIter}
		}
	}
	return res
}

// evaluateRow writes the potentials of pixels [x0, x1) on row y into dst,
// where dst[0] corresponds to x0.
func evaluateRow(dst []float64, vp Viewport, cfg RenderConfig, x0, x1, y int) {
	var l lanes
	for x := x0; x < x1; x += wide.Lanes {
		n := min(wide.Lanes, x1-x)
		l.load(vp, cfg, x, y, n)
		res := evaluateLanes(l, cfg.MaxIterations)
		for i := range n {
			dst[x-x0+i] = SmoothPotential(res[i])
		}
	}
}
