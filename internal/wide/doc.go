// Package wide provides fixed-width lane types for lockstep escape-time iteration.
//
// The types here hold one value per lane in a plain fixed-size array so the
// Go compiler can keep them in registers and, where the target supports it,
// emit packed arithmetic (SSE2/AVX on amd64, NEON on arm64).
//
// # Lane Types
//
// F64x8: 8 float64 values, one per pixel being iterated.
// Mask8: one bit per lane, used to retire lanes that have escaped.
//
// # Retirement Instead of Branching
//
// Every lane runs the same multiply-add sequence. A lane that escapes is not
// removed from the loop; it is cleared from the active mask and its state is
// frozen with [F64x8.Select]. The loop stops once the mask is empty.
//
//	active := wide.FirstN(n)
//	for i := 0; i < maxIter && active.Any(); i++ {
//	    next := z.Mul(z).Add(c)
//	    z = next.Select(active, z)
//	    out := next.Exceeds(4).And(active)
//	    active = active.AndNot(out)
//	}
//
// # Determinism
//
// Products are converted explicitly to float64 before use. Go compilers may fuse
// x*y+z into a single FMA on some architectures; an explicit
// conversion forces rounding, so lane results match scalar code written the
// same way on every platform.
package wide
