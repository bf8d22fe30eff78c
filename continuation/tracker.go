package continuation

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/riemann/cpath"
	"github.com/katalvlaran/riemann/cpoly"
)

// advance continues the fiber in place from seg.At(t0) to seg.At(t1),
// bisecting the parameter interval when the movement guard trips.
//
// Steps:
//  1. Attempt the whole interval with polishStep.
//  2. On guard failure, split at the midpoint and recurse on both halves
//     with one budget unit spent.
//  3. At depth ≥ maxRefine the ambiguity is fatal: wrap ErrPrecision with
//     the interval and position context.
func advance(c Curve, seg cpath.Segment, fiber []complex128, t0, t1 float64, depth int, opts Options) error {
	if polishStep(c, fiber, seg.At(t1), opts) {
		return nil
	}
	if depth >= opts.MaxRefine {
		return fmt.Errorf("%w: ambiguous root assignment near x=%v (local t∈[%v,%v], depth %d)",
			ErrPrecision, seg.At(t1), t0, t1, depth)
	}
	tm := 0.5 * (t0 + t1)
	if err := advance(c, seg, fiber, t0, tm, depth+1, opts); err != nil {
		return err
	}
	return advance(c, seg, fiber, tm, t1, depth+1, opts)
}

// polishStep moves every sheet of the fiber to the nearest root of
// f(x,·) and reports whether the assignment is unambiguous.
//
// Guards, all of which must hold for the step to be accepted:
//   - the restricted polynomial keeps its full formal degree (a vanishing
//     leading coefficient means a sheet escapes to infinity at this x);
//   - Newton converges for every sheet;
//   - no sheet moves farther than SeparationRatio × the previous minimum
//     sheet separation (two sheets each moving under half their mutual
//     distance cannot trade places);
//   - the updated sheet values remain pairwise distinct.
//
// On success the fiber is updated in place; on failure it is untouched.
func polishStep(c Curve, fiber []complex128, x complex128, opts Options) bool {
	coeffs := c.YCoefficients(x)
	if len(cpoly.TrimLeading(coeffs)) != len(coeffs) {
		return false
	}

	maxMove := opts.SeparationRatio * minSeparation(fiber)
	next := make([]complex128, len(fiber))
	for k, seed := range fiber {
		z, ok := cpoly.NewtonUnivariate(coeffs, seed, opts.NewtonTol, 32)
		if !ok {
			return false
		}
		if cmplx.Abs(z-seed) > maxMove {
			return false
		}
		next[k] = z
	}
	for i := range next {
		for j := i + 1; j < len(next); j++ {
			if next[i] == next[j] {
				return false
			}
		}
	}
	copy(fiber, next)
	return true
}

// minSeparation returns the smallest pairwise distance within the fiber,
// or +Inf for fibers with fewer than two sheets.
func minSeparation(fiber []complex128) float64 {
	sep := math.Inf(1)
	for i := range fiber {
		for j := i + 1; j < len(fiber); j++ {
			if d := cmplx.Abs(fiber[i] - fiber[j]); d < sep {
				sep = d
			}
		}
	}
	return sep
}

// continueLocal continues the fiber along seg from local parameter 0 up to
// t1, using the coarse step grid before any adaptive bisection.
func continueLocal(c Curve, seg cpath.Segment, fiber []complex128, t1 float64, opts Options) error {
	if t1 <= 0 {
		return nil
	}
	steps := int(math.Ceil(float64(opts.StepsPerSegment) * t1))
	if steps < 1 {
		steps = 1
	}
	prev := 0.0
	for i := 1; i <= steps; i++ {
		next := t1 * float64(i) / float64(steps)
		if err := advance(c, seg, fiber, prev, next, 0, opts); err != nil {
			return err
		}
		prev = next
	}
	return nil
}
