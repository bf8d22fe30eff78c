package cpoly

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	// dkMaxIter bounds the Durand–Kerner sweep count. Convergence is
	// quadratic for simple roots and linear inside multiple-root clusters,
	// so the budget is generous rather than tight.
	dkMaxIter = 2000

	// dkTol is the relative step tolerance that ends the iteration.
	dkTol = 1e-13

	// dkClusterTol and dkResidTol end the iteration inside multiple-root
	// clusters, where steps stall near eps^(1/m) for an m-fold root and
	// dkTol is unreachable: accept once every step is small and every
	// iterate's residual has dropped to rounding level.
	dkClusterTol = 1e-4
	dkResidTol   = 1e-12

	// trimTol is the relative magnitude below which leading coefficients
	// are treated as numerically zero.
	trimTol = 1e-12
)

// Roots finds all complex roots of the univariate polynomial
// c[0] + c[1]·z + … + c[n]·z^n by Durand–Kerner simultaneous iteration.
//
// Steps:
//  1. Trim numerically-zero leading coefficients (relative to the largest
//     coefficient magnitude); degree ≤ 0 yields no roots.
//  2. Normalize to a monic polynomial.
//  3. Start the iterates on the standard spiral (0.4+0.9i)^k, which is
//     deliberately non-symmetric so no residue of root symmetry can lock
//     the iteration.
//  4. Sweep: z_k ← z_k − p(z_k)/∏_{j≠k}(z_k − z_j) until the largest step
//     falls under a relative tolerance, or until every iterate sits at a
//     rounding-level residual with small steps (a stalled multiple-root
//     cluster; the scatter is left for the caller to merge).
//
// Failure to converge within the sweep budget wraps ErrPrecision.
//
// Complexity: O(n²) per sweep.
func Roots(c []complex128) ([]complex128, error) {
	c = TrimLeading(c)
	n := len(c) - 1
	if n <= 0 {
		return nil, nil
	}
	if n == 1 {
		return []complex128{-c[0] / c[1]}, nil
	}

	// Monic normalization.
	monic := make([]complex128, n+1)
	for i := range monic {
		monic[i] = c[i] / c[n]
	}

	// Spiral initialization.
	z := make([]complex128, n)
	seed := complex(0.4, 0.9)
	z[0] = seed
	for k := 1; k < n; k++ {
		z[k] = z[k-1] * seed
	}

	coefScale := 1.0
	for _, v := range monic {
		coefScale = math.Max(coefScale, cmplx.Abs(v))
	}

	for iter := 0; iter < dkMaxIter; iter++ {
		maxStep, maxMag, maxResid := 0.0, 1.0, 0.0
		for k := 0; k < n; k++ {
			den := complex(1, 0)
			for j := 0; j < n; j++ {
				if j == k {
					continue
				}
				d := z[k] - z[j]
				if d == 0 {
					// Coincident iterates: nudge apart and retry next sweep.
					d = complex(1e-12, 1e-12)
				}
				den *= d
			}
			pv := EvalUnivariate(monic, z[k])
			step := pv / den
			z[k] -= step
			maxStep = math.Max(maxStep, cmplx.Abs(step))
			maxMag = math.Max(maxMag, cmplx.Abs(z[k]))
			resid := cmplx.Abs(pv) / math.Pow(math.Max(1, cmplx.Abs(z[k])), float64(n))
			maxResid = math.Max(maxResid, resid)
		}
		if maxStep < dkTol*maxMag {
			return z, nil
		}
		if maxStep < dkClusterTol*maxMag && maxResid < dkResidTol*coefScale {
			return z, nil
		}
	}
	return nil, fmt.Errorf("%w: Durand–Kerner stalled after %d sweeps on degree %d", ErrPrecision, dkMaxIter, n)
}

// EvalUnivariate evaluates c[0] + c[1]z + … by Horner's rule.
func EvalUnivariate(c []complex128, z complex128) complex128 {
	var acc complex128
	for i := len(c) - 1; i >= 0; i-- {
		acc = acc*z + c[i]
	}
	return acc
}

// DerivUnivariate returns the coefficient vector of d/dz of c.
func DerivUnivariate(c []complex128) []complex128 {
	if len(c) <= 1 {
		return []complex128{0}
	}
	d := make([]complex128, len(c)-1)
	for i := range d {
		d[i] = complex(float64(i+1), 0) * c[i+1]
	}
	return d
}

// TrimLeading drops leading coefficients that are numerically zero
// relative to the largest coefficient magnitude.
func TrimLeading(c []complex128) []complex128 {
	maxc := 0.0
	for _, v := range c {
		maxc = math.Max(maxc, cmplx.Abs(v))
	}
	if maxc == 0 {
		return c[:1]
	}
	end := len(c)
	for end > 1 && cmplx.Abs(c[end-1]) < trimTol*maxc {
		end--
	}
	return c[:end]
}

// NewtonUnivariate refines an approximate root z of the polynomial c.
// It reports the refined value and whether the iteration converged to a
// relative step below tol within maxIter steps.
func NewtonUnivariate(c []complex128, z complex128, tol float64, maxIter int) (complex128, bool) {
	d := DerivUnivariate(c)
	for i := 0; i < maxIter; i++ {
		dv := EvalUnivariate(d, z)
		if dv == 0 {
			return z, false
		}
		step := EvalUnivariate(c, z) / dv
		z -= step
		if cmplx.Abs(step) < tol*math.Max(1, cmplx.Abs(z)) {
			return z, true
		}
	}
	return z, false
}
