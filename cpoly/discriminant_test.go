package cpoly_test

import (
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/riemann/cpoly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiscriminantRoots_Hyperelliptic recovers the four real branch points
// of y² − (x−2)(x−1)(x+1)(x+2).
func TestDiscriminantRoots_Hyperelliptic(t *testing.T) {
	f := cpoly.MustParse(hyperelliptic)
	bps, err := cpoly.DiscriminantRoots(f, cpoly.DefaultDiscOptions())
	require.NoError(t, err)
	require.Len(t, bps, 4, "exactly four branch points")

	want := []complex128{-2, -1, 1, 2}
	for i, b := range bps {
		assert.InDelta(t, 0, cmplx.Abs(b-want[i]), 1e-8, "branch point %d", i)
	}
}

// TestDiscriminantRoots_VanishAtBranchPoints checks the defining property:
// the resultant evaluates to ~0 at every reported branch point.
func TestDiscriminantRoots_VanishAtBranchPoints(t *testing.T) {
	f := cpoly.MustParse(hyperelliptic)
	coef, err := cpoly.Discriminant(f)
	require.NoError(t, err)
	bps, err := cpoly.DiscriminantRoots(f, cpoly.DefaultDiscOptions())
	require.NoError(t, err)

	scale := 0.0
	for _, c := range coef {
		if a := cmplx.Abs(c); a > scale {
			scale = a
		}
	}
	for _, b := range bps {
		v := cmplx.Abs(cpoly.EvalUnivariate(coef, b))
		assert.Less(t, v, 1e-7*scale, "discriminant must vanish at branch point %v", b)
	}
}

// TestDiscriminantRoots_FermatClusters collapses the triple resultant roots
// of x⁴ + y⁴ − 1 into four branch points at the fourth roots of unity.
func TestDiscriminantRoots_FermatClusters(t *testing.T) {
	f := cpoly.MustParse("x^4 + y^4 - 1")
	bps, err := cpoly.DiscriminantRoots(f, cpoly.DefaultDiscOptions())
	require.NoError(t, err)
	require.Len(t, bps, 4, "the resultant 64(x⁴−1)³ collapses to four distinct branch points")

	for _, b := range bps {
		assert.InDelta(t, 0, cmplx.Abs(cpoly.EvalUnivariate([]complex128{-1, 0, 0, 0, 1}, b)), 1e-6,
			"branch point %v must satisfy x⁴ = 1", b)
	}
}

// TestDiscriminantRoots_Reducible rejects a perfect square in y.
func TestDiscriminantRoots_Reducible(t *testing.T) {
	f := cpoly.MustParse("(y - x)^2") // common factor with its own y-derivative
	_, err := cpoly.DiscriminantRoots(f, cpoly.DefaultDiscOptions())
	assert.ErrorIs(t, err, cpoly.ErrReducible, "squared factors cannot be handled by the discriminant method")
}

// TestDiscriminant_RejectsYFreeCurves requires positive y-degree.
func TestDiscriminant_RejectsYFreeCurves(t *testing.T) {
	f := cpoly.MustParse("x^2 + 1")
	_, err := cpoly.Discriminant(f)
	assert.ErrorIs(t, err, cpoly.ErrBadCurve)
}

// TestDiscriminantRoots_Idempotent verifies byte-for-byte reproducibility.
func TestDiscriminantRoots_Idempotent(t *testing.T) {
	f := cpoly.MustParse(hyperelliptic)
	a, err := cpoly.DiscriminantRoots(f, cpoly.DefaultDiscOptions())
	require.NoError(t, err)
	b, err := cpoly.DiscriminantRoots(f, cpoly.DefaultDiscOptions())
	require.NoError(t, err)
	assert.Equal(t, a, b, "discovery is deterministic")
}
