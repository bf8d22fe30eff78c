package cpoly_test

import (
	"math/cmplx"
	"sort"
	"testing"

	"github.com/katalvlaran/riemann/cpoly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sortRoots orders roots by (Re, Im) so sets can be compared elementwise.
func sortRoots(rs []complex128) {
	sort.Slice(rs, func(i, j int) bool {
		if real(rs[i]) != real(rs[j]) {
			return real(rs[i]) < real(rs[j])
		}
		return imag(rs[i]) < imag(rs[j])
	})
}

// TestRoots_Quadratic solves z² + 1 = 0.
func TestRoots_Quadratic(t *testing.T) {
	rs, err := cpoly.Roots([]complex128{1, 0, 1})
	require.NoError(t, err)
	require.Len(t, rs, 2)
	sortRoots(rs)
	assert.InDelta(t, 0, cmplx.Abs(rs[0]-complex(0, -1)), 1e-10, "expected −i")
	assert.InDelta(t, 0, cmplx.Abs(rs[1]-complex(0, 1)), 1e-10, "expected +i")
}

// TestRoots_CubeRootsOfUnity solves z³ − 1 = 0.
func TestRoots_CubeRootsOfUnity(t *testing.T) {
	rs, err := cpoly.Roots([]complex128{-1, 0, 0, 1})
	require.NoError(t, err)
	require.Len(t, rs, 3)
	for _, r := range rs {
		assert.InDelta(t, 1, cmplx.Abs(r), 1e-10, "all roots lie on the unit circle")
		assert.InDelta(t, 0, cmplx.Abs(cpoly.EvalUnivariate([]complex128{-1, 0, 0, 1}, r)), 1e-9)
	}
}

// TestRoots_DegenerateInputs covers constants, linear polynomials and
// numerically-zero leading coefficients.
func TestRoots_DegenerateInputs(t *testing.T) {
	rs, err := cpoly.Roots([]complex128{42})
	require.NoError(t, err)
	assert.Empty(t, rs, "constants have no roots")

	rs, err = cpoly.Roots([]complex128{-6, 2})
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.InDelta(t, 3, real(rs[0]), 1e-12, "2z − 6 has the single root 3")

	// A tiny leading coefficient must be trimmed, not produce a huge root.
	rs, err = cpoly.Roots([]complex128{-6, 2, 1e-17})
	require.NoError(t, err)
	assert.Len(t, rs, 1, "leading 1e-17 is numerical noise")
}

// TestRoots_TripleRootClusters solves (z⁴ − 1)³ = 0, the degree-12 shape
// of the y-discriminant resultant of x⁴ + y⁴ − 1: four triple roots at
// ±1 and ±i. Steps never shrink below the cluster plateau here, so the
// residual-based acceptance must terminate the sweep; each cluster's
// scatter stays well inside the merge radius used downstream.
func TestRoots_TripleRootClusters(t *testing.T) {
	// (z⁴ − 1)³ = z¹² − 3z⁸ + 3z⁴ − 1.
	c := make([]complex128, 13)
	c[0], c[4], c[8], c[12] = -1, 3, -3, 1

	rs, err := cpoly.Roots(c)
	require.NoError(t, err, "multiple-root clusters must not exhaust the sweep budget")
	require.Len(t, rs, 12)

	centers := []complex128{1, -1, complex(0, 1), complex(0, -1)}
	claimed := make([]int, len(centers))
	for _, r := range rs {
		best, bestDist := -1, 1.0
		for i, ctr := range centers {
			if d := cmplx.Abs(r - ctr); d < bestDist {
				best, bestDist = i, d
			}
		}
		require.GreaterOrEqual(t, best, 0, "root %v is far from every cluster center", r)
		assert.Less(t, bestDist, 1e-3, "root %v scattered too far from %v", r, centers[best])
		claimed[best]++
	}
	for i, n := range claimed {
		assert.Equal(t, 3, n, "cluster at %v must claim exactly three roots", centers[i])
	}
}

// TestNewtonUnivariate_Refines polishes a perturbed root of z² − 2.
func TestNewtonUnivariate_Refines(t *testing.T) {
	c := []complex128{-2, 0, 1}
	z, ok := cpoly.NewtonUnivariate(c, complex(1.4, 0.01), 1e-14, 50)
	require.True(t, ok, "Newton must converge from a nearby guess")
	assert.InDelta(t, 0, cmplx.Abs(z-complex(1.4142135623730951, 0)), 1e-12)
}
