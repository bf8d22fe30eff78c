package cpoly_test

import (
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/riemann/cpoly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hyperelliptic is the genus-1 curve y² − (x−2)(x−1)(x+1)(x+2) used as a
// fixture throughout the module.
const hyperelliptic = "y^2 - (x-2)*(x-1)*(x+1)*(x+2)"

// TestParse_Degrees verifies the expanded degrees of the fixture curves.
func TestParse_Degrees(t *testing.T) {
	f := cpoly.MustParse(hyperelliptic)
	assert.Equal(t, 4, f.DegX(), "x-degree of the quartic under the square root")
	assert.Equal(t, 2, f.DegY(), "two sheets")

	fermat := cpoly.MustParse("x^4 + y^4 - 1")
	assert.Equal(t, 4, fermat.DegX())
	assert.Equal(t, 4, fermat.DegY())
}

// TestParse_CanonicalString pins the canonical rendering used as cache key.
func TestParse_CanonicalString(t *testing.T) {
	f := cpoly.MustParse(hyperelliptic)
	assert.Equal(t, "y^2 - x^4 + 5*x^2 - 4", f.String(), "terms ordered by y-degree then x-degree")

	// The canonical form survives a parse round trip.
	g, err := cpoly.Parse(f.String())
	require.NoError(t, err)
	assert.Equal(t, f.String(), g.String(), "String must be a fixed point of Parse∘String")
}

// TestParse_Errors exercises malformed expressions.
func TestParse_Errors(t *testing.T) {
	for _, src := range []string{"", "x +", "(x", "x^", "z^2", "x^-2"} {
		_, err := cpoly.Parse(src)
		assert.ErrorIs(t, err, cpoly.ErrParse, "expression %q must be rejected", src)
	}
}

// TestPoly_EvalAndDerivatives checks evaluation against hand-expanded values.
func TestPoly_EvalAndDerivatives(t *testing.T) {
	f := cpoly.MustParse(hyperelliptic) // y² − x⁴ + 5x² − 4

	// f(0, y) = y² − 4.
	assert.InDelta(t, 0, cmplx.Abs(f.Eval(0, 2)), 1e-12, "y = 2 lies on the curve above x = 0")
	assert.InDelta(t, 0, cmplx.Abs(f.Eval(0, -2)), 1e-12)

	// f(1, y) = y²: the point (1, 0) is a branch place.
	assert.InDelta(t, 0, cmplx.Abs(f.Eval(1, 0)), 1e-12)

	fy := f.Dy()
	assert.Equal(t, complex128(2), fy.Coeff(0, 1), "∂f/∂y = 2y")
	assert.Equal(t, 0, fy.DegX())

	fx := f.Dx()
	// ∂f/∂x = −4x³ + 10x.
	assert.Equal(t, complex128(-4), fx.Coeff(3, 0))
	assert.Equal(t, complex128(10), fx.Coeff(1, 0))
}

// TestPoly_YCoefficients verifies the univariate restriction at fixed x.
func TestPoly_YCoefficients(t *testing.T) {
	f := cpoly.MustParse(hyperelliptic)
	c := f.YCoefficients(0) // y² − 4
	require.Len(t, c, 3, "formal length DegY+1")
	assert.InDelta(t, -4, real(c[0]), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(c[1]), 1e-12)
	assert.InDelta(t, 1, real(c[2]), 1e-12)
}

// TestPoly_Arithmetic spot-checks ring operations used by the parser.
func TestPoly_Arithmetic(t *testing.T) {
	x, y := cpoly.X(), cpoly.Y()
	p := x.Add(y).Pow(2) // x² + 2xy + y²
	assert.Equal(t, complex128(1), p.Coeff(2, 0))
	assert.Equal(t, complex128(2), p.Coeff(1, 1))
	assert.Equal(t, complex128(1), p.Coeff(0, 2))

	zero := p.Sub(p)
	assert.True(t, zero.IsZero(), "p − p must normalize to the zero polynomial")
	assert.Equal(t, "0", zero.String())
}
