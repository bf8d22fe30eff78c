package surface

import (
	"fmt"

	"github.com/katalvlaran/riemann/cpoly"
	"github.com/katalvlaran/riemann/period"
)

// defaultDifferentials builds the canonical holomorphic basis:
//
//	deg_y = 2:  x^a·dx/f_y for a = 0 … g−1 (hyperelliptic form);
//	otherwise:  monomials x^i·y^j with i+j ≤ d−3 over f_y, valid for
//	            smooth plane curves of total degree d.
//
// When the construction does not yield exactly g forms the curve has
// singularities the monomial count cannot see; the caller must supply
// the basis explicitly.
func defaultDifferentials(f *cpoly.Poly, genus int) ([]period.Differential, error) {
	if genus == 0 {
		return nil, nil
	}
	if f.DegY() == 2 {
		out := make([]period.Differential, 0, genus)
		xa := cpoly.Const(1)
		for a := 0; a < genus; a++ {
			out = append(out, period.Holomorphic(f, xa))
			xa = xa.Mul(cpoly.X())
		}
		return out, nil
	}

	d := totalDegree(f)
	var out []period.Differential
	for t := 0; t <= d-3; t++ {
		for i := t; i >= 0; i-- {
			numer := cpoly.X().Pow(i).Mul(cpoly.Y().Pow(t - i))
			out = append(out, period.Holomorphic(f, numer))
		}
	}
	if len(out) != genus {
		return nil, fmt.Errorf("%w: %d adjoint monomials for genus %d", ErrDifferentialBasis, len(out), genus)
	}
	return out, nil
}

// totalDegree is the largest i+j over the non-zero coefficients of
// x^i·y^j.
func totalDegree(f *cpoly.Poly) int {
	d := 0
	for i := 0; i <= f.DegX(); i++ {
		for j := 0; j <= f.DegY(); j++ {
			if f.Coeff(i, j) != 0 && i+j > d {
				d = i + j
			}
		}
	}
	return d
}
