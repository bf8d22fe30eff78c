package period

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// symTol bounds the relative asymmetry tolerated in τ; the quadrature
// error dominates machine precision here.
const symTol = 1e-6

// RiemannMatrix solves A·τ = B for the Riemann matrix τ and validates
// it: τ must be symmetric and Im τ positive definite. A surface
// orientation flipped as a whole negates Im τ; that case is detected
// and repaired by returning −τ.
func RiemannMatrix(A, B *mat.CDense) (*mat.CDense, error) {
	ar, ac := A.Dims()
	br, bc := B.Dims()
	if ar != ac || br != bc || ar != br {
		return nil, fmt.Errorf("%w: dimensions %dx%d and %dx%d", ErrNumeric, ar, ac, br, bc)
	}
	n := ar

	tau, err := solveComplex(A, B)
	if err != nil {
		return nil, err
	}

	scale := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			scale = math.Max(scale, cmplx.Abs(tau.At(i, j)))
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cmplx.Abs(tau.At(i, j)-tau.At(j, i)) > symTol*math.Max(1, scale) {
				return nil, fmt.Errorf("%w: τ[%d][%d]=%v vs τ[%d][%d]=%v", ErrNumeric, i, j, tau.At(i, j), j, i, tau.At(j, i))
			}
		}
	}

	if imPositiveDefinite(tau) {
		return tau, nil
	}
	neg := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			neg.Set(i, j, -tau.At(i, j))
		}
	}
	if imPositiveDefinite(neg) {
		return neg, nil
	}
	return nil, fmt.Errorf("%w: Im τ is indefinite", ErrNumeric)
}

// imPositiveDefinite tests Im τ (symmetrized) by Cholesky.
func imPositiveDefinite(tau *mat.CDense) bool {
	n, _ := tau.Dims()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = (imag(tau.At(i, j)) + imag(tau.At(j, i))) / 2
		}
	}
	var chol mat.Cholesky
	return chol.Factorize(mat.NewSymDense(n, data))
}

// solveComplex performs Gaussian elimination with partial pivoting on
// the augmented system [A | B]; gonum's dense solvers are real-valued,
// so the complex system is eliminated directly.
func solveComplex(A, B *mat.CDense) (*mat.CDense, error) {
	n, _ := A.Dims()
	_, m := B.Dims()

	a := make([][]complex128, n)
	x := make([][]complex128, n)
	for i := 0; i < n; i++ {
		a[i] = make([]complex128, n)
		x[i] = make([]complex128, m)
		for j := 0; j < n; j++ {
			a[i][j] = A.At(i, j)
		}
		for j := 0; j < m; j++ {
			x[i][j] = B.At(i, j)
		}
	}

	for col := 0; col < n; col++ {
		piv := col
		for r := col + 1; r < n; r++ {
			if cmplx.Abs(a[r][col]) > cmplx.Abs(a[piv][col]) {
				piv = r
			}
		}
		if cmplx.Abs(a[piv][col]) == 0 {
			return nil, ErrSingular
		}
		a[col], a[piv] = a[piv], a[col]
		x[col], x[piv] = x[piv], x[col]

		inv := 1 / a[col][col]
		for r := 0; r < n; r++ {
			if r == col || a[r][col] == 0 {
				continue
			}
			factor := a[r][col] * inv
			for j := col; j < n; j++ {
				a[r][j] -= factor * a[col][j]
			}
			for j := 0; j < m; j++ {
				x[r][j] -= factor * x[col][j]
			}
		}
	}

	out := mat.NewCDense(n, m, nil)
	for i := 0; i < n; i++ {
		inv := 1 / a[i][i]
		for j := 0; j < m; j++ {
			out.Set(i, j, x[i][j]*inv)
		}
	}
	return out, nil
}
