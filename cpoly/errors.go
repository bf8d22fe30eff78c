package cpoly

import "errors"

var (
	// ErrParse indicates the curve expression is not a valid polynomial in x and y.
	ErrParse = errors.New("cpoly: invalid polynomial expression")

	// ErrBadCurve indicates a structurally unusable polynomial (zero, or free of y).
	ErrBadCurve = errors.New("cpoly: curve must be a nonzero polynomial with positive y-degree")

	// ErrPrecision indicates root finding failed to converge within the iteration budget.
	ErrPrecision = errors.New("cpoly: root finding failed to converge")

	// ErrReducible indicates the discriminant vanishes identically: the curve is
	// singular or not squarefree in y, which the discriminant method cannot handle.
	ErrReducible = errors.New("cpoly: identically zero discriminant (reducible or non-squarefree curve)")
)
