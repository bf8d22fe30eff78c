package continuation

import "errors"

// Curve is the narrow numeric view of a plane algebraic curve consumed by
// the tracker. cpoly.Poly satisfies it; any collaborator able to restrict
// f to a univariate polynomial in y can stand in.
type Curve interface {
	// DegY is the y-degree of f: the number of sheets.
	DegY() int
	// Eval evaluates f at (x, y).
	Eval(x, y complex128) complex128
	// YCoefficients returns the coefficients of f(x,·) in ascending order
	// with formal length DegY()+1.
	YCoefficients(x complex128) []complex128
}

var (
	// ErrPrecision indicates root tracking failed to disambiguate sheets
	// within the step-refinement budget. The wrapped message carries the
	// segment, parameter and x-position of the failure.
	ErrPrecision = errors.New("continuation: sheet tracking failed to converge")

	// ErrFiber indicates the supplied start fiber is unusable: wrong
	// cardinality, duplicate sheet values, or detached from the path start.
	ErrFiber = errors.New("continuation: invalid start fiber")
)

// Options tunes the tracker. The zero value is not usable; start from
// DefaultOptions.
//
// Fields:
//   - StepsPerSegment — coarse subdivision of each path segment before any
//     adaptive refinement.
//   - MaxRefine — bisection depth bound per coarse step; exceeding it
//     surfaces ErrPrecision rather than looping.
//   - SeparationRatio — the movement guard: a sheet may move at most this
//     fraction of the previous minimum sheet separation per accepted step.
//     Two sheets each moving under ½ of their mutual distance cannot swap,
//     so any value below 0.5 is safe; smaller is stricter and slower.
//   - NewtonTol — relative step tolerance of the per-sheet Newton polish.
type Options struct {
	StepsPerSegment int
	MaxRefine       int
	SeparationRatio float64
	NewtonTol       float64
}

// DefaultOptions returns the tracking parameters used across the module.
func DefaultOptions() Options {
	return Options{
		StepsPerSegment: 32,
		MaxRefine:       24,
		SeparationRatio: 0.4,
		NewtonTol:       1e-13,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.StepsPerSegment < 1 {
		o.StepsPerSegment = d.StepsPerSegment
	}
	if o.MaxRefine < 1 {
		o.MaxRefine = d.MaxRefine
	}
	if o.SeparationRatio <= 0 || o.SeparationRatio >= 0.5 {
		o.SeparationRatio = d.SeparationRatio
	}
	if o.NewtonTol <= 0 {
		o.NewtonTol = d.NewtonTol
	}
	return o
}
