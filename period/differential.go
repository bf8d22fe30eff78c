package period

import (
	"errors"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/riemann/continuation"
	"github.com/katalvlaran/riemann/cpoly"
)

var (
	// ErrSingular - the A period matrix is numerically singular, so no
	// Riemann matrix exists for the chosen differential basis.
	ErrSingular = errors.New("period: A period matrix is singular")

	// ErrNumeric - a computed matrix fails a validation bound
	// (asymmetric τ or indefinite imaginary part).
	ErrNumeric = errors.New("period: result fails validation")
)

// Differential is a 1-form p(x,y)/q(x,y)·dx on the curve; holomorphic
// differentials use q = ∂f/∂y.
type Differential struct {
	Numer *cpoly.Poly
	Denom *cpoly.Poly
}

// Holomorphic wraps a numerator over the curve's y-derivative.
func Holomorphic(f, numer *cpoly.Poly) Differential {
	return Differential{Numer: numer, Denom: f.Dy()}
}

// Eval evaluates the coefficient of dx at a surface point.
func (d Differential) Eval(x, y complex128) complex128 {
	return d.Numer.Eval(x, y) / d.Denom.Eval(x, y)
}

// String renders the form, e.g. "(x) / (2*y) dx".
func (d Differential) String() string {
	return "(" + d.Numer.String() + ") / (" + d.Denom.String() + ") dx"
}

// Options tunes the quadrature. The zero value selects every default.
type Options struct {
	// PointsPerSegment is the trapezoid grid size on each path
	// segment. Default 128.
	PointsPerSegment int

	// Workers bounds the number of concurrent cycle integrations.
	// Default GOMAXPROCS.
	Workers int

	// Track configures the analytic continuation along cycles.
	Track continuation.Options

	// Logger receives per-cycle progress at Debug level.
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		PointsPerSegment: 128,
		Workers:          runtime.GOMAXPROCS(0),
		Track:            continuation.DefaultOptions(),
		Logger:           slog.Default(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.PointsPerSegment < 2 {
		o.PointsPerSegment = def.PointsPerSegment
	}
	if o.Workers < 1 {
		o.Workers = def.Workers
	}
	if o.Logger == nil {
		o.Logger = def.Logger
	}
	return o
}
