package cpath

import (
	"math"
	"math/cmplx"
)

// Kind discriminates the segment variants.
type Kind int

const (
	// KindLine is the straight segment z(t) = Z0 + t·(Z1−Z0).
	KindLine Kind = iota
	// KindArc is the circular arc z(t) = Center + Radius·e^{i(Theta0 + t·DTheta)}.
	KindArc
)

// Segment is one leg of a path in the complex x-plane. It is a tagged
// variant rather than an interface: call sites switch on Kind without
// dynamic dispatch, and segments stay comparable and copyable.
type Segment struct {
	Kind Kind

	// Line endpoints (KindLine).
	Z0, Z1 complex128

	// Arc data (KindArc). DTheta is the signed sweep: positive is
	// counterclockwise, and |DTheta| may exceed 2π for repeated windings.
	Center complex128
	Radius float64
	Theta0 float64
	DTheta float64
}

// Line builds a straight segment from z0 to z1.
func Line(z0, z1 complex128) Segment {
	return Segment{Kind: KindLine, Z0: z0, Z1: z1}
}

// Arc builds a circular arc around center with the given radius, start
// angle theta0 and signed sweep dtheta (counterclockwise when positive).
func Arc(center complex128, radius, theta0, dtheta float64) Segment {
	return Segment{Kind: KindArc, Center: center, Radius: radius, Theta0: theta0, DTheta: dtheta}
}

// At evaluates the segment position at local parameter t ∈ [0,1].
func (s Segment) At(t float64) complex128 {
	switch s.Kind {
	case KindArc:
		return s.Center + complex(s.Radius, 0)*cmplx.Exp(complex(0, s.Theta0+t*s.DTheta))
	default:
		return s.Z0 + complex(t, 0)*(s.Z1-s.Z0)
	}
}

// Deriv evaluates dz/dt at local parameter t.
func (s Segment) Deriv(t float64) complex128 {
	switch s.Kind {
	case KindArc:
		return complex(0, s.Radius*s.DTheta) * cmplx.Exp(complex(0, s.Theta0+t*s.DTheta))
	default:
		return s.Z1 - s.Z0
	}
}

// Start returns the segment's initial point.
func (s Segment) Start() complex128 { return s.At(0) }

// End returns the segment's final point.
func (s Segment) End() complex128 { return s.At(1) }

// Reverse returns the segment traversed backwards.
func (s Segment) Reverse() Segment {
	switch s.Kind {
	case KindArc:
		return Arc(s.Center, s.Radius, s.Theta0+s.DTheta, -s.DTheta)
	default:
		return Line(s.Z1, s.Z0)
	}
}

// Length returns the Euclidean arc length of the segment.
func (s Segment) Length() float64 {
	switch s.Kind {
	case KindArc:
		return s.Radius * math.Abs(s.DTheta)
	default:
		return cmplx.Abs(s.Z1 - s.Z0)
	}
}
