package cpath_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/riemann/cpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSegment_LineEndpoints verifies position and derivative of a line.
func TestSegment_LineEndpoints(t *testing.T) {
	s := cpath.Line(complex(1, 1), complex(3, -1))
	assert.Equal(t, complex(1, 1), s.Start())
	assert.Equal(t, complex(3, -1), s.End())
	assert.Equal(t, complex(2, 0), s.At(0.5))
	assert.Equal(t, complex(2, -2), s.Deriv(0.3), "line derivative is constant")
	assert.InDelta(t, 2*math.Sqrt2, s.Length(), 1e-12)
}

// TestSegment_ArcGeometry verifies a counterclockwise half turn.
func TestSegment_ArcGeometry(t *testing.T) {
	s := cpath.Arc(complex(1, 0), 2, 0, math.Pi)
	assert.InDelta(t, 0, cmplx.Abs(s.Start()-complex(3, 0)), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(s.End()-complex(-1, 0)), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(s.At(0.5)-complex(1, 2)), 1e-12, "top of the circle at mid-parameter")
	assert.InDelta(t, 2*math.Pi, s.Length(), 1e-12)
}

// TestSegment_DerivMatchesFiniteDifference cross-checks Deriv against a
// central difference for both variants.
func TestSegment_DerivMatchesFiniteDifference(t *testing.T) {
	segs := []cpath.Segment{
		cpath.Line(complex(-1, 2), complex(4, 0)),
		cpath.Arc(complex(0.5, -0.5), 1.5, math.Pi/3, -3*math.Pi/2),
	}
	const h = 1e-6
	for _, s := range segs {
		for _, tt := range []float64{0.1, 0.5, 0.9} {
			fd := (s.At(tt+h) - s.At(tt-h)) / complex(2*h, 0)
			assert.InDelta(t, 0, cmplx.Abs(s.Deriv(tt)-fd), 1e-6,
				"kind %d derivative at t=%v", s.Kind, tt)
		}
	}
}

// TestSegment_MultiWindingArc supports sweeps beyond a full turn.
func TestSegment_MultiWindingArc(t *testing.T) {
	s := cpath.Arc(0, 1, 0, 4*math.Pi) // two counterclockwise turns
	assert.InDelta(t, 0, cmplx.Abs(s.Start()-s.End()), 1e-12, "two full turns close up")
	assert.InDelta(t, 0, cmplx.Abs(s.At(0.25)-complex(-1, 0)), 1e-12, "quarter parameter is one half turn")
}

// TestSegment_Reverse traverses backwards.
func TestSegment_Reverse(t *testing.T) {
	s := cpath.Arc(complex(0, 1), 1, 0.3, 2.1)
	r := s.Reverse()
	for _, tt := range []float64{0, 0.25, 0.7, 1} {
		assert.InDelta(t, 0, cmplx.Abs(r.At(tt)-s.At(1-tt)), 1e-12)
	}
}

// TestPath_GlobalParametrization checks the global→local mapping and the
// chain-rule derivative factor.
func TestPath_GlobalParametrization(t *testing.T) {
	p := cpath.Path{
		cpath.Line(0, complex(1, 0)),
		cpath.Line(complex(1, 0), complex(1, 1)),
	}
	assert.Equal(t, complex128(0), p.Start())
	assert.Equal(t, complex(1, 1), p.End())
	assert.InDelta(t, 0, cmplx.Abs(p.At(0.25)-complex(0.5, 0)), 1e-12, "t=0.25 is halfway along segment 0")
	assert.InDelta(t, 0, cmplx.Abs(p.At(0.75)-complex(1, 0.5)), 1e-12)

	// dz/dt of segment 0 is (1,0) locally; globally scaled by 2 segments.
	assert.InDelta(t, 0, cmplx.Abs(p.Deriv(0.25)-complex(2, 0)), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(p.Deriv(0.75)-complex(0, 2)), 1e-12)
}

// TestPath_ReverseIsPointwiseMirror requires At symmetry.
func TestPath_ReverseIsPointwiseMirror(t *testing.T) {
	p := cpath.Path{
		cpath.Line(0, complex(1, 0)),
		cpath.Arc(complex(2, 0), 1, math.Pi, -math.Pi/2),
	}
	r := p.Reverse()
	for _, tt := range []float64{0, 0.2, 0.5, 0.8, 1} {
		assert.InDelta(t, 0, cmplx.Abs(r.At(tt)-p.At(1-tt)), 1e-12, "mirror at t=%v", tt)
	}
}

// TestPath_Sample returns n+1 points with exact endpoints.
func TestPath_Sample(t *testing.T) {
	p := cpath.Path{cpath.Line(0, complex(2, 2))}
	pts := p.Sample(4)
	require.Len(t, pts, 5)
	assert.Equal(t, p.Start(), pts[0])
	assert.Equal(t, p.End(), pts[4])

	assert.Nil(t, cpath.Path{}.Sample(8), "empty path yields no samples")
}
