package period

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/riemann/continuation"
	"github.com/katalvlaran/riemann/cpath"
	"github.com/katalvlaran/riemann/homology"
	"github.com/katalvlaran/riemann/monodromy"
)

// CyclePath concatenates the branch loops of a cycle into a single
// closed path in the x-plane, starting and ending at the base point.
func CyclePath(g *monodromy.Graph, cy homology.Cycle) (cpath.Path, error) {
	var path cpath.Path
	for _, s := range cy.Steps {
		loop, err := g.PathAroundNode(s.Node, s.Winding)
		if err != nil {
			return nil, err
		}
		path = append(path, loop...)
	}
	return path, nil
}

// Integrate evaluates ∫ ω over the lift of cy: the cycle's loops are
// concatenated, the full fiber is carried along them, and ω is sampled
// on the distinguished sheet. Each segment is integrated by the
// trapezoid rule on opts.PointsPerSegment panels.
func Integrate(g *monodromy.Graph, cy homology.Cycle, omega Differential, opts Options) (complex128, error) {
	if cy.IsTrivial() {
		return 0, nil
	}
	opts = opts.withDefaults()

	path, err := CyclePath(g, cy)
	if err != nil {
		return 0, err
	}
	fiber := startFiber(g, cy.Steps[0].Sheet)
	sp, err := continuation.NewSurfacePath(g.Curve, path, g.BasePoint, fiber, opts.Track)
	if err != nil {
		return 0, fmt.Errorf("period: lifting cycle %v: %w", cy, err)
	}

	var total complex128
	err = sp.WalkSegments(opts.PointsPerSegment, func(seg int, ts []float64, xs, dxs []complex128, fibers [][]complex128) error {
		res := make([]float64, len(ts))
		ims := make([]float64, len(ts))
		for k := range ts {
			w := omega.Eval(xs[k], fibers[k][0]) * dxs[k]
			res[k] = real(w)
			ims[k] = imag(w)
		}
		total += complex(integrate.Trapezoidal(ts, res), integrate.Trapezoidal(ts, ims))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// startFiber orders the base sheets so the distinguished index 0
// carries the given start sheet.
func startFiber(g *monodromy.Graph, sheet int) []complex128 {
	fiber := make([]complex128, len(g.BaseSheets))
	copy(fiber, g.BaseSheets)
	fiber[0], fiber[sheet] = fiber[sheet], fiber[0]
	return fiber
}
