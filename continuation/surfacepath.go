package continuation

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/riemann/cpath"
)

// SurfacePath is a path in the x-plane lifted onto the Riemann surface of
// a curve: the x-contour plus the continuously tracked fiber above it.
// Checkpoints at every segment boundary are computed once at construction;
// afterwards the value is immutable and safe to share across goroutines —
// every evaluation re-derives the fiber from the nearest checkpoint
// instead of mutating shared state.
type SurfacePath struct {
	curve Curve
	path  cpath.Path
	x0    complex128
	opts  Options

	// checkpoints[k] is the fiber at the start of segment k;
	// checkpoints[len(path)] is the fiber at the end of the path.
	checkpoints [][]complex128
}

// Point is one sample of the lifted path: the x-position and the tracked
// value of the distinguished sheet above it.
type Point struct {
	X complex128
	Y complex128
}

// NewSurfacePath lifts path onto the surface of curve, starting from the
// fiber y0 above x0 (the full ordered sheet vector; index 0 is the
// distinguished sheet followed by integration and sampling).
//
// Validation:
//   - len(y0) must equal the sheet count DegY;
//   - the sheet values must be pairwise distinct;
//   - for non-empty paths, x0 must coincide with the path start.
//
// The whole path is continued once here; a tracking failure anywhere
// surfaces immediately with segment context rather than at first use.
func NewSurfacePath(curve Curve, path cpath.Path, x0 complex128, y0 []complex128, opts Options) (*SurfacePath, error) {
	opts = opts.withDefaults()
	if len(y0) != curve.DegY() {
		return nil, fmt.Errorf("%w: %d sheet values for a %d-sheet curve", ErrFiber, len(y0), curve.DegY())
	}
	for i := range y0 {
		for j := i + 1; j < len(y0); j++ {
			if y0[i] == y0[j] {
				return nil, fmt.Errorf("%w: duplicate sheet value %v", ErrFiber, y0[i])
			}
		}
	}
	if len(path) > 0 && cmplx.Abs(path.Start()-x0) > 1e-9*(1+cmplx.Abs(x0)) {
		return nil, fmt.Errorf("%w: path starts at %v, fiber sits above %v", ErrFiber, path.Start(), x0)
	}

	sp := &SurfacePath{curve: curve, path: path, x0: x0, opts: opts}
	sp.checkpoints = make([][]complex128, len(path)+1)
	fiber := cloneFiber(y0)
	sp.checkpoints[0] = cloneFiber(fiber)
	for k, seg := range path {
		if err := continueLocal(curve, seg, fiber, 1, opts); err != nil {
			return nil, fmt.Errorf("segment %d: %w", k, err)
		}
		sp.checkpoints[k+1] = cloneFiber(fiber)
	}
	return sp, nil
}

// Path returns the underlying x-contour.
func (sp *SurfacePath) Path() cpath.Path { return sp.path }

// Segments reports the number of path segments.
func (sp *SurfacePath) Segments() int { return len(sp.path) }

// StartFiber returns a copy of the fiber at t = 0.
func (sp *SurfacePath) StartFiber() []complex128 { return cloneFiber(sp.checkpoints[0]) }

// EndFiber returns a copy of the fiber at t = 1.
func (sp *SurfacePath) EndFiber() []complex128 {
	return cloneFiber(sp.checkpoints[len(sp.checkpoints)-1])
}

// At evaluates the lifted path at global parameter t, returning the
// x-position and the full continued fiber. The fiber is re-derived from
// the checkpoint at the enclosing segment's start, so numerical drift is
// bounded by one segment's length regardless of t.
func (sp *SurfacePath) At(t float64) (complex128, []complex128, error) {
	if len(sp.path) == 0 {
		return sp.x0, sp.StartFiber(), nil
	}
	k, local := sp.path.Locate(t)
	fiber := cloneFiber(sp.checkpoints[k])
	if err := continueLocal(sp.curve, sp.path[k], fiber, local, sp.opts); err != nil {
		return 0, nil, fmt.Errorf("segment %d (t=%v): %w", k, t, err)
	}
	return sp.path[k].At(local), fiber, nil
}

// Deriv returns dx/dt of the underlying contour at global parameter t —
// the integration measure for differentials pulled back to the path.
func (sp *SurfacePath) Deriv(t float64) complex128 {
	if len(sp.path) == 0 {
		return 0
	}
	return sp.path.Deriv(t)
}

// WalkSegments sweeps the whole path once with a continuously tracked
// fiber, handing each segment to fn as a quadrature panel: the global
// parameters ts, x-positions xs, global derivatives dxs and the fiber at
// every node (perSegment+1 nodes per segment, endpoints included; the
// last node of one panel matches the first node of the next).
func (sp *SurfacePath) WalkSegments(perSegment int, fn func(seg int, ts []float64, xs, dxs []complex128, fibers [][]complex128) error) error {
	if perSegment < 1 {
		return fmt.Errorf("%w: perSegment must be positive", ErrFiber)
	}
	n := len(sp.path)
	fiber := cloneFiber(sp.checkpoints[0])
	for k, seg := range sp.path {
		ts := make([]float64, perSegment+1)
		xs := make([]complex128, perSegment+1)
		dxs := make([]complex128, perSegment+1)
		fibers := make([][]complex128, perSegment+1)
		prev := 0.0
		for i := 0; i <= perSegment; i++ {
			local := float64(i) / float64(perSegment)
			if i > 0 {
				if err := advance(sp.curve, seg, fiber, prev, local, 0, sp.opts); err != nil {
					return fmt.Errorf("segment %d: %w", k, err)
				}
				prev = local
			}
			ts[i] = (float64(k) + local) / float64(n)
			xs[i] = seg.At(local)
			dxs[i] = seg.Deriv(local) * complex(float64(n), 0)
			fibers[i] = cloneFiber(fiber)
		}
		if err := fn(k, ts, xs, dxs, fibers); err != nil {
			return err
		}
	}
	return nil
}

// Sample traces the distinguished sheet at n+1 evenly spaced parameters —
// the hook an external plotting collaborator consumes.
func (sp *SurfacePath) Sample(n int) ([]Point, error) {
	if len(sp.path) == 0 || n < 1 {
		return nil, nil
	}
	per := (n + len(sp.path) - 1) / len(sp.path)
	var out []Point
	err := sp.WalkSegments(per, func(seg int, _ []float64, xs, _ []complex128, fibers [][]complex128) error {
		start := 0
		if seg > 0 {
			start = 1 // panel start duplicates the previous panel's end
		}
		for i := start; i < len(xs); i++ {
			out = append(out, Point{X: xs[i], Y: fibers[i][0]})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func cloneFiber(f []complex128) []complex128 {
	out := make([]complex128, len(f))
	copy(out, f)
	return out
}
