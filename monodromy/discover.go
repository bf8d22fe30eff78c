package monodromy

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/riemann/continuation"
	"github.com/katalvlaran/riemann/cpath"
	"github.com/katalvlaran/riemann/cpoly"
)

// Discover computes the full monodromy data of the curve f(x,y) = 0:
// branch points, base point, ordered base sheets, loop geometry and the
// permutation of every loop, including the loop around infinity when it
// acts non-trivially.
//
// Steps:
//  1. Extract branch points from the y-discriminant.
//  2. Choose and validate a base point; solve and sort the base fiber.
//  3. Assign loop radii and canonical node order, then tree parents
//     from sight-line obstacles.
//  4. Track the fiber around every loop, matching end fibers back onto
//     the base sheets; failed loops are re-tracked with doubled step
//     counts up to MaxRetries times.
//  5. Track the loop around infinity and verify that all permutations
//     compose to the identity.
//
// Returns ErrConsistency when step 5 fails, ErrMatch when a fiber
// cannot be identified, and propagates cpoly.ErrReducible for curves
// with non-trivial square factors.
func Discover(f *cpoly.Poly, opts Options) (*Graph, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	disc := opts.Disc
	if disc.Logger == nil {
		disc.Logger = log
	}
	branch, err := cpoly.DiscriminantRoots(f, disc)
	if err != nil {
		return nil, err
	}
	log.Debug("monodromy: branch points", "count", len(branch))

	base, err := chooseBasePoint(f, branch, opts)
	if err != nil {
		return nil, err
	}
	sheets, err := fiberAt(f, base)
	if err != nil {
		return nil, fmt.Errorf("monodromy: base fiber at %v: %w", base, err)
	}
	sortFiber(sheets)
	log.Debug("monodromy: base point", "x0", base, "sheets", len(sheets))

	g := &Graph{Curve: f, BasePoint: base, BaseSheets: sheets, opts: opts}
	g.buildNodes(branch)

	// 4. One counterclockwise loop per branch point.
	for k := range g.Nodes {
		perm, err := g.trackLoop(k)
		if err != nil {
			return nil, err
		}
		g.Nodes[k].Perm = perm
		log.Debug("monodromy: loop tracked", "node", k, "around", g.Nodes[k].Value, "perm", perm)
	}

	// 5. Loop around infinity, then the defining relation.
	inf, err := g.trackInfinity()
	if err != nil {
		return nil, err
	}
	if !inf.IsIdentity() {
		g.Nodes = append(g.Nodes, Node{
			ID:       InfinityID,
			Radius:   g.outerRadius(),
			Perm:     inf,
			Parent:   RootID,
			Infinity: true,
		})
		log.Debug("monodromy: infinity is branched", "perm", inf)
	}

	prod := Identity(g.Degree())
	for _, n := range g.Nodes {
		prod = prod.Compose(n.Perm)
	}
	if !prod.IsIdentity() {
		return nil, fmt.Errorf("%w: product is %v", ErrConsistency, prod)
	}
	return g, nil
}

// chooseBasePoint returns an admissible base point: outside every loop
// disk with margin, and with a non-degenerate fiber. The default
// strategy starts on the real axis left of the whole branch cluster and
// shifts further left until admissible.
func chooseBasePoint(f *cpoly.Poly, branch []complex128, opts Options) (complex128, error) {
	var x0 complex128
	if opts.BasePoint != nil {
		x0 = *opts.BasePoint
		if !basePointAdmissible(f, x0, branch, opts.RadiusFactor) {
			return 0, fmt.Errorf("%w: %v", ErrBasePoint, x0)
		}
		return x0, nil
	}

	minRe, diam := math.Inf(1), 0.0
	for i, b := range branch {
		minRe = math.Min(minRe, real(b))
		for _, c := range branch[:i] {
			diam = math.Max(diam, cmplx.Abs(b-c))
		}
	}
	if len(branch) == 0 {
		minRe = 0
	}
	step := math.Max(1, diam/4)
	x0 = complex(minRe-step, 0)
	for try := 0; try < 8; try++ {
		if basePointAdmissible(f, x0, branch, opts.RadiusFactor) {
			return x0, nil
		}
		x0 -= complex(step, 0)
	}
	return 0, fmt.Errorf("%w: no admissible point left of %v", ErrBasePoint, complex(minRe, 0))
}

// basePointAdmissible requires full-degree distinct roots at x0 and
// clearance of at least twice the separation-derived loop radius from
// every branch point. The radius is judged from branch separations
// alone: a candidate close to a branch point must be rejected, not
// accommodated by shrinking that point's disk toward it.
func basePointAdmissible(f *cpoly.Poly, x0 complex128, branch []complex128, radiusFactor float64) bool {
	for k, b := range branch {
		sep := math.Inf(1)
		for j, c := range branch {
			if j != k {
				sep = math.Min(sep, cmplx.Abs(b-c))
			}
		}
		rad := radiusFactor * sep
		if len(branch) == 1 {
			rad = radiusFactor * cmplx.Abs(b-x0)
		}
		if cmplx.Abs(x0-b) < 2*rad {
			return false
		}
	}
	fiber, err := fiberAt(f, x0)
	if err != nil {
		return false
	}
	scale := 1.0
	for _, y := range fiber {
		scale = math.Max(scale, cmplx.Abs(y))
	}
	for i, a := range fiber {
		for _, b := range fiber[:i] {
			if cmplx.Abs(a-b) < 1e-8*scale {
				return false
			}
		}
	}
	return true
}

// fiberAt solves f(x, ·) = 0, requiring the full sheet count.
func fiberAt(f *cpoly.Poly, x complex128) ([]complex128, error) {
	c := cpoly.TrimLeading(f.YCoefficients(x))
	if len(c) != f.DegY()+1 {
		return nil, fmt.Errorf("leading y-coefficient vanishes")
	}
	return cpoly.Roots(c)
}

// sortFiber fixes the sheet order: ascending real part, then imaginary.
func sortFiber(fiber []complex128) {
	sort.Slice(fiber, func(i, j int) bool {
		if real(fiber[i]) != real(fiber[j]) {
			return real(fiber[i]) < real(fiber[j])
		}
		return imag(fiber[i]) < imag(fiber[j])
	})
}

// buildNodes fills the arena: canonical order, radii, parents and
// children.
func (g *Graph) buildNodes(branch []complex128) {
	order := append([]complex128(nil), branch...)

	// Root polishing leaves ±1e-15 noise on real and imaginary parts;
	// snap near-axis components before the angle sort so the canonical
	// order is the same on every platform.
	scale := 0.0
	for _, b := range order {
		scale = math.Max(scale, cmplx.Abs(b-g.BasePoint))
	}
	snapTol := 1e-9 * scale
	angle := func(b complex128) float64 {
		d := b - g.BasePoint
		re, im := real(d), imag(d)
		if math.Abs(im) < snapTol {
			im = 0
		}
		if math.Abs(re) < snapTol {
			re = 0
		}
		return math.Atan2(im, re)
	}
	sort.Slice(order, func(i, j int) bool {
		ai, aj := angle(order[i]), angle(order[j])
		if ai != aj {
			return ai < aj
		}
		return cmplx.Abs(order[i]-g.BasePoint) < cmplx.Abs(order[j]-g.BasePoint)
	})

	g.Nodes = make([]Node, len(order))
	for k, b := range order {
		sep := math.Inf(1)
		for _, c := range order {
			if c != b {
				sep = math.Min(sep, cmplx.Abs(b-c))
			}
		}
		g.Nodes[k] = Node{
			ID:     k,
			Value:  b,
			Radius: g.opts.RadiusFactor * math.Min(sep, cmplx.Abs(b-g.BasePoint)),
			Parent: RootID,
		}
	}
	for k := range g.Nodes {
		u := (g.Nodes[k].Value - g.BasePoint) / complex(cmplx.Abs(g.Nodes[k].Value-g.BasePoint), 0)
		entry := g.Nodes[k].Value - u*complex(g.Nodes[k].Radius, 0)
		if obs := g.obstaclesOn(g.BasePoint, entry, -1, k); len(obs) > 0 {
			g.Nodes[k].Parent = obs[len(obs)-1].node
		}
	}
	for k := range g.Nodes {
		if p := g.Nodes[k].Parent; p != RootID {
			g.Nodes[p].Children = append(g.Nodes[p].Children, k)
		}
	}
}

// trackLoop follows the fiber once counterclockwise around node k and
// matches the end fiber onto the base sheets.
func (g *Graph) trackLoop(k int) (Perm, error) {
	path, err := g.PathAroundNode(k, 1)
	if err != nil {
		return nil, err
	}
	return g.trackPath(path, fmt.Sprintf("branch point %v", g.Nodes[k].Value))
}

// trackInfinity follows the fiber once around x = ∞.
func (g *Graph) trackInfinity() (Perm, error) {
	return g.trackPath(g.PathAroundInfinity(1), "infinity")
}

// trackPath continues the base fiber along path, with step-doubling
// retries on precision or matching failures.
func (g *Graph) trackPath(path cpath.Path, what string) (Perm, error) {
	track := g.opts.Track
	var lastErr error
	for attempt := 0; attempt <= g.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			if track.StepsPerSegment == 0 {
				track.StepsPerSegment = continuation.DefaultOptions().StepsPerSegment
			}
			track.StepsPerSegment *= 2
			g.opts.Logger.Warn("monodromy: retrying loop",
				"around", what, "attempt", attempt, "steps", track.StepsPerSegment)
		}
		sp, err := continuation.NewSurfacePath(g.Curve, path, g.BasePoint, g.BaseSheets, track)
		if err != nil {
			lastErr = err
			continue
		}
		perm, err := g.matchFiber(sp.EndFiber())
		if err != nil {
			lastErr = err
			continue
		}
		return perm, nil
	}
	return nil, fmt.Errorf("monodromy: loop around %s: %w", what, lastErr)
}

// matchFiber identifies each tracked sheet with its nearest base sheet,
// requiring the assignment to be a bijection within MatchTol.
func (g *Graph) matchFiber(end []complex128) (Perm, error) {
	scale := 1.0
	for _, y := range g.BaseSheets {
		scale = math.Max(scale, cmplx.Abs(y))
	}
	images := make([]int, len(end))
	for i, y := range end {
		best, bestDist := -1, math.Inf(1)
		for j, y0 := range g.BaseSheets {
			if d := cmplx.Abs(y - y0); d < bestDist {
				best, bestDist = j, d
			}
		}
		if bestDist > g.opts.MatchTol*scale {
			return nil, fmt.Errorf("%w: sheet %d off by %.3g", ErrMatch, i, bestDist)
		}
		images[i] = best
	}
	perm, err := NewPerm(images)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMatch, err)
	}
	return perm, nil
}
