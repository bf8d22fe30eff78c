package monodromy

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/riemann/continuation"
	"github.com/katalvlaran/riemann/cpoly"
)

var (
	// ErrConsistency - the discovered permutations fail the defining
	// relation σ₁·…·σ_t·σ_∞ = id, so at least one loop was tracked or
	// matched incorrectly.
	ErrConsistency = errors.New("monodromy: permutations do not compose to the identity")

	// ErrMatch - an end fiber could not be matched bijectively against
	// the base sheets within MatchTol, even after retries.
	ErrMatch = errors.New("monodromy: end fiber does not match base sheets")

	// ErrBasePoint - no admissible base point could be found (a
	// caller-supplied base point collides with a branch point or sits
	// inside a loop disk).
	ErrBasePoint = errors.New("monodromy: base point conflicts with a branch disk")
)

const (
	// InfinityID marks the node representing the loop around x = ∞.
	InfinityID = -2
	// RootID is the Parent value of nodes attached directly to the
	// base point.
	RootID = -1
)

// Node is one entry of the branch-point arena. Nodes are stored in
// canonical order: ascending angle of Value as seen from the base
// point, ties broken by distance, the infinity node (if any) last.
type Node struct {
	// ID is the node's index in Graph.Nodes, or InfinityID.
	ID int
	// Value is the branch point in the x-plane. Unset for infinity.
	Value complex128
	// Radius of the loop circle around Value (for infinity, of the
	// large outer circle).
	Radius float64
	// Perm is the sheet permutation induced by one counterclockwise
	// loop around the node.
	Perm Perm
	// Parent is the node whose disk is the last obstacle on the
	// sight-line from the base point, or RootID.
	Parent int
	// Children lists nodes having this node as Parent, in canonical
	// order.
	Children []int
	// Infinity marks the node for the loop around x = ∞. It is present
	// only when that loop acts non-trivially on the sheets.
	Infinity bool
}

// Graph is the full discovery result: a curve's branch points with
// their loop geometry and permutations, anchored at a common base
// point. A Graph is immutable after Discover returns.
type Graph struct {
	// Curve is the defining polynomial.
	Curve *cpoly.Poly
	// BasePoint is the common start and end of every loop.
	BasePoint complex128
	// BaseSheets are the roots of f(BasePoint, ·) sorted by (Re, Im).
	// Sheet indices everywhere refer to positions in this slice.
	BaseSheets []complex128
	// Nodes holds the finite branch points in canonical order, plus a
	// final infinity node when the loop around infinity is
	// non-trivial.
	Nodes []Node

	opts Options
}

// Options tunes discovery. The zero value selects every default.
type Options struct {
	// RadiusFactor scales loop radii: radius = RadiusFactor × distance
	// to the nearest other branch point (or to the base point when
	// there is only one branch point). Must stay below 0.5 so loop
	// disks cannot overlap. Default 0.25.
	RadiusFactor float64

	// MatchTol is the absolute tolerance (relative to the fiber scale)
	// for matching a tracked end fiber against the base sheets.
	// Default 1e-8.
	MatchTol float64

	// MaxRetries bounds how often a failed loop is re-tracked with a
	// doubled step count before giving up. Default 3.
	MaxRetries int

	// BasePoint overrides the default base-point strategy when
	// non-nil. The override is still validated against the loop disks.
	BasePoint *complex128

	// Track configures the analytic continuation along loops.
	Track continuation.Options

	// Disc configures branch-point extraction.
	Disc cpoly.DiscOptions

	// Logger receives progress at Debug and retry notices at Warn.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		RadiusFactor: 0.25,
		MatchTol:     1e-8,
		MaxRetries:   3,
		Track:        continuation.DefaultOptions(),
		Disc:         cpoly.DefaultDiscOptions(),
		Logger:       slog.Default(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.RadiusFactor <= 0 || o.RadiusFactor >= 0.5 {
		o.RadiusFactor = def.RadiusFactor
	}
	if o.MatchTol <= 0 {
		o.MatchTol = def.MatchTol
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = def.MaxRetries
	}
	if o.Logger == nil {
		o.Logger = def.Logger
	}
	return o
}

// Degree returns the number of sheets.
func (g *Graph) Degree() int { return len(g.BaseSheets) }

// BranchPoints returns the finite branch points in canonical order.
func (g *Graph) BranchPoints() []complex128 {
	var out []complex128
	for _, n := range g.Nodes {
		if !n.Infinity {
			out = append(out, n.Value)
		}
	}
	return out
}

// Group returns the permutations of all stored nodes in canonical
// order, infinity last. Their left-to-right composition is the
// identity.
func (g *Graph) Group() []Perm {
	out := make([]Perm, len(g.Nodes))
	for i, n := range g.Nodes {
		out[i] = n.Perm.Clone()
	}
	return out
}

// HasInfinity reports whether the loop around infinity permutes sheets.
func (g *Graph) HasInfinity() bool {
	return len(g.Nodes) > 0 && g.Nodes[len(g.Nodes)-1].Infinity
}

// Genus computes the genus by Riemann-Hurwitz from the stored cycle
// structures: g = Σ (n − #cycles(σ)) / 2 − n + 1, clamped at 0 for the
// unbranched case.
func (g *Graph) Genus() int {
	n := g.Degree()
	branching := 0
	for _, node := range g.Nodes {
		branching += n - len(node.Perm.Cycles())
	}
	gen := branching/2 - n + 1
	if gen < 0 {
		gen = 0
	}
	return gen
}
