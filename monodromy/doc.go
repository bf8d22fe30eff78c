// Package monodromy discovers the branching structure of a plane curve
// f(x,y) = 0: its branch points, a base point with an ordered sheet
// fiber, a non-crossing system of loops, and the permutation each loop
// induces on the sheets.
//
// 🚀 What is monodromy?
//
//	Walking x counterclockwise around a branch point and tracking all
//	y-roots continuously permutes the sheets. The collection of those
//	permutations — the monodromy group — determines the topology of the
//	surface. Discovery proceeds in stages:
//	 1. Branch points: roots of the discriminant of f with respect to y
//	    (cpoly.DiscriminantRoots).
//	 2. Base point: a configurable strategy, by default the real-axis
//	    point left of the whole branch cluster, validated against every
//	    loop disk.
//	 3. Base sheets: the roots of f(x₀,·) in a fixed (Re, Im) order, so
//	    sheet indices are reproducible across runs.
//	 4. Spanning structure: each branch point's approach follows the
//	    straight sight-line from the base, detouring around any branch
//	    disk it clips; the farthest such obstacle is the node's tree
//	    parent. Loop radii stay below half the minimum inter-branch
//	    distance, so no two loop disks overlap and no connecting
//	    segment crosses a foreign disk.
//	 5. Permutations: the fiber is tracked around each loop
//	    (PathAroundNode with winding +1) and matched back against the
//	    base sheets; the loop around infinity (a large clockwise
//	    circle) is tracked the same way.
//	 6. Consistency: composed in canonical order (angle from the base
//	    point, then distance, infinity last) the permutations must
//	    multiply to the identity — anything else aborts discovery with
//	    ErrConsistency, because a single wrong permutation would
//	    silently corrupt the homology downstream.
//
// ⚙️ Node storage is a typed arena indexed by node id — fixed fields
// (value, radius, permutation, parent), no dynamic attribute maps.
//
// Complexity: discovery tracks t+1 loops of O(StepsPerSegment·n) Newton
// solves each, after an O(D²) discriminant interpolation.
package monodromy
