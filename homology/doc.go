// Package homology builds a canonical basis of first homology from
// monodromy data: 2g cycles arranged in g symplectic pairs (aᵢ, bᵢ)
// with intersection numbers aᵢ·bⱼ = δᵢⱼ and aᵢ·aⱼ = bᵢ·bⱼ = 0.
//
// 🚀 How the basis is found
//
//	The surface is assembled as a cell complex directly from the sheet
//	permutations, with no geometry involved:
//	 1. Vertices are the sheets. Each monodromy node i contributes one
//	    oriented edge j → σᵢ(j) per moved sheet j.
//	 2. Faces come in two kinds: for every sheet, the lift of the full
//	    relation loop σ₁·…·σ_t (a "big" face), and for every
//	    non-trivial cycle of each σᵢ, a "small" face running the
//	    node's edges backwards. Every edge is used exactly once in
//	    each direction, so the complex is a closed oriented surface;
//	    its Euler characteristic must reproduce the Riemann-Hurwitz
//	    genus.
//	 3. A spanning tree of the sheet graph is contracted (a
//	    non-transitive sheet graph means the curve is reducible).
//	    The remaining edges generate the fundamental group; each face
//	    becomes a cyclic word in those generators.
//	 4. Polygon splicing: two faces sharing a generator are merged
//	    along it and the generator is discarded, until a single
//	    polygon remains. The 2g surviving generators are primitive
//	    cycles, and the polygon word encodes the rotation system at
//	    the single vertex.
//	 5. Intersection numbers are read off the rotation system, and an
//	    integer symplectic reduction (unimodular congruence) turns the
//	    intersection matrix into the standard form, yielding the a/b
//	    pairing as integer combinations of the surviving cycles.
//
// ✨ Cycles are purely combinatorial: alternating (sheet, branch-loop)
// steps that downstream packages replay as actual paths in the x-plane.
//
// Complexity: O(t·n) cells and O(g³) for the reduction; tiny next to
// the numerical stages.
package homology
