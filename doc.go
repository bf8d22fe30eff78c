// Package riemann computes numerical invariants of Riemann surfaces
// defined by plane algebraic curves f(x,y) = 0: branch points, monodromy
// permutations, a symplectic homology basis, holomorphic differentials and
// the period matrix.
//
// 🚀 What is riemann?
//
//	A numerical engine for multi-valued complex functions. Given a curve
//	such as y² − (x−2)(x−1)(x+1)(x+2), it discovers where the y-sheets
//	collide, tracks roots continuously along paths in the complex x-plane,
//	assembles the surface's first homology group from the resulting
//	permutations, and integrates differentials along cycle paths:
//		• cpoly        — curve algebra: parsing, discriminants, root finding
//		• cpath        — line/arc segments and composite paths in ℂ
//		• continuation — sheet-tracked analytic continuation along paths
//		• monodromy    — branch points, spanning structure, permutations
//		• homology     — genus, c-cycles, symplectic a/b-cycle basis
//		• period       — cycle integrals and the g×g period matrices
//		• surface      — the RiemannSurface façade tying it all together
//		• memo         — optional on-disk cache of monodromy results
//
// ✨ Why choose riemann?
//
//   - Robust continuation – adaptive step bisection keeps every sheet on
//     its own root, even close to branch points
//   - Consistency-checked – monodromy products, genus and intersection
//     ranks are cross-validated before any integral is trusted
//   - Concurrent – period integrals fan out across a worker pool
//   - Small API – one façade type, explicit options, sentinel errors
//
// Quick start:
//
//	f, _ := cpoly.Parse("y^2 - (x-2)*(x-1)*(x+1)*(x+2)")
//	s, _ := surface.New(f)
//	g, _ := s.Genus()            // 1
//	A, B, _ := s.PeriodMatrices() // 1×1 complex matrices
//
// Dive into DESIGN.md for the algorithmic background and each package's
// doc.go for its contract.
package riemann
