// Package surface ties the pipeline together: one RiemannSurface value
// wraps a plane curve f(x,y) = 0 and hands out its branch points,
// monodromy group, homology basis, holomorphic differentials and
// period matrices through lazily memoized accessors.
//
// 🚀 Quick start
//
//	f := cpoly.MustParse("y^2 - (x-2)*(x-1)*(x+1)*(x+2)")
//	s, err := surface.New(f)
//	if err != nil { ... }
//	genus, _ := s.Genus()          // 1
//	tau, _ := s.RiemannMatrix()    // 1×1, Im τ > 0
//
// ✨ Every stage is computed at most once per surface (sync.Once per
// stage) and shared by all subsequent calls, so repeated accessors
// return the identical objects. The only configuration most callers
// need is the functional options on New; WithCacheDir additionally
// persists discovered monodromy between runs.
//
// ⚙️ The default differential basis follows the curve's shape:
// hyperelliptic curves (deg_y = 2) get x^a·dx/∂f/∂y for a < g, other
// curves get the monomials of total degree ≤ d−3 over ∂f/∂y, which is
// a basis exactly when the projective curve is smooth. When the count
// disagrees with the genus, ErrDifferentialBasis asks the caller to
// supply a basis via WithDifferentials.
package surface
