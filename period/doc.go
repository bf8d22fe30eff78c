// Package period evaluates period integrals: holomorphic differentials
// integrated over the lifts of homology cycles, assembled into the A
// and B period matrices and the Riemann matrix τ = A⁻¹B.
//
// 🚀 Pipeline position
//
//	monodromy fixes the loops, homology fixes the cycles, and this
//	package does the only heavy numerics: every cycle is replayed as a
//	concatenation of branch loops, the fiber is carried along it, and
//	the differential is sampled on the distinguished sheet. Each path
//	segment is integrated by the trapezoid rule on a fixed grid
//	(gonum/integrate), real and imaginary parts separately.
//
// ⚙️ Only the 2g primitive cycles are ever integrated; a- and b-rows
// are integer combinations of those integrals, so the work scales with
// g·(number of differentials) rather than with the coefficient sizes.
//
// ✨ The Riemann matrix is solved by complex Gaussian elimination and
// validated: τ must be symmetric with positive definite imaginary
// part. A globally flipped surface orientation shows up as a negative
// definite imaginary part and is corrected by negating τ.
package period
