// Package cpoly provides the curve algebra underlying the riemann module:
// dense bivariate polynomials over ℂ, expression parsing, partial
// derivatives, univariate complex root extraction and discriminant root
// discovery.
//
// 🚀 What is cpoly?
//
//	Every other package in the module consumes curves through a narrow
//	numeric interface — evaluate f(x,y), fetch the coefficients of
//	f(x,·) as a polynomial in y, differentiate. cpoly is the concrete
//	provider of that interface:
//	  • Poly    — immutable coefficient grid c[i][j]·x^i·y^j with
//	    Add/Sub/Mul/Pow, Dx/Dy, Eval and canonical String() form
//	  • Parse   — small expression grammar ("y^2 - (x-1)*(x+1)")
//	  • Roots   — Durand–Kerner simultaneous iteration for univariate
//	    polynomials with complex coefficients
//	  • DiscriminantRoots — branch point discovery: the resultant of f
//	    and ∂f/∂y is sampled on the unit circle, its coefficients are
//	    recovered by an inverse DFT, and multiple-root clusters are
//	    collapsed and re-polished
//
// ⚙️ Numerical notes:
//
//   - Resultants are evaluated as Sylvester determinants with formal
//     degrees, so x-values where the leading y-coefficient vanishes do
//     not corrupt the interpolation.
//   - A discriminant root of multiplicity m surfaces as a cluster of m
//     nearby Durand–Kerner roots; clusters are merged within a relative
//     tolerance and polished by Newton iteration on the (m−1)-th
//     derivative of the resultant.
//   - An identically vanishing discriminant means the curve is singular
//     or not squarefree and is reported as ErrReducible — such curves
//     are explicitly unsupported.
//
// Complexity: parsing and arithmetic are polynomial in the term count;
// DiscriminantRoots is O(D·m³) determinant work for D+1 samples, with
// D ≤ deg_x(f)·(2·deg_y(f)−1).
package cpoly
