// Package continuation tracks the full solution set of f(x,y) = 0 as x
// moves along a path: analytic continuation of the fiber {y₁,…,y_n}
// without ever letting a sheet jump onto a neighbouring root.
//
// 🚀 What is continuation?
//
//	Away from branch points the n roots of f(x,·) are locally smooth
//	functions of x. Moving x by a small step, each root is re-polished
//	by Newton iteration seeded at its previous value; a movement guard
//	(no sheet may travel more than a fraction of the previous minimum
//	sheet separation) makes misassignment impossible at the accepted
//	step size. When the guard trips — typically close to a branch point,
//	where two roots approach each other — the step is bisected and the
//	two halves retried, down to a bounded refinement depth.
//
//	  • SurfacePath — a cpath.Path plus a start fiber; checkpoints at
//	    every segment boundary are continued once at construction and
//	    are immutable afterwards, so evaluation at any parameter only
//	    re-derives the short stretch from the nearest checkpoint and a
//	    constructed SurfacePath is safe for concurrent use
//	  • WalkSegments — a single continuous sweep along the whole path,
//	    handing each segment's sampled panel to the caller; this is the
//	    access pattern the quadrature layer uses
//
// ⚙️ Failure model:
//
//	Root-matching ambiguity that survives MaxRefine bisections is a
//	fatal precision error (ErrPrecision) carrying the segment index,
//	global parameter and x-position where tracking broke down. There is
//	no silent fallback: a single wrong sheet assignment would corrupt
//	every downstream permutation and period.
//
// Complexity: O(segments · steps · n) Newton solves along a path, with
// adaptive extra subdivision only where sheets crowd each other.
package continuation
