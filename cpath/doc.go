// Package cpath models piecewise paths in the complex plane: line
// segments and circular arcs with exact derivatives, composed into
// parameterized paths.
//
// 🚀 What is cpath?
//
//	The monodromy and period machinery moves the variable x of a curve
//	f(x,y)=0 along constructed contours — out to a branch point, around
//	it, and back. cpath is the geometry layer those contours are built
//	from:
//	  • Segment — a tagged variant (line | arc), evaluated by At(t) and
//	    differentiated by Deriv(t) for t ∈ [0,1]; arcs carry a signed
//	    sweep and support |Δθ| > 2π for multi-winding loops
//	  • Path    — a segment sequence with a single global parameter:
//	    t ∈ [0,1] maps onto the active segment and its local parameter,
//	    and Deriv applies the chain-rule factor of that mapping
//
// ⚙️ Conventions:
//
//   - Positive arc sweep is counterclockwise.
//   - Reverse() of a path reverses both the segment order and each
//     segment, so path.Reverse().At(t) == path.At(1−t).
//   - Sample(n) returns n+1 evenly spaced points including both ends —
//     the hook an external plotter consumes.
//
// Complexity: all evaluations are O(1) per point.
package cpath
