package cpoly_test

import (
	"fmt"

	"github.com/katalvlaran/riemann/cpoly"
)

// ExampleParse builds an elliptic curve from its expression and shows the
// canonical rendering used as the memoization key.
//
// Scenario:
//
//	f(x,y) = y² − x³ + 1, a smooth genus-1 curve. Parse accepts +, -, *,
//	^ and parentheses; String re-renders terms by descending y-degree,
//	then descending x-degree, so equal polynomials always print the same.
func ExampleParse() {
	f, err := cpoly.Parse("y^2 - x^3 + 1")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	fmt.Println(f)
	fmt.Println(f.DegX(), f.DegY())
	fmt.Println(f.Eval(2, 3))
	// Output:
	// y^2 - x^3 + 1
	// 3 2
	// (2+0i)
}
