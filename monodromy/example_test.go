package monodromy_test

import (
	"fmt"

	"github.com/katalvlaran/riemann/monodromy"
)

// ExamplePerm demonstrates sheet permutations in one-line notation and
// their disjoint-cycle rendering.
//
// Scenario:
//
//	p sends 0→1→2→0 (a 3-cycle), q swaps sheets 0 and 1. Compose is read
//	in path order: p.Compose(q) follows p first, then q.
func ExamplePerm() {
	p := monodromy.Perm{1, 2, 0}
	q := monodromy.Perm{1, 0, 2}
	fmt.Println(p)
	fmt.Println(p.Compose(q))
	fmt.Println(p.Inverse())
	fmt.Println(p.Compose(p.Inverse()))
	// Output:
	// (0 1 2)
	// (1 2)
	// (0 2 1)
	// id
}
