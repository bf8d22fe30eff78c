package homology

import (
	"fmt"
	"strings"
)

// Step is one move of a cycle: standing on Sheet, wind Winding times
// counterclockwise around the branch loop of monodromy node Node
// (negative windings run clockwise). The move lands on the sheet the
// permutation dictates.
type Step struct {
	Sheet   int
	Node    int
	Winding int
}

// Cycle is a closed walk on the surface recorded as branch-loop steps;
// it starts and ends on sheet 0. Cycles are replayed as concrete
// x-plane paths by the period integration.
type Cycle struct {
	Steps []Step
}

// IsTrivial reports whether the cycle makes no moves.
func (cy Cycle) IsTrivial() bool { return len(cy.Steps) == 0 }

// String renders the walk, e.g. "0 -(2×+1)-> 1 -(0×-1)-> 0".
func (cy Cycle) String() string {
	if cy.IsTrivial() {
		return "trivial"
	}
	var sb strings.Builder
	for _, s := range cy.Steps {
		fmt.Fprintf(&sb, "%d -(%d×%+d)-> ", s.Sheet, s.Node, s.Winding)
	}
	sb.WriteString("0")
	return sb.String()
}

// cycleForEdge lifts a surviving generator edge to a closed walk: tree
// walk from sheet 0 to the edge's start, the edge itself, then the
// reversed tree walk from the edge's end.
func (c *cellComplex) cycleForEdge(e edge) Cycle {
	var occs []occ
	occs = append(occs, c.rootPath(e.From)...)
	occs = append(occs, occ{Edge: e.ID, Fwd: true})
	back := c.rootPath(e.To)
	for i := len(back) - 1; i >= 0; i-- {
		occs = append(occs, back[i].inv())
	}

	steps := make([]Step, 0, len(occs))
	for _, o := range occs {
		ed := c.edges[o.Edge]
		if o.Fwd {
			steps = append(steps, Step{Sheet: ed.From, Node: ed.Node, Winding: 1})
		} else {
			steps = append(steps, Step{Sheet: ed.To, Node: ed.Node, Winding: -1})
		}
	}
	return Cycle{Steps: steps}
}
