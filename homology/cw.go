package homology

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/riemann/cpoly"
	"github.com/katalvlaran/riemann/monodromy"
)

var (
	// ErrConsistency - the cell complex fails a structural invariant
	// (wrong Euler characteristic, broken rotation system, or a
	// non-unimodular intersection form). Always indicates corrupted
	// monodromy input rather than a tolerance issue.
	ErrConsistency = errors.New("homology: cell complex fails a structural invariant")
)

// edge is one oriented 1-cell: a single counterclockwise turn around
// monodromy node Node carries sheet From to sheet To.
type edge struct {
	ID   int
	Node int
	From int
	To   int
}

// occ is one signed occurrence of an edge inside a face word.
type occ struct {
	Edge int
	Fwd  bool
}

func (o occ) inv() occ { return occ{Edge: o.Edge, Fwd: !o.Fwd} }

// cellComplex is the combinatorial surface derived from a monodromy
// graph.
type cellComplex struct {
	sheets int
	edges  []edge
	// byNodeSheet maps (node, moved sheet) to the edge id.
	byNodeSheet map[[2]int]int
	faces       [][]occ

	// spanning tree of the sheet graph, rooted at sheet 0
	treeEdge []int  // per sheet: edge id connecting it toward the root (-1 at root)
	treeFwd  []bool // whether that edge is traversed forward going AWAY from the root
	parent   []int  // per sheet: previous sheet on the path to the root
	isTree   []bool // per edge id
}

// buildComplex derives cells from the graph's permutations, checks
// transitivity and the Euler characteristic, and roots a BFS spanning
// tree at sheet 0.
func buildComplex(g *monodromy.Graph) (*cellComplex, error) {
	n := g.Degree()
	perms := g.Group()

	c := &cellComplex{sheets: n, byNodeSheet: make(map[[2]int]int)}
	for node, p := range perms {
		for j := 0; j < n; j++ {
			if p[j] == j {
				continue
			}
			id := len(c.edges)
			c.edges = append(c.edges, edge{ID: id, Node: node, From: j, To: p[j]})
			c.byNodeSheet[[2]int{node, j}] = id
		}
	}

	// Big faces: the lift of the relation loop starting on each sheet.
	for s := 0; s < n; s++ {
		var word []occ
		cur := s
		for node, p := range perms {
			if p[cur] == cur {
				continue
			}
			word = append(word, occ{Edge: c.byNodeSheet[[2]int{node, cur}], Fwd: true})
			cur = p[cur]
		}
		if cur != s {
			return nil, fmt.Errorf("%w: relation lift at sheet %d ends on sheet %d", ErrConsistency, s, cur)
		}
		if len(word) > 0 {
			c.faces = append(c.faces, word)
		}
	}

	// Small faces: each non-trivial cycle of each permutation, run
	// backwards so that every edge is used once in each direction.
	for node, p := range perms {
		for _, cyc := range p.Cycles() {
			if len(cyc) < 2 {
				continue
			}
			word := make([]occ, 0, len(cyc))
			for k := len(cyc) - 1; k >= 0; k-- {
				word = append(word, occ{Edge: c.byNodeSheet[[2]int{node, cyc[k]}], Fwd: false})
			}
			c.faces = append(c.faces, word)
		}
	}

	if err := c.spanningTree(); err != nil {
		return nil, err
	}

	// Closed oriented surface: χ = V − E + F = 2 − 2g.
	chi := n - len(c.edges) + len(c.faces)
	if wantChi := 2 - 2*g.Genus(); len(c.edges) > 0 && chi != wantChi {
		return nil, fmt.Errorf("%w: Euler characteristic %d, Riemann-Hurwitz expects %d", ErrConsistency, chi, wantChi)
	}
	return c, nil
}

// spanningTree roots a BFS tree at sheet 0. A sheet unreachable through
// the permutations means the monodromy group is intransitive, i.e. the
// curve factors.
func (c *cellComplex) spanningTree() error {
	n := c.sheets
	c.treeEdge = make([]int, n)
	c.treeFwd = make([]bool, n)
	c.parent = make([]int, n)
	c.isTree = make([]bool, len(c.edges))
	seen := make([]bool, n)
	for i := range c.treeEdge {
		c.treeEdge[i], c.parent[i] = -1, -1
	}

	queue := []int{0}
	seen[0] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range c.edges {
			var next int
			var fwd bool
			switch v {
			case e.From:
				next, fwd = e.To, true
			case e.To:
				next, fwd = e.From, false
			default:
				continue
			}
			if seen[next] {
				continue
			}
			seen[next] = true
			c.treeEdge[next] = e.ID
			c.treeFwd[next] = fwd
			c.parent[next] = v
			c.isTree[e.ID] = true
			queue = append(queue, next)
		}
	}
	for v := 0; v < n; v++ {
		if !seen[v] {
			return fmt.Errorf("%w: sheet %d unreachable, monodromy group is intransitive", cpoly.ErrReducible, v)
		}
	}
	return nil
}

// rootPath returns the tree walk from sheet 0 to sheet v as signed
// edge occurrences.
func (c *cellComplex) rootPath(v int) []occ {
	var up []occ
	for v != 0 {
		up = append(up, occ{Edge: c.treeEdge[v], Fwd: c.treeFwd[v]})
		v = c.parent[v]
	}
	// Collected leaf-to-root; reverse for root-to-leaf order.
	for i, j := 0, len(up)-1; i < j; i, j = i+1, j-1 {
		up[i], up[j] = up[j], up[i]
	}
	return up
}
