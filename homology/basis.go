package homology

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/riemann/monodromy"
)

// Basis is a canonical homology basis: 2g primitive generator cycles
// plus integer coefficient rows combining them into g symplectic pairs
// (aᵢ, bᵢ) with aᵢ·bⱼ = δᵢⱼ.
type Basis struct {
	// Genus of the surface, cross-checked against Riemann-Hurwitz.
	Genus int
	// Generators are the 2g primitive cycles surviving the polygon
	// splicing. All start and end on sheet 0.
	Generators []Cycle
	// ACoeffs and BCoeffs are g×2g integer matrices: row i expresses
	// cycle aᵢ (resp. bᵢ) as a combination of Generators.
	ACoeffs [][]int
	BCoeffs [][]int

	graph *monodromy.Graph
}

// Compute derives the homology basis of the surface described by g.
//
// Steps:
//  1. Assemble the cell complex and its spanning tree (buildComplex).
//  2. Contract the tree and splice all faces into one polygon.
//  3. Read the rotation system and intersection numbers off the final
//     polygon word.
//  4. Reduce the intersection form to the standard symplectic shape
//     over the integers.
//
// Returns cpoly.ErrReducible for intransitive monodromy and
// ErrConsistency when any structural invariant fails.
func Compute(g *monodromy.Graph) (*Basis, error) {
	c, err := buildComplex(g)
	if err != nil {
		return nil, err
	}
	word, err := c.reduceFaces()
	if err != nil {
		return nil, err
	}

	survivors, err := survivingEdges(word)
	if err != nil {
		return nil, err
	}
	genus := len(survivors) / 2
	if rh := g.Genus(); rh != genus {
		return nil, fmt.Errorf("%w: splicing leaves genus %d, Riemann-Hurwitz gives %d", ErrConsistency, genus, rh)
	}

	b := &Basis{Genus: genus, graph: g}
	if genus == 0 {
		return b, nil
	}

	rot, err := rotationOrder(word)
	if err != nil {
		return nil, err
	}
	m := intersectionMatrix(rot, survivors)
	for i := range m {
		for j := range m {
			if m[i][j] != -m[j][i] {
				return nil, fmt.Errorf("%w: intersection form is not antisymmetric", ErrConsistency)
			}
		}
	}
	b.ACoeffs, b.BCoeffs, err = symplecticBasis(m)
	if err != nil {
		return nil, err
	}

	b.Generators = make([]Cycle, len(survivors))
	for i, id := range survivors {
		b.Generators[i] = c.cycleForEdge(c.edges[id])
	}
	return b, nil
}

// survivingEdges lists the distinct edges of the final polygon word in
// ascending id order, verifying each appears exactly once per
// direction.
func survivingEdges(word []occ) ([]int, error) {
	fwd := map[int]int{}
	bwd := map[int]int{}
	for _, o := range word {
		if o.Fwd {
			fwd[o.Edge]++
		} else {
			bwd[o.Edge]++
		}
	}
	var out []int
	for id := range fwd {
		if fwd[id] != 1 || bwd[id] != 1 {
			return nil, fmt.Errorf("%w: edge %d appears %d/%d times in the final polygon", ErrConsistency, id, fwd[id], bwd[id])
		}
		out = append(out, id)
	}
	for id := range bwd {
		if fwd[id] != 1 {
			return nil, fmt.Errorf("%w: edge %d appears backwards only", ErrConsistency, id)
		}
	}
	sort.Ints(out)
	return out, nil
}

// ACycle returns the i-th a-cycle as a single closed walk.
func (b *Basis) ACycle(i int) Cycle { return b.Combine(b.ACoeffs[i]) }

// BCycle returns the i-th b-cycle as a single closed walk.
func (b *Basis) BCycle(i int) Cycle { return b.Combine(b.BCoeffs[i]) }

// Combine concatenates generator cycles with integer multiplicities
// into one closed walk: coefficient k repeats a generator k times,
// negative coefficients traverse it backwards. All generators are
// anchored on sheet 0, so concatenation is well defined.
func (b *Basis) Combine(coeffs []int) Cycle {
	var steps []Step
	for gi, k := range coeffs {
		cy := b.Generators[gi]
		if k < 0 {
			cy = b.reverse(cy)
			k = -k
		}
		for r := 0; r < k; r++ {
			steps = append(steps, cy.Steps...)
		}
	}
	return Cycle{Steps: steps}
}

// reverse runs a cycle backwards, re-anchoring each step on the sheet
// the forward step lands on.
func (b *Basis) reverse(cy Cycle) Cycle {
	out := make([]Step, 0, len(cy.Steps))
	for i := len(cy.Steps) - 1; i >= 0; i-- {
		s := cy.Steps[i]
		out = append(out, Step{Sheet: b.landing(s), Node: s.Node, Winding: -s.Winding})
	}
	return Cycle{Steps: out}
}

// landing applies a step's branch permutation to its start sheet.
func (b *Basis) landing(s Step) int {
	p := b.graph.Nodes[s.Node].Perm
	if s.Winding < 0 {
		p = p.Inverse()
	}
	sheet := s.Sheet
	for r := 0; r < absInt(s.Winding); r++ {
		sheet = p[sheet]
	}
	return sheet
}
