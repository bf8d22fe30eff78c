package homology_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/cpoly"
	"github.com/katalvlaran/riemann/homology"
	"github.com/katalvlaran/riemann/monodromy"
)

func discover(t *testing.T, src string) *monodromy.Graph {
	t.Helper()
	opts := monodromy.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	g, err := monodromy.Discover(cpoly.MustParse(src), opts)
	require.NoError(t, err)
	return g
}

// walk replays a cycle through the permutations, checking every step
// starts on the sheet it claims and that the walk closes on sheet 0.
func walk(t *testing.T, g *monodromy.Graph, cy homology.Cycle) {
	t.Helper()
	sheet := 0
	for k, s := range cy.Steps {
		require.Equal(t, sheet, s.Sheet, "step %d starts on wrong sheet in %v", k, cy)
		p := g.Nodes[s.Node].Perm
		w := s.Winding
		if w < 0 {
			p, w = p.Inverse(), -w
		}
		for r := 0; r < w; r++ {
			sheet = p[sheet]
		}
	}
	assert.Equal(t, 0, sheet, "cycle does not close: %v", cy)
}

func TestCompute_HyperellipticGenusOne(t *testing.T) {
	g := discover(t, "y^2 - (x-2)*(x-1)*(x+1)*(x+2)")
	b, err := homology.Compute(g)
	require.NoError(t, err)

	assert.Equal(t, 1, b.Genus)
	require.Len(t, b.Generators, 2)
	require.Len(t, b.ACoeffs, 1)
	require.Len(t, b.BCoeffs, 1)

	for _, cy := range b.Generators {
		walk(t, g, cy)
	}
	walk(t, g, b.ACycle(0))
	walk(t, g, b.BCycle(0))

	// The a-cycle crosses from sheet 0 to sheet 1 around one branch
	// point and returns around another: the classic picture of a loop
	// enclosing a branch cut.
	a := b.ACycle(0)
	require.Len(t, a.Steps, 2)
	assert.Equal(t, 0, a.Steps[0].Sheet)
	assert.Equal(t, 1, a.Steps[1].Sheet)
	assert.Equal(t, 1, a.Steps[0].Winding)
	assert.Equal(t, 1, a.Steps[1].Winding)
	assert.NotEqual(t, a.Steps[0].Node, a.Steps[1].Node)
}

func TestCompute_HyperellipticGenusTwo(t *testing.T) {
	g := discover(t, "y^2 - x^6 + 1")
	b, err := homology.Compute(g)
	require.NoError(t, err)

	assert.Equal(t, 2, b.Genus)
	assert.Len(t, b.Generators, 4)
	require.Len(t, b.ACoeffs, 2)
	require.Len(t, b.BCoeffs, 2)
	for i := 0; i < 2; i++ {
		require.Len(t, b.ACoeffs[i], 4)
		walk(t, g, b.ACycle(i))
		walk(t, g, b.BCycle(i))
	}
}

func TestCompute_FermatQuartic(t *testing.T) {
	g := discover(t, "x^4 + y^4 - 1")
	b, err := homology.Compute(g)
	require.NoError(t, err)

	assert.Equal(t, 3, b.Genus)
	assert.Len(t, b.Generators, 6)
	require.Len(t, b.ACoeffs, 3)
	require.Len(t, b.BCoeffs, 3)
	for _, cy := range b.Generators {
		walk(t, g, cy)
	}
	for i := 0; i < 3; i++ {
		walk(t, g, b.ACycle(i))
		walk(t, g, b.BCycle(i))
	}
}

func TestCompute_GenusZeroHasEmptyBasis(t *testing.T) {
	g := discover(t, "y^2 - x")
	b, err := homology.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Genus)
	assert.Empty(t, b.Generators)
	assert.Empty(t, b.ACoeffs)
	assert.Empty(t, b.BCoeffs)
}

func TestCompute_IntransitiveMonodromyIsReducible(t *testing.T) {
	// Two hyperelliptic factors: the sheets split into two orbits.
	g := discover(t, "(y^2 - x) * (y^2 - x + 1)")
	_, err := homology.Compute(g)
	assert.ErrorIs(t, err, cpoly.ErrReducible)
}

func TestBasis_CombineReversesCleanly(t *testing.T) {
	g := discover(t, "y^2 - (x-2)*(x-1)*(x+1)*(x+2)")
	b, err := homology.Compute(g)
	require.NoError(t, err)

	fwd := b.Generators[0]
	rev := b.Combine([]int{-1, 0})
	require.Len(t, rev.Steps, len(fwd.Steps))
	walk(t, g, rev)

	// Double traversal stays anchored on sheet 0 as well.
	walk(t, g, b.Combine([]int{2, -1}))
}

func TestCycle_String(t *testing.T) {
	cy := homology.Cycle{Steps: []homology.Step{{Sheet: 0, Node: 2, Winding: 1}, {Sheet: 1, Node: 0, Winding: -1}}}
	assert.Equal(t, "0 -(2×+1)-> 1 -(0×-1)-> 0", cy.String())
	assert.Equal(t, "trivial", homology.Cycle{}.String())
}
