package monodromy_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/cpoly"
	"github.com/katalvlaran/riemann/monodromy"
)

func TestPathAroundNode_ClosesAtBase(t *testing.T) {
	g, err := monodromy.Discover(cpoly.MustParse(hyperelliptic), quietOptions())
	require.NoError(t, err)

	for k := range g.Nodes {
		path, err := g.PathAroundNode(k, 1)
		require.NoError(t, err)
		assert.InDelta(t, 0, cmplx.Abs(path.Start()-g.BasePoint), 1e-12, "node %d start", k)
		assert.InDelta(t, 0, cmplx.Abs(path.End()-g.BasePoint), 1e-12, "node %d end", k)
	}
}

func TestPathAroundNode_AvoidsForeignDisks(t *testing.T) {
	g, err := monodromy.Discover(cpoly.MustParse(hyperelliptic), quietOptions())
	require.NoError(t, err)

	// The loop around x = 1 must detour over the disks at -2 and -1 and
	// never dip inside any foreign disk.
	path, err := g.PathAroundNode(2, 1)
	require.NoError(t, err)
	for _, z := range path.Sample(2000) {
		for j, n := range g.Nodes {
			if j == 2 {
				continue
			}
			assert.GreaterOrEqual(t, cmplx.Abs(z-n.Value), 0.999*n.Radius,
				"loop around %v enters disk of %v at %v", g.Nodes[2].Value, n.Value, z)
		}
	}
}

func TestPathAroundNode_WindingZeroIsEmpty(t *testing.T) {
	g, err := monodromy.Discover(cpoly.MustParse("y^2 - x"), quietOptions())
	require.NoError(t, err)

	path, err := g.PathAroundNode(0, 0)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Empty(t, g.PathAroundInfinity(0))
}

func TestPathAroundNode_NegativeWindingReversesOrientation(t *testing.T) {
	g, err := monodromy.Discover(cpoly.MustParse(hyperelliptic), quietOptions())
	require.NoError(t, err)

	ccw, err := g.PathAroundNode(0, 1)
	require.NoError(t, err)
	cw, err := g.PathAroundNode(0, -1)
	require.NoError(t, err)
	assert.Equal(t, len(ccw), len(cw))

	// Both traverse the same point set; sampling the circles halfway
	// shows mirrored positions relative to the branch point.
	b := g.Nodes[0].Value
	zc := ccw.At(0.45) - b
	zw := cw.At(0.45) - b
	assert.InDelta(t, real(zc), real(zw), 1e-12)
	assert.InDelta(t, imag(zc), -imag(zw), 1e-12)
}

func TestPathAroundNode_DoubleWindingDoublesCircleLength(t *testing.T) {
	g, err := monodromy.Discover(cpoly.MustParse("y^2 - x"), quietOptions())
	require.NoError(t, err)

	one, err := g.PathAroundNode(0, 1)
	require.NoError(t, err)
	two, err := g.PathAroundNode(0, 2)
	require.NoError(t, err)
	assert.Equal(t, len(one)+2, len(two), "each extra winding adds two half-turn arcs")
}

func TestPathAroundInfinity_EnclosesEverything(t *testing.T) {
	g, err := monodromy.Discover(cpoly.MustParse(hyperelliptic), quietOptions())
	require.NoError(t, err)

	path := g.PathAroundInfinity(1)
	require.NotEmpty(t, path)
	assert.InDelta(t, 0, cmplx.Abs(path.Start()-g.BasePoint), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(path.End()-g.BasePoint), 1e-12)

	// The outer circle clears every branch disk.
	maxR := 0.0
	for _, z := range path.Sample(500) {
		if r := cmplx.Abs(z); r > maxR {
			maxR = r
		}
	}
	for _, n := range g.Nodes {
		assert.Greater(t, maxR, cmplx.Abs(n.Value)+n.Radius)
	}
}
