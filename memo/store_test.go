package memo_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/cpoly"
	"github.com/katalvlaran/riemann/memo"
	"github.com/katalvlaran/riemann/monodromy"
)

func TestStore_RoundTrip(t *testing.T) {
	f := cpoly.MustParse("y^2 - x")
	opts := monodromy.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	g, err := monodromy.Discover(f, opts)
	require.NoError(t, err)

	s, err := memo.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.LoadGraph(f)
	assert.False(t, ok, "empty store must miss")

	require.NoError(t, s.SaveGraph(g))
	got, ok := s.LoadGraph(f)
	require.True(t, ok)

	assert.Equal(t, g.BasePoint, got.BasePoint)
	assert.Equal(t, g.BaseSheets, got.BaseSheets)
	require.Len(t, got.Nodes, len(g.Nodes))
	for i := range g.Nodes {
		assert.Equal(t, g.Nodes[i].Perm, got.Nodes[i].Perm, "node %d", i)
		assert.Equal(t, g.Nodes[i].Parent, got.Nodes[i].Parent, "node %d", i)
		assert.Equal(t, g.Nodes[i].Infinity, got.Nodes[i].Infinity, "node %d", i)
	}
	assert.Equal(t, g.Genus(), got.Genus())
}

func TestStore_MissesOtherCurves(t *testing.T) {
	s, err := memo.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.LoadGraph(cpoly.MustParse("y^2 - x^3 + 1"))
	assert.False(t, ok)
}
