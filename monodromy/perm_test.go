package monodromy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/monodromy"
)

func TestPerm_NewValidates(t *testing.T) {
	p, err := monodromy.NewPerm([]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, monodromy.Perm{2, 0, 1}, p)

	_, err = monodromy.NewPerm([]int{0, 0, 1})
	assert.Error(t, err, "repeated image must be rejected")
	_, err = monodromy.NewPerm([]int{0, 3, 1})
	assert.Error(t, err, "out-of-range image must be rejected")
}

func TestPerm_ComposeIsLeftToRight(t *testing.T) {
	swap01 := monodromy.Perm{1, 0, 2}
	swap12 := monodromy.Perm{0, 2, 1}

	// Sheet 0 first follows swap01 to sheet 1, then swap12 to sheet 2.
	assert.Equal(t, monodromy.Perm{2, 0, 1}, swap01.Compose(swap12))
	assert.Equal(t, monodromy.Perm{1, 2, 0}, swap12.Compose(swap01))
}

func TestPerm_InverseUndoes(t *testing.T) {
	p := monodromy.Perm{2, 0, 3, 1}
	assert.True(t, p.Compose(p.Inverse()).IsIdentity())
	assert.True(t, p.Inverse().Compose(p).IsIdentity())
}

func TestPerm_Cycles(t *testing.T) {
	p := monodromy.Perm{1, 0, 2, 4, 3}
	cycles := p.Cycles()
	require.Len(t, cycles, 3)
	assert.Equal(t, []int{0, 1}, cycles[0])
	assert.Equal(t, []int{2}, cycles[1])
	assert.Equal(t, []int{3, 4}, cycles[2])
	assert.Equal(t, "(0 1)(3 4)", p.String())
	assert.Equal(t, "id", monodromy.Identity(4).String())
}

func TestPerm_EqualAndFixed(t *testing.T) {
	p := monodromy.Perm{1, 0, 2}
	assert.True(t, p.Equal(monodromy.Perm{1, 0, 2}))
	assert.False(t, p.Equal(monodromy.Identity(3)))
	assert.False(t, p.Equal(monodromy.Identity(4)))
	assert.False(t, p.Fixed(0))
	assert.True(t, p.Fixed(2))
}
