package fixture

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailbits/go-ldpc/tanner"
)

func TestRandomRegularH_DegreesAndGirth(t *testing.T) {
	t.Parallel()

	m, n, checkDegree := 6, 12, 4 // varDegree = 6*4/12 = 2
	H, err := RandomRegularH(m, n, checkDegree, 42, true)
	require.NoError(t, err)
	require.Equal(t, m, H.Rows())
	require.Equal(t, n, H.Cols())

	g, err := tanner.Build(H)
	require.NoError(t, err)
	require.False(t, g.HasFourCycle())

	for i, nbrs := range g.RowAdjacency() {
		require.Lenf(t, nbrs, checkDegree, "check %d degree", i)
	}
	for j, nbrs := range g.ColAdjacency() {
		require.Lenf(t, nbrs, 2, "symbol %d degree", j)
	}
}

func TestRandomRegularH_RejectsIndivisible(t *testing.T) {
	t.Parallel()

	_, err := RandomRegularH(5, 7, 3, 1, false)
	require.Error(t, err)
}

func TestRandomRegularH_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := RandomRegularH(6, 12, 4, 7, true)
	require.NoError(t, err)
	b, err := RandomRegularH(6, 12, 4, 7, true)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}
