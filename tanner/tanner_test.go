package tanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailbits/go-ldpc/bitmatrix"
	"github.com/trailbits/go-ldpc/tanner"
)

func TestBuild_Adjacency(t *testing.T) {
	t.Parallel()

	H, err := bitmatrix.New([][]int{
		{1, 0, 1},
		{0, 1, 1},
	})
	require.NoError(t, err)

	g, err := tanner.Build(H)
	require.NoError(t, err)

	require.Equal(t, [][]int{{0, 2}, {1, 2}}, g.RowAdjacency())
	require.Equal(t, [][]int{{0}, {1}, {0, 1}}, g.ColAdjacency())
	require.Equal(t, 2, g.NumChecks())
	require.Equal(t, 3, g.NumSymbols())
}

func TestHasFourCycle_Detected(t *testing.T) {
	t.Parallel()

	// Rows 0 and 1 both touch columns {0,1} -> a 4-cycle.
	H, err := bitmatrix.New([][]int{
		{1, 1, 0},
		{1, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	g, err := tanner.Build(H)
	require.NoError(t, err)
	require.True(t, g.HasFourCycle())
	require.False(t, g.Girth())
}

func TestHasFourCycle_AbsentOnTree(t *testing.T) {
	t.Parallel()

	// A path-shaped Tanner graph (each check shares at most one symbol with
	// any other check) has no 4-cycles.
	H, err := bitmatrix.New([][]int{
		{1, 1, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	})
	require.NoError(t, err)

	g, err := tanner.Build(H)
	require.NoError(t, err)
	require.False(t, g.HasFourCycle())
	require.True(t, g.Girth())
}
