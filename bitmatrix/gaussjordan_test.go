package bitmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailbits/go-ldpc/bitmatrix"
)

func TestIsInvertible_Identity(t *testing.T) {
	t.Parallel()

	id, err := bitmatrix.Identity(4)
	require.NoError(t, err)
	require.True(t, id.IsInvertible())
}

func TestIsInvertible_SingularAllZero(t *testing.T) {
	t.Parallel()

	m, err := bitmatrix.Zero(3, 3)
	require.NoError(t, err)
	require.False(t, m.IsInvertible())
}

func TestIsInvertible_NonSquare(t *testing.T) {
	t.Parallel()

	m, err := bitmatrix.Zero(2, 3)
	require.NoError(t, err)
	require.False(t, m.IsInvertible())
}

func TestInvert_RoundTrip(t *testing.T) {
	t.Parallel()

	// A small invertible 3x3 GF(2) matrix (upper triangular, unit diagonal).
	m, err := bitmatrix.New([][]int{
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 1},
	})
	require.NoError(t, err)
	require.True(t, m.IsInvertible())

	inv, err := m.Invert()
	require.NoError(t, err)

	id, err := bitmatrix.Identity(3)
	require.NoError(t, err)

	prod, err := m.Mul(inv)
	require.NoError(t, err)
	require.True(t, prod.Equal(id))

	prod2, err := inv.Mul(m)
	require.NoError(t, err)
	require.True(t, prod2.Equal(id))

	// Property S4: inverse of inverse is the original.
	invInv, err := inv.Invert()
	require.NoError(t, err)
	require.True(t, invInv.Equal(m))
}

func TestInvert_Singular(t *testing.T) {
	t.Parallel()

	m, err := bitmatrix.New([][]int{
		{1, 1},
		{1, 1},
	})
	require.NoError(t, err)
	require.False(t, m.IsInvertible())

	_, err = m.Invert()
	require.ErrorIs(t, err, bitmatrix.ErrSingular)
}

func TestInvert_NonSquare(t *testing.T) {
	t.Parallel()

	m, err := bitmatrix.Zero(2, 3)
	require.NoError(t, err)
	_, err = m.Invert()
	require.ErrorIs(t, err, bitmatrix.ErrSingular)
}

// TestInvert_S4EightByEightRoundTrip checks scenario S4 at the spec's named
// size: an upper-triangular, unit-diagonal 8x8 matrix is invertible by
// construction, and inverting twice returns the original.
func TestInvert_S4EightByEightRoundTrip(t *testing.T) {
	t.Parallel()

	rows := [][]int{
		{1, 1, 0, 1, 0, 0, 1, 0},
		{0, 1, 1, 0, 1, 0, 0, 1},
		{0, 0, 1, 1, 0, 1, 0, 0},
		{0, 0, 0, 1, 1, 0, 1, 0},
		{0, 0, 0, 0, 1, 1, 0, 1},
		{0, 0, 0, 0, 0, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 1},
	}
	m, err := bitmatrix.New(rows)
	require.NoError(t, err)
	require.True(t, m.IsInvertible())

	inv, err := m.Invert()
	require.NoError(t, err)
	invInv, err := inv.Invert()
	require.NoError(t, err)
	require.True(t, invInv.Equal(m))

	id, err := bitmatrix.Identity(8)
	require.NoError(t, err)
	prod, err := m.Mul(inv)
	require.NoError(t, err)
	require.True(t, prod.Equal(id))
}

// TestIsInvertible_AgreesWithRank checks property 3: is_invertible(M) holds
// exactly when Gauss-Jordan reduces M to the identity, for a handful of
// structured 4x4 examples spanning full and deficient rank.
func TestIsInvertible_AgreesWithRank(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		rows       [][]int
		invertible bool
	}{
		{
			name: "full_rank",
			rows: [][]int{
				{1, 0, 0, 1},
				{0, 1, 0, 1},
				{0, 0, 1, 1},
				{0, 0, 0, 1},
			},
			invertible: true,
		},
		{
			name: "rank_deficient_dup_row",
			rows: [][]int{
				{1, 0, 0, 1},
				{1, 0, 0, 1},
				{0, 0, 1, 1},
				{0, 0, 0, 1},
			},
			invertible: false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := bitmatrix.New(tc.rows)
			require.NoError(t, err)
			require.Equal(t, tc.invertible, m.IsInvertible())
		})
	}
}
