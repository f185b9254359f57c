package ioformats_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailbits/go-ldpc/bitmatrix"
	"github.com/trailbits/go-ldpc/ioformats"
)

// a 3x4 H with columns: col0 -> rows {1,2}, col1 -> rows {1}, col2 -> rows
// {2,3}, col3 -> rows {3}, written in 1-based alist row-support form.
const sampleAlist = "4 3\n2 2\n2 1 2 1\n2 2 2\n1 2\n1\n2 3\n3\n"

func TestReadAlist_ParsesColumnSupports(t *testing.T) {
	t.Parallel()

	H, err := ioformats.ReadAlist(strings.NewReader(sampleAlist))
	require.NoError(t, err)

	want, err := bitmatrix.New([][]int{
		{1, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 0, 1, 1},
	})
	require.NoError(t, err)
	require.True(t, H.Equal(want))
}

func TestReadAlist_RejectsBadDimensionLine(t *testing.T) {
	t.Parallel()

	_, err := ioformats.ReadAlist(strings.NewReader("not-a-number 3\n"))
	require.ErrorIs(t, err, ioformats.ErrMalformedAlist)
}

func TestReadAlist_RejectsOutOfRangeRow(t *testing.T) {
	t.Parallel()

	_, err := ioformats.ReadAlist(strings.NewReader("1 2\nx\nx\nx\n5\n"))
	require.ErrorIs(t, err, ioformats.ErrMalformedAlist)
}

func TestReadAlist_RejectsTruncatedBody(t *testing.T) {
	t.Parallel()

	_, err := ioformats.ReadAlist(strings.NewReader("2 2\nx\nx\nx\n1\n"))
	require.ErrorIs(t, err, ioformats.ErrMalformedAlist)
}
