package ioformats_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailbits/go-ldpc/bitmatrix"
	"github.com/trailbits/go-ldpc/ioformats"
)

func TestWriteReadPacked_RoundTrip(t *testing.T) {
	t.Parallel()

	H, err := bitmatrix.New([][]int{
		{1, 1, 0, 1, 1, 1, 1, 0, 1},
		{0, 1, 0, 0, 0, 1, 0, 1, 0},
		{1, 0, 1, 1, 0, 0, 1, 0, 0},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioformats.WritePacked(&buf, H))

	got, err := ioformats.ReadPacked(&buf)
	require.NoError(t, err)
	require.True(t, H.Equal(got))
}

func TestReadPacked_RejectsTruncatedHeader(t *testing.T) {
	t.Parallel()

	_, err := ioformats.ReadPacked(bytes.NewReader([]byte{0, 0, 0}))
	require.ErrorIs(t, err, ioformats.ErrMalformedPacked)
}

func TestReadPacked_RejectsTruncatedBody(t *testing.T) {
	t.Parallel()

	H, err := bitmatrix.New([][]int{{1, 0, 1}, {0, 1, 1}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioformats.WritePacked(&buf, H))

	truncated := buf.Bytes()[:buf.Len()-1]
	_, err = ioformats.ReadPacked(bytes.NewReader(truncated))
	require.ErrorIs(t, err, ioformats.ErrMalformedPacked)
}
