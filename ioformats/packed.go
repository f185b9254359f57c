package ioformats

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/trailbits/go-ldpc/bitmatrix"
)

// packedHeader is the fixed-width prefix of the row-packed binary format:
// row and column counts, each a big-endian int32.
type packedHeader struct {
	Rows int32
	Cols int32
}

// bytesPerRow returns the number of packed bytes needed to hold c columns,
// MSB-first within each byte.
func bytesPerRow(c int) int {
	return (c + 7) / 8
}

// WritePacked serializes H as an (rows, cols) header followed by
// rows*bytesPerRow(cols) packed bytes, MSB-first within each byte.
func WritePacked(w io.Writer, H *bitmatrix.Matrix) error {
	hdr := packedHeader{Rows: int32(H.Rows()), Cols: int32(H.Cols())}
	if err := binary.Write(w, binary.BigEndian, hdr); err != nil {
		return fmt.Errorf("WritePacked: header: %w", err)
	}

	rowBytes := bytesPerRow(H.Cols())
	buf := make([]byte, rowBytes)
	for i := 0; i < H.Rows(); i++ {
		for b := range buf {
			buf[b] = 0
		}
		for j := 0; j < H.Cols(); j++ {
			v, err := H.Get(i, j)
			if err != nil {
				return fmt.Errorf("WritePacked: %w", err)
			}
			if v != 0 {
				buf[j/8] |= 1 << uint(7-j%8)
			}
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("WritePacked: row %d: %w", i, err)
		}
	}
	return nil
}

// ReadPacked deserializes a stream produced by WritePacked.
func ReadPacked(r io.Reader) (*bitmatrix.Matrix, error) {
	var hdr packedHeader
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("ReadPacked: header: %w", ErrMalformedPacked)
	}
	if hdr.Rows <= 0 || hdr.Cols <= 0 {
		return nil, fmt.Errorf("ReadPacked: invalid dimensions rows=%d cols=%d: %w", hdr.Rows, hdr.Cols, ErrMalformedPacked)
	}

	rowBytes := bytesPerRow(int(hdr.Cols))
	buf := make([]byte, rowBytes)
	grid := make([][]int, hdr.Rows)
	for i := range grid {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("ReadPacked: row %d: %w", i, ErrMalformedPacked)
		}
		grid[i] = make([]int, hdr.Cols)
		for j := 0; j < int(hdr.Cols); j++ {
			if buf[j/8]&(1<<uint(7-j%8)) != 0 {
				grid[i][j] = 1
			}
		}
	}

	H, err := bitmatrix.New(grid)
	if err != nil {
		return nil, fmt.Errorf("ReadPacked: %w", err)
	}
	return H, nil
}
