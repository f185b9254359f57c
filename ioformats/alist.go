package ioformats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trailbits/go-ldpc/bitmatrix"
)

// alistSkippedLines is the count of header lines after the dimension line
// that this reader does not interpret: max column/row weight, per-column
// weights, per-row weights (spec.md §6).
const alistSkippedLines = 3

// ReadAlist parses the Mackay alist textual format into an m×n
// bitmatrix.Matrix:
//
//	line 1:   n m          (column-major convention: columns first)
//	lines 2-4: weights, skipped
//	next n lines: for column j, the 1-based row indices of its nonzero
//	  entries, zero-padded to a common width (padding zeros are ignored)
//
// Any trailing per-row support lines in the source file are not read; the
// per-column lines alone fully determine H.
func ReadAlist(r io.Reader) (*bitmatrix.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n, m, err := readDims(sc)
	if err != nil {
		return nil, err
	}

	for i := 0; i < alistSkippedLines; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("ReadAlist: header line %d: %w", i+2, ErrMalformedAlist)
		}
	}

	grid := make([][]int, m)
	for i := range grid {
		grid[i] = make([]int, n)
	}

	for col := 0; col < n; col++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("ReadAlist: missing support line for column %d: %w", col, ErrMalformedAlist)
		}
		for _, tok := range strings.Fields(sc.Text()) {
			row, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("ReadAlist: column %d: %w", col, ErrMalformedAlist)
			}
			if row == 0 {
				continue // padding
			}
			row-- // 1-based -> 0-based
			if row < 0 || row >= m {
				return nil, fmt.Errorf("ReadAlist: column %d row index %d out of range: %w", col, row+1, ErrMalformedAlist)
			}
			grid[row][col] = 1
		}
	}

	H, err := bitmatrix.New(grid)
	if err != nil {
		return nil, fmt.Errorf("ReadAlist: %w", err)
	}
	return H, nil
}

func readDims(sc *bufio.Scanner) (n, m int, err error) {
	if !sc.Scan() {
		return 0, 0, fmt.Errorf("ReadAlist: missing dimension line: %w", ErrMalformedAlist)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("ReadAlist: dimension line has %d fields, want 2: %w", len(fields), ErrMalformedAlist)
	}
	n, errN := strconv.Atoi(fields[0])
	m, errM := strconv.Atoi(fields[1])
	if errN != nil || errM != nil || n <= 0 || m <= 0 {
		return 0, 0, fmt.Errorf("ReadAlist: invalid dimensions %q: %w", sc.Text(), ErrMalformedAlist)
	}
	return n, m, nil
}
