package bitmatrix

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Matrix is a dense r×c matrix over GF(2), stored as one byte per bit in
// row-major order. It is value-semantic: every public operation returns a
// freshly allocated Matrix and never mutates its receiver or arguments.
type Matrix struct {
	r, c int
	data []uint8 // length r*c, row-major; each entry is 0 or 1
}

// matrixErrorf wraps an underlying sentinel with function and shape context.
func matrixErrorf(fn string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", fn, fmt.Sprintf(format, args...), err)
}

// New constructs a Matrix from a rectangular 0/1 grid. Every row of data
// must have the same length, and rows/cols must both be positive.
//
// Stage 1 (Validate): non-empty, rectangular, binary entries.
// Stage 2 (Execute): flatten into row-major storage.
// Complexity: O(r*c).
func New(data [][]int) (*Matrix, error) {
	rows := len(data)
	if rows == 0 {
		return nil, matrixErrorf("New", ErrInvalidShape, "zero rows")
	}
	cols := len(data[0])
	if cols == 0 {
		return nil, matrixErrorf("New", ErrInvalidShape, "zero columns")
	}

	flat := make([]uint8, rows*cols)
	for i, row := range data {
		if len(row) != cols {
			return nil, matrixErrorf("New", ErrInvalidShape, "row %d has length %d, want %d", i, len(row), cols)
		}
		for j, v := range row {
			if v != 0 && v != 1 {
				return nil, matrixErrorf("New", ErrInvalidShape, "element (%d,%d)=%d is not binary", i, j, v)
			}
			flat[i*cols+j] = uint8(v)
		}
	}

	return &Matrix{r: rows, c: cols, data: flat}, nil
}

// Zero returns the r×c all-zero matrix.
func Zero(r, c int) (*Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf("Zero", ErrInvalidShape, "%dx%d", r, c)
	}
	return &Matrix{r: r, c: c, data: make([]uint8, r*c)}, nil
}

// Identity returns the n×n identity matrix: Identity(n)[i][j] = 1 iff i==j.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, matrixErrorf("Identity", ErrInvalidShape, "n=%d", n)
	}
	m := &Matrix{r: n, c: n, data: make([]uint8, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// FromFunc builds an r×c matrix whose element (i,j) is f(i,j), which must
// return 0 or 1.
func FromFunc(r, c int, f func(i, j int) int) (*Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf("FromFunc", ErrInvalidShape, "%dx%d", r, c)
	}
	m := &Matrix{r: r, c: c, data: make([]uint8, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := f(i, j)
			if v != 0 && v != 1 {
				return nil, matrixErrorf("FromFunc", ErrInvalidShape, "f(%d,%d)=%d is not binary", i, j, v)
			}
			m.data[i*c+j] = uint8(v)
		}
	}
	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// indexOf computes the flat offset for (i,j), bounds-checked.
func (m *Matrix) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, matrixErrorf("Get", ErrIndexOutOfRange, "(%d,%d) out of %dx%d", i, j, m.r, m.c)
	}
	return i*m.c + j, nil
}

// Get returns the element at (i,j), bounds-checked.
func (m *Matrix) Get(i, j int) (int, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return 0, err
	}
	return int(m.data[idx]), nil
}

// at is an unchecked fast accessor for internal use on indices already
// known to be in range.
func (m *Matrix) at(i, j int) uint8 { return m.data[i*m.c+j] }

// row returns a copy of row i as a fresh []uint8, length c.
func (m *Matrix) row(i int) []uint8 {
	out := make([]uint8, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]uint8, len(m.data))
	copy(data, m.data)
	return &Matrix{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and other have identical shape and entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// Hash returns a structural FNV-1a hash of m's shape and entries: two
// matrices that are Equal always return the same Hash, making Matrix
// usable as a map key's identity when wrapped in a comparable struct (or
// compared via Hash as a cheap pre-filter before Equal).
func (m *Matrix) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(m.r))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(m.c))
	h.Write(buf[:])
	h.Write(m.data)
	return h.Sum64()
}

// String renders the matrix as bracketed rows of 0/1, for debugging.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", m.at(i, j))
		}
		b.WriteString("]\n")
	}
	return b.String()
}
