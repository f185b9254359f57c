package bitmatrix

// Transpose returns a fresh (c, r) matrix with element (j,i) = m(i,j).
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{r: m.c, c: m.r, data: make([]uint8, m.r*m.c)}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.at(i, j)
		}
	}
	return out
}

// Columns returns the column slice [start, end), shape (r, end-start).
// Requires 0 <= start < end <= c; an empty range (start == end) fails with
// ErrInvalidShape.
// Complexity: O(r*(end-start)).
func (m *Matrix) Columns(start, end int) (*Matrix, error) {
	if start < 0 || end > m.c || start > end {
		return nil, matrixErrorf("Columns", ErrIndexOutOfRange, "[%d,%d) of %d cols", start, end, m.c)
	}
	width := end - start
	if width == 0 {
		return nil, matrixErrorf("Columns", ErrInvalidShape, "empty column range [%d,%d)", start, end)
	}
	out := &Matrix{r: m.r, c: width, data: make([]uint8, m.r*width)}
	for i := 0; i < m.r; i++ {
		copy(out.data[i*width:(i+1)*width], m.data[i*m.c+start:i*m.c+end])
	}
	return out, nil
}

// PermuteColumns returns a fresh (r, c) matrix with element (i,j) = m(i,
// perm[j]). perm must be a permutation of [0, c).
// Complexity: O(r*c) time/space to validate and build.
func (m *Matrix) PermuteColumns(perm []int) (*Matrix, error) {
	if len(perm) != m.c {
		return nil, matrixErrorf("PermuteColumns", ErrInvalidPermutation, "length %d, want %d", len(perm), m.c)
	}
	seen := make([]bool, m.c)
	for _, p := range perm {
		if p < 0 || p >= m.c || seen[p] {
			return nil, matrixErrorf("PermuteColumns", ErrInvalidPermutation, "value %d invalid or repeated", p)
		}
		seen[p] = true
	}

	out := &Matrix{r: m.r, c: m.c, data: make([]uint8, m.r*m.c)}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[i*m.c+j] = m.at(i, perm[j])
		}
	}
	return out, nil
}

// HorizConcat concatenates matrices side by side. All operands must share
// the same row count; the result has c = sum of operand column counts.
// Complexity: O(r * total_c).
func HorizConcat(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf("HorizConcat", ErrInvalidShape, "no operands")
	}
	rows := ms[0].r
	totalCols := 0
	for i, m := range ms {
		if m.r != rows {
			return nil, matrixErrorf("HorizConcat", ErrShapeMismatch, "operand %d has %d rows, want %d", i, m.r, rows)
		}
		totalCols += m.c
	}

	out := &Matrix{r: rows, c: totalCols, data: make([]uint8, rows*totalCols)}
	for i := 0; i < rows; i++ {
		col := 0
		for _, m := range ms {
			copy(out.data[i*totalCols+col:i*totalCols+col+m.c], m.data[i*m.c:(i+1)*m.c])
			col += m.c
		}
	}
	return out, nil
}

// VertConcat concatenates matrices top to bottom. All operands must share
// the same column count; the result has r = sum of operand row counts.
// Complexity: O(total_r * c).
func VertConcat(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf("VertConcat", ErrInvalidShape, "no operands")
	}
	cols := ms[0].c
	totalRows := 0
	for i, m := range ms {
		if m.c != cols {
			return nil, matrixErrorf("VertConcat", ErrShapeMismatch, "operand %d has %d cols, want %d", i, m.c, cols)
		}
		totalRows += m.r
	}

	out := &Matrix{r: totalRows, c: cols, data: make([]uint8, totalRows*cols)}
	offset := 0
	for _, m := range ms {
		copy(out.data[offset*cols:(offset+m.r)*cols], m.data)
		offset += m.r
	}
	return out, nil
}

// Mul returns the GF(2) matrix product m·other. Requires m.c == other.r.
// Element (i,j) = XOR over k of m(i,k) AND other(k,j).
// Complexity: O(r*k*c).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.c != other.r {
		return nil, matrixErrorf("Mul", ErrShapeMismatch, "%dx%d * %dx%d", m.r, m.c, other.r, other.c)
	}
	out := &Matrix{r: m.r, c: other.c, data: make([]uint8, m.r*other.c)}
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			if m.at(i, k) == 0 {
				continue
			}
			// row i of out ^= row k of other
			for j := 0; j < other.c; j++ {
				out.data[i*out.c+j] ^= other.at(k, j)
			}
		}
	}
	return out, nil
}

// Add returns the elementwise XOR of m and other, which must share shape.
// Complexity: O(r*c).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.r != other.r || m.c != other.c {
		return nil, matrixErrorf("Add", ErrShapeMismatch, "%dx%d + %dx%d", m.r, m.c, other.r, other.c)
	}
	out := &Matrix{r: m.r, c: m.c, data: make([]uint8, len(m.data))}
	for i, v := range m.data {
		out.data[i] = v ^ other.data[i]
	}
	return out, nil
}
