package bitmatrix

import "sort"

// rowXOR XORs src into dst in place; both must have the same length.
// Complexity: O(len(dst)).
func rowXOR(dst, src []uint8) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// lessRow reports whether row a sorts strictly before row b under
// descending lexicographic order — i.e. a's leftmost 1-bit comes no later
// than b's. Used only to pick a pivot; ties keep their relative order
// (sort.SliceStable), so behavior on structured examples is reproducible
// even though the ordering rule itself (Open Question 2 in spec.md) is not
// the only correct one.
func lessRow(a, b []uint8) bool {
	for k := range a {
		if a[k] != b[k] {
			return a[k] > b[k]
		}
	}
	return false
}

// gaussJordan reduces A to row-echelon form in place, sweeping pivot
// columns from 0, mirroring every row swap and XOR onto B (same row
// count as A, arbitrary column count). It reports whether every pivot
// column in [0, min(A rows, A cols)) found a nonzero pivot row on the
// diagonal.
//
// Stage 1 (Prepare): iterate pivot columns left to right.
// Stage 2 (Pivot): stable-sort remaining rows by descending lexicographic
// order so any row with a leading 1 in this column surfaces to the top.
// Stage 3 (Eliminate): XOR the pivot row into every other row with a 1 in
// this column (forward into rows below, backward into rows above already
// processed — this single pass does both, since back-substitution for
// columns < pivot was already completed in earlier iterations).
// Complexity: O(n^3) for an n×n A.
func gaussJordan(A, B *Matrix) bool {
	n := A.r
	full := true

	rows := make([][]uint8, n)
	for i := 0; i < n; i++ {
		rows[i] = A.row(i)
	}
	brows := make([][]uint8, B.r)
	for i := 0; i < B.r; i++ {
		brows[i] = B.row(i)
	}

	limit := n
	if A.c < limit {
		limit = A.c
	}

	for pivot := 0; pivot < limit; pivot++ {
		// Stage 2: stable descending-lex sort of rows[pivot:] (and mirror B).
		idx := make([]int, n-pivot)
		for i := range idx {
			idx[i] = pivot + i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return lessRow(rows[idx[a]], rows[idx[b]])
		})
		newRows := make([][]uint8, n)
		newBrows := make([][]uint8, n)
		copy(newRows, rows[:pivot])
		copy(newBrows, brows[:pivot])
		for k, orig := range idx {
			newRows[pivot+k] = rows[orig]
			newBrows[pivot+k] = brows[orig]
		}
		rows, brows = newRows, newBrows

		if rows[pivot][pivot] == 0 {
			full = false
			continue // no pivot available in this column; submatrix is singular here
		}

		// Stage 3: eliminate this column from every other row.
		for j := 0; j < n; j++ {
			if j == pivot || rows[j][pivot] == 0 {
				continue
			}
			rowXOR(rows[j], rows[pivot])
			rowXOR(brows[j], brows[pivot])
		}
	}

	for i := 0; i < n; i++ {
		copy(A.data[i*A.c:(i+1)*A.c], rows[i])
	}
	for i := 0; i < B.r; i++ {
		copy(B.data[i*B.c:(i+1)*B.c], brows[i])
	}

	return full
}

// IsInvertible reports whether m is square and Gauss–Jordan reduces it to
// the identity. Does not mutate m.
// Complexity: O(n^3).
func (m *Matrix) IsInvertible() bool {
	if m.r != m.c {
		return false
	}
	work := m.Clone()
	scratch, _ := Zero(m.r, m.r) // shape is always valid here (m.r > 0)
	full := gaussJordan(work, scratch)
	if !full {
		return false
	}
	id, _ := Identity(m.r)
	return work.Equal(id)
}

// Invert returns m^-1 over GF(2), or ErrSingular if m is not square and
// invertible.
// Complexity: O(n^3).
func (m *Matrix) Invert() (*Matrix, error) {
	if m.r != m.c {
		return nil, matrixErrorf("Invert", ErrSingular, "non-square %dx%d", m.r, m.c)
	}
	work := m.Clone()
	id, _ := Identity(m.r)
	full := gaussJordan(work, id)

	reduced, _ := Identity(m.r)
	if !full || !work.Equal(reduced) {
		return nil, matrixErrorf("Invert", ErrSingular, "%dx%d", m.r, m.c)
	}
	return id, nil
}
