// Package bitmatrix provides a dense binary matrix type over GF(2) — the
// linear-algebra core of an LDPC codec.
//
// What:
//
//   - Matrix: a fixed-shape (r, c) grid of {0,1} values, value-semantic —
//     every operation returns a fresh Matrix, never mutates its receiver
//     or arguments.
//   - Addition (XOR), multiplication mod 2, transpose, column slicing,
//     column permutation, horizontal/vertical concatenation.
//   - Structural Equal and Hash, so a Matrix can be compared or used as a
//     deduplication key by value rather than by pointer identity.
//   - A Gauss–Jordan elimination engine (gaussjordan.go) that reduces a
//     matrix to row-echelon form while mirroring every row operation onto a
//     paired matrix — shared by Invert (pair starts as identity) and
//     generator construction (pair starts as the left block of H).
//
// Why:
//
//   - LDPC encoding and decoding both reduce to GF(2) linear algebra: the
//     systematic generator is built by inverting a block of the parity-check
//     matrix, and the Tanner graph is read directly off H's nonzero entries.
//
// Complexity:
//
//	Rows/Cols:        O(1).
//	Get:               O(1), bounds-checked.
//	Transpose:         O(r*c).
//	Mul:               O(r*k*c) for an (r,k)·(k,c) product.
//	Invert/IsInvertible: O(n^3) for an n×n matrix.
package bitmatrix
