// Package fixture generates deterministic synthetic parity-check matrices
// for tests. It is exercised by its own tests; the bitmatrix, tanner and
// root ldpc tests build their matrices inline and do not import it. It is
// not part of the public API.
//
// RandomRegularH adapts the stub-matching technique used by the reference
// graph-algorithm library's random-regular-graph constructor: instead of
// building a generic undirected graph over string-keyed vertices, stubs are
// paired directly into (check, symbol) edges of a bitmatrix.Matrix, since
// every caller of this package wants an H matrix, never a generic graph.
package fixture
