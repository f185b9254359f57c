// Package tanner builds the bipartite Tanner graph of an LDPC parity-check
// matrix: for each check (row) the ordered list of variable (column)
// indices it touches, and vice versa.
//
// What:
//
//   - Graph.RowAdjacency()[i] — ascending column indices j with H[i][j]=1.
//   - Graph.ColAdjacency()[j] — ascending row indices i with H[i][j]=1.
//   - Girth — a pairwise scan over each check's symbol neighbors, hashing
//     unordered column pairs to detect a repeated pair across two distinct
//     checks (exactly a 4-cycle), used by tests to select parity-check
//     matrices that satisfy the single-error-correction property (spec
//     testable property 9: girth >= 6).
//
// Why:
//
//   - The sum-product decoder's message passing is defined entirely in
//     terms of this adjacency (spec.md §4.5); building it once up front
//     avoids rescanning H on every iteration.
//
// Complexity:
//
//	Build:       O(m*n) to scan H once.
//	HasFourCycle: O(m * d^2), d the maximum check degree — one pass over
//	              each check's symbol pairs, looking for a pair shared by
//	              two checks, which is exactly a 4-cycle in the bipartite
//	              graph.
package tanner
