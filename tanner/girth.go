package tanner

// HasFourCycle reports whether the Tanner graph contains a 4-cycle: two
// distinct check nodes sharing two or more common symbol neighbors (the
// bipartite equivalent of two distinct symbol nodes sharing two or more
// common check neighbors — either formulation detects the same cycles).
//
// This mirrors the vertex-coloring cycle-detection idea of a generic DFS
// cycle finder, specialized to the one structural fact the decoder actually
// cares about (spec testable property 9: "no 4-cycles and girth >= 6"):
// rather than enumerating all simple cycles in a general graph, a single
// pass over pairs of symbol neighbors per check node is sufficient, because
// a 4-cycle in a bipartite graph is exactly a repeated unordered pair of
// symbol indices across two different checks.
//
// Complexity: O(m * d^2) where d is the maximum check degree.
func (g *Graph) HasFourCycle() bool {
	seen := make(map[[2]int]int) // unordered symbol pair -> owning check index

	for i, nbrs := range g.rowAdj {
		for a := 0; a < len(nbrs); a++ {
			for b := a + 1; b < len(nbrs); b++ {
				key := pairKey(nbrs[a], nbrs[b])
				if owner, ok := seen[key]; ok && owner != i {
					return true
				}
				seen[key] = i
			}
		}
	}
	return false
}

// Girth reports whether the graph's girth is at least 6, i.e. it has no
// 4-cycles. (A Tanner graph is always bipartite, so it has no odd cycles
// and the shortest possible cycle length is 4; ruling out 4-cycles is the
// only gap between "girth unknown" and "girth >= 6" that matters for the
// decoder's single-error-correction property.)
func (g *Graph) Girth() (atLeastSix bool) {
	return !g.HasFourCycle()
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
