package fixture

import (
	"fmt"
	"math/rand"

	"github.com/trailbits/go-ldpc/bitmatrix"
	"github.com/trailbits/go-ldpc/tanner"
)

const (
	// maxPairingAttempts bounds reshuffles of the stub pairing before
	// giving up on a simple (no repeated check/symbol edge) realization,
	// mirroring the reference library's bounded-retry stub matcher.
	maxPairingAttempts = 8
	// maxGirthAttempts bounds full regenerations (fresh pairing each time)
	// until the resulting Tanner graph has no 4-cycles.
	maxGirthAttempts = 64
)

// RandomRegularH builds a deterministic m-check, n-symbol parity-check
// matrix in which every check touches exactly checkDegree symbols and
// every symbol touches exactly varDegree = m*checkDegree/n checks, via
// stub matching on a seeded RNG. It retries (bounded) until the pairing is
// simple and, if requireGirth6 is true, until tanner.Build(H).HasFourCycle()
// is false.
//
// Requires n*varDegree == m*checkDegree exactly (the edge count must be an
// integer multiple on both sides); otherwise returns an error.
func RandomRegularH(m, n, checkDegree int, seed int64, requireGirth6 bool) (*bitmatrix.Matrix, error) {
	if m <= 0 || n <= 0 || checkDegree <= 0 || checkDegree > n {
		return nil, fmt.Errorf("RandomRegularH: invalid dimensions m=%d n=%d checkDegree=%d", m, n, checkDegree)
	}
	edges := m * checkDegree
	if edges%n != 0 {
		return nil, fmt.Errorf("RandomRegularH: m*checkDegree=%d not divisible by n=%d", edges, n)
	}
	varDegree := edges / n
	if varDegree <= 0 || varDegree > m {
		return nil, fmt.Errorf("RandomRegularH: derived varDegree=%d out of range", varDegree)
	}

	rng := rand.New(rand.NewSource(seed))

	for girthAttempt := 0; girthAttempt < maxGirthAttempts; girthAttempt++ {
		H, ok := attemptPairing(m, n, checkDegree, varDegree, edges, rng)
		if !ok {
			continue
		}
		if !requireGirth6 {
			return H, nil
		}
		g, err := tanner.Build(H)
		if err != nil {
			return nil, fmt.Errorf("RandomRegularH: %w", err)
		}
		if !g.HasFourCycle() {
			return H, nil
		}
	}
	return nil, fmt.Errorf("RandomRegularH: no girth>=6 realization found after %d attempts", maxGirthAttempts)
}

// attemptPairing performs one bounded stub-matching search for a simple
// bipartite pairing, returning (H, true) on success or (nil, false) if
// every attempt within maxPairingAttempts produced a repeated edge.
func attemptPairing(m, n, checkDegree, varDegree, edges int, rng *rand.Rand) (*bitmatrix.Matrix, bool) {
	checkStubs := make([]int, edges)
	for i, pos := 0, 0; i < m; i++ {
		for k := 0; k < checkDegree; k++ {
			checkStubs[pos] = i
			pos++
		}
	}
	varStubs := make([]int, edges)
	for j, pos := 0, 0; j < n; j++ {
		for k := 0; k < varDegree; k++ {
			varStubs[pos] = j
			pos++
		}
	}

	for attempt := 0; attempt < maxPairingAttempts; attempt++ {
		rng.Shuffle(edges, func(a, b int) { varStubs[a], varStubs[b] = varStubs[b], varStubs[a] })

		seen := make(map[[2]int]struct{}, edges)
		valid := true
		for e := 0; e < edges; e++ {
			key := [2]int{checkStubs[e], varStubs[e]}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		grid := make([][]int, m)
		for i := range grid {
			grid[i] = make([]int, n)
		}
		for e := 0; e < edges; e++ {
			grid[checkStubs[e]][varStubs[e]] = 1
		}
		H, err := bitmatrix.New(grid)
		if err != nil {
			return nil, false
		}
		return H, true
	}
	return nil, false
}
