// Package ldpc implements a binary low-density parity-check (LDPC) codec:
// systematic generator construction, encoding, and iterative soft-decision
// decoding by the sum-product (belief-propagation) algorithm over the
// Tanner graph of the code.
//
// What & Why:
//
//	An LDPC code is defined by a sparse parity-check matrix H (m checks,
//	n symbols, k = n-m message bits). Encoding multiplies a message row
//	vector by the systematic generator G = [I_k | P] derived from H.
//	Decoding treats a received hard-bit vector as having passed through a
//	binary symmetric channel with crossover probability p, converts it to
//	log-likelihood ratios, and iterates belief propagation on H's Tanner
//	graph until the syndrome vanishes or an iteration cap is reached.
//
// Subpackages:
//
//   - bitmatrix: the GF(2) linear-algebra core (matrix type, Gauss–Jordan,
//     generator construction).
//   - tanner: Tanner-graph adjacency construction and girth checking.
//   - ioformats: alist and row-packed binary readers (external
//     collaborators, not imported by this package).
//   - berplot: an optional Observer that renders per-iteration decoding
//     traces via gonum/plot (also not imported by this package).
//
// Concurrency:
//
//	An *LDPC is safe for concurrent Encode/Decode calls once constructed:
//	G, H and the cached Tanner graph are immutable, and each Decode call
//	allocates its own scratch message buffers. SetBitflipChance and
//	SetMaxIterations mutate configuration read once at the top of Decode;
//	callers mutating them concurrently with an in-flight Decode must
//	synchronize externally.
package ldpc
