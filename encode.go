package ldpc

import (
	"fmt"

	"github.com/trailbits/go-ldpc/bitmatrix"
)

// Encode returns the codeword x = u·G for a message row vector u of length
// k = MessageBits(). Per the systematic form of G, x[:k] == u.
func (l *LDPC) Encode(u []int) ([]int, error) {
	k := l.MessageBits()
	if len(u) != k {
		return nil, fmt.Errorf("Encode: message has length %d, want %d", len(u), k)
	}

	uRow, err := bitmatrix.New([][]int{u})
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}
	xRow, err := uRow.Mul(l.g)
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}

	n := l.EncodedBits()
	x := make([]int, n)
	for j := 0; j < n; j++ {
		x[j], _ = xRow.Get(0, j) // in range by construction
	}
	return x, nil
}
