package ldpc

import (
	"fmt"
	"math"
)

// Decode runs the sum-product belief-propagation decoder on a received
// hard-bit vector y (length n = EncodedBits()), returning the best
// available hard-decision estimate x̂.
//
// State machine (spec.md §4.7): INIT -> DECIDE (initial hard decision) ->
// {HALT if syndrome==0 or iter==T} else CHECK_STEP -> SYMBOL_STEP ->
// POSTERIOR -> DECIDE (loop). Decode never returns an error for a
// non-converged estimate — that is not a failure mode (spec.md §7); callers
// who need to detect non-convergence can recompute the syndrome themselves.
func (l *LDPC) Decode(y []int) ([]int, error) {
	n := l.EncodedBits()
	if len(y) != n {
		return nil, fmt.Errorf("Decode: received word has length %d, want %d", len(y), n)
	}

	m := l.ParityBits()
	rowAdj := l.tg.RowAdjacency()
	colAdj := l.tg.ColAdjacency()
	p, maxIter := l.p, l.t

	// INIT: channel LLRs and scratch message matrices.
	llr := make([]float64, n)
	for j := 0; j < n; j++ {
		llr[j] = channelLLR(y[j], p)
	}

	toCheck := make([][]float64, m)
	fromCheck := make([][]float64, m)
	for i := 0; i < m; i++ {
		toCheck[i] = make([]float64, n)
		fromCheck[i] = make([]float64, n)
		for _, j := range rowAdj[i] {
			toCheck[i][j] = llr[j]
		}
	}

	// DECIDE (initial): hard-decide directly from the channel LLRs.
	estimate := hardDecisionVector(llr)
	syndrome := l.syndrome(estimate, rowAdj)
	l.notify(0, estimate, llr)

	iter := 0
	for !allZero(syndrome) && iter < maxIter {
		// CHECK_STEP: check-node update, from_check from to_check.
		for i := 0; i < m; i++ {
			nbrs := rowAdj[i]
			for _, j := range nbrs {
				product := 1.0
				for _, k := range nbrs {
					if k == j {
						continue
					}
					product *= tanhHalf(toCheck[i][k])
				}
				fromCheck[i][j] = 2 * clampedAtanh(product)
			}
		}

		// SYMBOL_STEP: variable-node update, to_check from from_check.
		for j := 0; j < n; j++ {
			nbrs := colAdj[j]
			var total float64
			for _, i := range nbrs {
				total += fromCheck[i][j]
			}
			for _, i := range nbrs {
				toCheck[i][j] = llr[j] + (total - fromCheck[i][j])
			}
		}

		// POSTERIOR: combine channel LLR with every incoming check message.
		posterior := make([]float64, n)
		for j := 0; j < n; j++ {
			total := llr[j]
			for _, i := range colAdj[j] {
				total += fromCheck[i][j]
			}
			posterior[j] = total
		}

		// DECIDE: hard-decide from the posterior, recompute the syndrome.
		estimate = hardDecisionVector(posterior)
		syndrome = l.syndrome(estimate, rowAdj)
		iter++
		l.notify(iter, estimate, posterior)
	}

	return estimate, nil
}

// syndrome computes x̂·Hᵀ directly off the Tanner graph adjacency: s[i] is
// the XOR of estimate[j] over j in rowAdj[i].
func (l *LDPC) syndrome(estimate []int, rowAdj [][]int) []int {
	s := make([]int, len(rowAdj))
	for i, nbrs := range rowAdj {
		acc := 0
		for _, j := range nbrs {
			acc ^= estimate[j]
		}
		s[i] = acc
	}
	return s
}

func (l *LDPC) notify(iteration int, estimate []int, posterior []float64) {
	if l.observer != nil {
		l.observer(iteration, estimate, posterior)
	}
}

func hardDecisionVector(llr []float64) []int {
	out := make([]int, len(llr))
	for j, v := range llr {
		out[j] = hardDecision(v)
	}
	return out
}

// tanhHalf computes tanh(x/2); named so the check-node product reads as
// "tanh(message/2)" at the call site, per spec.md §4.5.
func tanhHalf(x float64) float64 {
	return math.Tanh(x / 2)
}

func allZero(v []int) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
