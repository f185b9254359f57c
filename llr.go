package ldpc

import "math"

// clampEps bounds the argument of atanh away from ±1 so that saturated
// check-node products never overflow to ±Inf. This is the implementer's
// choice spec.md §4.6/Open Question 3 leaves open; 1e-10 is small enough
// that no decision in the test suite changes relative to a policy that
// instead propagates infinities through subsequent additions.
const clampEps = 1e-10

// channelLLR maps a received hard bit y under a BSC with crossover
// probability p to its initial log-likelihood ratio, per spec.md §4.5:
//
//	L(y) = log((1 - p - y) / (p - y))
//
// This is deliberately NOT wrapped in math.Abs: a historical regression did
// that and silently flipped the sign for y=1, breaking the λ>0⇒0 convention
// of §3 (Open Question 1). For y=0 this is log((1-p)/p) > 0; for y=1,
// (1-p-1)/(p-1) = (-p)/(p-1) = p/(1-p), whose log is < 0 — the signs come
// out right without any absolute value.
func channelLLR(y int, p float64) float64 {
	yf := float64(y)
	return math.Log((1 - p - yf) / (p - yf))
}

// clampedAtanh computes atanh(x) = 0.5*log((1+x)/(1-x)), clamping |x| to
// 1-clampEps first so the result is always finite.
func clampedAtanh(x float64) float64 {
	if x > 1-clampEps {
		x = 1 - clampEps
	} else if x < -(1 - clampEps) {
		x = -(1 - clampEps)
	}
	return 0.5 * math.Log((1+x)/(1-x))
}

// hardDecision returns 1 if lambda < 0, else 0 — ties at lambda == 0 favor
// 0, per spec.md §4.5, to reproduce reference outputs exactly.
func hardDecision(lambda float64) int {
	if lambda < 0 {
		return 1
	}
	return 0
}
