package ldpc

import (
	"fmt"

	"github.com/trailbits/go-ldpc/bitmatrix"
	"github.com/trailbits/go-ldpc/tanner"
)

// Observer is invoked synchronously by Decode after each DECIDE transition
// (spec.md §4.7), once per iteration including the initial hard decision
// before any message passing (iteration 0). Observers must not mutate
// decoder state and must return promptly — Decode blocks on the call.
// The default is no observer.
type Observer func(iteration int, estimate []int, posteriorLLR []float64)

// Option configures an LDPC instance at construction time. Modeled on the
// functional-options pattern (BuilderOption in the reference graph-algorithm
// library this codec's ambient style is drawn from): option constructors
// never panic and silently no-op on a nil argument, since Observer is the
// only optional construction-time knob — p and T are positional because
// spec.md names them as the decoder's primary configuration, not add-ons.
type Option func(*LDPC)

// WithObserver attaches obs to be called after every DECIDE transition
// during Decode. A nil obs is a no-op.
func WithObserver(obs Observer) Option {
	return func(l *LDPC) {
		if obs != nil {
			l.observer = obs
		}
	}
}

// LDPC is a systematic binary LDPC codec: generator G, parity-check H, a
// cached Tanner graph, and the belief-propagation decoder's tunable
// parameters (BSC crossover probability p, iteration cap T).
type LDPC struct {
	g  *bitmatrix.Matrix
	h  *bitmatrix.Matrix
	tg *tanner.Graph

	p float64
	t int

	observer Observer
}

// New derives the systematic generator from H (spec.md §4.2) and
// constructs an LDPC codec. p must lie in (0, 0.5); T >= 0.
func New(h *bitmatrix.Matrix, p float64, t int, opts ...Option) (*LDPC, error) {
	g, err := bitmatrix.GeneratorOf(h)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return WithGenerator(g, h, p, t, opts...)
}

// WithGenerator constructs an LDPC codec from an already-computed
// generator G and parity-check H, skipping generator derivation. Callers
// are responsible for G·Hᵀ == 0 holding; it is not re-checked at runtime
// (spec.md §4.2 invariant note: "checked in tests, not at runtime").
func WithGenerator(g, h *bitmatrix.Matrix, p float64, t int, opts ...Option) (*LDPC, error) {
	if p <= 0 || p >= 0.5 {
		return nil, fmt.Errorf("WithGenerator: p=%g: %w", p, ErrInvalidChannel)
	}
	if t < 0 {
		return nil, fmt.Errorf("WithGenerator: T=%d must be >= 0", t)
	}

	tg, err := tanner.Build(h)
	if err != nil {
		return nil, fmt.Errorf("WithGenerator: %w", err)
	}

	l := &LDPC{g: g, h: h, tg: tg, p: p, t: t}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// SetBitflipChance updates the BSC crossover probability used by Decode.
// Must be externally synchronized if called concurrently with Decode.
func (l *LDPC) SetBitflipChance(p float64) error {
	if p <= 0 || p >= 0.5 {
		return fmt.Errorf("SetBitflipChance: p=%g: %w", p, ErrInvalidChannel)
	}
	l.p = p
	return nil
}

// SetMaxIterations updates the decoder's iteration cap T.
// Must be externally synchronized if called concurrently with Decode.
func (l *LDPC) SetMaxIterations(t int) error {
	if t < 0 {
		return fmt.Errorf("SetMaxIterations: T=%d must be >= 0", t)
	}
	l.t = t
	return nil
}

// Generator returns the systematic generator matrix G.
func (l *LDPC) Generator() *bitmatrix.Matrix { return l.g }

// ParityCheck returns the parity-check matrix H.
func (l *LDPC) ParityCheck() *bitmatrix.Matrix { return l.h }

// MessageBits returns k, the number of message bits per block.
func (l *LDPC) MessageBits() int { return l.g.Rows() }

// EncodedBits returns n, the number of bits per codeword.
func (l *LDPC) EncodedBits() int { return l.h.Cols() }

// ParityBits returns m, the number of parity-check equations.
func (l *LDPC) ParityBits() int { return l.h.Rows() }
