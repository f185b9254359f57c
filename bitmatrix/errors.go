package bitmatrix

import "errors"

// Sentinel errors for the bitmatrix package. Every algorithm returns one of
// these (wrapped with fmt.Errorf("Func: context: %w", ErrX) at the call
// site) rather than panicking on user-triggered conditions; tests assert
// against these via errors.Is.
var (
	// ErrInvalidShape is returned when a matrix is constructed with a zero
	// dimension or a non-rectangular data source.
	ErrInvalidShape = errors.New("bitmatrix: invalid shape")

	// ErrShapeMismatch is returned when operand dimensions are incompatible
	// (Mul, Add, HorizConcat, VertConcat).
	ErrShapeMismatch = errors.New("bitmatrix: shape mismatch")

	// ErrIndexOutOfRange is returned by bounds-checked element access.
	ErrIndexOutOfRange = errors.New("bitmatrix: index out of range")

	// ErrInvalidPermutation is returned when a PermuteColumns argument is
	// not a bijection on [0, c).
	ErrInvalidPermutation = errors.New("bitmatrix: invalid permutation")

	// ErrSingular is returned when Invert is called on a non-invertible
	// matrix.
	ErrSingular = errors.New("bitmatrix: singular matrix")

	// ErrNonSystematic is returned by GeneratorOf when H's right block B
	// is singular, so no systematic generator can be constructed.
	ErrNonSystematic = errors.New("bitmatrix: parity-check right block is singular")
)
