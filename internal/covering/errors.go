package covering

import "errors"

var (
	// ErrInvalidSize is returned when MinimalCoverings is asked for a
	// negative covering size.
	ErrInvalidSize = errors.New("covering: size must be non-negative")

	// ErrInvariantViolation is returned when an enlargement does not
	// strictly decrease a genuine component's index to a proper divisor.
	// The termination argument of the search depends on that invariant, so
	// the search fails fast instead of risking an unbounded recursion.
	ErrInvariantViolation = errors.New("covering: enlargement broke the index invariant")
)
