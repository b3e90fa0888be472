package permutation

import (
	"errors"
	"fmt"
)

var (
	// ErrLength indicates a wiring string does not hold exactly 26 letters.
	ErrLength = errors.New("permutation: wiring must have exactly 26 letters")

	// ErrNotBijection indicates a table maps two inputs to the same output
	// (or an output lies outside [0,25]).
	ErrNotBijection = errors.New("permutation: table is not a bijection")

	// ErrNotInvolution indicates f(f(x)) != x for some x.
	ErrNotInvolution = errors.New("permutation: table is not an involution")

	// ErrFixedPoint indicates f(x) == x for some x where none is allowed.
	ErrFixedPoint = errors.New("permutation: table has a fixed point")
)

// validatorErrorf tags a sentinel with the validator that raised it.
func validatorErrorf(tag string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", tag, err, fmt.Sprintf(format, args...))
}
