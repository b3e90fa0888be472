package machine

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by New (and Config.Validate) for any
// configuration that cannot produce a machine. The specific cause
// (rotor.ErrUnknownType, reflector.ErrUnknownType, alphabet.ErrInvalidLetter,
// ErrRotorCount) is wrapped alongside it.
var ErrInvalidConfig = errors.New("machine: invalid configuration")

// ErrRotorCount indicates the configuration does not list exactly three rotors.
var ErrRotorCount = errors.New("machine: exactly three rotors are required")

// ErrUnknownStepping is returned by ParseStepping for an unrecognised name.
var ErrUnknownStepping = errors.New("machine: unknown stepping mode")

// configErrorf wraps cause with both ErrInvalidConfig and a stage prefix.
func configErrorf(stage string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, stage, cause)
}
