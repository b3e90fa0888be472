package rotor

import (
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/permutation"
)

// Rotor is one installed disc: a catalog Spec plus live state.
//
// position changes only through Step (or an explicit SetPosition);
// ringSetting is fixed for the rotor's lifetime.
type Rotor struct {
	spec        Spec
	inverse     permutation.Permutation
	position    alphabet.Index
	ringSetting alphabet.Index
}

// New installs a rotor of type t at the given position and ring setting.
//
// Errors:
//   - ErrUnknownType if t is not in the catalog.
//   - alphabet.ErrIndexRange if position or ring lies outside [0,25].
//
// Complexity: O(26) for the inverse table.
func New(t Type, position, ring alphabet.Index) (*Rotor, error) {
	spec, err := SpecFor(t)
	if err != nil {
		return nil, err
	}
	if !position.Valid() {
		return nil, fmt.Errorf("rotor %s: position %d: %w", t, position, alphabet.ErrIndexRange)
	}
	if !ring.Valid() {
		return nil, fmt.Errorf("rotor %s: ring %d: %w", t, ring, alphabet.ErrIndexRange)
	}

	return &Rotor{
		spec:        spec,
		inverse:     spec.Wiring.Inverse(),
		position:    position,
		ringSetting: ring,
	}, nil
}

// Type returns the catalog type of r.
func (r *Rotor) Type() Type { return r.spec.Type }

// Name returns the trace label, e.g. "Rotor III".
func (r *Rotor) Name() string { return "Rotor " + r.spec.Type.String() }

// Position returns the current position (the letter in the window).
func (r *Rotor) Position() alphabet.Index { return r.position }

// SetPosition moves the rotor to p, reduced mod 26.
func (r *Rotor) SetPosition(p alphabet.Index) { r.position = alphabet.Mod(int(p)) }

// RingSetting returns the static ring offset.
func (r *Rotor) RingSetting() alphabet.Index { return r.ringSetting }

// Notch returns the position at which this rotor triggers its neighbour.
func (r *Rotor) Notch() alphabet.Index { return r.spec.Notch }

// AtNotch reports whether the current position equals the notch.
func (r *Rotor) AtNotch() bool { return r.position == r.spec.Notch }

// Step advances the position by one, wrapping Z → A.
func (r *Rotor) Step() { r.position = alphabet.Mod(int(r.position) + 1) }

// Forward maps a signal travelling right-to-left (towards the reflector).
func (r *Rotor) Forward(i alphabet.Index) alphabet.Index {
	return r.through(&r.spec.Wiring, i)
}

// Backward maps a signal travelling left-to-right (back from the reflector).
func (r *Rotor) Backward(i alphabet.Index) alphabet.Index {
	return r.through(&r.inverse, i)
}

// through applies table under the current position/ring offset.
func (r *Rotor) through(table *permutation.Permutation, i alphabet.Index) alphabet.Index {
	offset := int(r.position) - int(r.ringSetting)
	shifted := alphabet.Mod(int(i) + offset)

	return alphabet.Mod(int(table.Map(shifted)) - offset)
}
