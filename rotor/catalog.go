// SPDX-License-Identifier: MIT
// Package: enigma/rotor
//
// catalog.go: the closed rotor catalog (data-only) and its name mapping.

package rotor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/permutation"
)

// ErrUnknownType indicates a rotor-type name outside the catalog.
var ErrUnknownType = errors.New("rotor: unknown rotor type")

// Type selects one rotor from the closed catalog. The zero value is invalid.
type Type int

// Catalog members for this machine generation.
const (
	I Type = iota + 1
	II
	III
)

// Spec is an immutable catalog entry: wiring plus the single notch letter.
type Spec struct {
	Type   Type
	Wiring permutation.Permutation
	Notch  alphabet.Index
}

// catalogEntry keeps the human-readable source of each table next to the name.
type catalogEntry struct {
	name   string
	wiring string
	notch  alphabet.Letter
}

var entries = map[Type]catalogEntry{
	I:   {name: "I", wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", notch: 'Q'},
	II:  {name: "II", wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", notch: 'E'},
	III: {name: "III", wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", notch: 'V'},
}

// catalog is built and validated once at package load.
var catalog = mustBuildCatalog()

func mustBuildCatalog() map[Type]Spec {
	out := make(map[Type]Spec, len(entries))
	for t, e := range entries {
		wiring, err := permutation.Parse(e.wiring)
		if err != nil {
			panic(fmt.Sprintf("rotor: catalog entry %s: %v", e.name, err))
		}
		out[t] = Spec{Type: t, Wiring: wiring, Notch: e.notch.Index()}
	}

	return out
}

// Types returns the catalog members in ascending order.
func Types() []Type { return []Type{I, II, III} }

// String returns the roman-numeral name ("I", "II", "III").
func (t Type) String() string {
	if e, ok := entries[t]; ok {
		return e.name
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is a catalog member.
func (t Type) Valid() bool {
	_, ok := entries[t]
	return ok
}

// ParseType maps an external name onto the catalog. Matching ignores case
// and surrounding whitespace ("iii" → III).
func ParseType(name string) (Type, error) {
	norm := strings.ToUpper(strings.TrimSpace(name))
	for t, e := range entries {
		if e.name == norm {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

// SpecFor returns the catalog entry for t.
func SpecFor(t Type) (Spec, error) {
	s, ok := catalog[t]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}

	return s, nil
}
