// Package reflector implements the fixed, non-rotating return wheel
// (Umkehrwalze) that sends the signal back through the rotor stack.
//
// Every catalog table is a fixed-point-free involution; this is checked once
// at package load and a violation panics at start-up.
package reflector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/permutation"
)

// ErrUnknownType indicates a reflector name outside the catalog.
var ErrUnknownType = errors.New("reflector: unknown reflector type")

// Type selects a reflector from the closed catalog. The zero value is invalid.
type Type int

// Catalog members.
const (
	B Type = iota + 1
	C
)

var wirings = map[Type]string{
	B: "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	C: "FVPJIAOYEDRZXWGCTKUQSBNMHL",
}

var names = map[Type]string{B: "B", C: "C"}

var catalog = mustBuildCatalog()

func mustBuildCatalog() map[Type]permutation.Permutation {
	out := make(map[Type]permutation.Permutation, len(wirings))
	for t, w := range wirings {
		p, err := permutation.Parse(w)
		if err == nil {
			err = p.ValidateReflector()
		}
		if err != nil {
			panic(fmt.Sprintf("reflector: catalog entry %s: %v", names[t], err))
		}
		out[t] = p
	}

	return out
}

// Types returns the catalog members in ascending order.
func Types() []Type { return []Type{B, C} }

func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is a catalog member.
func (t Type) Valid() bool {
	_, ok := names[t]
	return ok
}

// ParseType maps an external name onto the catalog, ignoring case and
// surrounding whitespace.
func ParseType(name string) (Type, error) {
	norm := strings.ToUpper(strings.TrimSpace(name))
	for t, n := range names {
		if n == norm {
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

// Reflector is an installed return wheel.
type Reflector struct {
	typ   Type
	table permutation.Permutation
}

// New installs the reflector of type t. Returns ErrUnknownType otherwise.
func New(t Type) (*Reflector, error) {
	table, ok := catalog[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}

	return &Reflector{typ: t, table: table}, nil
}

// Type returns the catalog type.
func (r *Reflector) Type() Type { return r.typ }

// Name returns the trace label, e.g. "Reflector B".
func (r *Reflector) Name() string { return "Reflector " + r.typ.String() }

// Table returns a copy of the wiring.
func (r *Reflector) Table() permutation.Permutation { return r.table }

// Reflect maps i to its partner. Never the identity for any input. O(1).
func (r *Reflector) Reflect(i alphabet.Index) alphabet.Index {
	return r.table.Map(i)
}
