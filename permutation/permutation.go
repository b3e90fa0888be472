// SPDX-License-Identifier: MIT
// Package: enigma/permutation
//
// permutation.go: the Permutation26 value type and its validators.
//
// Contract:
//   - A Permutation is a plain array value: copying it copies the table.
//   - Map performs no bounds checks beyond Go's own; callers pass valid indices.
//   - Validate / ValidateReflector are the single source of truth for the
//     table invariants; static catalogs call them once at package load.

package permutation

import (
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
)

// Permutation is a substitution table over the alphabet: input i maps to p[i].
type Permutation [alphabet.Size]alphabet.Index

// Identity returns the table mapping every letter to itself.
func Identity() Permutation {
	var p Permutation
	for i := range p {
		p[i] = alphabet.Index(i)
	}

	return p
}

// Parse reads a 26-letter wiring string such as "EKMFLGDQVZNTOWYHXUSPAIBRCJ",
// where the k-th letter is the output for input k. The result is validated
// as a bijection.
func Parse(wiring string) (Permutation, error) {
	var p Permutation
	if len(wiring) != alphabet.Size {
		return p, validatorErrorf("Parse", ErrLength, "got %d", len(wiring))
	}
	for i := 0; i < alphabet.Size; i++ {
		l, err := alphabet.ParseLetter(rune(wiring[i]))
		if err != nil {
			return p, validatorErrorf("Parse", ErrNotBijection, "position %d: %v", i, err)
		}
		p[i] = l.Index()
	}
	if err := p.Validate(); err != nil {
		return p, err
	}

	return p, nil
}

// MustParse is Parse for static tables; it panics on an invalid wiring.
func MustParse(wiring string) Permutation {
	p, err := Parse(wiring)
	if err != nil {
		panic(err)
	}

	return p
}

// Map returns the image of i.
func (p *Permutation) Map(i alphabet.Index) alphabet.Index {
	return p[i]
}

// Validate checks that p is a bijection on [0,25].
// Complexity: O(26).
func (p *Permutation) Validate() error {
	var seen [alphabet.Size]bool
	for i, v := range p {
		if !v.Valid() {
			return validatorErrorf("Validate", ErrNotBijection, "p[%d]=%d out of range", i, v)
		}
		if seen[v] {
			return validatorErrorf("Validate", ErrNotBijection, "%s has two preimages", v.Letter())
		}
		seen[v] = true
	}

	return nil
}

// ValidateReflector checks the reflector invariants in order: bijection,
// involution (p[p[x]] == x) and no fixed points (p[x] != x).
func (p *Permutation) ValidateReflector() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.IsInvolution() {
		return validatorErrorf("ValidateReflector", ErrNotInvolution, "%s", p)
	}
	if fp := p.FixedPoints(); len(fp) > 0 {
		return validatorErrorf("ValidateReflector", ErrFixedPoint, "%s maps to itself", fp[0].Letter())
	}

	return nil
}

// IsInvolution reports whether applying p twice is the identity.
// A table with an entry outside [0,25] is not an involution.
func (p *Permutation) IsInvolution() bool {
	for i, v := range p {
		if !v.Valid() || p[v] != alphabet.Index(i) {
			return false
		}
	}

	return true
}

// FixedPoints lists the indices x with p[x] == x, in ascending order.
func (p *Permutation) FixedPoints() []alphabet.Index {
	var out []alphabet.Index
	for i, v := range p {
		if v == alphabet.Index(i) {
			out = append(out, v)
		}
	}

	return out
}

// Inverse returns q with q[p[i]] == i for every i.
// p must be a bijection; otherwise the result is unspecified. Entries
// outside [0,25] are skipped rather than indexed.
func (p *Permutation) Inverse() Permutation {
	var q Permutation
	for i, v := range p {
		if !v.Valid() {
			continue
		}
		q[v] = alphabet.Index(i)
	}

	return q
}

// String renders p as its 26-letter wiring string.
func (p Permutation) String() string {
	var sb strings.Builder
	sb.Grow(alphabet.Size)
	for _, v := range p {
		sb.WriteByte(byte(v.Letter()))
	}

	return sb.String()
}
