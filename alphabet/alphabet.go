// SPDX-License-Identifier: MIT
// Package: enigma/alphabet
//
// alphabet.go: Index/Letter types and the bidirectional codec.

package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of letters (and contacts on every wired component).
const Size = 26

// ErrInvalidLetter indicates a configuration value is not a single letter A..Z
// (case-insensitive).
var ErrInvalidLetter = errors.New("alphabet: invalid letter")

// ErrIndexRange indicates an Index outside [0, Size).
var ErrIndexRange = errors.New("alphabet: index out of range")

// Index is a letter position in [0,25]; 'A' is 0 and 'Z' is 25.
type Index int

// Valid reports whether i lies in [0, Size).
func (i Index) Valid() bool { return i >= 0 && i < Size }

// Letter returns the uppercase letter for i. See IndexToLetter.
func (i Index) Letter() Letter { return IndexToLetter(i) }

// Letter is an uppercase ASCII letter 'A'..'Z'.
//
// It marshals as a one-character string so outcome records read naturally in
// JSON and YAML ("input": "A") instead of as raw byte values.
type Letter byte

// String returns the letter as a one-character string.
func (l Letter) String() string { return string(rune(l)) }

// Index returns the 0..25 index of l. See LetterToIndex.
func (l Letter) Index() Index { return LetterToIndex(l) }

// MarshalText implements encoding.TextMarshaler.
// Returns ErrInvalidLetter for anything outside 'A'..'Z', including the zero value.
func (l Letter) MarshalText() ([]byte, error) {
	if l < 'A' || l > 'Z' {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLetter, byte(l))
	}

	return []byte{byte(l)}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Lowercase input is accepted and upper-cased.
func (l *Letter) UnmarshalText(text []byte) error {
	parsed, err := ParseLetterString(string(text))
	if err != nil {
		return err
	}
	*l = parsed

	return nil
}

// LetterToIndex maps an uppercase ASCII letter to its index: 'A'→0 … 'Z'→25.
// The input is not validated; callers filter message text first.
// Complexity: O(1).
func LetterToIndex(c Letter) Index {
	return Index(c - 'A')
}

// IndexToLetter maps an index in [0,25] back to its uppercase letter.
// Complexity: O(1).
func IndexToLetter(i Index) Letter {
	return Letter('A' + byte(i))
}

// Mod reduces any integer into [0, Size). Negative values wrap around,
// so Mod(-1) == 25.
func Mod(n int) Index {
	n %= Size
	if n < 0 {
		n += Size
	}

	return Index(n)
}

// IsLetter reports whether r is an ASCII letter (either case).
func IsLetter(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
}

// ParseLetter validates r and returns it as an uppercase Letter.
// Returns ErrInvalidLetter for anything outside A..Z / a..z.
func ParseLetter(r rune) (Letter, error) {
	if !IsLetter(r) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, r)
	}
	if r >= 'a' {
		r -= 'a' - 'A'
	}

	return Letter(r), nil
}

// ParseLetterString parses a configuration value holding exactly one letter,
// ignoring surrounding whitespace ("q", " Q ").
func ParseLetterString(s string) (Letter, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, s)
	}

	return ParseLetter(rune(s[0]))
}

// Filter keeps only the ASCII letters of text, upper-cased, in order.
// Digits, punctuation, whitespace and non-ASCII runes are dropped, not
// substituted. Complexity: O(len(text)).
func Filter(text string) []Letter {
	out := make([]Letter, 0, len(text))
	for _, r := range text {
		if l, err := ParseLetter(r); err == nil {
			out = append(out, l)
		}
	}

	return out
}

// FilterString is Filter returning a string.
func FilterString(text string) string {
	letters := Filter(text)
	b := make([]byte, len(letters))
	for i, l := range letters {
		b[i] = byte(l)
	}

	return string(b)
}
