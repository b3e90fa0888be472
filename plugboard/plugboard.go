// Package plugboard implements the front-panel substitution layer
// (Steckerbrett): a symmetric swap of designated letter pairs, applied once
// on entry to the rotor stack and once on exit.
//
// Construction never fails. Malformed input is normalised:
//   - every non-letter is dropped before pairing ("AV-BS, CG" == "AVBSCG");
//   - a trailing unpaired letter is discarded;
//   - a later pair overrides earlier ones: any previous partner of either
//     letter is released back to identity before the new swap is wired, so
//     the map stays an involution ("AB AC" leaves A↔C and B unplugged);
//   - a self-pair ("AA") just unplugs A.
package plugboard

import (
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/permutation"
)

// Name is the component label used in signal-path traces.
const Name = "Plugboard"

// Plugboard is an involutive substitution built from letter pairs.
// The zero value is not usable; call New.
type Plugboard struct {
	table permutation.Permutation
}

// New builds a Plugboard from a pairing string such as "AV BS CG DL".
// Complexity: O(len(pairs)).
func New(pairs string) *Plugboard {
	pb := &Plugboard{table: permutation.Identity()}
	letters := alphabet.Filter(pairs)
	for k := 0; k+1 < len(letters); k += 2 {
		pb.connect(letters[k].Index(), letters[k+1].Index())
	}

	return pb
}

// connect wires a↔b after unplugging any cable already attached to a or b.
func (pb *Plugboard) connect(a, b alphabet.Index) {
	pb.release(a)
	pb.release(b)
	pb.table[a] = b
	pb.table[b] = a
}

// release returns i and its current partner to identity.
func (pb *Plugboard) release(i alphabet.Index) {
	partner := pb.table[i]
	pb.table[partner] = partner
	pb.table[i] = i
}

// Process substitutes one letter index. Because the map is an involution the
// same call serves both the entry and the exit stage. O(1), no side effects.
func (pb *Plugboard) Process(i alphabet.Index) alphabet.Index {
	return pb.table.Map(i)
}

// Table returns a copy of the underlying substitution.
func (pb *Plugboard) Table() permutation.Permutation {
	return pb.table
}

// Pairs lists the effective cables in ascending order of their first letter,
// e.g. ["AV", "BS"]. Letters left unplugged are omitted.
func (pb *Plugboard) Pairs() []string {
	var out []string
	for i := alphabet.Index(0); i < alphabet.Size; i++ {
		if j := pb.table[i]; j > i {
			out = append(out, string([]byte{byte(i.Letter()), byte(j.Letter())}))
		}
	}

	return out
}

// String renders the effective pairs space-separated ("AV BS").
func (pb *Plugboard) String() string {
	return strings.Join(pb.Pairs(), " ")
}
