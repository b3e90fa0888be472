// Package alphabet is the letter codec shared by every stage of the machine.
//
// 🚀 What is it?
//
//	All internal computation in the cipher works on an Index in [0,25],
//	isomorphic to the uppercase Latin letters A..Z. This package converts
//	between the two representations and normalises free-form message text
//	into the stream of letters the machine actually consumes.
//
// ✨ Key features:
//   - LetterToIndex / IndexToLetter: O(1) conversions, no validation on the hot path
//   - ParseLetter / ParseLetterString: validated conversion for configuration input
//   - Filter: keep ASCII letters only, upper-cased (everything else is dropped)
//   - Mod: modular reduction used by the rotor offset arithmetic
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/enigma/alphabet"
//
//	i := alphabet.LetterToIndex('Q')    // 16
//	l := alphabet.IndexToLetter(i)      // 'Q'
//	msg := alphabet.Filter("Hello, W!") // "HELLOW"
//
// Validation of message text happens at the string boundary (Filter);
// LetterToIndex assumes an uppercase ASCII letter and does not check it.
package alphabet
