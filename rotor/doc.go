// Package rotor models the rotating wired discs (Walzen) of the M3 machine.
//
// 🚀 What is a rotor?
//
//	A disc implementing a fixed letter permutation ("wiring") whose contacts
//	are offset from the machine's entry contacts by the current position,
//	corrected by a static ring setting. One letter on each disc carries the
//	turnover notch that drives the next rotor in the stack.
//
// ✨ Key features:
//   - closed catalog as a tagged enum (I, II, III); strings map onto it only at
//     the boundary via ParseType
//   - inverse wiring computed once at construction: Forward and Backward are
//     both O(1) table lookups
//   - Forward/Backward are exact inverses at any (position, ring) pair
//
// ⚙️ Offset arithmetic:
//
//	shifted = (x + position − ring) mod 26
//	forward = (wiring[shifted] − position + ring) mod 26
//	backward uses the inverse wiring with the same offsets.
//
// The catalog tables are validated as true permutations when the package is
// loaded; a corrupted table panics at start-up instead of enciphering wrongly.
package rotor
