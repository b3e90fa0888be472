// Package permutation models Permutation26: a bijection on the 26-letter
// alphabet, the common shape of every wired component (rotor wirings,
// reflectors, the plugboard map).
//
// Validators follow a fixed sequence (length → range → bijection, then the
// reflector-specific involution and fixed-point checks) and return sentinel
// errors wrapped with a short tag, so callers branch with errors.Is.
//
// Complexity: every operation is O(26) time and allocation-free except
// FixedPoints and String.
package permutation
