// Package enigma is a faithful, inspectable simulation of the three-rotor
// Enigma M3 cipher machine: every letter can be followed through each of the
// nine stages it passes on its way from key to lamp.
//
// 🚀 What is enigma?
//
//	A small, dependency-light engine that brings together:
//		• Letter codec: letters ↔ indices 0..25, message filtering
//		• Permutations: validated bijections, involutions, inverses
//		• Plugboard: symmetric letter swaps applied on entry and exit
//		• Rotors I, II, III: position and ring-setting offset arithmetic
//		• Reflectors B and C: fixed-point-free involutions
//		• Machine: stepping (simplified or double-step) + signal-path tracing
//
// ✨ Why choose enigma?
//
//   - Exact: reproduces the reference vectors letter for letter
//   - Transparent: ProcessStringDetailed returns the whole signal path
//   - Safe: bad configuration is a typed error, never a crash
//   - Pure Go: static tables validated once at load time
//
// Packages:
//
//	alphabet/    Index/Letter codec and message filtering
//	permutation/ Permutation type, validation and inversion
//	plugboard/   pair parsing and the plugboard substitution
//	reflector/   reflector catalog (B, C)
//	rotor/       rotor catalog (I, II, III) and the offset arithmetic
//	machine/     configuration, stepping, encipherment and tracing
//	cmd/enigma   command-line front end (encrypt, trace, batch, session, catalog)
//
// Quick example:
//
//	m, _ := machine.New(machine.DefaultConfig()) // I-II-III at AAA, reflector B
//	m.ProcessString("AAAAA")                     // "BDZGO"
//
// A machine keeps its rotor positions between calls; build a fresh one (or
// call Reset) to start a new message from the configured positions.
//
//	go get github.com/katalvlaran/enigma
package enigma
