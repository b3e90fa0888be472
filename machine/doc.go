// Package machine assembles the three-rotor Enigma M3: plugboard, fast /
// middle / slow rotors and a reflector, and drives the per-character signal
// path.
//
// 🚀 Per character:
//
//  1. capture the rotor positions ("before")
//  2. step the rotors (fast always; middle and slow per the notch rule)
//  3. capture the positions again ("after")
//  4. Plugboard → fast → middle → slow → Reflector
//  5. slow → middle → fast → Plugboard
//
// Each of the nine stages is recorded as a PathEntry in the Outcome.
//
// ✨ Stepping:
//
//	SteppingSimplified (default) steps the middle rotor only when the fast
//	rotor was at its notch, and the slow rotor only when both were at their
//	notches at the start of the round. It does not reproduce the mechanical
//	double step. SteppingDoubleStep (opt-in via WithStepping) models the
//	authentic pawl behaviour. Neither is selected implicitly.
//
// ⚙️ Usage:
//
//	m, err := machine.New(machine.DefaultConfig())
//	if err != nil { ... }                 // errors.Is(err, machine.ErrInvalidConfig)
//	out := m.ProcessString("AAAAA")       // "BDZGO"
//
// State: a Machine owns its rotors exclusively and keeps their positions
// between calls. ProcessString and ProcessStringDetailed continue from where
// the previous call stopped; only Reset rewinds to the configured positions.
// A Machine is not safe for concurrent use: build one machine per message or
// session, or guard a shared one externally.
package machine
