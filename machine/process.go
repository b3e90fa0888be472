// SPDX-License-Identifier: MIT
// Package: enigma/machine
//
// process.go: the nine-stage signal path and whole-string processing.

package machine

import (
	"log/slog"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/plugboard"
)

// ProcessCharacter steps the rotors and enciphers one letter, returning the
// full Outcome. Lowercase input is upper-cased. A non-letter returns
// alphabet.ErrInvalidLetter and leaves the rotors untouched.
func (m *Machine) ProcessCharacter(r rune) (Outcome, error) {
	l, err := alphabet.ParseLetter(r)
	if err != nil {
		return Outcome{}, err
	}

	return m.processLetter(l), nil
}

// ProcessString enciphers the letters of text and returns only the output
// letters. Non-letters are dropped: they produce no output and do not step
// the rotors. Enciphering and deciphering are the same operation.
func (m *Machine) ProcessString(text string) string {
	letters := alphabet.Filter(text)
	out := make([]byte, len(letters))
	for i, l := range letters {
		out[i] = byte(m.processLetter(l).Output)
	}
	m.logProcessed("string processed", len(letters))

	return string(out)
}

// ProcessStringDetailed is ProcessString returning one Outcome per letter.
func (m *Machine) ProcessStringDetailed(text string) []Outcome {
	letters := alphabet.Filter(text)
	out := make([]Outcome, len(letters))
	for i, l := range letters {
		out[i] = m.processLetter(l)
	}
	m.logProcessed("string processed (detailed)", len(letters))

	return out
}

// processLetter runs one round: step, then the nine stages.
func (m *Machine) processLetter(in alphabet.Letter) Outcome {
	before := m.Positions()
	m.Step()
	after := m.Positions()

	t := tracer{path: make([]PathEntry, 0, PathLength), cur: in.Index()}

	t.pass(plugboard.Name, Forward, m.plugboard.Process)
	t.pass(m.fast.Name(), Forward, m.fast.Forward)
	t.pass(m.middle.Name(), Forward, m.middle.Forward)
	t.pass(m.slow.Name(), Forward, m.slow.Forward)

	t.pass(m.reflector.Name(), Reflect, m.reflector.Reflect)

	t.pass(m.slow.Name(), Backward, m.slow.Backward)
	t.pass(m.middle.Name(), Backward, m.middle.Backward)
	t.pass(m.fast.Name(), Backward, m.fast.Backward)
	// The exit through the plugboard mirrors the entry stage.
	t.pass(plugboard.Name, Backward, m.plugboard.Process)

	return Outcome{
		Input:  in,
		Output: t.cur.Letter(),
		Before: before,
		After:  after,
		Path:   t.path,
	}
}

// tracer threads the signal through successive stages, recording each one.
type tracer struct {
	path []PathEntry
	cur  alphabet.Index
}

func (t *tracer) pass(component string, dir Direction, stage func(alphabet.Index) alphabet.Index) {
	next := stage(t.cur)
	t.path = append(t.path, PathEntry{
		Component: component,
		Input:     t.cur.Letter(),
		Output:    next.Letter(),
		Direction: dir,
	})
	t.cur = next
}

func (m *Machine) logProcessed(msg string, n int) {
	m.logger.Debug(msg,
		slog.Int("letters", n),
		slog.String("positions", m.Positions().String()),
	)
}
