// SPDX-License-Identifier: MIT
// Package: enigma/machine
//
// options.go: functional options for New.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs
//     (nil logger, unknown stepping mode). The machine itself never panics.
//   • Options apply in order; later options override earlier ones.

package machine

import (
	"fmt"
	"log/slog"
	"strings"
)

// Stepping selects the rotor-advance rule.
type Stepping int

const (
	// SteppingSimplified: fast always steps; middle steps if the fast rotor
	// was at its notch; slow steps if fast and middle were both at their
	// notches. Both conditions are sampled before any rotor moves.
	SteppingSimplified Stepping = iota

	// SteppingDoubleStep: the authentic M3 pawl mechanics. The middle rotor
	// steps if the fast rotor was at its notch or if the middle rotor itself
	// was at its notch (the double step); the slow rotor steps whenever the
	// middle rotor was at its notch.
	SteppingDoubleStep
)

var steppingNames = map[Stepping]string{
	SteppingSimplified: "simplified",
	SteppingDoubleStep: "double-step",
}

func (s Stepping) String() string {
	if n, ok := steppingNames[s]; ok {
		return n
	}

	return fmt.Sprintf("Stepping(%d)", int(s))
}

// ParseStepping maps "simplified" / "double-step" (case-insensitive) onto a
// Stepping value.
func ParseStepping(name string) (Stepping, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for s, n := range steppingNames {
		if n == norm {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStepping, name)
}

// Option customises a Machine at construction.
type Option func(*Machine)

// WithStepping selects the stepping rule. Panics on an unknown value.
func WithStepping(s Stepping) Option {
	if _, ok := steppingNames[s]; !ok {
		panic(fmt.Sprintf("machine: WithStepping(%d)", int(s)))
	}
	return func(m *Machine) {
		m.stepping = s
	}
}

// WithLogger attaches a structured logger for construction and per-message
// debug records. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("machine: WithLogger(nil)")
	}
	return func(m *Machine) {
		m.logger = l
	}
}
