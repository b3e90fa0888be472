// SPDX-License-Identifier: MIT
// Package: enigma/machine
//
// types.go: immutable per-character records produced by the machine.

package machine

import (
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
)

// PathLength is the number of stages recorded for every character:
// plugboard, three rotors, reflector, three rotors, plugboard.
const PathLength = 9

// Direction tags a path stage.
type Direction int

const (
	// Forward is the entry leg: plugboard and rotors towards the reflector.
	Forward Direction = iota
	// Reflect is the reflector stage.
	Reflect
	// Backward is the return leg, including the final plugboard exit.
	Backward
)

var directionNames = [...]string{Forward: "forward", Reflect: "reflect", Backward: "backward"}

func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	for i, n := range directionNames {
		if n == string(text) {
			*d = Direction(i)
			return nil
		}
	}

	return fmt.Errorf("machine: unknown direction %q", text)
}

// PathEntry records one stage of the signal path.
type PathEntry struct {
	Component string          `json:"component" yaml:"component"`
	Input     alphabet.Letter `json:"input" yaml:"input"`
	Output    alphabet.Letter `json:"output" yaml:"output"`
	Direction Direction       `json:"direction" yaml:"direction"`
}

// Positions is a rotor-window reading in left (slow), middle, right (fast)
// order, the way an operator reads the machine.
type Positions struct {
	Left   alphabet.Letter `json:"left" yaml:"left"`
	Middle alphabet.Letter `json:"middle" yaml:"middle"`
	Right  alphabet.Letter `json:"right" yaml:"right"`
}

// String renders the window, e.g. "AAB".
func (p Positions) String() string {
	return string([]byte{byte(p.Left), byte(p.Middle), byte(p.Right)})
}

// Outcome is the full record of enciphering one letter.
type Outcome struct {
	Input  alphabet.Letter `json:"input" yaml:"input"`
	Output alphabet.Letter `json:"output" yaml:"output"`
	Before Positions       `json:"before" yaml:"before"`
	After  Positions       `json:"after" yaml:"after"`
	Path   []PathEntry     `json:"path" yaml:"path"`
}
