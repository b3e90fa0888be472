package machine

import (
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/reflector"
	"github.com/katalvlaran/enigma/rotor"
)

// RotorCount is the number of rotor slots in this machine family.
const RotorCount = 3

// Slot indices into Config.Rotors, in installation order.
const (
	SlotFast = iota
	SlotMiddle
	SlotSlow
)

var slotNames = [RotorCount]string{"fast", "middle", "slow"}

// RotorSetting selects one rotor by name with its start position and ring
// setting as letters. Empty Position/Ring mean 'A'.
type RotorSetting struct {
	Type     string `json:"type" yaml:"type"`
	Position string `json:"position,omitempty" yaml:"position,omitempty"`
	Ring     string `json:"ring,omitempty" yaml:"ring,omitempty"`
}

// Config is the external machine configuration.
//
// Rotors are listed in installation order right-to-left: Rotors[0] is the
// fast (rightmost) rotor, Rotors[2] the slow (leftmost) one. Note that the
// conventional "I-II-III" notation reads left-to-right, i.e. slow first.
type Config struct {
	Rotors    []RotorSetting `json:"rotors" yaml:"rotors"`
	Reflector string         `json:"reflector" yaml:"reflector"`
	Plugboard string         `json:"plugboard,omitempty" yaml:"plugboard,omitempty"`
}

// DefaultConfig returns rotors I-II-III (left to right) at A with rings A,
// reflector B and an empty plugboard.
func DefaultConfig() Config {
	return Config{
		Rotors: []RotorSetting{
			{Type: "III", Position: "A", Ring: "A"},
			{Type: "II", Position: "A", Ring: "A"},
			{Type: "I", Position: "A", Ring: "A"},
		},
		Reflector: "B",
	}
}

// rotorState is a validated RotorSetting.
type rotorState struct {
	typ      rotor.Type
	position alphabet.Index
	ring     alphabet.Index
}

// settings is a fully validated Config.
type settings struct {
	rotors    [RotorCount]rotorState
	reflector reflector.Type
}

// Validate checks c without building a machine.
func (c Config) Validate() error {
	_, err := c.resolve()
	return err
}

// resolve maps every string field onto its typed value; the first failure
// in slot order wins.
func (c Config) resolve() (settings, error) {
	var s settings
	if len(c.Rotors) != RotorCount {
		return s, configErrorf("rotors", fmt.Errorf("%w: got %d", ErrRotorCount, len(c.Rotors)))
	}
	for slot, rs := range c.Rotors {
		st, err := rs.resolve()
		if err != nil {
			return s, configErrorf(fmt.Sprintf("rotor[%d] (%s)", slot, slotNames[slot]), err)
		}
		s.rotors[slot] = st
	}
	refl, err := reflector.ParseType(c.Reflector)
	if err != nil {
		return s, configErrorf("reflector", err)
	}
	s.reflector = refl

	return s, nil
}

func (rs RotorSetting) resolve() (rotorState, error) {
	var st rotorState
	typ, err := rotor.ParseType(rs.Type)
	if err != nil {
		return st, err
	}
	pos, err := letterOrDefault(rs.Position)
	if err != nil {
		return st, fmt.Errorf("position: %w", err)
	}
	ring, err := letterOrDefault(rs.Ring)
	if err != nil {
		return st, fmt.Errorf("ring: %w", err)
	}

	return rotorState{typ: typ, position: pos.Index(), ring: ring.Index()}, nil
}

func letterOrDefault(s string) (alphabet.Letter, error) {
	if s == "" {
		return 'A', nil
	}

	return alphabet.ParseLetterString(s)
}
