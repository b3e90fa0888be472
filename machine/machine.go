package machine

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/plugboard"
	"github.com/katalvlaran/enigma/reflector"
	"github.com/katalvlaran/enigma/rotor"
)

// Machine is one Enigma M3 instance: the unit of cipher state.
type Machine struct {
	cfg       Config
	initial   [RotorCount]alphabet.Index
	fast      *rotor.Rotor
	middle    *rotor.Rotor
	slow      *rotor.Rotor
	reflector *reflector.Reflector
	plugboard *plugboard.Plugboard
	stepping  Stepping
	logger    *slog.Logger
}

// New validates cfg and builds a machine. Construction is all-or-nothing:
// any invalid catalog name or letter yields an error wrapping
// ErrInvalidConfig and no machine.
//
// Complexity: O(len(cfg.Plugboard)).
func New(cfg Config, opts ...Option) (*Machine, error) {
	s, err := cfg.resolve()
	if err != nil {
		return nil, fmt.Errorf("machine.New: %w", err)
	}

	m := &Machine{
		cfg:       cloneConfig(cfg),
		stepping:  SteppingSimplified,
		logger:    slog.New(slog.DiscardHandler),
		plugboard: plugboard.New(cfg.Plugboard),
	}
	for _, opt := range opts {
		opt(m)
	}

	var rotors [RotorCount]*rotor.Rotor
	for slot, st := range s.rotors {
		r, err := rotor.New(st.typ, st.position, st.ring)
		if err != nil {
			return nil, fmt.Errorf("machine.New: %w", configErrorf(fmt.Sprintf("rotor[%d]", slot), err))
		}
		rotors[slot] = r
		m.initial[slot] = st.position
	}
	m.fast, m.middle, m.slow = rotors[SlotFast], rotors[SlotMiddle], rotors[SlotSlow]

	if m.reflector, err = reflector.New(s.reflector); err != nil {
		return nil, fmt.Errorf("machine.New: %w", configErrorf("reflector", err))
	}

	m.logger.Debug("machine built",
		slog.String("rotors", fmt.Sprintf("%s-%s-%s", m.slow.Type(), m.middle.Type(), m.fast.Type())),
		slog.String("positions", m.Positions().String()),
		slog.String("reflector", m.reflector.Type().String()),
		slog.String("plugboard", m.plugboard.String()),
		slog.String("stepping", m.stepping.String()),
	)

	return m, nil
}

func cloneConfig(c Config) Config {
	c.Rotors = append([]RotorSetting(nil), c.Rotors...)
	return c
}

// Config returns a copy of the configuration the machine was built from.
// It does not reflect the live rotor positions.
func (m *Machine) Config() Config { return cloneConfig(m.cfg) }

// Stepping returns the active stepping rule.
func (m *Machine) Stepping() Stepping { return m.stepping }

// Positions reads the rotor windows in left, middle, right order.
func (m *Machine) Positions() Positions {
	return Positions{
		Left:   m.slow.Position().Letter(),
		Middle: m.middle.Position().Letter(),
		Right:  m.fast.Position().Letter(),
	}
}

// Reset rewinds every rotor to its configured start position.
// This is the only operation that rewinds; processing never does.
func (m *Machine) Reset() {
	m.fast.SetPosition(m.initial[SlotFast])
	m.middle.SetPosition(m.initial[SlotMiddle])
	m.slow.SetPosition(m.initial[SlotSlow])
}
