package machine

// Step applies one stepping transition without enciphering anything.
// ProcessCharacter calls it once per letter, before the signal passes.
func (m *Machine) Step() {
	// Both notch conditions are sampled before any rotor moves.
	fastAtNotch := m.fast.AtNotch()
	middleAtNotch := m.middle.AtNotch()

	switch m.stepping {
	case SteppingDoubleStep:
		if middleAtNotch {
			m.slow.Step()
		}
		if fastAtNotch || middleAtNotch {
			m.middle.Step()
		}
	default:
		if fastAtNotch {
			m.middle.Step()
			if middleAtNotch {
				m.slow.Step()
			}
		}
	}
	m.fast.Step()
}
