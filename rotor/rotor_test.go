package rotor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/rotor"
)

func mustRotor(t *testing.T, typ rotor.Type, pos, ring alphabet.Letter) *rotor.Rotor {
	t.Helper()
	r, err := rotor.New(typ, pos.Index(), ring.Index())
	require.NoError(t, err)

	return r
}

// TestCatalog_Bijections checks every catalog wiring is a permutation.
func TestCatalog_Bijections(t *testing.T) {
	for _, typ := range rotor.Types() {
		spec, err := rotor.SpecFor(typ)
		require.NoError(t, err)
		assert.NoError(t, spec.Wiring.Validate(), typ.String())
		assert.Equal(t, typ, spec.Type)
	}
}

func TestCatalog_Notches(t *testing.T) {
	want := map[rotor.Type]alphabet.Letter{rotor.I: 'Q', rotor.II: 'E', rotor.III: 'V'}
	for typ, notch := range want {
		r := mustRotor(t, typ, 'A', 'A')
		assert.Equal(t, notch.Index(), r.Notch(), typ.String())
	}
}

func TestParseType(t *testing.T) {
	tests := map[string]rotor.Type{"I": rotor.I, "ii": rotor.II, " III ": rotor.III}
	for in, want := range tests {
		got, err := rotor.ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	for _, bad := range []string{"", "IV", "1", "rotor I"} {
		_, err := rotor.ParseType(bad)
		assert.ErrorIs(t, err, rotor.ErrUnknownType, bad)
	}
}

func TestType_Text(t *testing.T) {
	b, err := rotor.II.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "II", string(b))

	var typ rotor.Type
	require.NoError(t, typ.UnmarshalText([]byte("iii")))
	assert.Equal(t, rotor.III, typ)

	_, err = rotor.Type(0).MarshalText()
	assert.ErrorIs(t, err, rotor.ErrUnknownType)
	assert.False(t, rotor.Type(9).Valid())
	assert.Equal(t, "Type(9)", rotor.Type(9).String())
}

func TestNew_Errors(t *testing.T) {
	_, err := rotor.New(rotor.Type(0), 0, 0)
	assert.ErrorIs(t, err, rotor.ErrUnknownType)

	_, err = rotor.New(rotor.I, 26, 0)
	assert.ErrorIs(t, err, alphabet.ErrIndexRange)

	_, err = rotor.New(rotor.I, 0, -1)
	assert.ErrorIs(t, err, alphabet.ErrIndexRange)
}

// TestStep_Wraps checks Step only touches the position and wraps Z → A.
func TestStep_Wraps(t *testing.T) {
	r := mustRotor(t, rotor.II, 'Y', 'C')
	r.Step()
	assert.Equal(t, alphabet.Index(25), r.Position())
	r.Step()
	assert.Equal(t, alphabet.Index(0), r.Position())
	assert.Equal(t, alphabet.Index(2), r.RingSetting(), "ring setting never changes")
}

func TestAtNotch(t *testing.T) {
	r := mustRotor(t, rotor.I, 'P', 'A')
	assert.False(t, r.AtNotch())
	r.Step()
	assert.True(t, r.AtNotch(), "rotor I notch is Q")
	r.Step()
	assert.False(t, r.AtNotch())
}

// TestForward_IdentityOffsets verifies that at position A / ring A the rotor
// is exactly its catalog wiring.
func TestForward_IdentityOffsets(t *testing.T) {
	r := mustRotor(t, rotor.I, 'A', 'A')
	spec, _ := rotor.SpecFor(rotor.I)
	for i := alphabet.Index(0); i < alphabet.Size; i++ {
		assert.Equal(t, spec.Wiring.Map(i), r.Forward(i))
	}
}

// TestForward_KnownOffsets pins values from the offset arithmetic.
func TestForward_KnownOffsets(t *testing.T) {
	// Rotor III at B: A enters contact B, wired to D, exits as C.
	r := mustRotor(t, rotor.III, 'B', 'A')
	assert.Equal(t, alphabet.LetterToIndex('C'), r.Forward(alphabet.LetterToIndex('A')))
	assert.Equal(t, alphabet.LetterToIndex('B'), r.Backward(alphabet.LetterToIndex('E')))

	// Position and ring offsets cancel when equal.
	same := mustRotor(t, rotor.I, 'K', 'K')
	spec, _ := rotor.SpecFor(rotor.I)
	for i := alphabet.Index(0); i < alphabet.Size; i++ {
		assert.Equal(t, spec.Wiring.Map(i), same.Forward(i))
	}
}

// TestForwardBackward_Inverse is exhaustive over type × position × ring × input.
func TestForwardBackward_Inverse(t *testing.T) {
	for _, typ := range rotor.Types() {
		for pos := alphabet.Index(0); pos < alphabet.Size; pos++ {
			for ring := alphabet.Index(0); ring < alphabet.Size; ring++ {
				r, err := rotor.New(typ, pos, ring)
				require.NoError(t, err)
				for x := alphabet.Index(0); x < alphabet.Size; x++ {
					if got := r.Backward(r.Forward(x)); got != x {
						t.Fatalf("%s pos=%d ring=%d: backward(forward(%d)) = %d", typ, pos, ring, x, got)
					}
					if got := r.Forward(r.Backward(x)); got != x {
						t.Fatalf("%s pos=%d ring=%d: forward(backward(%d)) = %d", typ, pos, ring, x, got)
					}
				}
			}
		}
	}
}

func TestSetPosition(t *testing.T) {
	r := mustRotor(t, rotor.I, 'A', 'A')
	r.SetPosition(27)
	assert.Equal(t, alphabet.Index(1), r.Position())
	assert.Equal(t, "Rotor I", r.Name())
	assert.Equal(t, rotor.I, r.Type())
}
