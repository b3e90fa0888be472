package plugboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/plugboard"
)

func idx(c byte) alphabet.Index { return alphabet.LetterToIndex(alphabet.Letter(c)) }

// TestPlugboard_Swaps covers mapped, reverse-mapped and unmapped letters.
func TestPlugboard_Swaps(t *testing.T) {
	pb := plugboard.New("AB XY ZW")
	assert.Equal(t, idx('B'), pb.Process(idx('A')))
	assert.Equal(t, idx('A'), pb.Process(idx('B')))
	assert.Equal(t, idx('C'), pb.Process(idx('C')), "unmapped letter is identity")
	assert.Equal(t, idx('Y'), pb.Process(idx('X')))
	assert.Equal(t, idx('W'), pb.Process(idx('Z')))
}

func TestPlugboard_Empty(t *testing.T) {
	pb := plugboard.New("")
	for i := alphabet.Index(0); i < alphabet.Size; i++ {
		assert.Equal(t, i, pb.Process(i))
	}
	assert.Empty(t, pb.Pairs())
	assert.Equal(t, "", pb.String())
}

// TestPlugboard_Normalisation checks separators, case and trailing letters.
func TestPlugboard_Normalisation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pairs []string
	}{
		{"spaces", "AV BS CG", []string{"AV", "BS", "CG"}},
		{"separators", "av-bs,cg;", []string{"AV", "BS", "CG"}},
		{"no separators", "AVBSCG", []string{"AV", "BS", "CG"}},
		{"trailing unpaired", "AV BS C", []string{"AV", "BS"}},
		{"digits dropped", "A1V 2B3S", []string{"AV", "BS"}},
		{"reversed pair", "VA", []string{"AV"}},
		{"later pair overrides", "AB AC", []string{"AC"}},
		{"self pair unplugs", "AB AA", nil},
		{"rewire both ends", "AB CD AC", []string{"AC"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pb := plugboard.New(tc.input)
			assert.Equal(t, tc.pairs, pb.Pairs())
		})
	}
}

// TestPlugboard_Involution verifies process(process(x)) == x for all x,
// including inputs with conflicting pairs.
func TestPlugboard_Involution(t *testing.T) {
	for _, input := range []string{
		"AV BS CG DL FU HZ IN KM OW RX",
		"AB AC",
		"AB BC CD DE",
		"QWERTYUIOPASDFGHJKLZXCVBNM",
		"AA",
	} {
		pb := plugboard.New(input)
		table := pb.Table()
		require.NoError(t, table.Validate(), input)
		assert.True(t, table.IsInvolution(), input)
		for i := alphabet.Index(0); i < alphabet.Size; i++ {
			assert.Equal(t, i, pb.Process(pb.Process(i)), "%s: %s", input, i.Letter())
		}
	}
}

func TestPlugboard_String(t *testing.T) {
	assert.Equal(t, "AV BS HZ", plugboard.New("zh sb va").String())
}
