package alphabet_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enigma/alphabet"
)

// TestCodec_RoundTrip checks every index maps to a letter and back.
func TestCodec_RoundTrip(t *testing.T) {
	for i := alphabet.Index(0); i < alphabet.Size; i++ {
		l := alphabet.IndexToLetter(i)
		assert.Equal(t, i, alphabet.LetterToIndex(l), "index %d", i)
	}
	assert.Equal(t, alphabet.Index(0), alphabet.LetterToIndex('A'))
	assert.Equal(t, alphabet.Index(25), alphabet.LetterToIndex('Z'))
	assert.Equal(t, alphabet.Letter('A'), alphabet.IndexToLetter(0))
	assert.Equal(t, alphabet.Letter('Z'), alphabet.IndexToLetter(25))
}

func TestMod(t *testing.T) {
	cases := map[int]alphabet.Index{0: 0, 25: 25, 26: 0, 27: 1, -1: 25, -26: 0, -27: 25, 51: 25}
	for in, want := range cases {
		assert.Equal(t, want, alphabet.Mod(in), "Mod(%d)", in)
	}
}

func TestParseLetter(t *testing.T) {
	l, err := alphabet.ParseLetter('q')
	require.NoError(t, err)
	assert.Equal(t, alphabet.Letter('Q'), l)

	for _, r := range []rune{'1', ' ', '-', 'é', '['} {
		_, err := alphabet.ParseLetter(r)
		assert.ErrorIs(t, err, alphabet.ErrInvalidLetter, "rune %q", r)
	}
}

func TestParseLetterString(t *testing.T) {
	l, err := alphabet.ParseLetterString(" v ")
	require.NoError(t, err)
	assert.Equal(t, alphabet.Letter('V'), l)

	for _, s := range []string{"", "AB", "7", "  "} {
		_, err := alphabet.ParseLetterString(s)
		assert.ErrorIs(t, err, alphabet.ErrInvalidLetter, "input %q", s)
	}
}

// TestFilter verifies non-letters are dropped and case is normalised.
func TestFilter(t *testing.T) {
	assert.Equal(t, "HELLOWORLD", alphabet.FilterString("Hello, World! 123"))
	assert.Equal(t, "", alphabet.FilterString("1234 !?"))
	assert.Equal(t, "AB", alphabet.FilterString("aÄb"), "non-ASCII letters are dropped")
	assert.Len(t, alphabet.Filter("x y z"), 3)
}

func TestLetter_TextMarshalling(t *testing.T) {
	data, err := json.Marshal(struct {
		In alphabet.Letter `json:"in"`
	}{In: 'K'})
	require.NoError(t, err)
	assert.JSONEq(t, `{"in":"K"}`, string(data))

	var got struct {
		In alphabet.Letter `json:"in"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"in":"k"}`), &got))
	assert.Equal(t, alphabet.Letter('K'), got.In)

	assert.Error(t, json.Unmarshal([]byte(`{"in":"kk"}`), &got))
}

// TestLetter_MarshalInvalid: only 'A'..'Z' encode; the zero value is rejected.
func TestLetter_MarshalInvalid(t *testing.T) {
	for _, l := range []alphabet.Letter{0, 'a', '@', '['} {
		_, err := l.MarshalText()
		assert.ErrorIs(t, err, alphabet.ErrInvalidLetter, "letter %d", byte(l))
	}

	_, err := json.Marshal(struct {
		In alphabet.Letter `json:"in"`
	}{})
	assert.ErrorIs(t, err, alphabet.ErrInvalidLetter)
}
