package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/enigma/internal/render"
	"github.com/katalvlaran/enigma/machine"
)

func trace(t *testing.T, text string) []machine.Outcome {
	t.Helper()
	m, err := machine.New(machine.DefaultConfig())
	require.NoError(t, err)

	return m.ProcessStringDetailed(text)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]render.Format{
		"":         render.FormatTable,
		"TABLE":    render.FormatTable,
		"md":       render.FormatMarkdown,
		"markdown": render.FormatMarkdown,
		"json":     render.FormatJSON,
		"yml":      render.FormatYAML,
	} {
		got, err := render.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := render.ParseFormat("csv")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
	assert.Equal(t, []string{"table", "markdown", "json", "yaml"}, render.Formats())
}

func TestTrace_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Trace(&buf, trace(t, "AA"), render.FormatTable))
	out := buf.String()

	assert.Contains(t, out, "1: A → B  (AAA → AAB)")
	assert.Contains(t, out, "2: A → D  (AAB → AAC)")
	assert.Contains(t, out, "Reflector B")
	assert.Contains(t, out, "backward")
	assert.Contains(t, out, "───", "box-drawing style")
}

func TestTrace_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Trace(&buf, trace(t, "A"), render.FormatMarkdown))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "### 1: A → B"), out)
	assert.Contains(t, out, "| #")
	assert.Contains(t, out, "| Rotor III")
	assert.Contains(t, out, "---")
}

func TestTrace_JSON(t *testing.T) {
	want := trace(t, "HI")
	var buf bytes.Buffer
	require.NoError(t, render.Trace(&buf, want, render.FormatJSON))
	assert.Contains(t, buf.String(), `"direction": "reflect"`)

	var got []machine.Outcome
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON trace mismatch (-want +got):\n%s", diff)
	}
}

func TestTrace_YAML(t *testing.T) {
	want := trace(t, "A")
	var buf bytes.Buffer
	require.NoError(t, render.Trace(&buf, want, render.FormatYAML))
	assert.Contains(t, buf.String(), "component: Reflector B")

	var got []machine.Outcome
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("YAML trace mismatch (-want +got):\n%s", diff)
	}
}

func TestTrace_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Trace(&buf, nil, render.FormatJSON))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, render.Trace(&buf, nil, render.FormatTable))
	assert.Empty(t, buf.String())

	assert.ErrorIs(t, render.Trace(&buf, nil, render.Format(9)), render.ErrUnknownFormat)
}

func TestEncode_TableFormatsRejected(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.Encode(&buf, 1, render.FormatTable), render.ErrUnknownFormat)
	require.NoError(t, render.Encode(&buf, map[string]int{"count": 1}, render.FormatYAML))
	assert.Equal(t, "count: 1\n", buf.String())
}
