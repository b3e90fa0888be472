// Package render presents machine outcomes to people and programs: ASCII or
// Markdown trace tables for reading the signal path, JSON and YAML for
// feeding other tools.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/enigma/machine"
)

// ErrUnknownFormat is returned by ParseFormat for unrecognised names.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects the encoding of a trace.
type Format int

const (
	FormatTable Format = iota
	FormatMarkdown
	FormatJSON
	FormatYAML
)

var formatNames = [...]string{
	FormatTable:    "table",
	FormatMarkdown: "markdown",
	FormatJSON:     "json",
	FormatYAML:     "yaml",
}

// String returns the flag name of f.
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a flag value ("table", "markdown"/"md", "json",
// "yaml"/"yml") onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Formats lists every Format in flag-help order.
func Formats() []string { return append([]string(nil), formatNames[:]...) }

// Trace writes outcomes to w in format f.
func Trace(w io.Writer, outcomes []machine.Outcome, f Format) error {
	switch f {
	case FormatTable:
		return traceTables(w, outcomes, ASCII)
	case FormatMarkdown:
		return traceTables(w, outcomes, Markdown)
	}

	return Encode(w, nonNil(outcomes), f)
}

// Encode writes v as indented JSON or YAML. The table formats have no
// generic encoding and return ErrUnknownFormat.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("%w: cannot encode as %s", ErrUnknownFormat, f)
}

// nonNil keeps an empty trace encoding as [] rather than null.
func nonNil(o []machine.Outcome) []machine.Outcome {
	if o == nil {
		return []machine.Outcome{}
	}

	return o
}

func traceTables(w io.Writer, outcomes []machine.Outcome, mode Mode) error {
	for i, o := range outcomes {
		caption := Caption(i+1, o)
		t := NewTable(mode)
		if mode == Markdown {
			if _, err := fmt.Fprintf(w, "### %s\n\n", caption); err != nil {
				return err
			}
		} else {
			t.Title(caption)
		}
		t.Header("#", "Component", "In", "Out", "Direction")
		t.AlignRight(1)
		for n, e := range o.Path {
			t.Row(n+1, e.Component, e.Input, e.Output, e.Direction)
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", t.String()); err != nil {
			return err
		}
	}

	return nil
}

// Caption summarises one outcome, e.g. "1: A → B  (AAA → AAB)".
func Caption(n int, o machine.Outcome) string {
	return fmt.Sprintf("%d: %s → %s  (%s → %s)", n, o.Input, o.Output, o.Before, o.After)
}
