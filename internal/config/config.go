// Package config turns external input (YAML/JSON files and CLI-style rotor
// lists) into a validated machine.Config.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/enigma/machine"
)

var (
	// ErrUnsupportedFormat is returned for a file extension other than
	// .yaml, .yml, .json or none.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrBadRotorSpec is returned by ParseRotors for a malformed entry.
	ErrBadRotorSpec = errors.New("config: bad rotor spec")
)

// File is the on-disk configuration: the machine configuration plus the
// behavioural knobs that are not part of it.
type File struct {
	machine.Config `yaml:",inline"`

	// Stepping names the stepping rule; empty selects the default.
	Stepping string `json:"stepping,omitempty" yaml:"stepping,omitempty"`
}

// Options converts the knobs in f into machine options.
func (f File) Options() ([]machine.Option, error) {
	if f.Stepping == "" {
		return nil, nil
	}
	s, err := machine.ParseStepping(f.Stepping)
	if err != nil {
		return nil, err
	}

	return []machine.Option{machine.WithStepping(s)}, nil
}

// Load reads a configuration file (YAML or JSON) and returns the parsed,
// validated File. Format is detected by extension (.yaml/.yml → YAML,
// .json → JSON) or by content when the file has no extension.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(data, filepath.Ext(path))
}

// Parse decodes data as YAML or JSON according to ext ("" = detect from the
// first non-blank byte) and validates the result. Unknown fields are errors.
func Parse(data []byte, ext string) (File, error) {
	var (
		f   File
		err error
	)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &f)
	case ".json":
		err = decodeJSON(data, &f)
	case "":
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
			err = decodeJSON(data, &f)
		} else {
			err = decodeYAML(data, &f)
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return File{}, err
	}

	if err = f.Validate(); err != nil {
		return File{}, err
	}
	if _, err = f.Options(); err != nil {
		return File{}, err
	}

	return f, nil
}

func decodeYAML(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}

	return nil
}

func decodeJSON(data []byte, f *File) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(f); err != nil {
		return fmt.Errorf("parse config json: %w", err)
	}

	return nil
}

// ParseRotors parses a comma-separated list of TYPE[:POSITION[:RING]]
// entries in installation order (fast, middle, slow), e.g.
// "III:A:A,II:A:A,I:A:A". Omitted letters default to 'A' in the machine.
// Only the shape is checked here; catalog names and letters are validated
// by machine.Config.Validate.
func ParseRotors(spec string) ([]machine.RotorSetting, error) {
	parts := strings.Split(spec, ",")
	out := make([]machine.RotorSetting, 0, len(parts))
	for i, p := range parts {
		fields := strings.Split(strings.TrimSpace(p), ":")
		if len(fields) > 3 || fields[0] == "" {
			return nil, fmt.Errorf("%w: entry %d %q", ErrBadRotorSpec, i, p)
		}
		rs := machine.RotorSetting{Type: fields[0]}
		if len(fields) > 1 {
			rs.Position = fields[1]
		}
		if len(fields) > 2 {
			rs.Ring = fields[2]
		}
		out = append(out, rs)
	}
	if len(out) != machine.RotorCount {
		return nil, fmt.Errorf("%w: want %d entries, got %d", ErrBadRotorSpec, machine.RotorCount, len(out))
	}

	return out, nil
}
