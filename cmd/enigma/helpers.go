package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/internal/config"
	"github.com/katalvlaran/enigma/internal/logging"
	"github.com/katalvlaran/enigma/machine"
)

// machineFlags are shared by every command that builds a machine. Flags
// given explicitly override the --config file; the rest fall back to it.
type machineFlags struct {
	config    string
	rotors    string
	reflector string
	plugboard string
	stepping  string
}

func (f *machineFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.config, "config", "", "Machine configuration file (YAML or JSON)")
	fs.StringVar(&f.rotors, "rotors", "III:A:A,II:A:A,I:A:A", "Rotors TYPE[:POS[:RING]] in fast, middle, slow order")
	fs.StringVar(&f.reflector, "reflector", "B", "Reflector type: B or C")
	fs.StringVar(&f.plugboard, "plugboard", "", `Plugboard pairs, e.g. "AV BS CG"`)
	fs.StringVar(&f.stepping, "stepping", "simplified", "Stepping rule: simplified or double-step")
}

// resolve merges the config file and explicit flags into a validated file.
func (f *machineFlags) resolve(cmd *cobra.Command) (config.File, error) {
	file := config.File{Config: machine.DefaultConfig()}
	if f.config != "" {
		var err error
		if file, err = config.Load(f.config); err != nil {
			return config.File{}, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("rotors") {
		rs, err := config.ParseRotors(f.rotors)
		if err != nil {
			return config.File{}, err
		}
		file.Rotors = rs
	}
	if fs.Changed("reflector") {
		file.Reflector = f.reflector
	}
	if fs.Changed("plugboard") {
		file.Plugboard = f.plugboard
	}
	if fs.Changed("stepping") {
		file.Stepping = f.stepping
	}

	if err := file.Validate(); err != nil {
		return config.File{}, err
	}

	return file, nil
}

// options returns the machine options for file, logging as component "machine".
func machineOptions(file config.File) ([]machine.Option, error) {
	opts, err := file.Options()
	if err != nil {
		return nil, err
	}

	return append(opts, machine.WithLogger(logging.New("machine"))), nil
}

func (f *machineFlags) build(cmd *cobra.Command) (*machine.Machine, error) {
	file, err := f.resolve(cmd)
	if err != nil {
		return nil, err
	}
	opts, err := machineOptions(file)
	if err != nil {
		return nil, err
	}

	return machine.New(file.Config, opts...)
}

// inputFlags choose where the message comes from: --text, --file or stdin.
type inputFlags struct {
	text string
	file string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.text, "text", "", "Message text")
	fs.StringVarP(&f.file, "file", "f", "", "Read the message from a file")
	cmd.MarkFlagsMutuallyExclusive("text", "file")
}

func (f *inputFlags) read(cmd *cobra.Command) (string, error) {
	switch {
	case f.text != "":
		return f.text, nil
	case f.file != "":
		data, err := os.ReadFile(f.file)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return string(data), nil
}

// group splits s into space-separated blocks of n letters; n < 1 leaves s as is.
func group(s string, n int) string {
	if n < 1 || len(s) <= n {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i += n {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i:min(i+n, len(s))])
	}

	return b.String()
}
