package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "enigma",
		Short: "Enigma M3 cipher machine with signal-path tracing",
		Long: "enigma enciphers and deciphers text on a simulated three-rotor Enigma M3\n" +
			"and can show every stage a letter passes through on its way.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(rootFlags.logLevel)
			if err != nil {
				return err
			}
			if rootFlags.logFormat != "text" && rootFlags.logFormat != "json" {
				return fmt.Errorf("--log-format must be text or json, got %q", rootFlags.logFormat)
			}
			logging.Init(level, rootFlags.logFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(
		newEncryptCmd(),
		newTraceCmd(),
		newBatchCmd(),
		newSessionCmd(),
		newCatalogCmd(),
	)

	return root
}
