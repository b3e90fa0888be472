package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/internal/render"
)

func newTraceCmd() *cobra.Command {
	var (
		mf     machineFlags
		in     inputFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show the nine-stage signal path of every letter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			m, err := mf.build(cmd)
			if err != nil {
				return err
			}
			text, err := in.read(cmd)
			if err != nil {
				return err
			}

			return render.Trace(cmd.OutOrStdout(), m.ProcessStringDetailed(text), f)
		},
	}
	mf.register(cmd)
	in.register(cmd)
	cmd.Flags().StringVar(&format, "format", "table",
		fmt.Sprintf("Output format: %s", strings.Join(render.Formats(), ", ")))

	return cmd
}
