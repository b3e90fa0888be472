package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/internal/render"
	"github.com/katalvlaran/enigma/reflector"
	"github.com/katalvlaran/enigma/rotor"
)

func newCatalogCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the available rotors and reflectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := render.ASCII
			switch format {
			case "table":
			case "markdown", "md":
				mode = render.Markdown
			default:
				return fmt.Errorf("--format must be table or markdown, got %q", format)
			}

			t := render.NewTable(mode)
			t.Header("Component", "Wiring", "Notch")
			for _, typ := range rotor.Types() {
				spec, err := rotor.SpecFor(typ)
				if err != nil {
					return err
				}
				t.Row("Rotor "+typ.String(), spec.Wiring.String(), spec.Notch.Letter())
			}
			for _, typ := range reflector.Types() {
				r, err := reflector.New(typ)
				if err != nil {
					return err
				}
				t.Row(r.Name(), r.Table().String(), "-")
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or markdown")

	return cmd
}
