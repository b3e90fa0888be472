package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/internal/logging"
)

func newEncryptCmd() *cobra.Command {
	var (
		mf    machineFlags
		in    inputFlags
		block int
	)
	cmd := &cobra.Command{
		Use:     "encrypt",
		Aliases: []string{"decrypt"},
		Short:   "Encipher (or decipher) a message",
		Long: "Encipher a message. The machine is reciprocal, so deciphering is the same\n" +
			"operation with the same starting configuration. Non-letters are dropped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := mf.build(cmd)
			if err != nil {
				return err
			}
			text, err := in.read(cmd)
			if err != nil {
				return err
			}
			out := m.ProcessString(text)
			logging.New("cli").Info("message processed", "letters", len(out), "positions", m.Positions().String())

			_, err = fmt.Fprintln(cmd.OutOrStdout(), group(out, block))
			return err
		},
	}
	mf.register(cmd)
	in.register(cmd)
	cmd.Flags().IntVar(&block, "group", 0, "Print output in blocks of N letters (0 = no grouping)")

	return cmd
}
