package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/internal/session"
)

func newSessionCmd() *cobra.Command {
	var mf machineFlags
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Read lines interactively on one continuing machine",
		Long: "session keeps one machine across input lines: each line continues from the\n" +
			"rotor positions the previous line left. The commands :pos, :reset and :quit\n" +
			"show the rotor windows, rewind to the start positions, and end the session.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := mf.resolve(cmd)
			if err != nil {
				return err
			}
			opts, err := machineOptions(file)
			if err != nil {
				return err
			}

			mgr := session.New()
			id, err := mgr.Open(file.Config, opts...)
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close(id) }()

			out := cmd.OutOrStdout()
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				switch line {
				case ":quit", ":q":
					return nil
				case ":reset":
					if err := mgr.Reset(id); err != nil {
						return err
					}
					continue
				case ":pos":
					p, err := mgr.Positions(id)
					if err != nil {
						return err
					}
					if _, err := fmt.Fprintln(out, p); err != nil {
						return err
					}
					continue
				}
				res, err := mgr.Process(id, line)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out, res); err != nil {
					return err
				}
			}

			return sc.Err()
		},
	}
	mf.register(cmd)

	return cmd
}
