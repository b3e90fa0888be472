package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/internal/batch"
	"github.com/katalvlaran/enigma/internal/render"
)

func newBatchCmd() *cobra.Command {
	var (
		mf       machineFlags
		in       inputFlags
		parallel int
		format   string
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Encipher one message per input line, each from the starting configuration",
		Long: "batch treats every input line as an independent message. Each line gets\n" +
			"its own machine, so line N enciphers the same way whatever precedes it.\n" +
			"Without --format the output is one line per message.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if parallel < 1 {
				return fmt.Errorf("--parallel must be at least 1, got %d", parallel)
			}
			file, err := mf.resolve(cmd)
			if err != nil {
				return err
			}
			opts, err := machineOptions(file)
			if err != nil {
				return err
			}
			text, err := in.read(cmd)
			if err != nil {
				return err
			}

			results, err := batch.Run(cmd.Context(), file.Config, splitLines(text),
				batch.WithParallel(parallel), batch.WithMachineOptions(opts...))
			if err != nil {
				return err
			}

			return writeResults(cmd, results, format)
		},
	}
	mf.register(cmd)
	in.register(cmd)
	fs := cmd.Flags()
	fs.IntVar(&parallel, "parallel", runtime.NumCPU(), "Messages processed concurrently")
	fs.StringVar(&format, "format", "", "Output format: table, markdown, json, yaml (default: one line per message)")

	return cmd
}

func splitLines(s string) []string {
	s = strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

func writeResults(cmd *cobra.Command, results []batch.Result, format string) error {
	w := cmd.OutOrStdout()
	if format == "" {
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Output); err != nil {
				return err
			}
		}
		return nil
	}

	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}
	switch f {
	case render.FormatTable, render.FormatMarkdown:
		mode := render.ASCII
		if f == render.FormatMarkdown {
			mode = render.Markdown
		}
		t := render.NewTable(mode)
		t.Header("#", "Input", "Output")
		t.AlignRight(1)
		for _, r := range results {
			t.Row(r.Index+1, r.Input, r.Output)
		}
		_, err = fmt.Fprintln(w, t.String())
		return err
	default:
		return render.Encode(w, results, f)
	}
}
