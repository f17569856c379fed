package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newEscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "escape [text...]",
		Short: "Escapes each argument, or the whole stdin when no arguments given",
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform(cmd, args, runtime.NewEscaper().Escape)
		},
	}
}

func newUnescapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unescape [text...]",
		Short: "Unescapes each argument, or the whole stdin when no arguments given",
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform(cmd, args, runtime.NewEscaper().Unescape)
		},
	}
}

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join [field...]",
		Short: "Escapes the fields and joins them into a single pipe-delimited record",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), runtime.NewEncoder().Join(args))
			return err
		},
	}
}

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split [record...]",
		Short: "Splits pipe-delimited records into unescaped fields, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputs(cmd, args)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				lines = splitLines(lines[0])
			}

			enc := runtime.NewEncoder()
			out := cmd.OutOrStdout()
			for _, line := range lines {
				fields := enc.Split(line)
				logger(cmd).Debug().Int("fields", len(fields)).Msg("record split")
				for _, f := range fields {
					if _, err := fmt.Fprintln(out, f); err != nil {
						return fmt.Errorf("write field: %w", err)
					}
				}
			}
			return nil
		},
	}
}

func transform(cmd *cobra.Command, args []string, fn func(string) string) error {
	in, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range in {
		if _, err := fmt.Fprintln(out, fn(s)); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}

// inputs returns args, or the whole stdin as a single input when there are none.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	logger(cmd).Debug().Int("bytes", len(data)).Msg("read stdin")
	return []string{string(data)}, nil
}

// splitLines splits stdin into records. Escaped records never hold a raw
// newline, so one trailing line break is a terminator, not an empty record.
func splitLines(data string) []string {
	data = strings.TrimSuffix(data, "\n")
	lines := strings.Split(data, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
