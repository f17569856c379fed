package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Prints a sample string, its escaped form and the round-tripped result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			esc := runtime.NewEscaper()
			raw := runtime.DemoSample()
			escaped := esc.Escape(raw)
			unescaped := esc.Unescape(escaped)

			if unescaped != raw {
				logger(cmd).Warn().Msg("round trip mismatch")
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "raw:", raw)
			_, _ = fmt.Fprintln(out, "escaped:", escaped)
			_, _ = fmt.Fprintln(out, "unescaped:", unescaped)
			return nil
		},
	}
}
