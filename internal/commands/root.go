package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/buglloc/pipescape/internal/config"
	"github.com/buglloc/pipescape/internal/escaper"
)

var runtime *config.Runtime

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func NewRootCmd() *cobra.Command {
	var (
		configs  []string
		logLevel string
		style    string
	)

	rootCmd := &cobra.Command{
		Use:           "pipescape",
		SilenceUsage:  true,
		SilenceErrors: true,
		Short:         "Escapes text into a pipe-safe form and back",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configs...)
			if err != nil {
				return fmt.Errorf("unable to load config: %w", err)
			}

			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}

			if cmd.Flags().Changed("style") {
				s, err := escaper.ParseStyle(style)
				if err != nil {
					return err
				}
				cfg.Escaper.Style = s
			}

			runtime, err = cfg.NewRuntime()
			if err != nil {
				return fmt.Errorf("create runtime: %w", err)
			}

			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(runtime.LogLevel())
			log.Debug().
				Strs("configs", configs).
				Stringer("style", runtime.NewEscaper().Style()).
				Msg("runtime created")
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringSliceVar(&configs, "config", nil, "config file (yaml), may be repeated")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&style, "style", string(escaper.StyleCompat), "escape style: compat or short")

	rootCmd.AddCommand(
		newDemoCmd(),
		newEscapeCmd(),
		newUnescapeCmd(),
		newJoinCmd(),
		newSplitCmd(),
	)
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func logger(cmd *cobra.Command) *zerolog.Logger {
	l := log.With().
		Str("source", cmd.Name()).
		Logger()
	return &l
}
