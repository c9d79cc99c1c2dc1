package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/gpstime/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Human   bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the gpstime CLI.
// cfg supplies flag defaults; nil means compiled defaults.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = &config.Config{Format: "text", LogLevel: "warn"}
	}
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gpstime",
		Short: "gpstime - exact GPS timestamps",
		Long: `Convert and compare GPS timestamps at nanosecond resolution.

Seconds and nanoseconds may each be given as an integer, a float or a
decimal string; they are combined exactly and normalized so that the
nanoseconds field lies in [0, 999999999].`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			level := cfg.SlogLevel()
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.Human, "human", cfg.Human, "group digits in text output")

	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

// formatter builds the OutputFormatter for a command invocation.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
		Human:     o.Human,
	}
}
