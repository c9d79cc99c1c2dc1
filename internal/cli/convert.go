package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/gpstime/internal/gps"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Float bool // read non-integer arguments as float64 literals
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <seconds> [nanoseconds]",
		Short: "Normalize a GPS time and print its conversions",
		Long: `Normalize seconds plus nanoseconds into a canonical GPS time.

Integer arguments are exact. Other arguments are decimal strings and are
truncated toward zero below one nanosecond, unless --float is given, in
which case they are read as float64 values and rounded to the nearest
nanosecond.

Negative values must follow "--" so they are not read as flags.

Examples:
  gpstime convert 100.5
  gpstime convert -- 101 -500000000
  gpstime convert --format json -- -10.5 111000000000`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Float, "float", false, "read non-integer arguments as float64")

	return cmd
}

func runConvert(opts *ConvertOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	t, err := parseArgs(args, opts.Float)
	if err != nil {
		return outputTimeError(formatter, err)
	}

	slog.Debug("converted", "args", args, "ns", t.Ns())
	formatter.VerboseLog("normalized %v to %s", args, t)

	return formatter.Success(NewRecord("", t))
}

// parseArgs turns one or two command-line arguments into a Time.
func parseArgs(args []string, floats bool) (gps.Time, error) {
	parts := [2]gps.Part{gps.Int(0), gps.Int(0)}
	for i, a := range args {
		p, err := argPart(a, floats)
		if err != nil {
			return gps.Time{}, err
		}
		parts[i] = p
	}
	return gps.New(parts[0], parts[1])
}

func argPart(arg string, floats bool) (gps.Part, error) {
	p := gps.ArgPart(arg)
	if !floats || p.Kind() == gps.KindInt {
		return p, nil
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return gps.Part{}, &gps.ParseError{Input: arg, Err: err}
	}
	return gps.Float(f), nil
}

// outputTimeError reports a gps construction error; bad input is a
// command-level error (exit code 2).
func outputTimeError(formatter *OutputFormatter, err error) error {
	code := timeErrorCode(err)
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(ExitCommandError, fmt.Sprintf("%s: invalid time", code), err)
}
