package cli

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cobra"

	"github.com/roach88/gpstime/internal/gps"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	AssertEqual bool
}

// CompareResult is the outcome of comparing two times.
type CompareResult struct {
	A       string `json:"a"`
	B       string `json:"b"`
	Order   int    `json:"order"` // -1, 0, +1
	Equal   bool   `json:"equal"`
	DeltaNs string `json:"delta_ns"` // b - a, exact
}

func (r CompareResult) writeText(f *OutputFormatter) error {
	f.field("a", r.A)
	f.field("b", r.B)
	f.field("order", fmt.Sprintf("%d", r.Order))
	f.field("equal", fmt.Sprintf("%t", r.Equal))
	f.field("delta_ns", r.DeltaNs)
	return nil
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two GPS times exactly",
		Long: `Compare two GPS times by their exact nanosecond counts.

Each argument is a single seconds value (integer or decimal string).

Exit codes:
  0 - Compared (or equal, with --assert-equal)
  1 - Not equal, with --assert-equal
  2 - Invalid time argument`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.AssertEqual, "assert-equal", false, "exit 1 unless the times are equal")

	return cmd
}

func runCompare(opts *CompareOptions, a, b string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	ta, err := gps.New(gps.ArgPart(a), gps.Int(0))
	if err != nil {
		return outputTimeError(formatter, err)
	}
	tb, err := gps.New(gps.ArgPart(b), gps.Int(0))
	if err != nil {
		return outputTimeError(formatter, err)
	}

	result := CompareResult{
		A:       ta.String(),
		B:       tb.String(),
		Order:   ta.Compare(tb),
		Equal:   ta.Equal(tb),
		DeltaNs: deltaNs(ta, tb),
	}
	if err := formatter.Success(result); err != nil {
		return err
	}

	if opts.AssertEqual && !result.Equal {
		return NewExitError(ExitFailure, fmt.Sprintf("%s != %s", result.A, result.B))
	}
	return nil
}

// deltaNs returns b - a in nanoseconds as decimal text. The difference of
// two in-range times can exceed int64, so it is computed field-wise.
func deltaNs(a, b gps.Time) string {
	dsec := b.Seconds() - a.Seconds() // |dsec| < 2^35
	dnsec := int64(b.Nanoseconds()) - int64(a.Nanoseconds())

	d := new(apd.Decimal)
	if _, err := apd.BaseContext.WithPrecision(30).Add(d, apd.New(dsec, 9), apd.New(dnsec, 0)); err != nil {
		// Deltas have at most 20 digits, so the sum is exact.
		panic(err)
	}
	return d.Text('f')
}
