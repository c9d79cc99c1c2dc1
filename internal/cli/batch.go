package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/gpstime/internal/gps"
)

// BatchEntry is one item of a batch file. Time is kept as a raw node so a
// bad entry can be reported by name and position.
type BatchEntry struct {
	Name string    `yaml:"name"`
	Time yaml.Node `yaml:"time"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Convert every GPS time listed in a YAML file",
		Long: `Convert every GPS time listed in a YAML file.

The file is a list of entries with a name and a time. A time is any of:
  - an integer or float scalar         (seconds)
  - a quoted decimal string            (seconds, exact)
  - a [seconds, nanoseconds] sequence  (each element any of the above)

Example file:
  - name: gw150914
    time: "1126259462.391"
  - name: borrow
    time: [101, -500000000]

The first invalid entry stops the run with exit code 2.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	data, err := os.ReadFile(path)
	if err != nil {
		return outputBatchError(formatter, ErrCodeReadFailed, fmt.Sprintf("read %s: %v", path, err), nil)
	}

	var entries []BatchEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return outputBatchError(formatter, ErrCodeDecode, fmt.Sprintf("decode %s: %v", path, err), nil)
	}
	formatter.VerboseLog("Found %d entries in %s", len(entries), path)

	records := make(Records, 0, len(entries))
	for i, entry := range entries {
		t, err := decodeEntry(entry)
		if err != nil {
			details := map[string]any{"index": i, "name": entry.Name, "line": entry.Time.Line}
			return outputBatchError(formatter, timeErrorCode(err), err.Error(), details)
		}
		slog.Debug("batch entry", "index", i, "name", entry.Name, "ns", t.Ns())
		records = append(records, NewRecord(entry.Name, t))
	}

	return formatter.Success(records)
}

func decodeEntry(entry BatchEntry) (gps.Time, error) {
	var t gps.Time
	if entry.Time.Kind == 0 {
		return t, &gps.ParseError{Input: entry.Name, Err: fmt.Errorf("missing time")}
	}
	if err := entry.Time.Decode(&t); err != nil {
		return t, err
	}
	return t, nil
}

// outputBatchError reports a batch failure; all are command-level errors.
func outputBatchError(formatter *OutputFormatter, code, message string, details any) error {
	_ = formatter.Error(code, message, details)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}
