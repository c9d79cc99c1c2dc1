// Command gpstime converts and compares exact GPS timestamps.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/gpstime/internal/cli"
	"github.com/roach88/gpstime/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gpstime:", err)
		return cli.ExitCommandError
	}

	cmd := cli.NewRootCommand(cfg)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		// Commands print their own errors; report only the rest.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "gpstime:", err)
		}
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}
