// cmd/wfst/commands/report.go
package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"wfst/internal/format"
	"wfst/internal/reporting"
)

// ReportCommand summarizes a binary transducer's size and total distance.
// Without -format, the default follows whether stdout is a terminal: a
// human-readable table when it is, JSON when it's piped into something
// else.
func ReportCommand(args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	in := fs.String("in", "", "input binary transducer (required)")
	formatFlag := fs.String("format", "", "json, xml, or text (default depends on terminal)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("report: -in is required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("report: reading %s: %w", *in, err)
	}
	f, tid, err := format.Decode(data)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	out := *formatFlag
	if out == "" {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			out = "text"
		} else {
			out = "json"
		}
	}

	r := reporting.Build(f, tid, *in)
	return r.Write(os.Stdout, out)
}
