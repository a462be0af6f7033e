// cmd/wfst/commands/connect.go
package commands

import (
	"flag"
	"fmt"
	"os"

	"wfst/internal/algorithms"
	"wfst/internal/format"
)

// ConnectCommand trims states unreachable from the start or unable to
// reach a final state.
func ConnectCommand(args []string) error {
	fs := flag.NewFlagSet("connect", flag.ContinueOnError)
	in := fs.String("in", "", "input binary transducer (required)")
	out := fs.String("out", "", "output binary transducer (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("connect: -in and -out are required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("connect: reading %s: %w", *in, err)
	}
	f, tid, err := format.Decode(data)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	before := f.NumStates()
	f = algorithms.Connect(f)

	encoded, err := format.Encode(f, tid)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := os.WriteFile(*out, encoded, 0644); err != nil {
		return fmt.Errorf("connect: writing %s: %w", *out, err)
	}

	fmt.Printf("connect: %d -> %d states\n", before, f.NumStates())
	return nil
}
