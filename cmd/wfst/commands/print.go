// cmd/wfst/commands/print.go
package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"wfst/internal/format"
)

// PrintCommand reads a binary transducer and writes it back out as text.
func PrintCommand(args []string) error {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	in := fs.String("in", "", "input binary transducer (required)")
	out := fs.String("out", "", "output text transducer, stdout if empty")
	isymsPath := fs.String("isyms", "", "input symbol table")
	osymsPath := fs.String("osyms", "", "output symbol table")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("print: -in is required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("print: reading %s: %w", *in, err)
	}
	f, tid, err := format.Decode(data)
	if err != nil {
		return fmt.Errorf("print: %w", err)
	}

	isyms, err := printSymbolTable(*isymsPath, f.GetISyms())
	if err != nil {
		return err
	}
	osyms, err := printSymbolTable(*osymsPath, f.GetOSyms())
	if err != nil {
		return err
	}

	w := os.Stdout
	if *out != "" {
		wf, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("print: writing %s: %w", *out, err)
		}
		defer wf.Close()
		w = wf
	}

	fmt.Fprintf(os.Stderr, "# weight type: %s\n", tid)
	return format.PrintText(w, f, isyms, osyms)
}

// printSymbolTable loads the table file at path or, with no path, rebuilds
// the symbol table stored in the binary transducer itself.
func printSymbolTable(path string, stored []string) (*format.SymbolTable, error) {
	if path != "" || stored == nil {
		return loadOrNewSymbolTable(path)
	}
	var sb strings.Builder
	for lbl, sym := range stored {
		if sym != "" {
			fmt.Fprintf(&sb, "%s\t%d\n", sym, lbl)
		}
	}
	return format.ReadSymbolTable(strings.NewReader(sb.String()))
}
