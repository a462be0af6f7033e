// cmd/wfst/commands/compile.go
package commands

import (
	"flag"
	"fmt"
	"os"

	"wfst/internal/format"
)

// CompileCommand reads a text-format transducer and writes it out as a
// binary envelope.
func CompileCommand(args []string) error {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	in := fs.String("in", "", "input text transducer (required)")
	out := fs.String("out", "", "output binary transducer (required)")
	weightType := fs.String("type", "tropical64", "weight type tag")
	isymsPath := fs.String("isyms", "", "input symbol table")
	osymsPath := fs.String("osyms", "", "output symbol table")
	saveIsyms := fs.String("save-isyms", "", "write discovered input symbols here")
	saveOsyms := fs.String("save-osyms", "", "write discovered output symbols here")
	symCachePath := fs.String("symcache", "", "SQLite cache reusing symbols across compiles of the same alphabet")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("compile: -in and -out are required")
	}

	var cache *format.SymbolCache
	if *symCachePath != "" {
		c, err := format.OpenSymbolCache(*symCachePath)
		if err != nil {
			return fmt.Errorf("compile: %w", err)
		}
		defer c.Close()
		cache = c
	}

	isyms, err := loadSymbolTable(*isymsPath, cache, "isyms")
	if err != nil {
		return err
	}
	osyms, err := loadSymbolTable(*osymsPath, cache, "osyms")
	if err != nil {
		return err
	}

	src, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("compile: reading %s: %w", *in, err)
	}

	f, err := format.CompileText(string(src), *in, *weightType, isyms, osyms)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	data, err := format.Encode(f, *weightType)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		return fmt.Errorf("compile: writing %s: %w", *out, err)
	}

	if *saveIsyms != "" {
		if err := writeSymbolTable(*saveIsyms, isyms); err != nil {
			return err
		}
	}
	if *saveOsyms != "" {
		if err := writeSymbolTable(*saveOsyms, osyms); err != nil {
			return err
		}
	}

	if cache != nil {
		if err := cache.Save("isyms", isyms); err != nil {
			return fmt.Errorf("compile: %w", err)
		}
		if err := cache.Save("osyms", osyms); err != nil {
			return fmt.Errorf("compile: %w", err)
		}
	}

	fmt.Printf("compiled %s (%d states) -> %s\n", *in, f.NumStates(), *out)
	return nil
}

// loadSymbolTable resolves the symbol table for one side (isyms or osyms):
// an explicit -isyms/-osyms path wins, then a cached table under name from
// -symcache, then a fresh table that auto-registers symbols as they're seen.
func loadSymbolTable(path string, cache *format.SymbolCache, name string) (*format.SymbolTable, error) {
	if path != "" {
		return loadOrNewSymbolTable(path)
	}
	if cache != nil {
		return cache.Load(name)
	}
	return format.NewSymbolTable(), nil
}

func loadOrNewSymbolTable(path string) (*format.SymbolTable, error) {
	if path == "" {
		return format.NewSymbolTable(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading symbol table %s: %w", path, err)
	}
	defer f.Close()
	return format.ReadSymbolTable(f)
}

func writeSymbolTable(path string, st *format.SymbolTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing symbol table %s: %w", path, err)
	}
	defer f.Close()
	return format.WriteSymbolTable(f, st)
}
