// cmd/wfst/main.go
package main

import (
	"fmt"
	"os"

	"wfst/cmd/wfst/commands"
	"wfst/internal/semiring"
)

const version = "0.1.0"

// commandAliases maps one- and two-letter shorthands onto their full command name.
var commandAliases = map[string]string{
	"c":  "compile",
	"p":  "print",
	"co": "connect",
	"sp": "shortestpaths",
	"nb": "shortestpaths",
	"r":  "repl",
	"rp": "report",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches a command and returns the process exit code. Split out
// from main so the testscript harness can drive it in-process as the
// "wfst" subprocess command (see main_test.go).
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 0
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	if cmd == "--help" || cmd == "-h" || cmd == "help" {
		showUsage()
		return 0
	}
	if cmd == "--version" || cmd == "-v" || cmd == "version" {
		showVersion()
		return 0
	}

	var err error
	switch cmd {
	case "compile":
		err = commands.CompileCommand(args[1:])
	case "print":
		err = commands.PrintCommand(args[1:])
	case "connect":
		err = commands.ConnectCommand(args[1:])
	case "shortestpaths":
		err = commands.ShortestPathsCommand(args[1:])
	case "repl":
		err = commands.ReplCommand(args[1:])
	case "report":
		err = commands.ReportCommand(args[1:])
	default:
		return suggestCommand(cmd)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func showUsage() {
	fmt.Println("wfst - weighted finite-state transducer toolkit")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  wfst compile -in f.txt -out f.bin [-type tropical64]   Compile text to binary   (alias: c)")
	fmt.Println("  wfst print -in f.bin [-out f.txt]                      Print binary as text      (alias: p)")
	fmt.Println("  wfst connect -in f.bin -out f.bin                      Trim dead/unreachable     (alias: co)")
	fmt.Println("  wfst shortestpaths -in f.bin -out f.bin -n N           Keep N best paths          (alias: sp, nb)")
	fmt.Println("  wfst repl                                              Interactive shell          (alias: r)")
	fmt.Println("  wfst report -in f.bin [-format json|xml|text]          Summarize a transducer     (alias: rp)")
	fmt.Println()
	fmt.Println("Weight types:", semiring.KnownTypes())
	fmt.Println()
	fmt.Println("Run 'wfst <command> -h' for flags on a specific command.")
}

func showVersion() {
	fmt.Printf("wfst %s\n", version)
}

// suggestCommand reports an unknown command. No fuzzy distance match —
// this CLI's command set is small enough that listing it in full is just
// as fast to scan.
func suggestCommand(cmd string) int {
	fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmd)
	fmt.Fprintln(os.Stderr, "Run 'wfst help' to see all available commands")
	return 1
}
