// cmd/wfst/commands/repl.go
package commands

import "wfst/internal/repl"

// ReplCommand starts the interactive transducer shell.
func ReplCommand(args []string) error {
	repl.Start()
	return nil
}
