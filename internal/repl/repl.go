// internal/repl/repl.go
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"wfst/internal/algorithms"
	"wfst/internal/format"
	"wfst/internal/fst"
	"wfst/internal/lexer"
	"wfst/internal/parser"
	"wfst/internal/semiring"
)

// Start runs an interactive shell: each line is either a transducer
// declaration (the same "src tgt ilabel olabel [weight]" / "state
// [weight]" grammar format.CompileText reads from a file) appended to the
// transducer under construction, or a ':'-prefixed command acting on it.
// Declarations are compiled and merged one line at a time, the way the
// original REPL compiled and ran one statement at a time against a
// persistent VM.
func Start() {
	fmt.Println("wfst REPL | weight type tropical64 | :help for commands, :exit to quit")
	run(os.Stdin, os.Stdout)
}

type session struct {
	f     *fst.VecFst
	tid   string
	ctor  semiring.Constructor
	isyms *format.SymbolTable
	osyms *format.SymbolTable
	first bool
}

func newSession(tid string) (*session, error) {
	ctor, ok := semiring.Lookup(tid)
	if !ok {
		return nil, fmt.Errorf("unknown weight type %q", tid)
	}
	return &session{
		f:     fst.New(),
		tid:   tid,
		ctor:  ctor,
		isyms: format.NewSymbolTable(),
		osyms: format.NewSymbolTable(),
		first: true,
	}, nil
}

func run(r io.Reader, w io.Writer) {
	sess, err := newSession("tropical64")
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, ">>> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if !sess.command(w, line) {
				break
			}
			continue
		}
		if err := sess.addLine(line); err != nil {
			fmt.Fprintln(w, err)
		}
	}
}

// addLine parses one declaration line and merges it into the in-progress
// transducer, growing it with zero-weight states as needed the same way
// format.CompileText does for a whole file.
func (s *session) addLine(line string) error {
	tokens := lexer.NewScanner(line).ScanTokens()
	p := parser.NewParser(tokens, "<repl>")
	records := p.Parse()
	if len(p.Errors) > 0 {
		return p.Errors[0]
	}

	zero := s.ctor(0).Zero()
	one := s.ctor(0).One()
	ensure := func(id fst.StateId) {
		for s.f.NumStates() <= int(id) {
			s.f.AddState(zero)
		}
	}

	for _, rec := range records {
		ensure(rec.Source)
		if s.first {
			s.f.SetStart(rec.Source)
			s.first = false
		}
		switch rec.Kind {
		case parser.ArcRecord:
			ensure(rec.Target)
			il, err := resolveLabel(rec.ILabel, s.isyms)
			if err != nil {
				return err
			}
			ol, err := resolveLabel(rec.OLabel, s.osyms)
			if err != nil {
				return err
			}
			w := one
			if rec.HasWeight {
				w = s.ctor(rec.Weight)
			}
			s.f.AddArc(rec.Source, rec.Target, il, ol, w)
		case parser.FinalRecord:
			w := one
			if rec.HasWeight {
				w = s.ctor(rec.Weight)
			}
			s.f.SetFinalWeight(rec.Source, w)
		}
	}
	return nil
}

func resolveLabel(field string, st *format.SymbolTable) (fst.Label, error) {
	if st != nil {
		return st.AddSymbol(field), nil
	}
	n, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("label %q is not an integer (no symbol table loaded)", field)
	}
	return fst.Label(n), nil
}

// command handles a ':'-prefixed line, returning false when the session
// should end.
func (s *session) command(w io.Writer, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":exit", ":quit":
		return false
	case ":help":
		fmt.Fprintln(w, "commands: :print  :connect  :shortestpaths N  :reset [type]  :states  :help  :exit")
	case ":states":
		fmt.Fprintf(w, "%d states\n", s.f.NumStates())
	case ":print":
		if err := format.PrintText(w, s.f, s.isyms, s.osyms); err != nil {
			fmt.Fprintln(w, err)
		}
	case ":connect":
		s.f = algorithms.Connect(s.f)
		fmt.Fprintf(w, "connected: %d states remain\n", s.f.NumStates())
	case ":shortestpaths":
		n := 1
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil {
				n = v
			}
		}
		s.f = algorithms.ShortestPaths(s.f, n)
		fmt.Fprintf(w, "kept %d best path(s)\n", n)
	case ":reset":
		tid := s.tid
		if len(fields) > 1 {
			tid = fields[1]
		}
		next, err := newSession(tid)
		if err != nil {
			fmt.Fprintln(w, err)
			return true
		}
		*s = *next
	default:
		fmt.Fprintf(w, "unknown command %q, try :help\n", fields[0])
	}
	return true
}
