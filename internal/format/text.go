package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"wfst/internal/errors"
	"wfst/internal/fst"
	"wfst/internal/lexer"
	"wfst/internal/parser"
	"wfst/internal/semiring"
)

// CompileText reads the line-oriented text format ("src tgt ilabel olabel
// [weight]" for an arc, "state [weight]" for a final state) and builds a
// transducer over the weight type named by tid. isyms/osyms are optional:
// when given, ilabel/olabel fields are symbols resolved (and registered,
// if new) against the table; when nil, fields are parsed as bare integer
// labels.
func CompileText(src, file, tid string, isyms, osyms *SymbolTable) (*fst.VecFst, error) {
	ctor, ok := semiring.Lookup(tid)
	if !ok {
		return nil, errors.Newf(errors.TypeMismatch, "unknown weight type %q, want one of %v", tid, semiring.KnownTypes())
	}

	tokens := lexer.NewScanner(src).ScanTokens()
	p := parser.NewParser(tokens, file)
	records := p.Parse()
	if len(p.Errors) > 0 {
		return nil, combineErrors(p.Errors)
	}

	one := ctor(0).One()
	zero := ctor(0).Zero()

	f := fst.New()
	ensure := func(id fst.StateId) {
		for f.NumStates() <= int(id) {
			f.AddState(zero)
		}
	}

	first := true
	for _, rec := range records {
		ensure(rec.Source)
		if first {
			f.SetStart(rec.Source)
			first = false
		}
		switch rec.Kind {
		case parser.ArcRecord:
			ensure(rec.Target)
			ilabel, err := resolveLabel(rec.ILabel, isyms)
			if err != nil {
				return nil, err
			}
			olabel, err := resolveLabel(rec.OLabel, osyms)
			if err != nil {
				return nil, err
			}
			w := one
			if rec.HasWeight {
				w = ctor(rec.Weight)
			}
			f.AddArc(rec.Source, rec.Target, ilabel, olabel, w)
		case parser.FinalRecord:
			w := one
			if rec.HasWeight {
				w = ctor(rec.Weight)
			}
			f.SetFinalWeight(rec.Source, w)
		}
	}
	if isyms != nil {
		f.SetISyms(isyms.Slice())
	}
	if osyms != nil {
		f.SetOSyms(osyms.Slice())
	}
	return f, nil
}

func resolveLabel(field string, st *SymbolTable) (fst.Label, error) {
	if st != nil {
		return st.AddSymbol(field), nil
	}
	n, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return 0, errors.Newf(errors.Format, "label %q is not a symbol table entry or an integer", field)
	}
	return fst.Label(n), nil
}

func combineErrors(errs []error) error {
	msg := fmt.Sprintf("%d error(s) while parsing", len(errs))
	for _, e := range errs {
		msg += "\n  " + e.Error()
	}
	return errors.New(errors.Format, msg)
}

// PrintText writes f back out in the same text format, one arc or final
// state declaration per line in state order. isyms/osyms, when given,
// render labels as symbols instead of bare integers.
func PrintText(w io.Writer, f *fst.VecFst, isyms, osyms *SymbolTable) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < f.NumStates(); i++ {
		id := fst.StateId(i)
		for _, arc := range f.ArcIter(id) {
			il := labelText(arc.ILabel, isyms)
			ol := labelText(arc.OLabel, osyms)
			if _, err := fmt.Fprintf(bw, "%d\t%d\t%s\t%s\t%v\n", id, arc.NextState, il, ol, arc.Weight); err != nil {
				return errors.Wrap(errors.IO, err, "writing transducer text")
			}
		}
		if f.IsFinal(id) {
			if _, err := fmt.Fprintf(bw, "%d\t%v\n", id, f.GetFinalWeight(id)); err != nil {
				return errors.Wrap(errors.IO, err, "writing transducer text")
			}
		}
	}
	return bw.Flush()
}

func labelText(lbl fst.Label, st *SymbolTable) string {
	if st != nil {
		if sym, ok := st.Symbol(lbl); ok {
			return sym
		}
	}
	return strconv.FormatUint(uint64(lbl), 10)
}
