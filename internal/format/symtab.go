package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wfst/internal/errors"
	"wfst/internal/fst"
)

// SymbolTable maps between label strings and their integer codes, index 0
// always naming epsilon. It mirrors the plain text format OpenFst-style
// tools use for .syms files: one "symbol<TAB>index" pair per line.
type SymbolTable struct {
	toLabel  map[string]fst.Label
	toSymbol map[fst.Label]string
	next     fst.Label
}

// NewSymbolTable returns an empty table pre-seeded with epsilon at 0.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		toLabel:  map[string]fst.Label{},
		toSymbol: map[fst.Label]string{},
		next:     1,
	}
	st.toLabel["<eps>"] = fst.Epsilon
	st.toSymbol[fst.Epsilon] = "<eps>"
	return st
}

// AddSymbol assigns sym the next free label if it isn't already known, and
// returns its label either way.
func (st *SymbolTable) AddSymbol(sym string) fst.Label {
	if lbl, ok := st.toLabel[sym]; ok {
		return lbl
	}
	lbl := st.next
	st.next++
	st.toLabel[sym] = lbl
	st.toSymbol[lbl] = sym
	return lbl
}

// Label looks up sym's label.
func (st *SymbolTable) Label(sym string) (fst.Label, bool) {
	lbl, ok := st.toLabel[sym]
	return lbl, ok
}

// Symbol looks up lbl's string.
func (st *SymbolTable) Symbol(lbl fst.Label) (string, bool) {
	sym, ok := st.toSymbol[lbl]
	return sym, ok
}

// Slice returns the table as a dense []string indexed by label, suitable
// for VecFst.SetISyms/SetOSyms. Gaps (a label registered out of order) are
// left as empty strings.
func (st *SymbolTable) Slice() []string {
	size := int(st.next)
	out := make([]string, size)
	for lbl, sym := range st.toSymbol {
		if int(lbl) < size {
			out[lbl] = sym
		}
	}
	return out
}

// ReadSymbolTable parses the "symbol<TAB>index" text format, one pair per
// line, blank lines ignored.
func ReadSymbolTable(r io.Reader) (*SymbolTable, error) {
	st := NewSymbolTable()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, errors.At(errors.Format, "symtab", line, 0,
				fmt.Sprintf("expected 'symbol index', got %q", text))
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil || idx < 0 {
			return nil, errors.At(errors.Format, "symtab", line, 0,
				fmt.Sprintf("invalid symbol index %q", fields[1]))
		}
		lbl := fst.Label(idx)
		st.toLabel[fields[0]] = lbl
		st.toSymbol[lbl] = fields[0]
		if lbl >= st.next {
			st.next = lbl + 1
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.IO, err, "reading symbol table")
	}
	return st, nil
}

// WriteSymbolTable writes st back out in the same "symbol<TAB>index"
// format, epsilon included, ordered by label.
func WriteSymbolTable(w io.Writer, st *SymbolTable) error {
	bw := bufio.NewWriter(w)
	for lbl := fst.Label(0); lbl < st.next; lbl++ {
		sym, ok := st.toSymbol[lbl]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", sym, lbl); err != nil {
			return errors.Wrap(errors.IO, err, "writing symbol table")
		}
	}
	return bw.Flush()
}
