package format

import (
	"bytes"
	"strings"
	"testing"
)

const fig2Text = `0	1	a	a	0.1
0	2	b	b	0.1
1	3	c	c	0.4
1	3	d	d	0.2
2	3	c	c	0.3
2	3	d	d	0.2
3	0.0
`

func TestCompilePrintRoundTrip(t *testing.T) {
	isyms, osyms := NewSymbolTable(), NewSymbolTable()
	f, err := CompileText(fig2Text, "fig2.txt", "tropical64", isyms, osyms)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if f.NumStates() != 4 {
		t.Fatalf("expected 4 states, got %d", f.NumStates())
	}
	start, ok := f.GetStart()
	if !ok || start != 0 {
		t.Fatalf("expected start state 0, got %d (%v)", start, ok)
	}
	if !f.IsFinal(3) {
		t.Fatalf("expected state 3 final")
	}

	var buf bytes.Buffer
	if err := PrintText(&buf, f, isyms, osyms); err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(buf.String(), "0\t1\ta\ta") {
		t.Fatalf("expected printed arc, got %q", buf.String())
	}
}

func TestCompileWithSymbolTables(t *testing.T) {
	isyms := NewSymbolTable()
	osyms := NewSymbolTable()
	f, err := CompileText("0 1 a b 0.5\n1 0.0\n", "t.txt", "tropical64", isyms, osyms)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	lbl, ok := isyms.Label("a")
	if !ok || lbl == 0 {
		t.Fatalf("expected symbol 'a' registered with nonzero label, got %d (%v)", lbl, ok)
	}
	arcs := f.ArcIter(0)
	if len(arcs) != 1 || arcs[0].ILabel != lbl {
		t.Fatalf("unexpected arcs: %+v", arcs)
	}
}

func TestCompileUnknownWeightType(t *testing.T) {
	if _, err := CompileText("0 1 a a\n", "t.txt", "bogus", nil, nil); err == nil {
		t.Fatalf("expected error for unknown weight type")
	}
}

func TestCompileBadLineReportsError(t *testing.T) {
	if _, err := CompileText("0 1 a\n", "t.txt", "tropical64", nil, nil); err == nil {
		t.Fatalf("expected error for malformed line")
	}
}

func TestSymbolTableRoundTrip(t *testing.T) {
	st := NewSymbolTable()
	st.AddSymbol("a")
	st.AddSymbol("b")
	var buf bytes.Buffer
	if err := WriteSymbolTable(&buf, st); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := ReadSymbolTable(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if lbl, ok := back.Label("a"); !ok || lbl != 1 {
		t.Fatalf("expected 'a' at label 1, got %d (%v)", lbl, ok)
	}
	if lbl, ok := back.Label("b"); !ok || lbl != 2 {
		t.Fatalf("expected 'b' at label 2, got %d (%v)", lbl, ok)
	}
}

func TestBinaryEncodeDecodeRoundTrip(t *testing.T) {
	f, err := CompileText(fig2Text, "fig2.txt", "tropical64", NewSymbolTable(), NewSymbolTable())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	data, err := Encode(f, "tropical64")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, tid, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tid != "tropical64" {
		t.Fatalf("expected tid tropical64, got %q", tid)
	}
	if back.NumStates() != f.NumStates() {
		t.Fatalf("expected %d states, got %d", f.NumStates(), back.NumStates())
	}
	start, ok := back.GetStart()
	if !ok || start != 0 {
		t.Fatalf("expected start state 0, got %d (%v)", start, ok)
	}
	if !back.IsFinal(3) {
		t.Fatalf("expected state 3 final after decode")
	}
}

func TestBinaryDecodeUnknownTid(t *testing.T) {
	f, err := CompileText(fig2Text, "fig2.txt", "tropical64", NewSymbolTable(), NewSymbolTable())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	data, err := Encode(f, "bogus")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, _, err := Decode(data); err == nil {
		t.Fatalf("expected error decoding unknown tid")
	}
}
