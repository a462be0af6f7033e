package fst

import (
	"testing"

	"wfst/internal/semiring"
)

func tw(v float64) semiring.Weight { return semiring.NewTropicalWeight(v) }

func TestAddStateIdsAreDense(t *testing.T) {
	f := New()
	zero := tw(0).Zero()
	a := f.AddState(zero)
	b := f.AddState(zero)
	c := f.AddState(zero)
	if a != 0 || b != 1 || c != 2 {
		t.Fatalf("expected dense ids 0,1,2; got %d,%d,%d", a, b, c)
	}
	if f.NumStates() != 3 {
		t.Fatalf("expected 3 states, got %d", f.NumStates())
	}
}

func TestIsFinal(t *testing.T) {
	f := New()
	zero := tw(0).Zero()
	s0 := f.AddState(zero)
	s1 := f.AddState(tw(2.0))
	if f.IsFinal(s0) {
		t.Errorf("state with zero finalweight should not be final")
	}
	if !f.IsFinal(s1) {
		t.Errorf("state with non-zero finalweight should be final")
	}
}

func TestAddArcAndArcIter(t *testing.T) {
	f := New()
	zero := tw(0).Zero()
	s0 := f.AddState(zero)
	s1 := f.AddState(tw(1.0))
	f.AddArc(s0, s1, 1, 1, tw(0.5))
	arcs := f.ArcIter(s0)
	if len(arcs) != 1 {
		t.Fatalf("expected 1 arc, got %d", len(arcs))
	}
	if arcs[0].NextState != s1 || arcs[0].ILabel != 1 {
		t.Errorf("unexpected arc: %+v", arcs[0])
	}
}

func TestArcIterIsSnapshot(t *testing.T) {
	f := New()
	zero := tw(0).Zero()
	s0 := f.AddState(zero)
	s1 := f.AddState(tw(1.0))
	f.AddArc(s0, s1, 1, 1, tw(0.5))
	snap := f.ArcIter(s0)
	f.AddArc(s0, s1, 2, 2, tw(0.5))
	if len(snap) != 1 {
		t.Errorf("snapshot should not observe arcs added afterward, got len %d", len(snap))
	}
}

func TestSetStartRequiresExistingState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic setting start on non-existent state")
		}
	}()
	f := New()
	f.SetStart(0)
}

func TestDelStateForbidsStart(t *testing.T) {
	f := New()
	zero := tw(0).Zero()
	s0 := f.AddState(zero)
	f.SetStart(s0)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic deleting the start state")
		}
	}()
	f.DelState(s0)
}

func TestDelStateRewritesArcs(t *testing.T) {
	f := New()
	zero := tw(0).Zero()
	s0 := f.AddState(zero)
	s1 := f.AddState(zero)
	s2 := f.AddState(tw(1.0))
	f.SetStart(s0)
	f.AddArc(s0, s1, 1, 1, tw(0.1))
	f.AddArc(s0, s2, 2, 2, tw(0.2))
	f.AddArc(s1, s2, 3, 3, tw(0.3))

	f.DelState(s1)

	if f.NumStates() != 2 {
		t.Fatalf("expected 2 states after deletion, got %d", f.NumStates())
	}
	// s2 should have been renumbered to 1.
	arcs := f.ArcIter(s0)
	if len(arcs) != 1 {
		t.Fatalf("expected 1 surviving arc from s0 (the one into deleted s1 should vanish), got %d", len(arcs))
	}
	if arcs[0].NextState != 1 {
		t.Fatalf("expected surviving arc's nextstate renumbered to 1, got %d", arcs[0].NextState)
	}
}

func TestDelStatesSortsDescending(t *testing.T) {
	f := New()
	zero := tw(0).Zero()
	s0 := f.AddState(zero)
	s1 := f.AddState(zero)
	s2 := f.AddState(zero)
	s3 := f.AddState(tw(1.0))
	f.SetStart(s0)
	f.AddArc(s0, s3, 1, 1, tw(0.1))

	// Given in ascending order: only a descending pass deletes s2 and s1
	// and leaves s3 (renumbered to 1) in place.
	f.DelStates([]StateId{s1, s2})

	if f.NumStates() != 2 {
		t.Fatalf("expected 2 states, got %d", f.NumStates())
	}
	arcs := f.ArcIter(s0)
	if len(arcs) != 1 || arcs[0].NextState != 1 {
		t.Fatalf("expected arc to renumbered state 1, got %+v", arcs)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := New()
	zero := tw(0).Zero()
	s0 := f.AddState(zero)
	s1 := f.AddState(tw(1.0))
	f.SetStart(s0)
	f.AddArc(s0, s1, 1, 1, tw(0.5))

	clone := f.Clone()
	clone.AddArc(s0, s1, 2, 2, tw(0.6))

	if len(f.ArcIter(s0)) != 1 {
		t.Fatalf("mutating clone should not affect original")
	}
	if len(clone.ArcIter(s0)) != 2 {
		t.Fatalf("expected clone to have 2 arcs after its own mutation")
	}
}

func TestSymbolTables(t *testing.T) {
	f := New()
	f.SetISyms([]string{"<eps>", "a", "b"})
	if got := f.GetISyms(); len(got) != 3 || got[1] != "a" {
		t.Fatalf("unexpected isyms: %v", got)
	}
	f.DelISyms()
	if f.GetISyms() != nil {
		t.Fatalf("expected nil isyms after DelISyms")
	}
}
