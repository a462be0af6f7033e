package algorithms

import (
	"testing"

	"wfst/internal/fst"
	"wfst/internal/semiring"
)

func tw(v float64) semiring.Weight { return semiring.NewTropicalWeight(v) }

// buildFig2 constructs the four-state tropical transducer of Mohri & Riley
// (2002) Fig. 2, used by the n-best scenario.
func buildFig2() *fst.VecFst {
	f := fst.New()
	zero := tw(0).Zero()
	s0 := f.AddState(zero)
	s1 := f.AddState(zero)
	s2 := f.AddState(zero)
	s3 := f.AddState(tw(0)) // final, weight one (0 in tropical)
	f.SetStart(s0)
	f.AddArc(s0, s1, 1, 1, tw(0.1)) // a/a
	f.AddArc(s0, s2, 2, 2, tw(0.1)) // b/b
	f.AddArc(s1, s3, 3, 3, tw(0.4)) // c/c
	f.AddArc(s1, s3, 4, 4, tw(0.2)) // d/d
	f.AddArc(s2, s3, 3, 3, tw(0.3)) // c/c
	f.AddArc(s2, s3, 4, 4, tw(0.2)) // d/d
	return f
}

func TestExtendUnextendFinalRoundTrip(t *testing.T) {
	f := buildFig2()
	origStates := f.NumStates()

	ExtendFinal(f)
	if f.NumStates() != origStates+1 {
		t.Fatalf("expected %d states after extend, got %d", origStates+1, f.NumStates())
	}
	UnextendFinal(f)
	if f.NumStates() != origStates {
		t.Fatalf("expected %d states after unextend, got %d", origStates, f.NumStates())
	}
	if !f.IsFinal(3) {
		t.Fatalf("state 3 should be final again after unextendfinal")
	}
}

func TestReverseInvolution(t *testing.T) {
	f := buildFig2()
	orig := f.NumStates()

	r1 := Reverse(f)
	r2 := Reverse(r1)

	if r2.NumStates() != orig {
		t.Fatalf("expected %d states after double reverse, got %d", orig, r2.NumStates())
	}
	// Original ifst must be left unchanged by Reverse.
	if f.NumStates() != orig {
		t.Fatalf("Reverse should restore ifst, got %d states (want %d)", f.NumStates(), orig)
	}
}

func TestConnectRemovesDeadAndUnreachable(t *testing.T) {
	f := fst.New()
	zero := tw(0).Zero()
	s0 := f.AddState(zero)
	s1 := f.AddState(tw(0))
	u := f.AddState(zero) // unreachable: no incoming arc
	v := f.AddState(zero) // dead end: no path to final
	f.SetStart(s0)
	f.AddArc(s0, s1, 1, 1, tw(0.1))
	f.AddArc(s0, v, 2, 2, tw(0.1))
	_ = u

	before := f.NumStates()
	Connect(f)
	if f.NumStates() != before-2 {
		t.Fatalf("expected numstates reduced by 2, got reduced by %d", before-f.NumStates())
	}
	start, ok := f.GetStart()
	if !ok || start != 0 {
		t.Fatalf("expected start preserved at 0, got %d (ok=%v)", start, ok)
	}
}

func TestShortestDistanceStartIsOne(t *testing.T) {
	f := buildFig2()
	d := ShortestDistance(f)
	start, _ := f.GetStart()
	if !d[start].Equal(tw(0).One()) {
		t.Fatalf("shortest_distance[start] should be One, got %v", d[start])
	}
}

func TestShortestDistanceUnreachableIsZero(t *testing.T) {
	f := fst.New()
	zero := tw(0).Zero()
	s0 := f.AddState(tw(0))
	dead := f.AddState(zero) // not coaccessible: no outgoing arc, not final
	f.SetStart(s0)
	_ = dead

	d := ShortestDistance(f)
	if !d[dead].Equal(zero) {
		t.Fatalf("shortest_distance of a non-coaccessible state should be Zero, got %v", d[dead])
	}
}

func TestShortestPathsFig2(t *testing.T) {
	f := buildFig2()
	out := ShortestPaths(f, 2)

	if out.NumStates() == 0 {
		t.Fatalf("expected a non-empty n-best output")
	}
	start, ok := out.GetStart()
	if !ok {
		t.Fatalf("expected output to have a start state")
	}

	// Walk every path from start to a final state and sum its weight.
	var totalWeights []float64
	var walk func(id fst.StateId, acc float64)
	walk = func(id fst.StateId, acc float64) {
		if out.IsFinal(id) {
			totalWeights = append(totalWeights, acc)
		}
		for _, arc := range out.ArcIter(id) {
			w := arc.Weight.(semiring.TropicalWeight[float64])
			val, _ := w.Value()
			walk(arc.NextState, acc+val)
		}
	}
	walk(start, 0)

	if len(totalWeights) != 2 {
		t.Fatalf("expected exactly 2 complete paths, got %d: %v", len(totalWeights), totalWeights)
	}
	for _, w := range totalWeights {
		if w > 0.31 {
			t.Errorf("expected both best paths to total ~0.3, got %v in %v", w, totalWeights)
		}
	}
}
