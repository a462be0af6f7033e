// Package algorithms implements the generic, semiring-agnostic graph
// algorithms: extendfinal/unextendfinal, reverse, connect,
// shortest-distance, and n-best shortest-paths. Ported from
// original_source/src/algorithms/{mod,connect,shortestpath}.rs.
package algorithms

import (
	"wfst/internal/errors"
	"wfst/internal/fst"
	"wfst/internal/semiring"
)

// ExtendFinal adds a single new final state with weight One, links every
// existing final state to it via an ε/ε arc carrying the old final weight,
// and zeroes the old final weights. It mutates f in place.
func ExtendFinal(f *fst.VecFst) {
	var finals []fst.StateId
	for i := 0; i < f.NumStates(); i++ {
		id := fst.StateId(i)
		if f.IsFinal(id) {
			finals = append(finals, id)
		}
	}
	one := referenceWeight(f).One()
	newfinal := f.AddState(one)
	for _, s := range finals {
		fw := f.GetFinalWeight(s)
		f.AddArc(s, newfinal, fst.Epsilon, fst.Epsilon, fw)
		f.SetFinalWeight(s, fw.Zero())
	}
}

// UnextendFinal is the inverse of ExtendFinal: it locates the unique final
// state, transfers the weight of every ε/ε arc into it back onto the
// originating state's final weight, and deletes it. A transducer with more
// than one final state violates UnextendFinal's precondition.
func UnextendFinal(f *fst.VecFst) {
	finalstate, ok := findUniqueFinal(f)
	if !ok {
		errors.Precondition("algorithms: unextendfinal requires exactly one final state")
	}
	for i := 0; i < f.NumStates(); i++ {
		id := fst.StateId(i)
		for _, arc := range f.ArcIter(id) {
			if arc.ILabel == fst.Epsilon && arc.OLabel == fst.Epsilon && arc.NextState == finalstate {
				f.SetFinalWeight(id, arc.Weight)
			}
		}
	}
	f.DelState(finalstate)
}

// findUniqueFinal returns the sole final state of f, or ok=false if zero or
// more than one state is final.
func findUniqueFinal(f *fst.VecFst) (fst.StateId, bool) {
	found := fst.NoState
	count := 0
	for i := 0; i < f.NumStates(); i++ {
		id := fst.StateId(i)
		if f.IsFinal(id) {
			count++
			found = id
		}
	}
	if count != 1 {
		return fst.NoState, false
	}
	return found, true
}

// referenceWeight returns some existing Weight instance of f's carrier type,
// used purely to reach its Zero()/One() associated constructors. f must
// already hold at least one state.
func referenceWeight(f *fst.VecFst) semiring.Weight {
	if f.NumStates() == 0 {
		errors.Precondition("algorithms: cannot determine weight type of an empty transducer")
	}
	return f.GetFinalWeight(0)
}
