package algorithms

import (
	"wfst/internal/errors"
	"wfst/internal/fst"
)

// Reverse builds the reverse of ifst: if ifst transduces x to y with weight
// a, the result transduces reverse(x) to reverse(y) with weight a.Reverse().
// It extends ifst to a single final state for the duration of the call and
// restores it before returning, so ifst is unchanged from the caller's
// perspective.
func Reverse(ifst *fst.VecFst) *fst.VecFst {
	ExtendFinal(ifst)

	ofst := fst.New()
	if osyms := ifst.GetOSyms(); osyms != nil {
		ofst.SetISyms(osyms)
	}
	if isyms := ifst.GetISyms(); isyms != nil {
		ofst.SetOSyms(isyms)
	}

	zero := referenceWeight(ifst).Zero()
	for i := 0; i < ifst.NumStates(); i++ {
		id := fst.StateId(i)
		ofst.AddState(zero)
		if ifst.IsFinal(id) {
			ofst.SetStart(id)
		}
	}

	start, ok := ifst.GetStart()
	if !ok {
		errors.Precondition("algorithms: reverse requires ifst to have a start state")
	}
	ofst.SetFinalWeight(start, referenceWeight(ifst).One())

	for i := 0; i < ifst.NumStates(); i++ {
		id := fst.StateId(i)
		for _, arc := range ifst.ArcIter(id) {
			ofst.AddArc(arc.NextState, id, arc.ILabel, arc.OLabel, arc.Weight.Reverse())
		}
	}

	UnextendFinal(ifst)
	return ofst
}
