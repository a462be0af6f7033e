package algorithms

import (
	"wfst/internal/container"
	"wfst/internal/errors"
	"wfst/internal/fst"
	"wfst/internal/semiring"
)

// ShortestDistance computes d[s] for every state s of ifst: the ⊕-sum, over
// all paths from s to a final state of ifst, of the ⊗-product of that
// path's arc weights and the final weight. It works over the reverse of
// ifst, relaxing out from the reverse's start, the generalized
// single-source relaxation used by shortest_paths; the returned slice has
// one entry per state of ifst, the state the reversal adds being dropped
// (so d[start] is the total weight of ifst). Termination requires
// the semiring to be k-closed for ifst; tropical and min-max always
// terminate on a finite acyclic-or-not graph, log terminates under the
// usual acyclicity caveat (left undefined otherwise, per design).
func ShortestDistance(ifst *fst.VecFst) []semiring.Weight {
	rev := Reverse(ifst)
	n := rev.NumStates()

	start, ok := rev.GetStart()
	if !ok {
		errors.Precondition("algorithms: shortest_distance requires a start state")
	}

	ref := referenceWeight(rev)
	zero, one := ref.Zero(), ref.One()

	d := make([]semiring.Weight, n)
	r := make([]semiring.Weight, n)
	for i := range d {
		d[i] = zero
		r[i] = zero
	}
	d[start] = one
	r[start] = one

	queue := container.NewOrderedSet[fst.StateId]()
	queue.Insert(start)

	for !queue.IsEmpty() {
		s, _ := queue.PopFront()
		rnew := r[s]
		r[s] = zero

		for _, arc := range rev.ArcIter(s) {
			t := arc.NextState
			contribution := rnew.Times(arc.Weight)
			dnew := d[t].Plus(contribution)
			if !d[t].Equal(dnew) {
				d[t] = dnew
				r[t] = r[t].Plus(contribution)
				if !queue.Contains(t) {
					queue.Insert(t)
				}
			}
		}
	}
	return d[:ifst.NumStates()]
}
