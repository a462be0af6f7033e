package algorithms

import (
	"fmt"

	"wfst/internal/container"
	"wfst/internal/errors"
	"wfst/internal/fst"
	"wfst/internal/semiring"
)

// Pair is a (state, cost-so-far) node of the n-best search lattice: the
// same ifst state reached via two different-cost paths is two distinct
// Pairs, each materialised as its own state in the output.
type Pair struct {
	State fst.StateId
	Cost  semiring.Weight
}

// pairKey canonicalizes a Pair for use as a map key. It does not rely on Go
// struct equality over the embedded Weight, which the design notes flag as
// unsafe for floating-point carriers that might reach the same logical
// value via different rounding paths: it quantizes the cost and formats it,
// the same role the source's "canonical byte-encoding" comment describes.
func pairKey(p Pair) string {
	if !p.Cost.IsMember() {
		return fmt.Sprintf("%d|none", p.State)
	}
	return fmt.Sprintf("%d|%s|%v", p.State, p.Cost.Type(), p.Cost.Quantize())
}

type queueItem struct {
	pair     Pair
	hasPred  bool
	predPair Pair
	predKey  string
}

// ShortestPaths computes the n lowest-weight complete paths of ifst under
// the natural order of its weight semiring (Mohri & Riley 2002), each
// preserved as a distinct trajectory of states and arcs in the returned
// transducer. ifst's weight type must satisfy PathProperty so that
// semiring.NaturalLess is a genuine total order.
//
// ifst is mutated by ExtendFinal as part of this algorithm and is left
// extended; callers who need ifst unchanged must Clone it first.
func ShortestPaths(ifst *fst.VecFst, n int) *fst.VecFst {
	if n <= 0 {
		errors.Precondition("algorithms: shortest_paths requires n > 0, got %d", n)
	}
	if ifst.NumStates() == 0 {
		errors.Precondition("algorithms: shortest_paths requires a non-empty transducer")
	}
	if !semiring.HasPathProperty(referenceWeight(ifst)) {
		errors.Precondition("algorithms: shortest_paths requires a weight type with the path property")
	}

	d := ShortestDistance(ifst)
	ExtendFinal(ifst)

	one := d[0].One()
	newfinal := fst.StateId(len(d))
	d = append(d, one)

	start, ok := ifst.GetStart()
	if !ok {
		errors.Precondition("algorithms: shortest_paths requires ifst to have a start state")
	}

	ofst := fst.New()
	if osyms := ifst.GetOSyms(); osyms != nil {
		ofst.SetOSyms(osyms)
	}
	if isyms := ifst.GetISyms(); isyms != nil {
		ofst.SetISyms(isyms)
	}

	less := func(a, b queueItem) bool {
		ca := a.pair.Cost.Times(d[a.pair.State])
		cb := b.pair.Cost.Times(d[b.pair.State])
		return semiring.NaturalLess(ca, cb)
	}
	queue := container.NewComparatorHeap(less)
	queue.Push(queueItem{pair: Pair{State: start, Cost: one}})

	statemap := map[string]fst.StateId{}
	visits := map[fst.StateId]int{}

	firstPop := true
loop:
	for queue.Len() > 0 {
		item := queue.Pop()
		p, c := item.pair.State, item.pair.Cost
		key := pairKey(item.pair)

		np := ofst.AddState(ifst.GetFinalWeight(p))
		statemap[key] = np
		if firstPop {
			ofst.SetStart(np)
			firstPop = false
		}

		if item.hasPred {
			if pp, ok := statemap[item.predKey]; ok {
				for _, arc := range ifst.ArcIter(item.predPair.State) {
					if arc.NextState == p {
						ofst.AddArc(pp, np, arc.ILabel, arc.OLabel, arc.Weight)
					}
				}
			}
		}

		visits[p]++
		if visits[p] == n && p == newfinal {
			break loop
		}
		if visits[p] > n {
			continue
		}

		for _, arc := range ifst.ArcIter(p) {
			nextCost := c.Times(arc.Weight)
			nextPair := Pair{State: arc.NextState, Cost: nextCost}
			queue.Push(queueItem{pair: nextPair, hasPred: true, predPair: Pair{State: p, Cost: c}, predKey: key})
		}
	}

	return Connect(ofst)
}
