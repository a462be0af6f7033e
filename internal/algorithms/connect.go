package algorithms

import "wfst/internal/fst"

// Connect removes every state that is not both accessible (reachable from
// the start by forward traversal) and coaccessible (can reach some final
// state), trimming the matching arcs along with them. It mutates f in
// place and returns it for chaining.
//
// The original Rust source collects every start-to-wherever path explicitly
// via a path-recording depth-first search and derives accessibility and
// coaccessibility from the recorded paths — quadratic in the worst case.
// This is a classical two-pass traversal instead: one forward DFS from the
// start, one backward DFS from every final state over a predecessor index,
// each linear in the number of arcs.
func Connect(f *fst.VecFst) *fst.VecFst {
	accessible := accessibleStates(f)
	coaccessible := coaccessibleStates(f)

	var toDelete []fst.StateId
	for i := 0; i < f.NumStates(); i++ {
		id := fst.StateId(i)
		if !accessible[id] || !coaccessible[id] {
			toDelete = append(toDelete, id)
		}
	}
	f.DelStates(toDelete)
	return f
}

func accessibleStates(f *fst.VecFst) map[fst.StateId]bool {
	visited := map[fst.StateId]bool{}
	start, ok := f.GetStart()
	if !ok {
		return visited
	}
	stack := []fst.StateId{start}
	visited[start] = true
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, arc := range f.ArcIter(s) {
			if !visited[arc.NextState] {
				visited[arc.NextState] = true
				stack = append(stack, arc.NextState)
			}
		}
	}
	return visited
}

func coaccessibleStates(f *fst.VecFst) map[fst.StateId]bool {
	n := f.NumStates()
	preds := make([][]fst.StateId, n)
	for i := 0; i < n; i++ {
		s := fst.StateId(i)
		for _, arc := range f.ArcIter(s) {
			preds[arc.NextState] = append(preds[arc.NextState], s)
		}
	}

	visited := map[fst.StateId]bool{}
	var stack []fst.StateId
	for i := 0; i < n; i++ {
		id := fst.StateId(i)
		if f.IsFinal(id) {
			visited[id] = true
			stack = append(stack, id)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range preds[s] {
			if !visited[p] {
				visited[p] = true
				stack = append(stack, p)
			}
		}
	}
	return visited
}
