// Package fst implements the mutable transducer data model: states, arcs,
// and a vector-backed VecFst. It is the Go re-expression of
// original_source/src/wfst.rs and src/wfst_vec.rs, following the design of
// Mohri/Pereira/Riley §4.1 referenced there — but where the Rust original
// threads Rc<RefCell<_>> to share mutable arcs across iterators, Go's GC and
// single-threaded execution model let VecFst hold its states and arcs
// directly, with ArcIter returning a materialised snapshot rather than a
// borrowing iterator (see DESIGN.md).
package fst

import "wfst/internal/semiring"

// Label is a non-negative integer; 0 (Epsilon) denotes the empty symbol.
type Label uint64

// Epsilon is the reserved empty-symbol label.
const Epsilon Label = 0

// StateId identifies a state within one transducer. Ids are dense and start
// at 0; they are reassigned on deletion per the del_state rewriting
// contract.
type StateId int

// NoState is the sentinel for an absent StateId (e.g. an unset start).
const NoState StateId = -1

// Arc is a single (ilabel, olabel, weight, nextstate) transition.
type Arc struct {
	ILabel    Label
	OLabel    Label
	Weight    semiring.Weight
	NextState StateId
}

// Equal compares two arcs for value equality, propagating weight
// non-membership the same way Weight.Equal does.
func (a Arc) Equal(b Arc) bool {
	return a.ILabel == b.ILabel && a.OLabel == b.OLabel && a.NextState == b.NextState && a.Weight.Equal(b.Weight)
}

type state struct {
	finalWeight semiring.Weight
	arcs        []Arc
}
