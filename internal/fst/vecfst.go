package fst

import (
	"wfst/internal/errors"
	"wfst/internal/semiring"
)

// VecFst is a vector-backed MutableFst: states indexed densely by StateId,
// each holding an ordered arc list. Ported from wfst_vec.rs's VecFst/VecState.
type VecFst struct {
	states   []*state
	start    StateId
	hasStart bool
	isyms    []string
	osyms    []string
}

// New returns an empty transducer: no start, no states, no symbol tables.
func New() *VecFst {
	return &VecFst{start: NoState}
}

// Clone makes a deep-enough copy that mutating the result never affects the
// receiver. algorithms.ShortestPaths calls extendfinal on its input and
// leaves it extended, so a caller that needs the input unchanged passes a
// Clone.
func (f *VecFst) Clone() *VecFst {
	out := &VecFst{start: f.start, hasStart: f.hasStart}
	if f.isyms != nil {
		out.isyms = append([]string(nil), f.isyms...)
	}
	if f.osyms != nil {
		out.osyms = append([]string(nil), f.osyms...)
	}
	out.states = make([]*state, len(f.states))
	for i, s := range f.states {
		ns := &state{finalWeight: s.finalWeight, arcs: append([]Arc(nil), s.arcs...)}
		out.states[i] = ns
	}
	return out
}

func (f *VecFst) checkState(id StateId) {
	if id < 0 || int(id) >= len(f.states) {
		errors.Precondition("fst: state %d does not exist (numstates=%d)", id, len(f.states))
	}
}

// GetStart returns the start state and whether one is set.
func (f *VecFst) GetStart() (StateId, bool) {
	return f.start, f.hasStart
}

// SetStart designates id as the start state. id must already exist.
func (f *VecFst) SetStart(id StateId) {
	f.checkState(id)
	f.start = id
	f.hasStart = true
}

// AddState appends a new state with the given final weight and returns its
// id, which equals the state count immediately before the call.
func (f *VecFst) AddState(finalWeight semiring.Weight) StateId {
	id := StateId(len(f.states))
	f.states = append(f.states, &state{finalWeight: finalWeight})
	return id
}

// NumStates reports the current number of states.
func (f *VecFst) NumStates() int { return len(f.states) }

// GetFinalWeight returns the final weight of id. id must exist.
func (f *VecFst) GetFinalWeight(id StateId) semiring.Weight {
	f.checkState(id)
	return f.states[id].finalWeight
}

// SetFinalWeight replaces the final weight of id. id must exist.
func (f *VecFst) SetFinalWeight(id StateId, finalWeight semiring.Weight) {
	f.checkState(id)
	f.states[id].finalWeight = finalWeight
}

// IsFinal reports whether id's final weight is not the semiring's zero.
func (f *VecFst) IsFinal(id StateId) bool {
	f.checkState(id)
	fw := f.states[id].finalWeight
	return !fw.Equal(fw.Zero())
}

// AddArc appends an arc from source to target. Both states must exist.
func (f *VecFst) AddArc(source, target StateId, ilabel, olabel Label, weight semiring.Weight) {
	f.checkState(source)
	f.checkState(target)
	f.states[source].arcs = append(f.states[source].arcs, Arc{
		ILabel:    ilabel,
		OLabel:    olabel,
		Weight:    weight,
		NextState: target,
	})
}

// ArcIter returns a snapshot of id's outgoing arcs in insertion order. It is
// always a copy: mutating the transducer afterward never invalidates a
// slice already returned, matching the "materialise then mutate" discipline
// the source's borrowing iterator had to enforce manually.
func (f *VecFst) ArcIter(id StateId) []Arc {
	f.checkState(id)
	return append([]Arc(nil), f.states[id].arcs...)
}

// DelState removes id, forbidding deletion of the current start state. Every
// surviving arc whose target was id is deleted; every surviving arc whose
// target was greater than id has its target decremented, keeping state ids
// dense.
func (f *VecFst) DelState(id StateId) {
	f.checkState(id)
	if f.hasStart && id == f.start {
		errors.Precondition("fst: cannot delete the start state %d", id)
	}
	f.states = append(f.states[:id], f.states[id+1:]...)
	for _, s := range f.states {
		kept := s.arcs[:0]
		for _, a := range s.arcs {
			switch {
			case a.NextState == id:
				continue
			case a.NextState > id:
				a.NextState--
				kept = append(kept, a)
			default:
				kept = append(kept, a)
			}
		}
		s.arcs = kept
	}
	if f.hasStart && f.start > id {
		f.start--
	}
}

// DelStates deletes every id in ids, sorting descending first so that each
// individual DelState's renumbering stays consistent with the ids still
// pending deletion.
func (f *VecFst) DelStates(ids []StateId) {
	sorted := append([]StateId(nil), ids...)
	sortStateIdsDescending(sorted)
	for _, id := range sorted {
		f.DelState(id)
	}
}

func sortStateIdsDescending(ids []StateId) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] > ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}

// GetISyms and GetOSyms return the input/output symbol tables, or nil if
// unset.
func (f *VecFst) GetISyms() []string { return f.isyms }
func (f *VecFst) GetOSyms() []string { return f.osyms }

// SetISyms and SetOSyms replace the symbol tables wholesale with an ordered
// copy of symtab.
func (f *VecFst) SetISyms(symtab []string) { f.isyms = append([]string(nil), symtab...) }
func (f *VecFst) SetOSyms(symtab []string) { f.osyms = append([]string(nil), symtab...) }

// DelISyms and DelOSyms clear the respective symbol table.
func (f *VecFst) DelISyms() { f.isyms = nil }
func (f *VecFst) DelOSyms() { f.osyms = nil }
