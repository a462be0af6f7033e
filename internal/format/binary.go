package format

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"wfst/internal/errors"
	"wfst/internal/fst"
	"wfst/internal/semiring"
)

// No serialization library appears anywhere in the example pack (no
// protobuf, msgpack, or cap'n proto dependency to adopt); encoding/gob is
// the idiomatic standard-library choice for a private wire format that
// both ends of every round trip in this program control, so it is used
// here without apology (see DESIGN.md).

// envelope is the outer {tid, data} wrapper: tid names the weight type so
// a reader can rebuild the right semiring.Weight without a type switch
// reaching all the way up to the caller.
type envelope struct {
	Tid  string
	Data []byte
}

type wireArc struct {
	ILabel, OLabel fst.Label
	Weight         float64
	WeightMember   bool
	NextState      fst.StateId
}

type wireState struct {
	FinalWeight float64
	FinalMember bool
	Arcs        []wireArc
}

type wireFst struct {
	HasStart bool
	Start    fst.StateId
	ISyms    []string
	OSyms    []string
	States   []wireState
}

// Encode serializes f into the binary envelope, tagging it with tid (e.g.
// "tropical64") so Decode can dispatch on the same tag.
func Encode(f *fst.VecFst, tid string) ([]byte, error) {
	var wf wireFst
	start, hasStart := f.GetStart()
	wf.HasStart = hasStart
	wf.Start = start
	wf.ISyms = f.GetISyms()
	wf.OSyms = f.GetOSyms()

	wf.States = make([]wireState, f.NumStates())
	for i := 0; i < f.NumStates(); i++ {
		id := fst.StateId(i)
		fw, fwOk := semiring.ExtractValue(f.GetFinalWeight(id))
		ws := wireState{FinalWeight: fw, FinalMember: fwOk}
		for _, arc := range f.ArcIter(id) {
			wv, wOk := semiring.ExtractValue(arc.Weight)
			ws.Arcs = append(ws.Arcs, wireArc{
				ILabel: arc.ILabel, OLabel: arc.OLabel,
				Weight: wv, WeightMember: wOk,
				NextState: arc.NextState,
			})
		}
		wf.States[i] = ws
	}

	var dataBuf bytes.Buffer
	if err := gob.NewEncoder(&dataBuf).Encode(wf); err != nil {
		return nil, errors.Wrap(errors.IO, err, "encoding transducer body")
	}

	var envBuf bytes.Buffer
	if err := gob.NewEncoder(&envBuf).Encode(envelope{Tid: tid, Data: dataBuf.Bytes()}); err != nil {
		return nil, errors.Wrap(errors.IO, err, "encoding binary envelope")
	}
	return envBuf.Bytes(), nil
}

// Decode reads a binary envelope and rebuilds its transducer, dispatching
// the weight type on the embedded tid. An unrecognized tid is a
// TypeMismatch error.
func Decode(data []byte) (*fst.VecFst, string, error) {
	var env envelope
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		return nil, "", errors.Wrap(errors.IO, err, "decoding binary envelope")
	}
	ctor, ok := semiring.Lookup(env.Tid)
	if !ok {
		return nil, "", errors.Newf(errors.TypeMismatch,
			"unknown weight type %q, want one of %v", env.Tid, semiring.KnownTypes())
	}

	var wf wireFst
	if err := gob.NewDecoder(bytes.NewReader(env.Data)).Decode(&wf); err != nil {
		return nil, "", errors.Wrap(errors.IO, err, "decoding transducer body")
	}

	f := fst.New()
	weightOf := func(v float64, member bool) semiring.Weight {
		w := ctor(v)
		if !member {
			w = w.None()
		}
		return w
	}

	for _, ws := range wf.States {
		f.AddState(weightOf(ws.FinalWeight, ws.FinalMember))
	}
	for i, ws := range wf.States {
		for _, arc := range ws.Arcs {
			f.AddArc(fst.StateId(i), arc.NextState, arc.ILabel, arc.OLabel, weightOf(arc.Weight, arc.WeightMember))
		}
	}
	if wf.HasStart {
		f.SetStart(wf.Start)
	}
	if wf.ISyms != nil {
		f.SetISyms(wf.ISyms)
	}
	if wf.OSyms != nil {
		f.SetOSyms(wf.OSyms)
	}
	return f, env.Tid, nil
}

// TidFor derives the stable weight-type tag ("tropical64", ...) from a
// concrete weight type name and precision, for callers that know these as
// separate values.
func TidFor(family string, precision int) (string, error) {
	tid := fmt.Sprintf("%s%d", family, precision)
	if _, ok := semiring.Lookup(tid); !ok {
		return "", errors.Newf(errors.TypeMismatch, "unsupported weight type %q, want one of %v", tid, semiring.KnownTypes())
	}
	return tid, nil
}
