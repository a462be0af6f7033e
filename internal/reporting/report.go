// Package reporting builds summary reports over a compiled transducer —
// state/arc counts, weight type, and total shortest distance — rendered as
// JSON, XML, or a human-readable text/template document. Adapted from the
// teacher's security-report generator: same shape (a module that
// accumulates a report, then renders it through several format-specific
// methods), new subject matter.
package reporting

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"wfst/internal/algorithms"
	"wfst/internal/fst"
)

// Report is a point-in-time summary of a transducer.
type Report struct {
	ID            string    `json:"id" xml:"id"`
	Title         string    `json:"title" xml:"title"`
	GeneratedAt   time.Time `json:"generated_at" xml:"generated_at"`
	WeightType    string    `json:"weight_type" xml:"weight_type"`
	NumStates     int       `json:"num_states" xml:"num_states"`
	NumArcs       int       `json:"num_arcs" xml:"num_arcs"`
	FinalStates   int       `json:"final_states" xml:"final_states"`
	HasStart      bool      `json:"has_start" xml:"has_start"`
	TotalDistance string    `json:"total_distance,omitempty" xml:"total_distance,omitempty"`
}

// Build inspects f and produces its Report. tid names f's weight type (the
// binary envelope's tag). Computing TotalDistance runs ShortestDistance,
// so Build is not free on a large transducer.
func Build(f *fst.VecFst, tid, title string) *Report {
	r := &Report{
		ID:          uuid.New().String(),
		Title:       title,
		GeneratedAt: time.Now(),
		WeightType:  tid,
		NumStates:   f.NumStates(),
	}
	start, hasStart := f.GetStart()
	r.HasStart = hasStart
	for i := 0; i < f.NumStates(); i++ {
		id := fst.StateId(i)
		r.NumArcs += len(f.ArcIter(id))
		if f.IsFinal(id) {
			r.FinalStates++
		}
	}
	if hasStart && f.NumStates() > 0 {
		d := algorithms.ShortestDistance(f)
		if int(start) < len(d) {
			r.TotalDistance = d[start].String()
		}
	}
	return r
}

// WriteJSON renders r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteXML renders r as indented XML.
func (r *Report) WriteXML(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(r)
}

var textTemplate = template.Must(template.New("report").Parse(
	`{{.Title}} ({{.ID}})
generated:     {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
weight type:   {{.WeightType}}
states:        {{.NumStatesHuman}}
arcs:          {{.NumArcsHuman}}
final states:  {{.FinalStates}}
has start:     {{.HasStart}}
{{if .TotalDistance}}total distance: {{.TotalDistance}}
{{end}}`))

// NumStatesHuman and NumArcsHuman give the template comma-grouped counts
// (humanize.Comma) instead of raw digit runs, for transducers large enough
// that the difference actually helps readability.
func (r *Report) NumStatesHuman() string { return humanize.Comma(int64(r.NumStates)) }
func (r *Report) NumArcsHuman() string   { return humanize.Comma(int64(r.NumArcs)) }

// WriteText renders r through textTemplate.
func (r *Report) WriteText(w io.Writer) error {
	return textTemplate.Execute(w, r)
}

// Write renders r in the named format: "json", "xml", or "text".
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "json":
		return r.WriteJSON(w)
	case "xml":
		return r.WriteXML(w)
	case "text", "":
		return r.WriteText(w)
	default:
		return fmt.Errorf("reporting: unknown format %q, want json, xml, or text", format)
	}
}
