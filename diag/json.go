package diag

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mermaidlint/mermaidlint/location"
)

// wireSpan is the `{start, end}` wire shape required of Span.
type wireSpan struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// wireRelated is the wire shape of a related location.
type wireRelated struct {
	Message string   `json:"message" yaml:"message"`
	Span    wireSpan `json:"span" yaml:"span"`
}

// wireDiagnostic is the JSON/YAML wire shape of a Diagnostic. Optional
// fields are omitted when empty, per the serialization rules every data
// model type in this package follows.
type wireDiagnostic struct {
	RelatedID   string        `json:"relatedID" yaml:"relatedID"`
	Code        string        `json:"code" yaml:"code"`
	Message     string        `json:"message" yaml:"message"`
	Severity    string        `json:"severity" yaml:"severity"`
	Span        wireSpan      `json:"span" yaml:"span"`
	DiagramKind string        `json:"diagramKind,omitempty" yaml:"diagramKind,omitempty"`
	Notes       []string      `json:"notes,omitempty" yaml:"notes,omitempty"`
	Related     []wireRelated `json:"related,omitempty" yaml:"related,omitempty"`
}

func (d Diagnostic) toWire() wireDiagnostic {
	w := wireDiagnostic{
		RelatedID: d.id.String(),
		Code:      d.code.String(),
		Message:   d.message,
		Severity:  d.severity.String(),
		Span:      wireSpan{Start: d.span.Start, End: d.span.End},
	}
	if k, ok := d.kind, d.hasKind; ok {
		w.DiagramKind = k.String()
	}
	w.Notes = d.Notes()
	for _, rel := range d.Related() {
		w.Related = append(w.Related, wireRelated{Message: rel.Message, Span: wireSpan{Start: rel.Span.Start, End: rel.Span.End}})
	}
	return w
}

// MarshalJSON implements json.Marshaler, producing the stable wire shape
// (camelCase field names, lowercase severity, omitted empty optionals).
func (d Diagnostic) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.toWire())
}

// MarshalYAML implements yaml.Marshaler via the same wire shape JSON uses.
func (d Diagnostic) MarshalYAML() (interface{}, error) {
	return d.toWire(), nil
}

func severityFromString(s string) (Severity, error) {
	switch s {
	case "error":
		return SeverityError, nil
	case "warning":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	case "hint":
		return SeverityHint, nil
	default:
		return 0, fmt.Errorf("diag: unknown severity %q", s)
	}
}

// UnmarshalJSON implements json.Unmarshaler, reconstructing a Diagnostic
// from its wire shape. This round-trips a ParseResult's JSON output back
// into Go values for tooling that consumes the CLI's JSON output.
func (d *Diagnostic) UnmarshalJSON(data []byte) error {
	var w wireDiagnostic
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	code, ok := CodeFromString(w.Code)
	if !ok {
		return fmt.Errorf("diag: unknown code %q", w.Code)
	}
	severity, err := severityFromString(w.Severity)
	if err != nil {
		return err
	}
	b := NewDiagnostic(code, severity, location.NewSpan(w.Span.Start, w.Span.End), w.Message)
	for _, note := range w.Notes {
		b = b.WithNote(note)
	}
	for _, rel := range w.Related {
		b = b.WithRelated(rel.Message, location.NewSpan(rel.Span.Start, rel.Span.End))
	}
	built := b.Build()
	if id, err := uuid.Parse(w.RelatedID); err == nil {
		built.id = id
	}
	*d = built
	return nil
}
