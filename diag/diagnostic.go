package diag

import (
	"github.com/google/uuid"

	"github.com/mermaidlint/mermaidlint/kind"
	"github.com/mermaidlint/mermaidlint/location"
)

// Diagnostic is a single report produced while parsing a diagram.
//
// Diagnostic is immutable after construction. All fields are unexported;
// use the accessor methods to read values and [NewDiagnostic] /
// [DiagnosticBuilder] to construct one. Direct struct literal construction
// is not possible from outside the package, which keeps every collected
// Diagnostic valid.
type Diagnostic struct {
	id       uuid.UUID
	code     Code
	message  string
	severity Severity
	span     location.Span
	kind     kind.DiagramKind
	hasKind  bool
	notes    []string
	related  []location.RelatedInfo
}

// ID returns the diagnostic's correlation id: a random UUID minted once, at
// construction, and fixed for the diagnostic's lifetime. The JSON wire
// shape carries it as relatedID. Each Build mints a fresh id, so the same
// problem reported by two separate runs carries two different ids.
func (d Diagnostic) ID() uuid.UUID {
	return d.id
}

// Code returns the diagnostic's stable programmatic identifier.
func (d Diagnostic) Code() Code {
	return d.code
}

// Message returns the human-readable description. Messages never embed
// location text; use [Diagnostic.Span] for that.
func (d Diagnostic) Message() string {
	return d.message
}

// Severity returns the diagnostic's severity.
func (d Diagnostic) Severity() Severity {
	return d.severity
}

// Span returns the diagnostic's location in the processed source.
func (d Diagnostic) Span() location.Span {
	return d.span
}

// Kind returns the diagram kind this diagnostic was raised against, and
// whether one was set. Diagnostics raised before classification (E001,
// E101) have no kind.
func (d Diagnostic) Kind() (kind.DiagramKind, bool) {
	return d.kind, d.hasKind
}

// Notes returns the diagnostic's ordered notes. The returned slice is a
// defensive copy.
func (d Diagnostic) Notes() []string {
	if len(d.notes) == 0 {
		return nil
	}
	out := make([]string, len(d.notes))
	copy(out, d.notes)
	return out
}

// Related returns the diagnostic's ordered related locations. The returned
// slice is a defensive copy.
func (d Diagnostic) Related() []location.RelatedInfo {
	if len(d.related) == 0 {
		return nil
	}
	out := make([]location.RelatedInfo, len(d.related))
	copy(out, d.related)
	return out
}

// IsZero reports whether d is the unconstructed zero value.
func (d Diagnostic) IsZero() bool {
	return d.code.IsZero() && d.message == ""
}

// DiagnosticBuilder builds an immutable [Diagnostic]. Obtain one with
// [NewDiagnostic]; finish with [DiagnosticBuilder.Build].
type DiagnosticBuilder struct {
	d Diagnostic
}

// NewDiagnostic starts building a Diagnostic with its required fields: the
// stable Code, the Severity, the Span it was raised at, and a human-readable
// message.
func NewDiagnostic(code Code, severity Severity, span location.Span, message string) DiagnosticBuilder {
	return DiagnosticBuilder{d: Diagnostic{
		code:     code,
		severity: severity,
		span:     span,
		message:  message,
	}}
}

// WithKind attaches the diagram kind this diagnostic was raised against.
func (b DiagnosticBuilder) WithKind(k kind.DiagramKind) DiagnosticBuilder {
	b.d.kind = k
	b.d.hasKind = true
	return b
}

// WithNote appends a note to the diagnostic.
func (b DiagnosticBuilder) WithNote(note string) DiagnosticBuilder {
	b.d.notes = append(b.d.notes[:len(b.d.notes):len(b.d.notes)], note)
	return b
}

// WithRelated appends a related location to the diagnostic.
func (b DiagnosticBuilder) WithRelated(message string, span location.Span) DiagnosticBuilder {
	b.d.related = append(b.d.related[:len(b.d.related):len(b.d.related)], location.RelatedInfo{Message: message, Span: span})
	return b
}

// Build finishes construction and returns the immutable Diagnostic.
//
// Build panics if the code is zero or the message is empty — this catches
// programmer errors where NewDiagnostic was called with a stray zero Code
// rather than one of the package's declared constants.
func (b DiagnosticBuilder) Build() Diagnostic {
	if b.d.code.IsZero() {
		panic("diag.DiagnosticBuilder.Build: zero Code")
	}
	if b.d.message == "" {
		panic("diag.DiagnosticBuilder.Build: empty message")
	}
	b.d.id = uuid.New()
	return b.d
}
