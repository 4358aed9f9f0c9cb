package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/mermaidlint/mermaidlint/location"
)

// Renderer formats Diagnostics for text-mode output against one fixed
// source string.
//
// Building a Renderer indexes the source once (via [location.NewLineIndex]),
// so rendering many diagnostics against the same ParseResult costs one
// binary search per diagnostic position instead of a rescan of the source.
type Renderer struct {
	source string
	index  *location.LineIndex
	colors bool
}

// NewRenderer builds a Renderer over source. Set colors to true to wrap the
// severity label in ANSI color codes.
func NewRenderer(source string, colors bool) *Renderer {
	return &Renderer{source: source, index: location.NewLineIndex(source), colors: colors}
}

// Render produces the human-readable block for a single Diagnostic:
//
//	severity: [code] message
//	  --> line:col
//	  |
//	N | offending source line
//	  | ^^^^
//	  = note: ...
//
// The gutter/source/caret lines are omitted when the diagnostic's span is
// empty (point diagnostics raised before any text was consumed, such as
// E001 on an empty source).
func (r *Renderer) Render(d Diagnostic) string {
	pos := r.index.Span(d.Span())

	var b strings.Builder
	fmt.Fprintf(&b, "%s: [%s] %s\n  --> %d:%d", r.severityLabel(d.Severity()), d.Code().String(), d.Message(), pos.Line, pos.Column)

	if !d.Span().IsEmpty() {
		if ctx, ok := r.sourceContext(d.Span(), pos); ok {
			b.WriteByte('\n')
			b.WriteString(ctx)
		}
	}

	for _, note := range d.Notes() {
		fmt.Fprintf(&b, "\n  = note: %s", note)
	}

	return b.String()
}

func (r *Renderer) severityLabel(s Severity) string {
	if !r.colors {
		return s.String()
	}
	switch s {
	case SeverityError:
		return color.New(color.FgRed, color.Bold).Sprint(s.String())
	case SeverityWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(s.String())
	default:
		return color.New(color.FgCyan).Sprint(s.String())
	}
}

func (r *Renderer) sourceContext(span location.Span, pos location.Position) (string, bool) {
	if pos.Line < 1 || pos.Line > r.index.LineCount() {
		return "", false
	}
	line := r.index.Line(pos.Line)

	lineNumStr := fmt.Sprintf("%d", pos.Line)
	padding := strings.Repeat(" ", len(lineNumStr))

	caretPadding := strings.Repeat(" ", max(pos.Column-1, 0))
	caretLen := span.Len()
	if remaining := len(line) - pos.Column + 1; caretLen > remaining {
		caretLen = remaining
	}
	if caretLen < 1 {
		caretLen = 1
	}
	carets := strings.Repeat("^", caretLen)

	var b strings.Builder
	fmt.Fprintf(&b, "%s |\n", padding)
	fmt.Fprintf(&b, "%s | %s\n", lineNumStr, line)
	fmt.Fprintf(&b, "%s | %s%s", padding, caretPadding, carets)
	return b.String(), true
}

// RenderAll renders every diagnostic in d, separated by blank lines, in
// collection order.
func (r *Renderer) RenderAll(ds []Diagnostic) string {
	blocks := make([]string, len(ds))
	for i, d := range ds {
		blocks[i] = r.Render(d)
	}
	return strings.Join(blocks, "\n\n")
}
