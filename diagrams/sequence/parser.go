// Package sequence implements the grammar for sequenceDiagram: participant
// declarations, messages, notes, activations, and the nestable
// loop/alt/opt/par/critical/break/rect blocks described in §4.6.2.
package sequence

import (
	"regexp"
	"strings"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diag"
	"github.com/mermaidlint/mermaidlint/diagrams/internal/linescan"
	"github.com/mermaidlint/mermaidlint/kind"
	"github.com/mermaidlint/mermaidlint/location"
)

// Parser implements parser.Diagram for sequenceDiagram.
type Parser struct{}

// New returns a sequence-diagram parser.
func New() Parser { return Parser{} }

var introducerRegex = regexp.MustCompile(`(?i)^sequenceDiagram\b`)

var (
	participantRegex = regexp.MustCompile(`(?i)^(participant|actor)\s+(.+?)(?:\s+as\s+(.+))?$`)
	createRegex      = regexp.MustCompile(`(?i)^create\s+(participant|actor)\s+(.+?)(?:\s+as\s+(.+))?$`)
	destroyRegex     = regexp.MustCompile(`(?i)^destroy\s+(\S+)$`)
	noteRegex        = regexp.MustCompile(`(?i)^Note\s+(left of|right of|over)\s+([^:]+?)\s*:\s*(.*)$`)
	activationRegex  = regexp.MustCompile(`(?i)^(activate|deactivate)\s+(\S+)$`)
	blockStartRegex  = regexp.MustCompile(`(?i)^(loop|alt|opt|par|critical|break|rect)\b\s*(.*)$`)
	elseRegex        = regexp.MustCompile(`(?i)^(else|and|option)\b\s*(.*)$`)
	endRegex         = regexp.MustCompile(`(?i)^end\s*$`)
	boxRegex         = regexp.MustCompile(`(?i)^box\b\s*(.*)$`)
	autonumberRegex  = regexp.MustCompile(`(?i)^autonumber(?:\s+(\S+))?$`)
	titleRegex       = regexp.MustCompile(`(?i)^title\s+(.*)$`)
	messageRegex     = regexp.MustCompile(`^(\S+)\s*(-->>|->>|-->|--x|--X|--\)|-x|-X|-\)|->)\s*([+-])?\s*(\S+)\s*:\s*(.*)$`)
)

type runner struct {
	lines []linescan.Line
	coll  *diag.Collector
}

// Parse implements parser.Diagram.
func (Parser) Parse(source string, _ config.Configuration) (*ast.Ast, []diag.Diagnostic) {
	coll := diag.NewCollector()
	lines := linescan.Split(source)

	introIdx := -1
	for i, l := range lines {
		if l.IsBlank() {
			continue
		}
		text, offset := l.TrimmedStart()
		if !introducerRegex.MatchString(text) {
			coll.Collect(diag.NewDiagnostic(diag.EExpectedToken, diag.SeverityError,
				location.NewSpan(offset, offset+len(text)), "expected 'sequenceDiagram'").WithKind(kind.Sequence).Build())
			return nil, coll.Result()
		}
		introIdx = i
		break
	}
	if introIdx == -1 {
		coll.Collect(diag.NewDiagnostic(diag.EExpectedToken, diag.SeverityError, location.Empty(0),
			"expected 'sequenceDiagram'").WithKind(kind.Sequence).Build())
		return nil, coll.Result()
	}

	root := ast.NewNode(ast.Root, location.NewSpan(0, len(source)))
	decl := ast.NewNode(ast.DiagramDeclaration, location.NewSpan(lines[introIdx].Start, lines[introIdx].End()))
	root.AddChild(decl)

	r := &runner{lines: lines, coll: coll}
	children, _ := r.parseBlock(introIdx+1, false)
	root.Children = append(root.Children, children...)

	return ast.NewAst(root, source), coll.Result()
}

// parseBlock parses statements starting at idx until EOF or (if nested) a
// line matching "end", returning the parsed children and the index of the
// line just past the consumed content (the "end" line itself, if any).
func (r *runner) parseBlock(idx int, nested bool) ([]*ast.AstNode, int) {
	var out []*ast.AstNode
	for idx < len(r.lines) {
		line := r.lines[idx]
		if line.IsBlank() {
			idx++
			continue
		}
		text, offset := line.TrimmedStart()

		if nested && endRegex.MatchString(text) {
			return out, idx
		}

		if m := blockStartRegex.FindStringSubmatch(text); m != nil {
			node := ast.NewNode(ast.Loop, location.NewSpan(offset, line.End()))
			node.AddProperty("keyword", strings.ToLower(m[1]))
			node.AddProperty("label", strings.TrimSpace(m[2]))
			children, endIdx := r.parseBlock(idx+1, true)
			node.Children = append(node.Children, children...)
			if endIdx < len(r.lines) {
				node.Span.End = r.lines[endIdx].End()
				idx = endIdx + 1
			} else {
				r.fail(diag.EExpectedToken, location.NewSpan(offset, line.End()), "unterminated "+m[1]+" block: missing 'end'")
				idx = endIdx
			}
			out = append(out, node)
			continue
		}

		if m := elseRegex.FindStringSubmatch(text); m != nil && nested {
			node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
			node.AddProperty("type", strings.ToLower(m[1]))
			node.AddProperty("label", strings.TrimSpace(m[2]))
			out = append(out, node)
			idx++
			continue
		}

		if m := boxRegex.FindStringSubmatch(text); m != nil {
			node := ast.NewNode(ast.Loop, location.NewSpan(offset, line.End()))
			node.AddProperty("keyword", "box")
			node.AddProperty("label", strings.TrimSpace(m[1]))
			children, endIdx := r.parseBlock(idx+1, true)
			node.Children = append(node.Children, children...)
			if endIdx < len(r.lines) {
				node.Span.End = r.lines[endIdx].End()
				idx = endIdx + 1
			} else {
				idx = endIdx
			}
			out = append(out, node)
			continue
		}

		node := r.parseStatement(text, offset, line)
		if node != nil {
			out = append(out, node)
		}
		idx++
	}
	return out, len(r.lines)
}

func (r *runner) parseStatement(text string, offset int, line linescan.Line) *ast.AstNode {
	switch {
	case createRegex.MatchString(text):
		m := createRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Participant, location.NewSpan(offset, line.End()))
		node.AddProperty("id", strings.TrimSpace(m[2]))
		node.AddProperty("created", "true")
		if m[3] != "" {
			node.AddProperty("alias", strings.TrimSpace(m[3]))
		}
		return node

	case participantRegex.MatchString(text):
		m := participantRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Participant, location.NewSpan(offset, line.End()))
		node.AddProperty("id", strings.TrimSpace(m[2]))
		if m[3] != "" {
			node.AddProperty("alias", strings.TrimSpace(m[3]))
		}
		return node

	case destroyRegex.MatchString(text):
		m := destroyRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
		node.AddProperty("type", "destroy")
		node.AddProperty("id", m[1])
		return node

	case noteRegex.MatchString(text):
		m := noteRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Note, location.NewSpan(offset, line.End()))
		node.AddProperty("position", strings.ToLower(m[1]))
		node.AddProperty("participants", strings.TrimSpace(m[2]))
		node.AddProperty("text", m[3])
		return node

	case activationRegex.MatchString(text):
		m := activationRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Activation, location.NewSpan(offset, line.End()))
		node.AddProperty("type", strings.ToLower(m[1]))
		node.AddProperty("id", m[2])
		return node

	case autonumberRegex.MatchString(text):
		m := autonumberRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
		node.AddProperty("type", "autonumber")
		if m[1] != "" {
			node.AddProperty("value", m[1])
		}
		return node

	case titleRegex.MatchString(text):
		m := titleRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
		node.AddProperty("type", "title")
		node.AddProperty("text", strings.TrimSpace(m[1]))
		return node

	case messageRegex.MatchString(text):
		m := messageRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Message, location.NewSpan(offset, line.End()))
		node.AddProperty("from", m[1])
		node.AddProperty("arrow_type", m[2])
		node.AddProperty("to", m[4])
		node.AddProperty("text", m[5])
		switch m[3] {
		case "+":
			node.AddProperty("activation", "activate")
		case "-":
			node.AddProperty("activation", "deactivate")
		}
		return node
	}

	r.fail(diag.EUnexpectedToken, location.NewSpan(offset, line.End()), "unexpected statement in sequenceDiagram")
	return nil
}

func (r *runner) fail(code diag.Code, span location.Span, msg string) {
	r.coll.Collect(diag.NewDiagnostic(code, diag.SeverityError, span, msg).WithKind(kind.Sequence).Build())
}
