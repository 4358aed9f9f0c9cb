// Package state implements the grammar for stateDiagram / stateDiagram-v2:
// state declarations (including fork/join/choice stereotypes and composite
// bodies), transitions (with [*] start/end sentinels), notes, and direction
// statements, per §4.6.4.
package state

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

// Parser implements parser.Diagram for stateDiagram/stateDiagram-v2.
type Parser struct {
	kind kind.DiagramKind
}

// New returns a state-diagram parser tagging diagnostics with k.
func New(k kind.DiagramKind) Parser { return Parser{kind: k} }

var introducerRegex = regexp.MustCompile(`(?i)^stateDiagram(-v2)?\b`)

var (
	stateAliasRegex    = regexp.MustCompile(`(?i)^state\s+"([^"]+)"\s+as\s+(\w+)\s*$`)
	stateDeclRegex     = regexp.MustCompile(`(?i)^state\s+(\w+)\s*(?:<<\s*(\w+)\s*>>)?\s*(\{)?\s*$`)
	transitionRegex    = regexp.MustCompile(`^(\[\*\]|[\w.]+)\s*-->\s*(\[\*\]|[\w.]+)\s*(?::\s*(.*))?$`)
	noteInlineRegex    = regexp.MustCompile(`(?i)^note\s+(left of|right of)\s+(\w+)\s*:\s*(.*)$`)
	noteBlockRegex     = regexp.MustCompile(`(?i)^note\s+(left of|right of)\s+(\w+)\s*$`)
	noteEndRegex       = regexp.MustCompile(`(?i)^end\s+note\s*$`)
	directionRegex     = regexp.MustCompile(`(?i)^direction\s+(\w+)$`)
	descriptionRegex   = regexp.MustCompile(`^(\w+)\s*:\s*(.*)$`)
)

type runner struct {
	lines []linescan.Line
	coll  *diag.Collector
	kind  kind.DiagramKind
}

// Parse implements parser.Diagram.
func (p Parser) Parse(source string, _ config.Configuration) (*ast.Ast, []diag.Diagnostic) {
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
				location.NewSpan(offset, offset+len(text)), "expected 'stateDiagram'").WithKind(p.kind).Build())
			return nil, coll.Result()
		}
		introIdx = i
		break
	}
	if introIdx == -1 {
		coll.Collect(diag.NewDiagnostic(diag.EExpectedToken, diag.SeverityError, location.Empty(0),
			"expected 'stateDiagram'").WithKind(p.kind).Build())
		return nil, coll.Result()
	}

	root := ast.NewNode(ast.Root, location.NewSpan(0, len(source)))
	decl := ast.NewNode(ast.DiagramDeclaration, location.NewSpan(lines[introIdx].Start, lines[introIdx].End()))
	root.AddChild(decl)

	r := &runner{lines: lines, coll: coll, kind: p.kind}
	children, _ := r.parseBlock(introIdx + 1)
	root.Children = append(root.Children, children...)

	return ast.NewAst(root, source), coll.Result()
}

func (r *runner) parseBlock(idx int) ([]*ast.AstNode, int) {
	var out []*ast.AstNode
	for idx < len(r.lines) {
		line := r.lines[idx]
		if line.IsBlank() {
			idx++
			continue
		}
		text, offset := line.TrimmedStart()

		if strings.TrimSpace(text) == "}" {
			return out, idx
		}

		switch {
		case stateAliasRegex.MatchString(text):
			m := stateAliasRegex.FindStringSubmatch(text)
			node := ast.NewNode(ast.State, location.NewSpan(offset, line.End()))
			node.AddProperty("id", m[2])
			node.AddProperty("description", m[1])
			out = append(out, node)
			idx++

		case stateDeclRegex.MatchString(text):
			m := stateDeclRegex.FindStringSubmatch(text)
			node := ast.NewNode(ast.State, location.NewSpan(offset, line.End()))
			node.AddProperty("id", m[1])
			if m[2] != "" {
				node.AddProperty("stereotype", strings.ToLower(m[2]))
			}
			if m[3] == "{" {
				children, endIdx := r.parseBlock(idx + 1)
				node.Children = append(node.Children, children...)
				if endIdx < len(r.lines) {
					node.Span.End = r.lines[endIdx].End()
					idx = endIdx + 1
				} else {
					idx = endIdx
				}
			} else {
				idx++
			}
			out = append(out, node)

		case noteBlockRegex.MatchString(text) && !noteInlineRegex.MatchString(text):
			m := noteBlockRegex.FindStringSubmatch(text)
			bodyStart := idx + 1
			var textLines []string
			end := bodyStart
			for end < len(r.lines) {
				t, _ := r.lines[end].TrimmedStart()
				if noteEndRegex.MatchString(t) {
					break
				}
				textLines = append(textLines, r.lines[end].Trimmed())
				end++
			}
			node := ast.NewNode(ast.Note, location.NewSpan(offset, line.End()))
			node.AddProperty("position", strings.ToLower(m[1]))
			node.AddProperty("target", m[2])
			node.AddProperty("text", strings.Join(textLines, "\n"))
			out = append(out, node)
			if end < len(r.lines) {
				idx = end + 1
			} else {
				r.fail(diag.EExpectedToken, location.NewSpan(offset, line.End()), "unterminated note block: missing 'end note'")
				idx = end
			}

		case noteInlineRegex.MatchString(text):
			m := noteInlineRegex.FindStringSubmatch(text)
			node := ast.NewNode(ast.Note, location.NewSpan(offset, line.End()))
			node.AddProperty("position", strings.ToLower(m[1]))
			node.AddProperty("target", m[2])
			node.AddProperty("text", m[3])
			out = append(out, node)
			idx++

		case directionRegex.MatchString(text):
			m := directionRegex.FindStringSubmatch(text)
			node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
			node.AddProperty("type", "direction")
			node.AddProperty("value", m[1])
			out = append(out, node)
			idx++

		case transitionRegex.MatchString(text):
			m := transitionRegex.FindStringSubmatch(text)
			node := ast.NewNode(ast.Transition, location.NewSpan(offset, line.End()))
			node.AddProperty("from", m[1])
			node.AddProperty("to", m[2])
			if m[3] != "" {
				node.AddProperty("label", strings.TrimSpace(m[3]))
			}
			out = append(out, node)
			idx++

		case descriptionRegex.MatchString(text):
			m := descriptionRegex.FindStringSubmatch(text)
			node := ast.NewNode(ast.State, location.NewSpan(offset, line.End()))
			node.AddProperty("id", m[1])
			node.AddProperty("description", strings.TrimSpace(m[2]))
			out = append(out, node)
			idx++

		default:
			r.fail(diag.EUnexpectedToken, location.NewSpan(offset, line.End()), "unexpected statement in stateDiagram")
			idx++
		}
	}
	return out, len(r.lines)
}

func (r *runner) fail(code diag.Code, span location.Span, msg string) {
	r.coll.Collect(diag.NewDiagnostic(code, diag.SeverityError, span, msg).WithKind(r.kind).Build())
}
