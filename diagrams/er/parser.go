// Package er implements the grammar for erDiagram: entity declarations
// (with optional attribute blocks), cardinality relationships, and the
// handful of cosmetic statements described in §4.6.5.
package er

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

// Parser implements parser.Diagram for erDiagram.
type Parser struct{}

// New returns an ER-diagram parser.
func New() Parser { return Parser{} }

var introducerRegex = regexp.MustCompile(`(?i)^erDiagram\b`)

const cardToken = `\|\||\|o|o\||\}\||\|\{|\}o|o\{`

var (
	relationRegex  = regexp.MustCompile(`^"?([\w-]+)"?\s*(` + cardToken + `)(--|\.\.)(` + cardToken + `)\s*"?([\w-]+)"?\s*(?::::\s*(\S+))?\s*(?::\s*(.*))?$`)
	entityRegex    = regexp.MustCompile(`^"?([\w-]+)"?\s*(?::::\s*(\S+))?\s*(\{)?\s*$`)
	attributeRegex = regexp.MustCompile(`^(\S+?)(?:~[^~]*~)?\s+([\w-]+)\s*((?:PK|FK|UK)(?:\s*,\s*(?:PK|FK|UK))*)?\s*(?:"([^"]*)")?\s*$`)
	directionRegex = regexp.MustCompile(`(?i)^direction\s+(TB|BT|LR|RL)\s*$`)
	cosmeticRegex  = regexp.MustCompile(`(?i)^(style|classDef|class|accTitle|accDescr)\b\s*(.*)$`)
)

var cardinalityNames = map[string]string{
	"||": "exactly_one", "|o": "zero_or_one", "o|": "zero_or_one",
	"}|": "one_or_more", "|{": "one_or_more", "}o": "zero_or_more", "o{": "zero_or_more",
}

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
				location.NewSpan(offset, offset+len(text)), "expected 'erDiagram'").WithKind(kind.Er).Build())
			return nil, coll.Result()
		}
		introIdx = i
		break
	}
	if introIdx == -1 {
		coll.Collect(diag.NewDiagnostic(diag.EExpectedToken, diag.SeverityError, location.Empty(0),
			"expected 'erDiagram'").WithKind(kind.Er).Build())
		return nil, coll.Result()
	}

	root := ast.NewNode(ast.Root, location.NewSpan(0, len(source)))
	decl := ast.NewNode(ast.DiagramDeclaration, location.NewSpan(lines[introIdx].Start, lines[introIdx].End()))
	root.AddChild(decl)

	r := &runner{lines: lines, coll: coll}
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
		case directionRegex.MatchString(text):
			m := directionRegex.FindStringSubmatch(text)
			node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
			node.AddProperty("type", "direction")
			node.AddProperty("value", strings.ToUpper(m[1]))
			out = append(out, node)
			idx++

		case cosmeticRegex.MatchString(text):
			m := cosmeticRegex.FindStringSubmatch(text)
			node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
			node.AddProperty("type", m[1])
			node.AddProperty("text", strings.TrimSpace(m[2]))
			out = append(out, node)
			idx++

		case relationRegex.MatchString(text):
			m := relationRegex.FindStringSubmatch(text)
			node := ast.NewNode(ast.Relationship, location.NewSpan(offset, line.End()))
			node.AddProperty("from", m[1])
			node.AddProperty("to", m[5])
			node.AddProperty("cardinality_from", cardinalityNames[m[2]])
			node.AddProperty("cardinality_to", cardinalityNames[m[4]])
			if m[3] == "--" {
				node.AddProperty("identifying", "true")
			} else {
				node.AddProperty("identifying", "false")
			}
			if m[6] != "" {
				node.AddProperty("class", m[6])
			}
			if m[7] != "" {
				node.AddProperty("label", strings.TrimSpace(m[7]))
			}
			out = append(out, node)
			idx++

		case entityRegex.MatchString(text):
			m := entityRegex.FindStringSubmatch(text)
			node := ast.NewNode(ast.OtherKind("entity"), location.NewSpan(offset, line.End()))
			node.AddProperty("id", m[1])
			if m[2] != "" {
				node.AddProperty("class", m[2])
			}
			if m[3] == "{" {
				attrs, endIdx := r.parseEntityBody(idx + 1)
				node.Children = append(node.Children, attrs...)
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

		default:
			r.fail(diag.EUnexpectedToken, location.NewSpan(offset, line.End()), "unexpected statement in erDiagram")
			idx++
		}
	}
	return out, len(r.lines)
}

func (r *runner) parseEntityBody(idx int) ([]*ast.AstNode, int) {
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
		if m := attributeRegex.FindStringSubmatch(text); m != nil {
			node := ast.NewNode(ast.Attribute, location.NewSpan(offset, line.End()))
			node.AddProperty("type", m[1])
			node.AddProperty("name", m[2])
			if m[3] != "" {
				node.AddProperty("keys", m[3])
			}
			if m[4] != "" {
				node.AddProperty("comment", m[4])
			}
			out = append(out, node)
		} else {
			r.fail(diag.EUnexpectedToken, location.NewSpan(offset, line.End()), "invalid attribute line in erDiagram entity")
		}
		idx++
	}
	return out, len(r.lines)
}

func (r *runner) fail(code diag.Code, span location.Span, msg string) {
	r.coll.Collect(diag.NewDiagnostic(code, diag.SeverityError, span, msg).WithKind(kind.Er).Build())
}
