// Package journey implements the grammar for user-journey diagrams:
// sections, a title, and task lines carrying a score and an actor list,
// per §4.6.7.
package journey

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

// Parser implements parser.Diagram for journey.
type Parser struct{}

// New returns a journey-diagram parser.
func New() Parser { return Parser{} }

var introducerRegex = regexp.MustCompile(`(?i)^journey\b`)
var sectionRegex = regexp.MustCompile(`(?i)^section\s+(.*)$`)
var titleRegex = regexp.MustCompile(`(?i)^title\s+(.*)$`)
var taskRegex = regexp.MustCompile(`^([^:]+):\s*([^:]+):\s*(.*)$`)

type runner struct {
	coll *diag.Collector
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
				location.NewSpan(offset, offset+len(text)), "expected 'journey'").WithKind(kind.Journey).Build())
			return nil, coll.Result()
		}
		introIdx = i
		break
	}
	if introIdx == -1 {
		coll.Collect(diag.NewDiagnostic(diag.EExpectedToken, diag.SeverityError, location.Empty(0),
			"expected 'journey'").WithKind(kind.Journey).Build())
		return nil, coll.Result()
	}

	root := ast.NewNode(ast.Root, location.NewSpan(0, len(source)))
	decl := ast.NewNode(ast.DiagramDeclaration, location.NewSpan(lines[introIdx].Start, lines[introIdx].End()))
	root.AddChild(decl)

	r := &runner{coll: coll}
	for idx := introIdx + 1; idx < len(lines); idx++ {
		line := lines[idx]
		if line.IsBlank() {
			continue
		}
		text, offset := line.TrimmedStart()
		if node := r.parseStatement(text, offset, line); node != nil {
			root.AddChild(node)
		}
	}

	return ast.NewAst(root, source), coll.Result()
}

func (r *runner) parseStatement(text string, offset int, line linescan.Line) *ast.AstNode {
	switch {
	case sectionRegex.MatchString(text):
		m := sectionRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
		node.AddProperty("type", "section")
		node.AddProperty("name", strings.TrimSpace(m[1]))
		return node

	case titleRegex.MatchString(text):
		m := titleRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
		node.AddProperty("type", "title")
		node.AddProperty("text", strings.TrimSpace(m[1]))
		return node

	case taskRegex.MatchString(text):
		m := taskRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
		node.AddProperty("type", "task")
		node.AddProperty("name", strings.TrimSpace(m[1]))
		node.AddProperty("score", strings.TrimSpace(m[2]))
		var actors []string
		for _, a := range strings.Split(m[3], ",") {
			if a = strings.TrimSpace(a); a != "" {
				actors = append(actors, a)
			}
		}
		node.AddProperty("actors", strings.Join(actors, ","))
		return node
	}

	r.coll.Collect(diag.NewDiagnostic(diag.EUnexpectedToken, diag.SeverityError,
		location.NewSpan(offset, line.End()), "unexpected statement in journey diagram").WithKind(kind.Journey).Build())
	return nil
}
