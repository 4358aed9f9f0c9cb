// Package pie implements the grammar for pie charts: the introducer with
// its optional showData flag, a title, and quoted-label/numeric-value
// slices, per §4.6.7.
package pie

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diag"
	"github.com/mermaidlint/mermaidlint/diagrams/internal/linescan"
	"github.com/mermaidlint/mermaidlint/kind"
	"github.com/mermaidlint/mermaidlint/location"
)

// Parser implements parser.Diagram for pie.
type Parser struct{}

// New returns a pie-chart parser.
func New() Parser { return Parser{} }

var introducerRegex = regexp.MustCompile(`(?i)^pie\b\s*(showData)?`)
var titleRegex = regexp.MustCompile(`(?i)^title\s+(.*)$`)
var sliceRegex = regexp.MustCompile(`^"([^"]*)"\s*:\s*(-?[0-9]+(?:\.[0-9]+)?)\s*$`)

type runner struct {
	coll *diag.Collector
}

// Parse implements parser.Diagram.
func (Parser) Parse(source string, _ config.Configuration) (*ast.Ast, []diag.Diagnostic) {
	coll := diag.NewCollector()
	lines := linescan.Split(source)

	introIdx := -1
	var showData bool
	for i, l := range lines {
		if l.IsBlank() {
			continue
		}
		text, offset := l.TrimmedStart()
		m := introducerRegex.FindStringSubmatch(text)
		if m == nil {
			coll.Collect(diag.NewDiagnostic(diag.EExpectedToken, diag.SeverityError,
				location.NewSpan(offset, offset+len(text)), "expected 'pie'").WithKind(kind.Pie).Build())
			return nil, coll.Result()
		}
		introIdx = i
		showData = m[1] != ""
		break
	}
	if introIdx == -1 {
		coll.Collect(diag.NewDiagnostic(diag.EExpectedToken, diag.SeverityError, location.Empty(0),
			"expected 'pie'").WithKind(kind.Pie).Build())
		return nil, coll.Result()
	}

	root := ast.NewNode(ast.Root, location.NewSpan(0, len(source)))
	decl := ast.NewNode(ast.DiagramDeclaration, location.NewSpan(lines[introIdx].Start, lines[introIdx].End()))
	decl.AddProperty("show_data", strconv.FormatBool(showData))
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
	case titleRegex.MatchString(text):
		m := titleRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
		node.AddProperty("type", "title")
		node.AddProperty("text", strings.TrimSpace(m[1]))
		return node

	case sliceRegex.MatchString(text):
		m := sliceRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
		node.AddProperty("type", "slice")
		node.AddProperty("label", m[1])
		node.AddProperty("value", m[2])
		return node
	}

	r.coll.Collect(diag.NewDiagnostic(diag.EUnexpectedToken, diag.SeverityError,
		location.NewSpan(offset, line.End()), "unexpected statement in pie chart").WithKind(kind.Pie).Build())
	return nil
}
