// Package gantt implements the grammar for gantt charts: the header
// directives (dateFormat, axisFormat, excludes, ...), sections, and task
// lines with their done/active/crit/milestone modifiers and after/until
// dependencies, per §4.6.6.
package gantt

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

// Parser implements parser.Diagram for gantt.
type Parser struct{}

// New returns a gantt-chart parser.
func New() Parser { return Parser{} }

var introducerRegex = regexp.MustCompile(`(?i)^gantt\b`)

var headerRegex = regexp.MustCompile(`(?i)^(title|dateFormat|axisFormat|tickInterval|excludes|includes|todayMarker|weekday|accTitle|accDescr)\b\s*(.*)$`)
var sectionRegex = regexp.MustCompile(`(?i)^section\s+(.*)$`)
var taskRegex = regexp.MustCompile(`^([^:]+):\s*(.*)$`)

var modifierSet = map[string]bool{"done": true, "active": true, "crit": true, "milestone": true}

type runner struct {
	lines []linescan.Line
	coll  *diag.Collector
}

// Parse implements parser.Diagram.
func (Parser) Parse(source string, cfg config.Configuration) (*ast.Ast, []diag.Diagnostic) {
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
				location.NewSpan(offset, offset+len(text)), "expected 'gantt'").WithKind(kind.Gantt).Build())
			return nil, coll.Result()
		}
		introIdx = i
		break
	}
	if introIdx == -1 {
		coll.Collect(diag.NewDiagnostic(diag.EExpectedToken, diag.SeverityError, location.Empty(0),
			"expected 'gantt'").WithKind(kind.Gantt).Build())
		return nil, coll.Result()
	}

	root := ast.NewNode(ast.Root, location.NewSpan(0, len(source)))
	decl := ast.NewNode(ast.DiagramDeclaration, location.NewSpan(lines[introIdx].Start, lines[introIdx].End()))
	if cfg.Gantt.DisplayMode != "" {
		decl.AddProperty("display_mode", cfg.Gantt.DisplayMode)
	}
	root.AddChild(decl)

	r := &runner{lines: lines, coll: coll}
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
	case headerRegex.MatchString(text):
		m := headerRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
		node.AddProperty("type", lowerFirstWord(m[1]))
		node.AddProperty("value", strings.TrimSpace(m[2]))
		return node

	case sectionRegex.MatchString(text):
		m := sectionRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
		node.AddProperty("type", "section")
		node.AddProperty("name", strings.TrimSpace(m[1]))
		return node

	case taskRegex.MatchString(text):
		return r.parseTask(text, offset, line)
	}

	r.fail(diag.EUnexpectedToken, location.NewSpan(offset, line.End()), "unexpected statement in gantt chart")
	return nil
}

func lowerFirstWord(s string) string {
	return strings.ToLower(s)
}

// parseTask parses "Name : [modifiers,] [id,] [start-date | after <refs>,]
// duration-or-end-date" per §4.6.6. Fields are comma-separated on the
// right of the colon; the grammar is ambiguous without a fuller date
// grammar, so a trailing bare token is always the task's duration/end
// date and a leading bare token (after modifiers/dependencies) is its id.
func (r *runner) parseTask(text string, offset int, line linescan.Line) *ast.AstNode {
	m := taskRegex.FindStringSubmatch(text)
	name := strings.TrimSpace(m[1])
	node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
	node.AddProperty("type", "task")
	node.AddProperty("name", name)

	var modifiers []string
	var after, until []string
	var remainder []string

	for _, raw := range strings.Split(m[2], ",") {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		low := strings.ToLower(tok)
		switch {
		case modifierSet[low]:
			modifiers = append(modifiers, low)
		case strings.HasPrefix(low, "after "):
			after = append(after, strings.Fields(tok)[1:]...)
		case strings.HasPrefix(low, "until "):
			until = append(until, strings.Fields(tok)[1:]...)
		default:
			remainder = append(remainder, tok)
		}
	}

	if len(modifiers) > 0 {
		node.AddProperty("modifiers", strings.Join(modifiers, ","))
	}
	if len(after) > 0 {
		node.AddProperty("after", strings.Join(after, ","))
	}
	if len(until) > 0 {
		node.AddProperty("until", strings.Join(until, ","))
	}

	switch len(remainder) {
	case 0:
	case 1:
		node.AddProperty("duration", remainder[0])
	case 2:
		node.AddProperty("id", remainder[0])
		node.AddProperty("duration", remainder[1])
	default:
		node.AddProperty("id", remainder[0])
		node.AddProperty("start", remainder[1])
		node.AddProperty("duration", remainder[len(remainder)-1])
	}

	return node
}

func (r *runner) fail(code diag.Code, span location.Span, msg string) {
	r.coll.Collect(diag.NewDiagnostic(code, diag.SeverityError, span, msg).WithKind(kind.Gantt).Build())
}
