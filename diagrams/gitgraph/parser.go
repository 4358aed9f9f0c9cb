// Package gitgraph implements the grammar for gitGraph diagrams: the
// commit/branch/checkout/merge/cherry-pick commands and their id/msg/
// tag/type/order attribute options, per §4.6.7.
package gitgraph

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

// Parser implements parser.Diagram for gitGraph.
type Parser struct{}

// New returns a gitGraph parser.
func New() Parser { return Parser{} }

var introducerRegex = regexp.MustCompile(`(?i)^gitGraph\b`)
var commandRegex = regexp.MustCompile(`(?i)^(commit|branch|checkout|switch|merge|cherry-pick)\b\s*(.*)$`)
var optionRegex = regexp.MustCompile(`(?i)(id|msg|tag|type|order)\s*:\s*(?:"([^"]*)"|(\S+))`)

var commitTypes = map[string]bool{"NORMAL": true, "REVERSE": true, "HIGHLIGHT": true}

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
				location.NewSpan(offset, offset+len(text)), "expected 'gitGraph'").WithKind(kind.GitGraph).Build())
			return nil, coll.Result()
		}
		introIdx = i
		break
	}
	if introIdx == -1 {
		coll.Collect(diag.NewDiagnostic(diag.EExpectedToken, diag.SeverityError, location.Empty(0),
			"expected 'gitGraph'").WithKind(kind.GitGraph).Build())
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
		if strings.TrimSpace(text) == "}" || strings.TrimSpace(text) == "{" {
			continue
		}
		if node := r.parseStatement(text, offset, line); node != nil {
			root.AddChild(node)
		}
	}

	return ast.NewAst(root, source), coll.Result()
}

func (r *runner) parseStatement(text string, offset int, line linescan.Line) *ast.AstNode {
	m := commandRegex.FindStringSubmatch(text)
	if m == nil {
		r.coll.Collect(diag.NewDiagnostic(diag.EUnexpectedToken, diag.SeverityError,
			location.NewSpan(offset, line.End()), "unexpected statement in gitGraph").WithKind(kind.GitGraph).Build())
		return nil
	}

	command := strings.ToLower(m[1])
	if command == "switch" {
		command = "checkout"
	}
	rest := m[2]

	node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
	node.AddProperty("command", command)

	options := map[string]string{}
	for _, om := range optionRegex.FindAllStringSubmatch(rest, -1) {
		key := strings.ToLower(om[1])
		val := om[2]
		if val == "" {
			val = om[3]
		}
		options[key] = val
	}
	target := strings.TrimSpace(optionRegex.ReplaceAllString(rest, ""))

	switch command {
	case "commit", "cherry-pick":
		for _, key := range []string{"id", "msg", "tag", "order"} {
			if v, ok := options[key]; ok {
				node.AddProperty(key, v)
			}
		}
		if v, ok := options["type"]; ok {
			upper := strings.ToUpper(v)
			if !commitTypes[upper] {
				r.coll.Collect(diag.NewDiagnostic(diag.EInvalidValue, diag.SeverityError,
					location.NewSpan(offset, line.End()), "invalid commit type: "+v).WithKind(kind.GitGraph).Build())
			}
			node.AddProperty("commit_type", upper)
		}
	case "branch", "checkout", "merge":
		if target != "" {
			node.AddProperty("target", target)
		}
		if v, ok := options["order"]; ok {
			node.AddProperty("order", v)
		}
		if command == "merge" {
			if v, ok := options["id"]; ok {
				node.AddProperty("id", v)
			}
			if v, ok := options["tag"]; ok {
				node.AddProperty("tag", v)
			}
			if v, ok := options["type"]; ok {
				upper := strings.ToUpper(v)
				if !commitTypes[upper] {
					r.coll.Collect(diag.NewDiagnostic(diag.EInvalidValue, diag.SeverityError,
						location.NewSpan(offset, line.End()), "invalid commit type: "+v).WithKind(kind.GitGraph).Build())
				}
				node.AddProperty("commit_type", upper)
			}
		}
	}

	return node
}
