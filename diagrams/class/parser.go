// Package class implements the grammar for classDiagram / classDiagram-v2:
// class declarations with member blocks, relationships, namespaces, and
// the handful of cosmetic statements described in §4.6.3.
package class

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

// Parser implements parser.Diagram for classDiagram/classDiagram-v2. The
// reported DiagramKind (for tagging diagnostics) is fixed at construction
// since both variants share this one grammar.
type Parser struct {
	kind kind.DiagramKind
}

// New returns a class-diagram parser tagging diagnostics with k.
func New(k kind.DiagramKind) Parser { return Parser{kind: k} }

var introducerRegex = regexp.MustCompile(`(?i)^classDiagram(-v2)?\b`)

var (
	classHeaderRegex = regexp.MustCompile(`(?i)^class\s+([\w$]+)\s*(?:<<\s*(\w+)\s*>>)?\s*(?:~[^~]*~)?\s*(\{)?\s*$`)
	namespaceRegex   = regexp.MustCompile(`(?i)^namespace\s+([\w.]+)\s*(\{)?\s*$`)
	stereotypeRegex  = regexp.MustCompile(`^<<\s*(\w+)\s*>>$`)
	relationRegex    = regexp.MustCompile(`^"?([\w][\w-]*)"?\s*(?:"([^"]*)")?\s*(<\|--|--\|>|<\|\.\.|\.\.\|>|<\.\.|\.\.>|\*--|--\*|o--|--o|--|\.\.)\s*(?:"([^"]*)")?\s*"?([\w][\w-]*)"?\s*(?::\s*(.*))?$`)
	noteForRegex     = regexp.MustCompile(`(?i)^note\s+for\s+(\S+)\s*:\s*(.*)$`)
	notePosRegex     = regexp.MustCompile(`(?i)^note\s+(left of|right of)\s+(\S+)\s*:\s*(.*)$`)
	cosmeticRegex    = regexp.MustCompile(`(?i)^(direction|click|link|callback|cssClass|style)\b\s*(.*)$`)
)

var relationTypes = map[string]string{
	"<|--": "inheritance", "--|>": "inheritance",
	"*--": "composition", "--*": "composition",
	"o--": "aggregation", "--o": "aggregation",
	"<..": "dependency", "..>": "dependency",
	"<|..": "realization", "..|>": "realization",
	"--": "association", "..": "link",
}

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
				location.NewSpan(offset, offset+len(text)), "expected 'classDiagram'").WithKind(p.kind).Build())
			return nil, coll.Result()
		}
		introIdx = i
		break
	}
	if introIdx == -1 {
		coll.Collect(diag.NewDiagnostic(diag.EExpectedToken, diag.SeverityError, location.Empty(0),
			"expected 'classDiagram'").WithKind(p.kind).Build())
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

// parseBlock parses statements starting at idx until EOF or a lone "}"
// line, returning the parsed children and the index just past the
// consumed content.
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

		if m := classHeaderRegex.FindStringSubmatch(text); m != nil {
			node := ast.NewNode(ast.Class, location.NewSpan(offset, line.End()))
			node.AddProperty("name", m[1])
			if m[2] != "" {
				node.AddProperty("stereotype", m[2])
			}
			if m[3] == "{" {
				members, endIdx := r.parseClassBody(idx + 1)
				node.Children = append(node.Children, members...)
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
			continue
		}

		if m := namespaceRegex.FindStringSubmatch(text); m != nil {
			node := ast.NewNode(ast.Subgraph, location.NewSpan(offset, line.End()))
			node.AddProperty("id", m[1])
			var children []*ast.AstNode
			endIdx := idx + 1
			if m[2] == "{" {
				children, endIdx = r.parseBlock(idx + 1)
			}
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

// parseClassBody parses member lines inside a class's { } block.
func (r *runner) parseClassBody(idx int) ([]*ast.AstNode, int) {
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
		if m := stereotypeRegex.FindStringSubmatch(text); m != nil {
			node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
			node.AddProperty("type", "stereotype")
			node.AddProperty("value", m[1])
			out = append(out, node)
			idx++
			continue
		}
		out = append(out, r.parseMember(text, offset, line))
		idx++
	}
	return out, len(r.lines)
}

var visibilityMap = map[byte]string{
	'+': "public", '-': "private", '#': "protected", '~': "package",
}

// parseMember parses one member line: "[visibility][$]type? name(params)?
// [: returnType][*]" per §4.6.3. A "(" anywhere marks it a Method.
func (r *runner) parseMember(text string, offset int, line linescan.Line) *ast.AstNode {
	body := text
	var visibility string
	if len(body) > 0 {
		if v, ok := visibilityMap[body[0]]; ok {
			visibility = v
			body = body[1:]
		}
	}
	isStatic := false
	body = strings.TrimLeft(body, " ")
	if strings.HasPrefix(body, "$") {
		isStatic = true
		body = body[1:]
	}
	isAbstract := false
	if strings.HasSuffix(strings.TrimSpace(body), "*") {
		isAbstract = true
		body = strings.TrimSuffix(strings.TrimSpace(body), "*")
	}

	var node *ast.AstNode
	if i := strings.Index(body, "("); i >= 0 {
		j := strings.Index(body, ")")
		name := strings.TrimSpace(body[:i])
		var params, returnType string
		if j > i {
			params = strings.TrimSpace(body[i+1 : j])
			rest := strings.TrimSpace(body[j+1:])
			if strings.HasPrefix(rest, ":") {
				returnType = strings.TrimSpace(rest[1:])
			}
		}
		node = ast.NewNode(ast.Method, location.NewSpan(offset, line.End()))
		node.AddProperty("name", name)
		node.AddProperty("params", params)
		if returnType != "" {
			node.AddProperty("return_type", returnType)
		}
	} else {
		fields := strings.Fields(body)
		name := body
		var typ string
		if len(fields) == 2 {
			typ, name = fields[0], fields[1]
		} else if len(fields) > 2 {
			typ, name = strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
		}
		node = ast.NewNode(ast.Attribute, location.NewSpan(offset, line.End()))
		node.AddProperty("name", strings.TrimSpace(name))
		if typ != "" {
			node.AddProperty("type", typ)
		}
	}
	if visibility != "" {
		node.AddProperty("visibility", visibility)
	}
	if isStatic {
		node.AddProperty("static", "true")
	}
	if isAbstract {
		node.AddProperty("abstract", "true")
	}
	return node
}

func (r *runner) parseStatement(text string, offset int, line linescan.Line) *ast.AstNode {
	switch {
	case noteForRegex.MatchString(text):
		m := noteForRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Note, location.NewSpan(offset, line.End()))
		node.AddProperty("target", m[1])
		node.AddProperty("text", m[2])
		return node

	case notePosRegex.MatchString(text):
		m := notePosRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Note, location.NewSpan(offset, line.End()))
		node.AddProperty("position", strings.ToLower(m[1]))
		node.AddProperty("target", m[2])
		node.AddProperty("text", m[3])
		return node

	case cosmeticRegex.MatchString(text):
		m := cosmeticRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Statement, location.NewSpan(offset, line.End()))
		node.AddProperty("type", strings.ToLower(m[1]))
		node.AddProperty("text", strings.TrimSpace(m[2]))
		return node

	case relationRegex.MatchString(text):
		// Groups: 1=from 2=cardinality_from 3=relation 4=cardinality_to 5=to 6=label.
		m := relationRegex.FindStringSubmatch(text)
		node := ast.NewNode(ast.Relationship, location.NewSpan(offset, line.End()))
		node.AddProperty("from", m[1])
		node.AddProperty("to", m[5])
		node.AddProperty("relation_type", relationTypes[m[3]])
		if m[2] != "" {
			node.AddProperty("cardinality_from", m[2])
		}
		if m[4] != "" {
			node.AddProperty("cardinality_to", m[4])
		}
		if m[6] != "" {
			node.AddProperty("label", strings.TrimSpace(m[6]))
		}
		return node
	}

	r.fail(diag.EUnexpectedToken, location.NewSpan(offset, line.End()), "unexpected statement in classDiagram")
	return nil
}

func (r *runner) fail(code diag.Code, span location.Span, msg string) {
	r.coll.Collect(diag.NewDiagnostic(code, diag.SeverityError, span, msg).WithKind(r.kind).Build())
}
