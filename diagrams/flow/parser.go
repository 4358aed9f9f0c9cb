// Package flow implements the shared grammar for the flowchart family:
// Flowchart (legacy "graph"), FlowchartV2 ("flowchart"), and FlowchartElk.
// All three kinds dispatch to the same Parser; the kind only affects which
// renderer the caller eventually picks, not the grammar itself.
package flow

import (
	"strings"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diag"
	"github.com/mermaidlint/mermaidlint/kind"
	"github.com/mermaidlint/mermaidlint/lex"
	"github.com/mermaidlint/mermaidlint/location"
)

// Parser implements parser.Diagram for the flow family.
type Parser struct{}

// New returns a flow-family parser.
func New() Parser { return Parser{} }

// bailout unwinds a single statement back to its caller on a fatal local
// error; the caller recovers and skips to the next newline. This mirrors
// the "record a diagnostic, advance to the next newline" recovery rule
// §4.6 describes, without threading an error return through every private
// helper in the recursive-descent chain.
type bailout struct{}

type state struct {
	cur    *lex.Cursor
	coll   *diag.Collector
	kind   kind.DiagramKind
	source string
}

func (s *state) fail(code diag.Code, span location.Span, msg string) {
	s.coll.Collect(diag.NewDiagnostic(code, diag.SeverityError, span, msg).WithKind(s.kind).Build())
	panic(bailout{})
}

// Parse implements parser.Diagram.
func (p Parser) Parse(source string, _ config.Configuration) (*ast.Ast, []diag.Diagnostic) {
	return parse(source, kind.FlowchartV2)
}

// ParseAs runs the grammar tagging diagnostics with the given concrete
// flow-family kind (Flowchart, FlowchartV2, or FlowchartElk), so the
// orchestrator can reuse one grammar across all three dispatch entries.
func ParseAs(k kind.DiagramKind) func(source string, cfg config.Configuration) (*ast.Ast, []diag.Diagnostic) {
	return func(source string, _ config.Configuration) (*ast.Ast, []diag.Diagnostic) {
		return parse(source, k)
	}
}

func parse(source string, k kind.DiagramKind) (*ast.Ast, []diag.Diagnostic) {
	coll := diag.NewCollector()
	cur := lex.NewCursor(source)
	s := &state{cur: cur, coll: coll, kind: k, source: source}

	cur.SkipWhitespace()
	start := cur.Offset()
	word, ok := readBareWord(cur)
	if !ok || (!strings.EqualFold(word, "graph") && !strings.EqualFold(word, "flowchart")) {
		coll.Collect(diag.NewDiagnostic(diag.EExpectedToken, diag.SeverityError, location.NewSpan(start, cur.Offset()),
			"expected 'graph' or 'flowchart'").WithKind(k).Build())
		return nil, coll.Result()
	}

	root := ast.NewNode(ast.Root, location.NewSpan(0, len(source)))
	decl := ast.NewNode(ast.DiagramDeclaration, location.NewSpan(start, cur.Offset()))
	decl.AddProperty("direction", readDirection(cur))
	root.AddChild(decl)

	skipStatementSeparators(cur)
	for !cur.IsEOF() {
		func() {
			defer func() {
				if r := recover(); r != nil {
					if _, ok := r.(bailout); !ok {
						panic(r)
					}
					recoverToNextLine(cur)
				}
			}()
			if node := parseStatement(s); node != nil {
				root.AddChild(node)
			}
		}()
		skipStatementSeparators(cur)
	}

	return ast.NewAst(root, source), coll.Result()
}

// readBareWord reads an identifier-shaped token without requiring a leading
// letter/underscore restriction beyond the common rule, used for the
// introducer keyword which is always ASCII alphabetic.
func readBareWord(cur *lex.Cursor) (string, bool) {
	start := cur.Offset()
	cur.AdvanceWhile(func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-'
	})
	if cur.Offset() == start {
		return "", false
	}
	return cur.Source()[start:cur.Offset()], true
}

var directionTokens = map[string]string{
	"tb": "TB", "td": "TB", "bt": "BT", "lr": "LR", "rl": "RL",
}

// readDirection consumes the remainder of the declaration line looking for
// a direction token; it defaults to TopToBottom ("TB") if none is present.
func readDirection(cur *lex.Cursor) string {
	cur.SkipHorizontalWhitespace()
	save := cur.Offset()
	word, ok := readBareWord(cur)
	if ok {
		if canon, isDir := directionTokens[strings.ToLower(word)]; isDir {
			return canon
		}
	}
	// Not a direction token; leave the cursor where it was so the rest of
	// the line is parsed as the next statement.
	rewind(cur, save)
	return "TB"
}

// rewind resets cur to a previously recorded byte offset by replaying the
// scan from the start of source. Cursor has no native seek; flow sources
// are short enough that this is cheap in practice. Callers are
// readDirection's one-token lookahead, parseSubgraph and
// parseEdgeStatement.
func rewind(cur *lex.Cursor, offset int) {
	*cur = *lex.NewCursor(cur.Source())
	for cur.Offset() < offset {
		cur.Advance()
	}
}

func skipStatementSeparators(cur *lex.Cursor) {
	cur.AdvanceWhile(func(r rune) bool {
		return r == '\n' || r == ';' || r == ' ' || r == '\t' || r == '\r'
	})
}

func recoverToNextLine(cur *lex.Cursor) {
	cur.AdvanceWhile(func(r rune) bool { return r != '\n' })
}

// parseStatement parses one flow statement: a keyword statement (subgraph,
// direction, classDef, style, click, linkStyle, end) or a node/edge-chain
// statement. A bare "end" yields a Statement node with type "end"; it is
// never nil.
func parseStatement(s *state) *ast.AstNode {
	cur := s.cur
	cur.SkipHorizontalWhitespace()
	start := cur.Offset()

	if word, ok := peekKeyword(cur); ok {
		switch strings.ToLower(word) {
		case "subgraph":
			return parseSubgraph(s)
		case "end":
			cur.AdvanceWhile(func(r rune) bool { return !atEndOfStatement(r) })
			node := ast.NewNode(ast.Statement, cur.SpanFrom(start))
			node.AddProperty("type", "end")
			return node
		case "direction":
			cur.ConsumeStr(word)
			cur.SkipHorizontalWhitespace()
			valStart := cur.Offset()
			cur.AdvanceWhile(func(r rune) bool { return !atEndOfStatement(r) })
			node := ast.NewNode(ast.Statement, cur.SpanFrom(start))
			node.AddProperty("type", "direction")
			node.AddProperty("value", strings.TrimSpace(cur.Source()[valStart:cur.Offset()]))
			return node
		case "classdef", "style", "click", "linkstyle":
			return parseKeywordStatement(s, word, start)
		}
	}

	return parseEdgeStatement(s, start)
}

// peekKeyword reports the bare word at the cursor's position, without
// consuming it. The word is the run of ASCII letters and digits at the
// cursor, so it always ends at EOF or at a byte that is not one of those —
// "styled" is never mistaken for the "style" keyword.
func peekKeyword(cur *lex.Cursor) (string, bool) {
	rest := cur.Remaining()
	end := 0
	for end < len(rest) && isWordByte(rest[end]) {
		end++
	}
	if end == 0 {
		return "", false
	}
	word := rest[:end]
	switch strings.ToLower(word) {
	case "subgraph", "end", "direction", "classdef", "style", "click", "linkstyle":
		return word, true
	default:
		return "", false
	}
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// parseKeywordStatement handles classDef/style/click/linkStyle: these are
// not further validated by this grammar (§4.6.1), only captured verbatim.
func parseKeywordStatement(s *state, keyword string, start int) *ast.AstNode {
	cur := s.cur
	cur.ConsumeStr(keyword)
	cur.AdvanceWhile(func(r rune) bool { return !atEndOfStatement(r) })
	text := strings.TrimSpace(cur.Source()[start:cur.Offset()])

	var node *ast.AstNode
	switch strings.ToLower(keyword) {
	case "classdef":
		node = ast.NewNode(ast.ClassDef, cur.SpanFrom(start))
	case "style":
		node = ast.NewNode(ast.Style, cur.SpanFrom(start))
	default:
		node = ast.NewNode(ast.Statement, cur.SpanFrom(start))
		node.AddProperty("type", strings.ToLower(keyword))
	}
	node.AddProperty("text", text)
	return node
}

// parseSubgraph parses "subgraph [id] [text]" followed by nested statements
// and a terminating "end".
func parseSubgraph(s *state) *ast.AstNode {
	cur := s.cur
	start := cur.Offset()
	cur.ConsumeStr("subgraph")
	cur.SkipHorizontalWhitespace()

	headerStart := cur.Offset()
	cur.AdvanceWhile(func(r rune) bool { return r != '\n' })
	header := strings.TrimSpace(cur.Source()[headerStart:cur.Offset()])

	node := ast.NewNode(ast.Subgraph, location.Span{Start: start, End: cur.Offset()})
	id, label := splitSubgraphHeader(header)
	if id != "" {
		node.AddProperty("id", id)
	}
	if label != "" {
		node.AddProperty("label", label)
	}

	skipStatementSeparators(cur)
	for !cur.IsEOF() {
		save := cur.Offset()
		cur.SkipHorizontalWhitespace()
		if word, ok := peekKeyword(cur); ok && strings.EqualFold(word, "end") {
			cur.AdvanceWhile(func(r rune) bool { return !atEndOfStatement(r) })
			sentinel := ast.NewNode(ast.Statement, cur.SpanFrom(save))
			sentinel.AddProperty("type", "end")
			node.AddChild(sentinel)
			node.Span.End = cur.Offset()
			return node
		}
		rewind(cur, save)

		var child *ast.AstNode
		func() {
			defer func() {
				if r := recover(); r != nil {
					if _, ok := r.(bailout); !ok {
						panic(r)
					}
					recoverToNextLine(cur)
				}
			}()
			child = parseStatement(s)
		}()
		if child != nil {
			node.AddChild(child)
		}
		skipStatementSeparators(cur)
	}
	node.Span.End = cur.Offset()
	return node
}

// splitSubgraphHeader separates a subgraph header into its optional
// identifier and label: "id" alone, "id[Title]", "id(Title)", or a bare
// phrase used as the label with no explicit id.
func splitSubgraphHeader(header string) (id, label string) {
	if header == "" {
		return "", ""
	}

	bestIdx, bestLen := -1, 0
	var best delimiterPair
	for _, p := range delimiterPairs {
		if idx := strings.Index(header, p.open); idx >= 0 {
			if bestIdx == -1 || idx < bestIdx || (idx == bestIdx && len(p.open) > bestLen) {
				bestIdx, bestLen, best = idx, len(p.open), p
			}
		}
	}
	if bestIdx >= 0 {
		idPart := strings.TrimSpace(header[:bestIdx])
		rest := header[bestIdx+bestLen:]
		if idx := strings.LastIndex(rest, best.close); idx >= 0 {
			return idPart, unquoteLabel(strings.TrimSpace(rest[:idx]))
		}
	}

	fields := strings.Fields(header)
	if len(fields) == 1 && lex.IsIdentifier(fields[0]) {
		return fields[0], ""
	}
	return "", header
}

// parseEdgeStatement parses a node reference, optionally followed by a
// chain of link+node pairs, building a single Edge statement for a chain
// or a bare Node statement when no link follows.
func parseEdgeStatement(s *state, start int) *ast.AstNode {
	cur := s.cur
	first := parseNodeRef(s)

	type link struct {
		ltype LinkType
		label string
		has   bool
		node  *ast.AstNode
		span  location.Span
	}
	var links []link

	for {
		save := cur.Offset()
		cur.SkipHorizontalWhitespace()
		ltype, label, has, ok := readLink(cur)
		if !ok {
			rewind(cur, save)
			break
		}
		cur.SkipHorizontalWhitespace()
		if pipeLabel, hasPipe := readPipeLabel(cur); hasPipe {
			label, has = pipeLabel, pipeLabel != ""
		}
		cur.SkipHorizontalWhitespace()
		next := parseNodeRef(s)
		links = append(links, link{ltype: ltype, label: label, has: has, node: next, span: cur.SpanFrom(save)})
	}

	if len(links) == 0 {
		return first
	}

	var tail *ast.AstNode
	for i := len(links) - 1; i >= 0; i-- {
		e := ast.NewNode(ast.Edge, links[i].span)
		e.AddProperty("link_type", links[i].ltype.String())
		if links[i].has {
			e.AddProperty("label", links[i].label)
		}
		e.AddField("to", links[i].node)
		if tail != nil {
			e.AddChild(tail)
		}
		tail = e
	}

	outer := ast.NewNode(ast.Edge, cur.SpanFrom(start))
	outer.AddField("from", first)
	outer.AddChild(tail)
	return outer
}

// parseNodeRef parses a single node reference: an identifier optionally
// followed by a shape delimiter pair enclosing a label. An empty label
// ("A[]", "A()", "A{}") is rejected with E301 at the opening delimiter.
func parseNodeRef(s *state) *ast.AstNode {
	cur := s.cur
	start := cur.Offset()

	id, ok := lex.ReadIdentifier(cur)
	if !ok {
		s.fail(diag.EParserError, location.Empty(start), "expected a node identifier")
	}

	shape := ShapeRectangle
	var label string
	hasLabel := false

	if pair, ok := matchOpener(statementBound(cur)); ok {
		openStart := cur.Offset()
		cur.ConsumeStr(pair.open)
		bound := statementBound(cur)
		idx := strings.Index(bound, pair.close)
		if idx < 0 {
			s.fail(diag.EParserError, cur.SpanFrom(openStart), "missing closing '"+pair.close+"' for node shape")
		}
		body := bound[:idx]
		if strings.TrimSpace(body) == "" {
			s.fail(diag.EParserError, cur.SpanFrom(openStart), "empty node shape body")
		}
		cur.ConsumeStr(body)
		cur.ConsumeStr(pair.close)
		shape = pair.shape
		label = unquoteLabel(strings.TrimSpace(body))
		hasLabel = true
	}

	node := ast.NewNodeWithText(ast.Node, cur.SpanFrom(start), id)
	node.AddProperty("id", id)
	node.AddProperty("shape", shape.String())
	if hasLabel {
		node.AddProperty("label", label)
	}
	return node
}

func atEndOfStatement(r rune) bool {
	return r == '\n' || r == ';'
}
