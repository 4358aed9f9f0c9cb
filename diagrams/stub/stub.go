// Package stub implements the dispatcher's fallback for DiagramKinds the
// classifier recognizes but which have no dedicated grammar yet: a minimal
// one-node AST and no diagnostics, per §4.6.
package stub

import (
	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diag"
	"github.com/mermaidlint/mermaidlint/kind"
	"github.com/mermaidlint/mermaidlint/location"
)

// Parser builds the stub AST for a single fixed DiagramKind.
type Parser struct {
	Kind kind.DiagramKind
}

// New returns a stub parser for k.
func New(k kind.DiagramKind) Parser {
	return Parser{Kind: k}
}

// Parse returns a single Root node carrying {"diagram_type": slug,
// "status": "stub"} and no diagnostics, regardless of source content.
func (p Parser) Parse(source string, _ config.Configuration) (*ast.Ast, []diag.Diagnostic) {
	root := ast.NewNode(ast.Root, location.NewSpan(0, len(source)))
	root.AddProperty("diagram_type", p.Kind.String())
	root.AddProperty("status", "stub")
	return ast.NewAst(root, source), nil
}
