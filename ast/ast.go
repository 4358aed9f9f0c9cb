package ast

import "github.com/mermaidlint/mermaidlint/location"

// Ast is the root of a parsed diagram: an owned copy of the processed
// source (post-normalization, post-entity-encoding) plus the tree built
// over it. Every [location.Span] in the tree indexes into this copy, not
// into the caller's original string, so the Ast remains valid even if the
// caller mutates or discards the input after parsing.
type Ast struct {
	Root   *AstNode `json:"root" yaml:"root"`
	source string
}

// NewAst wraps a root node and the processed source it was built over.
func NewAst(root *AstNode, source string) *Ast {
	return &Ast{Root: root, source: source}
}

// Source returns the processed source the tree's spans index into.
func (a *Ast) Source() string {
	return a.source
}

// TextForSpan slices the owned source by span, clamping to its bounds.
func (a *Ast) TextForSpan(span location.Span) string {
	return span.Text(a.source)
}

// Walk calls visit for every node in the tree, pre-order, passing each
// node's depth (the root is depth 0).
func (a *Ast) Walk(visit func(node *AstNode, depth int)) {
	if a.Root == nil {
		return
	}
	walk(a.Root, 0, visit)
}

func walk(n *AstNode, depth int, visit func(*AstNode, int)) {
	visit(n, depth)
	for _, c := range n.Children {
		walk(c, depth+1, visit)
	}
	for _, f := range n.Fields {
		walk(f, depth+1, visit)
	}
}

// NodeCount returns the total number of nodes in the tree, including
// children reached only through Fields.
func (a *Ast) NodeCount() int {
	count := 0
	a.Walk(func(*AstNode, int) { count++ })
	return count
}
