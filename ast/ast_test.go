package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/location"
)

func TestWalkVisitsPreOrder(t *testing.T) {
	root := ast.NewNode(ast.Root, location.NewSpan(0, 10))
	sub := ast.NewNode(ast.Subgraph, location.NewSpan(0, 8))
	leaf := ast.NewNodeWithText(ast.Node, location.NewSpan(1, 2), "A")
	sub.AddChild(leaf)
	root.AddChild(sub)

	tree := ast.NewAst(root, "graph TD\nA\n")

	var kinds []string
	var depths []int
	tree.Walk(func(n *ast.AstNode, depth int) {
		kinds = append(kinds, n.Kind.String())
		depths = append(depths, depth)
	})

	assert.Equal(t, []string{"root", "subgraph", "node"}, kinds)
	assert.Equal(t, []int{0, 1, 2}, depths)
}

func TestNodeCountIncludesFields(t *testing.T) {
	root := ast.NewNode(ast.Root, location.NewSpan(0, 5))
	edge := ast.NewNode(ast.Edge, location.NewSpan(0, 5))
	from := ast.NewNode(ast.Identifier, location.NewSpan(0, 1))
	edge.AddField("from", from)
	root.AddChild(edge)

	tree := ast.NewAst(root, "A-->B")
	assert.Equal(t, 3, tree.NodeCount())
}

func TestTextForSpanClampsToSource(t *testing.T) {
	tree := ast.NewAst(ast.NewNode(ast.Root, location.NewSpan(0, 1)), "short")
	assert.Equal(t, "short", tree.TextForSpan(location.NewSpan(0, 100)))
}

func TestWalkOnEmptyAst(t *testing.T) {
	tree := &ast.Ast{}
	count := 0
	tree.Walk(func(*ast.AstNode, int) { count++ })
	assert.Equal(t, 0, count)
}
