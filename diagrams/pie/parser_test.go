package pie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diagrams/pie"
	"github.com/mermaidlint/mermaidlint/parser"
)

func TestShowDataAndSlices(t *testing.T) {
	src := "pie showData\n    title Pets adopted\n    \"Dogs\" : 42.5\n    \"Cats\" : 30"
	tree, diags := pie.New().Parse(src, config.Configuration{})
	require.True(t, parser.Ok(diags))

	decl := tree.Root.FindChild(ast.DiagramDeclaration)
	require.NotNil(t, decl)
	assert.Equal(t, "true", mustProp(t, decl, "show_data"))

	var slices []*ast.AstNode
	for _, s := range tree.Root.ChildrenOfKind(ast.Statement) {
		if v, _ := s.GetProperty("type"); v == "slice" {
			slices = append(slices, s)
		}
	}
	require.Len(t, slices, 2)
	assert.Equal(t, "Dogs", mustProp(t, slices[0], "label"))
	assert.Equal(t, "42.5", mustProp(t, slices[0], "value"))
}

func TestMissingIntroducerFails(t *testing.T) {
	_, diags := pie.New().Parse("\"Dogs\" : 1\n", config.Configuration{})
	assert.False(t, parser.Ok(diags))
}

func mustProp(t *testing.T, n *ast.AstNode, name string) string {
	t.Helper()
	v, ok := n.GetProperty(name)
	require.True(t, ok, "missing property %q", name)
	return v
}
