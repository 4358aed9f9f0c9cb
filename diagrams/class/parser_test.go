package class_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diagrams/class"
	"github.com/mermaidlint/mermaidlint/kind"
	"github.com/mermaidlint/mermaidlint/parser"
)

func TestInheritanceAndMembers(t *testing.T) {
	src := "classDiagram\n    Animal <|-- Dog\n    class Animal {\n        +String name\n        +makeSound()\n    }"
	tree, diags := class.New(kind.Class).Parse(src, config.Configuration{})
	require.True(t, parser.Ok(diags))

	rel := tree.Root.FindChild(ast.Relationship)
	require.NotNil(t, rel)
	assert.Equal(t, "inheritance", mustProp(t, rel, "relation_type"))
	assert.Equal(t, "Animal", mustProp(t, rel, "from"))
	assert.Equal(t, "Dog", mustProp(t, rel, "to"))

	cls := tree.Root.FindChild(ast.Class)
	require.NotNil(t, cls)
	members := cls.Children
	require.Len(t, members, 2)
	assert.Equal(t, "public", mustProp(t, members[0], "visibility"))
	assert.Equal(t, "public", mustProp(t, members[1], "visibility"))
	assert.Equal(t, ast.Method, members[1].Kind)
}

func TestCardinalityAndLabel(t *testing.T) {
	src := "classDiagram\n    A \"1\" -- \"*\" B : owns"
	tree, diags := class.New(kind.Class).Parse(src, config.Configuration{})
	require.True(t, parser.Ok(diags))

	rel := tree.Root.FindChild(ast.Relationship)
	require.NotNil(t, rel)
	assert.Equal(t, "1", mustProp(t, rel, "cardinality_from"))
	assert.Equal(t, "*", mustProp(t, rel, "cardinality_to"))
	assert.Equal(t, "owns", mustProp(t, rel, "label"))
}

func mustProp(t *testing.T, n *ast.AstNode, name string) string {
	t.Helper()
	v, ok := n.GetProperty(name)
	require.True(t, ok, "missing property %q", name)
	return v
}
