package er_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diagrams/er"
	"github.com/mermaidlint/mermaidlint/parser"
)

func TestEntityWithAttributesAndRelationship(t *testing.T) {
	src := "erDiagram\n    CUSTOMER ||--o{ ORDER : places\n    CUSTOMER {\n        string name PK\n        string email\n    }"
	tree, diags := er.New().Parse(src, config.Configuration{})
	require.True(t, parser.Ok(diags))

	rel := tree.Root.FindChild(ast.Relationship)
	require.NotNil(t, rel)
	assert.Equal(t, "CUSTOMER", mustProp(t, rel, "from"))
	assert.Equal(t, "ORDER", mustProp(t, rel, "to"))
	assert.Equal(t, "exactly_one", mustProp(t, rel, "cardinality_from"))
	assert.Equal(t, "zero_or_more", mustProp(t, rel, "cardinality_to"))
	assert.Equal(t, "true", mustProp(t, rel, "identifying"))
	assert.Equal(t, "places", mustProp(t, rel, "label"))

	var entity *ast.AstNode
	for _, c := range tree.Root.Children {
		if c.Kind.String() == "entity" {
			entity = c
		}
	}
	require.NotNil(t, entity)
	require.Len(t, entity.Children, 2)
	assert.Equal(t, "PK", mustProp(t, entity.Children[0], "keys"))
}

func mustProp(t *testing.T, n *ast.AstNode, name string) string {
	t.Helper()
	v, ok := n.GetProperty(name)
	require.True(t, ok, "missing property %q", name)
	return v
}
