package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/location"
)

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "edge", ast.Edge.String())
	assert.Equal(t, "my_custom_thing", ast.OtherKind("my_custom_thing").String())
}

func TestNodeKindIsOther(t *testing.T) {
	assert.False(t, ast.Edge.IsOther())
	assert.True(t, ast.OtherKind("anything").IsOther())
}

func TestIsContainer(t *testing.T) {
	assert.True(t, ast.Root.IsContainer())
	assert.True(t, ast.Subgraph.IsContainer())
	assert.True(t, ast.State.IsContainer())
	assert.False(t, ast.Edge.IsContainer())
	assert.False(t, ast.Label.IsContainer())
}

func TestAddChildAndQuery(t *testing.T) {
	root := ast.NewNode(ast.Root, location.NewSpan(0, 10))
	a := ast.NewNodeWithText(ast.Node, location.NewSpan(0, 1), "A")
	b := ast.NewNodeWithText(ast.Node, location.NewSpan(2, 3), "B")
	edge := ast.NewNode(ast.Edge, location.NewSpan(0, 3))

	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(edge)

	nodes := root.ChildrenOfKind(ast.Node)
	assert.Len(t, nodes, 2)
	assert.Equal(t, "A", nodes[0].Text)

	assert.Same(t, a, root.FindChild(ast.Node))
	assert.Nil(t, root.FindChild(ast.Message))
}

func TestFieldsAndProperties(t *testing.T) {
	edge := ast.NewNode(ast.Edge, location.NewSpan(0, 5))
	from := ast.NewNodeWithText(ast.Identifier, location.NewSpan(0, 1), "A")
	edge.AddField("from", from)
	edge.AddProperty("arrow", "-->")

	assert.Same(t, from, edge.GetField("from"))
	assert.Nil(t, edge.GetField("to"))

	v, ok := edge.GetProperty("arrow")
	assert.True(t, ok)
	assert.Equal(t, "-->", v)

	_, ok = edge.GetProperty("missing")
	assert.False(t, ok)
}

func TestNodeKindJSONRoundTrip(t *testing.T) {
	n := ast.NewNodeWithText(ast.Edge, location.NewSpan(1, 4), "-->")

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"edge"`)

	var got ast.AstNode
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, ast.Edge, got.Kind)
	assert.Equal(t, "-->", got.Text)
}

func TestOtherKindJSONRoundTrip(t *testing.T) {
	n := ast.NewNode(ast.OtherKind("gantt_task"), location.NewSpan(0, 1))
	data, err := json.Marshal(n)
	require.NoError(t, err)

	var got ast.AstNode
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "gantt_task", got.Kind.String())
	assert.True(t, got.Kind.IsOther())
}

func TestUnmarshalUnknownSlugBecomesOther(t *testing.T) {
	var k ast.NodeKind
	require.NoError(t, json.Unmarshal([]byte(`"something_new"`), &k))
	assert.True(t, k.IsOther())
	assert.Equal(t, "something_new", k.String())
}
