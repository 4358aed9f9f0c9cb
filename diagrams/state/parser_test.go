package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diagrams/state"
	"github.com/mermaidlint/mermaidlint/kind"
	"github.com/mermaidlint/mermaidlint/parser"
)

func TestStartEndTransitions(t *testing.T) {
	src := "stateDiagram-v2\n    [*] --> Idle\n    Idle --> Running : start\n    Running --> [*]"
	tree, diags := state.New(kind.StateDiagram).Parse(src, config.Configuration{})
	require.True(t, parser.Ok(diags))

	transitions := tree.Root.ChildrenOfKind(ast.Transition)
	require.Len(t, transitions, 3)
	assert.Equal(t, "[*]", mustProp(t, transitions[0], "from"))
	assert.Equal(t, "Idle", mustProp(t, transitions[0], "to"))
	assert.Equal(t, "start", mustProp(t, transitions[1], "label"))
	assert.Equal(t, "[*]", mustProp(t, transitions[2], "to"))
}

func TestCompositeStateBody(t *testing.T) {
	src := "stateDiagram-v2\n    state Outer {\n        [*] --> Inner\n    }"
	tree, diags := state.New(kind.StateDiagram).Parse(src, config.Configuration{})
	require.True(t, parser.Ok(diags))

	st := tree.Root.FindChild(ast.State)
	require.NotNil(t, st)
	assert.Equal(t, "Outer", mustProp(t, st, "id"))
	require.Len(t, st.ChildrenOfKind(ast.Transition), 1)
}

func mustProp(t *testing.T, n *ast.AstNode, name string) string {
	t.Helper()
	v, ok := n.GetProperty(name)
	require.True(t, ok, "missing property %q", name)
	return v
}
