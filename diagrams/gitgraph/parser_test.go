package gitgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diagrams/gitgraph"
	"github.com/mermaidlint/mermaidlint/parser"
)

func TestCommitsBranchesAndMerge(t *testing.T) {
	src := "gitGraph\n    commit id: \"init\"\n    branch develop\n    checkout develop\n    commit tag: \"v0.1\" type: HIGHLIGHT\n    checkout main\n    merge develop order: 2"
	tree, diags := gitgraph.New().Parse(src, config.Configuration{})
	require.True(t, parser.Ok(diags))

	statements := tree.Root.ChildrenOfKind(ast.Statement)
	require.Len(t, statements, 6)

	assert.Equal(t, "commit", mustProp(t, statements[0], "command"))
	assert.Equal(t, "init", mustProp(t, statements[0], "id"))

	assert.Equal(t, "branch", mustProp(t, statements[1], "command"))
	assert.Equal(t, "develop", mustProp(t, statements[1], "target"))

	assert.Equal(t, "checkout", mustProp(t, statements[2], "command"))
	assert.Equal(t, "develop", mustProp(t, statements[2], "target"))

	assert.Equal(t, "v0.1", mustProp(t, statements[3], "tag"))
	assert.Equal(t, "HIGHLIGHT", mustProp(t, statements[3], "commit_type"))

	merge := statements[5]
	assert.Equal(t, "merge", mustProp(t, merge, "command"))
	assert.Equal(t, "develop", mustProp(t, merge, "target"))
	assert.Equal(t, "2", mustProp(t, merge, "order"))
}

func TestInvalidCommitTypeReportsDiagnostic(t *testing.T) {
	src := "gitGraph\n    commit type: WEIRD"
	_, diags := gitgraph.New().Parse(src, config.Configuration{})
	assert.False(t, parser.Ok(diags))
}

func mustProp(t *testing.T, n *ast.AstNode, name string) string {
	t.Helper()
	v, ok := n.GetProperty(name)
	require.True(t, ok, "missing property %q", name)
	return v
}
