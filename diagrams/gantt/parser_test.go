package gantt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diagrams/gantt"
	"github.com/mermaidlint/mermaidlint/parser"
)

func TestHeaderSectionAndTasks(t *testing.T) {
	src := "gantt\n    title Release Plan\n    dateFormat  YYYY-MM-DD\n    section Design\n    Spec : done, spec1, 2024-01-01, 3d\n    Build : crit, after spec1, 5d"
	tree, diags := gantt.New().Parse(src, config.Configuration{})
	require.True(t, parser.Ok(diags))

	statements := tree.Root.ChildrenOfKind(ast.Statement)
	require.True(t, len(statements) >= 4)

	var tasks []*ast.AstNode
	for _, s := range statements {
		if v, _ := s.GetProperty("type"); v == "task" {
			tasks = append(tasks, s)
		}
	}
	require.Len(t, tasks, 2)
	assert.Equal(t, "spec1", mustProp(t, tasks[0], "id"))
	assert.Equal(t, "3d", mustProp(t, tasks[0], "duration"))
	assert.Equal(t, "done", mustProp(t, tasks[0], "modifiers"))

	assert.Equal(t, "spec1", mustProp(t, tasks[1], "after"))
	assert.Equal(t, "5d", mustProp(t, tasks[1], "duration"))
}

func mustProp(t *testing.T, n *ast.AstNode, name string) string {
	t.Helper()
	v, ok := n.GetProperty(name)
	require.True(t, ok, "missing property %q", name)
	return v
}
