package journey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diagrams/journey"
	"github.com/mermaidlint/mermaidlint/parser"
)

func TestSectionsAndTasks(t *testing.T) {
	src := "journey\n    title My Day\n    section Go to work\n      Make tea: 5: Me\n      Go upstairs: 3: Me, Cat"
	tree, diags := journey.New().Parse(src, config.Configuration{})
	require.True(t, parser.Ok(diags))

	statements := tree.Root.ChildrenOfKind(ast.Statement)
	require.Len(t, statements, 4)

	var tasks []*ast.AstNode
	for _, s := range statements {
		if v, _ := s.GetProperty("type"); v == "task" {
			tasks = append(tasks, s)
		}
	}
	require.Len(t, tasks, 2)
	assert.Equal(t, "Make tea", mustProp(t, tasks[0], "name"))
	assert.Equal(t, "5", mustProp(t, tasks[0], "score"))
	assert.Equal(t, "Me", mustProp(t, tasks[0], "actors"))

	assert.Equal(t, "Go upstairs", mustProp(t, tasks[1], "name"))
	assert.Equal(t, "Me,Cat", mustProp(t, tasks[1], "actors"))
}

func TestMissingIntroducerFails(t *testing.T) {
	_, diags := journey.New().Parse("section Nope\n", config.Configuration{})
	assert.False(t, parser.Ok(diags))
}

func mustProp(t *testing.T, n *ast.AstNode, name string) string {
	t.Helper()
	v, ok := n.GetProperty(name)
	require.True(t, ok, "missing property %q", name)
	return v
}
