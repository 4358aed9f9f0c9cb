package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mermaidlint/mermaidlint/preprocess"
)

func TestNoFrontmatter(t *testing.T) {
	text := "graph TD\n    A --> B"
	result := preprocess.ExtractFrontmatter(text)

	assert.Equal(t, text, result.Text)
	assert.False(t, result.HasTitle)
}

func TestSimpleFrontmatter(t *testing.T) {
	text := "---\ntitle: Test Diagram\n---\ngraph TD\n    A --> B"
	result := preprocess.ExtractFrontmatter(text)

	assert.True(t, result.HasTitle)
	assert.Equal(t, "Test Diagram", result.Title)
	assert.True(t, len(result.Text) >= len("graph TD") && result.Text[:8] == "graph TD")
}

func TestFrontmatterWithConfig(t *testing.T) {
	text := "---\ntitle: My Diagram\nconfig:\n  flowchart:\n    defaultRenderer: elk\n---\ngraph TD\n    A --> B\n"
	result := preprocess.ExtractFrontmatter(text)

	assert.Equal(t, "My Diagram", result.Title)
	assert.Equal(t, "elk", result.Config.Flowchart.DefaultRenderer)
}

func TestFrontmatterWithDisplayMode(t *testing.T) {
	text := "---\ndisplayMode: compact\n---\ngantt\n    title Test"
	result := preprocess.ExtractFrontmatter(text)

	assert.True(t, result.HasDisplayMode)
	assert.Equal(t, "compact", result.DisplayMode)
}

func TestFrontmatterNotAtStart(t *testing.T) {
	text := "some text\n---\ntitle: Test\n---\ngraph TD"
	result := preprocess.ExtractFrontmatter(text)

	assert.Equal(t, text, result.Text)
	assert.False(t, result.HasTitle)
}
