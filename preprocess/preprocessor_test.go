package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mermaidlint/mermaidlint/preprocess"
)

func TestPreprocessSimple(t *testing.T) {
	result := preprocess.NewPreprocessor().Preprocess("graph TD\n    A --> B")

	assert.Equal(t, "graph TD\n    A --> B", result.Code)
	assert.False(t, result.HasTitle)
}

func TestPreprocessWithFrontmatter(t *testing.T) {
	result := preprocess.NewPreprocessor().Preprocess("---\ntitle: Test\n---\ngraph TD\n    A --> B")

	assert.Equal(t, "Test", result.Title)
	assert.Contains(t, result.Code, "graph TD")
}

func TestPreprocessWithDirectives(t *testing.T) {
	text := "%%{init: {\"flowchart\": {\"defaultRenderer\": \"elk\"}}}%%\ngraph TD\n    A --> B\n"
	result := preprocess.NewPreprocessor().Preprocess(text)

	assert.Equal(t, "elk", result.Config.Flowchart.DefaultRenderer)
	assert.Contains(t, result.Code, "graph TD")
}

func TestPreprocessWithComments(t *testing.T) {
	result := preprocess.NewPreprocessor().Preprocess("%% Comment\ngraph TD\n    %% Another comment\n    A --> B")

	assert.NotContains(t, result.Code, "Comment")
	assert.Contains(t, result.Code, "A --> B")
}

func TestPreprocessFull(t *testing.T) {
	text := "---\ntitle: Full Test\nconfig:\n  flowchart:\n    defaultRenderer: dagre-wrapper\n---\n%%{wrap}%%\n%% This is a comment\ngraph TD\n    A --> B\n"
	result := preprocess.NewPreprocessor().Preprocess(text)

	assert.Equal(t, "Full Test", result.Title)
	assert.True(t, result.Config.Wrap)
	assert.Equal(t, "dagre-wrapper", result.Config.Flowchart.DefaultRenderer)
	assert.NotContains(t, result.Code, "comment")
	assert.Contains(t, result.Code, "graph TD")
}

func TestPreprocessCRLFNormalization(t *testing.T) {
	result := preprocess.NewPreprocessor().Preprocess("graph TD\r\n    A --> B\r\n    B --> C")

	assert.NotContains(t, result.Code, "\r")
	assert.Contains(t, result.Code, "\n")
}

func TestPreprocessHTMLAttributeNormalization(t *testing.T) {
	text := "graph TD\n    A[\"<span class=\"foo\">text</span>\"] --> B\n"
	result := preprocess.NewPreprocessor().Preprocess(text)

	assert.Contains(t, result.Code, "class='foo'")
}

func TestPreprocessDisplayMode(t *testing.T) {
	result := preprocess.NewPreprocessor().Preprocess("---\ndisplayMode: compact\n---\ngantt\n    title Test")

	assert.Equal(t, "compact", result.Config.Gantt.DisplayMode)
}
