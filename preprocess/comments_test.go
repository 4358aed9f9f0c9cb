package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mermaidlint/mermaidlint/preprocess"
)

func TestRemoveSingleComment(t *testing.T) {
	out := preprocess.RemoveComments("%% This is a comment\ngraph TD\n    A --> B")
	assert.NotContains(t, out, "comment")
	assert.Equal(t, "graph TD\n    A --> B", out[:len("graph TD\n    A --> B")])
}

func TestRemoveMultipleComments(t *testing.T) {
	text := "%% Comment 1\ngraph TD\n    %% Comment 2\n    A --> B\n    %% Comment 3\n    B --> C\n"
	out := preprocess.RemoveComments(text)

	assert.NotContains(t, out, "Comment")
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "A --> B")
}

func TestPreserveDirectivesWhileRemovingComments(t *testing.T) {
	text := "%%{init: {\"theme\": \"dark\"}}%%\n%% This is a comment\ngraph TD\n    A --> B\n"
	out := preprocess.RemoveComments(text)

	assert.Contains(t, out, "%%{init")
	assert.NotContains(t, out, "This is a comment")
}

func TestInlineCommentMarkerIsNotAComment(t *testing.T) {
	out := preprocess.RemoveComments("graph TD\n    A[\"%%test%%\"] --> B")
	assert.Contains(t, out, "%%test%%")
}

func TestCommentWithIndentation(t *testing.T) {
	out := preprocess.RemoveComments("graph TD\n    %% Indented comment\n    A --> B")
	assert.NotContains(t, out, "Indented comment")
	assert.Contains(t, out, "A --> B")
}

func TestNoComments(t *testing.T) {
	text := "graph TD\n    A --> B\n    B --> C"
	assert.Equal(t, text, preprocess.RemoveComments(text))
}
