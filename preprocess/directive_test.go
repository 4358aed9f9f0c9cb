package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mermaidlint/mermaidlint/preprocess"
)

func TestParseInitDirective(t *testing.T) {
	d, ok := preprocess.ParseDirective(`%%{init: {"theme": "dark"}}%%`)
	require.True(t, ok)
	assert.Equal(t, preprocess.DirectiveInit, d.Type)
	assert.NotEmpty(t, d.RawArgs)
}

func TestParseWrapDirective(t *testing.T) {
	d, ok := preprocess.ParseDirective("%%{wrap}%%")
	require.True(t, ok)
	assert.Equal(t, preprocess.DirectiveWrap, d.Type)
}

func TestParseInitializeDirective(t *testing.T) {
	d, ok := preprocess.ParseDirective(`%%{initialize: {"logLevel": 1}}%%`)
	require.True(t, ok)
	assert.Equal(t, preprocess.DirectiveInit, d.Type)
}

func TestExtractDirectives(t *testing.T) {
	text := "%%{init: {\"flowchart\": {\"defaultRenderer\": \"elk\"}}}%%\n%%{wrap}%%\ngraph TD\n    A --> B\n"
	result := preprocess.ExtractDirectives(text)

	assert.True(t, result.Wrap)
	assert.Equal(t, "elk", result.Config.Flowchart.DefaultRenderer)
	assert.Contains(t, result.Text, "graph TD")
	assert.NotContains(t, result.Text, "%%{")
}

func TestRemoveDirectives(t *testing.T) {
	out := preprocess.RemoveDirectives("%%{wrap}%%\ngraph TD\n    A --> B")
	assert.NotContains(t, out, "%%{")
	assert.Contains(t, out, "graph TD")
}

func TestMultipleInitDirectivesMergeRightBiased(t *testing.T) {
	text := "%%{init: {\"wrap\": true}}%%\n%%{init: {\"flowchart\": {\"defaultRenderer\": \"dagre-wrapper\"}}}%%\ngraph TD\n"
	result := preprocess.ExtractDirectives(text)

	assert.True(t, result.Config.Wrap)
	assert.Equal(t, "dagre-wrapper", result.Config.Flowchart.DefaultRenderer)
}
