package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mermaidlint/mermaidlint/lex"
)

func TestReadIdentifier(t *testing.T) {
	c := lex.NewCursor("hello123 world")
	ident, ok := lex.ReadIdentifier(c)
	require.True(t, ok)
	assert.Equal(t, "hello123", ident)
}

func TestReadIdentifierFailsOnDigitStart(t *testing.T) {
	c := lex.NewCursor("123abc")
	_, ok := lex.ReadIdentifier(c)
	assert.False(t, ok)
}

func TestReadNumber(t *testing.T) {
	c := lex.NewCursor("123.45 abc")
	num, ok := lex.ReadNumber(c)
	require.True(t, ok)
	assert.Equal(t, "123.45", num)
}

func TestReadNumberIntegerOnly(t *testing.T) {
	c := lex.NewCursor("42,")
	num, ok := lex.ReadNumber(c)
	require.True(t, ok)
	assert.Equal(t, "42", num)
}

func TestReadQuotedString(t *testing.T) {
	c := lex.NewCursor(`"hello world" rest`)
	s, err := lex.ReadQuotedString(c, '"')
	require.NoError(t, err)
	assert.Equal(t, `"hello world"`, s)
}

func TestReadQuotedStringHandlesEscapes(t *testing.T) {
	c := lex.NewCursor(`"a\"b" rest`)
	s, err := lex.ReadQuotedString(c, '"')
	require.NoError(t, err)
	assert.Equal(t, `"a\"b"`, s)
}

func TestReadQuotedStringUnterminated(t *testing.T) {
	c := lex.NewCursor(`"no closing quote`)
	_, err := lex.ReadQuotedString(c, '"')
	assert.ErrorIs(t, err, lex.ErrUnterminatedString)
}

func TestReadQuotedStringRejectsEmbeddedNewline(t *testing.T) {
	c := lex.NewCursor("\"line1\nline2\"")
	_, err := lex.ReadQuotedString(c, '"')
	assert.ErrorIs(t, err, lex.ErrNewlineInString)
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, lex.IsIdentifier("foo_bar2"))
	assert.False(t, lex.IsIdentifier("2foo"))
	assert.False(t, lex.IsIdentifier(""))
}
