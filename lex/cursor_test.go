package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mermaidlint/mermaidlint/lex"
)

func TestCursorAdvance(t *testing.T) {
	c := lex.NewCursor("hello")

	r, ok := c.Advance()
	require.True(t, ok)
	assert.Equal(t, 'h', r)

	r, ok = c.Advance()
	require.True(t, ok)
	assert.Equal(t, 'e', r)
	assert.Equal(t, 2, c.Offset())

	_, col := c.Position()
	assert.Equal(t, 3, col)
}

func TestCursorNewlineResetsColumn(t *testing.T) {
	c := lex.NewCursor("a\nb")
	c.Advance()
	c.Advance()

	line, col := c.Position()
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestCursorPeekDoesNotConsume(t *testing.T) {
	c := lex.NewCursor("abc")

	r, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	r, ok = c.Peek()
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	c.Advance()
	r, ok = c.Peek()
	require.True(t, ok)
	assert.Equal(t, 'b', r)
}

func TestAdvanceWhile(t *testing.T) {
	c := lex.NewCursor("aaabbb")

	result := c.AdvanceWhile(func(r rune) bool { return r == 'a' })
	assert.Equal(t, "aaa", result)

	r, _ := c.Peek()
	assert.Equal(t, 'b', r)
}

func TestConsumeStrAdvancesPastMatch(t *testing.T) {
	c := lex.NewCursor("-->rest")
	assert.True(t, c.ConsumeStr("-->"))
	assert.Equal(t, "rest", c.Remaining())
}

func TestConsumeStrFailsOnMismatch(t *testing.T) {
	c := lex.NewCursor("==>rest")
	assert.False(t, c.ConsumeStr("-->"))
	assert.Equal(t, "==>rest", c.Remaining())
}

func TestSpanFromAndTextForSpan(t *testing.T) {
	c := lex.NewCursor("graph TD")
	start := c.Offset()
	c.AdvanceWhile(func(r rune) bool { return r != ' ' })
	span := c.SpanFrom(start)

	assert.Equal(t, "graph", c.TextForSpan(span))
}

func TestIsEOF(t *testing.T) {
	c := lex.NewCursor("a")
	assert.False(t, c.IsEOF())
	c.Advance()
	assert.True(t, c.IsEOF())
}
