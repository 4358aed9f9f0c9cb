package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mermaidlint/mermaidlint/location"
)

func TestLineIndexPosition(t *testing.T) {
	src := "graph TD\n    A --> B\n"
	li := location.NewLineIndex(src)

	p := li.Position(0)
	assert.Equal(t, location.Position{Line: 1, Column: 1, Offset: 0}, p)

	p = li.Position(9)
	assert.Equal(t, 2, p.Line)
	assert.Equal(t, 1, p.Column)
}

func TestLineIndexPositionClampsOutOfRange(t *testing.T) {
	li := location.NewLineIndex("abc")
	p := li.Position(1000)
	assert.Equal(t, 3, p.Offset)
}

func TestLineIndexLine(t *testing.T) {
	src := "line one\nline two\nline three"
	li := location.NewLineIndex(src)

	assert.Equal(t, "line one", li.Line(1))
	assert.Equal(t, "line two", li.Line(2))
	assert.Equal(t, "line three", li.Line(3))
	assert.Equal(t, "", li.Line(4))
	assert.Equal(t, 3, li.LineCount())
}

func TestLineIndexSpan(t *testing.T) {
	src := "a\nbb\nccc"
	li := location.NewLineIndex(src)
	s := location.NewSpan(5, 8)
	p := li.Span(s)
	assert.Equal(t, 3, p.Line)
	assert.Equal(t, 1, p.Column)
}

func TestLineIndexSameLineWithinRun(t *testing.T) {
	src := "abcdefgh\n"
	li := location.NewLineIndex(src)
	p1 := li.Position(2)
	p2 := li.Position(6)
	assert.Equal(t, p1.Line, p2.Line)
}
