// Package lex provides character-level scanning primitives: a rune cursor
// that tracks byte offset plus line/column, and a handful of common
// token-shape readers. The flow grammar scans with them; the other
// diagram grammars match lines with regular expressions instead.
package lex

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mermaidlint/mermaidlint/location"
)

// Token pairs a lexical kind with its source span and literal text. T is
// the per-grammar token kind type (typically a small closed enum).
type Token[T any] struct {
	Kind T
	Span location.Span
	Text string
}

// NewToken constructs a Token.
func NewToken[T any](kind T, span location.Span, text string) Token[T] {
	return Token[T]{Kind: kind, Span: span, Text: text}
}

// Cursor scans a source string rune by rune, tracking byte offset and
// 1-based line/column as it goes. The flow grammar's parser drives one
// directly.
type Cursor struct {
	source string
	offset int
	line   int
	column int
}

// NewCursor creates a cursor positioned at the start of source.
func NewCursor(source string) *Cursor {
	return &Cursor{source: source, line: 1, column: 1}
}

// Source returns the full source text being scanned.
func (c *Cursor) Source() string {
	return c.source
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.offset
}

// IsEOF reports whether the cursor has consumed the entire source.
func (c *Cursor) IsEOF() bool {
	return c.offset >= len(c.source)
}

// Peek returns the rune at the cursor without consuming it, and false at
// end of input.
func (c *Cursor) Peek() (rune, bool) {
	if c.IsEOF() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.source[c.offset:])
	return r, true
}

// PeekN returns the rune n positions ahead of the cursor (PeekN(0) is
// equivalent to Peek), and false if that position is past the end.
func (c *Cursor) PeekN(n int) (rune, bool) {
	rest := c.source[c.offset:]
	for i := 0; i < n; i++ {
		if rest == "" {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
	}
	if rest == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r, true
}

// Advance consumes and returns the next rune, updating line/column.
func (c *Cursor) Advance() (rune, bool) {
	r, ok := c.Peek()
	if !ok {
		return 0, false
	}
	c.offset += utf8.RuneLen(r)
	if r == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return r, true
}

// AdvanceWhile consumes runes while predicate holds, and returns the
// consumed text.
func (c *Cursor) AdvanceWhile(predicate func(rune) bool) string {
	start := c.offset
	for {
		r, ok := c.Peek()
		if !ok || !predicate(r) {
			break
		}
		c.Advance()
	}
	return c.source[start:c.offset]
}

// SkipWhitespace consumes any run of Unicode whitespace, including
// newlines.
func (c *Cursor) SkipWhitespace() {
	c.AdvanceWhile(unicode.IsSpace)
}

// SkipHorizontalWhitespace consumes spaces and tabs only, leaving
// newlines in place.
func (c *Cursor) SkipHorizontalWhitespace() {
	c.AdvanceWhile(func(r rune) bool { return r == ' ' || r == '\t' })
}

// ConsumeStr consumes s if the cursor's remaining text starts with it,
// and reports whether it did.
func (c *Cursor) ConsumeStr(s string) bool {
	if !strings.HasPrefix(c.Remaining(), s) {
		return false
	}
	c.offset += len(s)
	c.line, c.column = c.advancedPosition(s)
	return true
}

// advancedPosition computes the line/column after logically consuming s,
// without re-walking runes one at a time through Advance.
func (c *Cursor) advancedPosition(s string) (line, column int) {
	line, column = c.line, c.column
	for _, r := range s {
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// Remaining returns the unconsumed suffix of the source.
func (c *Cursor) Remaining() string {
	return c.source[c.offset:]
}

// Position returns the cursor's current line and column (both 1-based).
func (c *Cursor) Position() (line, column int) {
	return c.line, c.column
}

// SpanFrom builds a span from a previously recorded start offset to the
// cursor's current offset.
func (c *Cursor) SpanFrom(start int) location.Span {
	return location.NewSpan(start, c.offset)
}

// TextForSpan slices the source by span.
func (c *Cursor) TextForSpan(span location.Span) string {
	return span.Text(c.source)
}
