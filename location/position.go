package location

import "sort"

// Position is the human-readable translation of a byte offset: a 1-based
// line and column pair, plus the originating byte offset.
type Position struct {
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based column number, counting bytes from the start
	// of the line.
	Column int
	// Offset is the byte offset this position was translated from.
	Offset int
}

// LineIndex translates byte offsets into [Position] values against one
// fixed source string.
//
// Building a LineIndex scans the source exactly once to record where every
// line begins; translating an offset afterward is a binary search over that
// table. Constructing a fresh LineIndex per source and reusing it across many
// translations (one per Diagnostic, say) is the intended usage — it is what
// lets the renderer translate every diagnostic in a ParseResult without
// rescanning the source per diagnostic.
type LineIndex struct {
	source      string
	lineOffsets []int // byte offset of the first byte of each line; lineOffsets[0] == 0
}

// NewLineIndex builds a LineIndex over source.
func NewLineIndex(source string) *LineIndex {
	offsets := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return &LineIndex{source: source, lineOffsets: offsets}
}

// Position translates a byte offset into a Position.
//
// Offsets past the end of the source clamp to the position just after the
// last byte, matching how a caret renderer wants to point at end-of-file
// diagnostics.
func (li *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(li.source) {
		offset = len(li.source)
	}

	line := sort.Search(len(li.lineOffsets), func(i int) bool {
		return li.lineOffsets[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}

	return Position{
		Line:   line + 1,
		Column: offset - li.lineOffsets[line] + 1,
		Offset: offset,
	}
}

// Span translates a [Span]'s start offset into a Position. Diagnostics are
// always rendered from their span's start.
func (li *LineIndex) Span(span Span) Position {
	return li.Position(span.Start)
}

// Line returns the text of the given 1-based line number, without its
// trailing newline. Returns "" for an out-of-range line.
func (li *LineIndex) Line(n int) string {
	if n < 1 || n > len(li.lineOffsets) {
		return ""
	}
	start := li.lineOffsets[n-1]
	end := len(li.source)
	if n < len(li.lineOffsets) {
		end = li.lineOffsets[n] - 1 // drop the newline
	}
	if end < start {
		end = start
	}
	return li.source[start:end]
}

// LineCount returns the number of lines in the source.
func (li *LineIndex) LineCount() int {
	return len(li.lineOffsets)
}
