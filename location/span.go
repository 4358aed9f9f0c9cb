package location

import (
	"encoding/json"
	"fmt"
)

// Span represents a half-open byte range [Start, End) over the processed
// source.
//
// Span is a value type with exported fields; always pass it by value. Spans
// are produced by lexers and parsers. Span has no setter methods, and
// [Span.Merge] returns a new value; the fields themselves are assignable,
// and block parsers extend a node's Span.End once its closing line is found.
type Span struct {
	// Start is the inclusive start byte offset.
	Start int
	// End is the exclusive end byte offset. End >= Start.
	End int
}

// NewSpan creates a Span from a start and end byte offset.
//
// Panics if start is negative or end < start. Use this constructor when the
// caller already guarantees well-formed offsets (e.g. a lexer computing a
// span from its own cursor); use [NewSpanSafe] for offsets derived from
// untrusted input.
func NewSpan(start, end int) Span {
	s, ok := NewSpanSafe(start, end)
	if !ok {
		panic(fmt.Sprintf("location.NewSpan: invalid range [%d, %d)", start, end))
	}
	return s
}

// NewSpanSafe creates a Span, reporting ok=false instead of panicking when
// start is negative or end < start.
func NewSpanSafe(start, end int) (Span, bool) {
	if start < 0 || end < start {
		return Span{}, false
	}
	return Span{Start: start, End: end}, true
}

// Empty creates a zero-length Span at the given byte offset.
func Empty(pos int) Span {
	return Span{Start: pos, End: pos}
}

// FromLen creates a Span spanning len bytes starting at start.
//
// Panics if start or len is negative.
func FromLen(start, length int) Span {
	if start < 0 || length < 0 {
		panic(fmt.Sprintf("location.FromLen: invalid start=%d len=%d", start, length))
	}
	return Span{Start: start, End: start + length}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start >= s.End
}

// Merge returns the smallest Span that encompasses both s and other.
func (s Span) Merge(other Span) Span {
	return Span{
		Start: min(s.Start, other.Start),
		End:   max(s.End, other.End),
	}
}

// Text returns the slice of source this span covers. The end offset is
// clamped to len(source) so a span left stale by a later truncation of its
// source never panics.
func (s Span) Text(source string) string {
	end := s.End
	if end > len(source) {
		end = len(source)
	}
	if s.Start > end {
		return ""
	}
	return source[s.Start:end]
}

// String renders the span as "start..end", useful in test failures and debug
// logging.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

type wireSpan struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// MarshalJSON renders the span as {"start":...,"end":...}.
func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireSpan{Start: s.Start, End: s.End})
}

// UnmarshalJSON parses the {"start":...,"end":...} wire shape.
func (s *Span) UnmarshalJSON(data []byte) error {
	var w wireSpan
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.Start, s.End = w.Start, w.End
	return nil
}

// MarshalYAML renders the span using the same wire shape as MarshalJSON.
func (s Span) MarshalYAML() (interface{}, error) {
	return wireSpan{Start: s.Start, End: s.End}, nil
}

// UnmarshalYAML parses the {start, end} wire shape.
func (s *Span) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var w wireSpan
	if err := unmarshal(&w); err != nil {
		return err
	}
	s.Start, s.End = w.Start, w.End
	return nil
}
