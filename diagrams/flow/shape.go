package flow

import (
	"strings"

	"github.com/mermaidlint/mermaidlint/lex"
)

// Shape identifies a flowchart node's rendered outline, determined purely
// from its opening (and, for a few ambiguous pairs, closing) delimiter.
type Shape struct{ tag string }

func (s Shape) String() string { return s.tag }

var (
	ShapeRectangle        = Shape{"rectangle"}
	ShapeRoundedRect      = Shape{"rounded_rect"}
	ShapeStadium          = Shape{"stadium"}
	ShapeSubroutine       = Shape{"subroutine"}
	ShapeCylindrical      = Shape{"cylindrical"}
	ShapeCircle           = Shape{"circle"}
	ShapeAsymmetric       = Shape{"asymmetric"}
	ShapeRhombus          = Shape{"rhombus"}
	ShapeHexagon          = Shape{"hexagon"}
	ShapeParallelogram    = Shape{"parallelogram"}
	ShapeParallelogramAlt = Shape{"parallelogram_alt"}
	ShapeTrapezoid        = Shape{"trapezoid"}
	ShapeTrapezoidAlt     = Shape{"trapezoid_alt"}
	ShapeDoubleCircle     = Shape{"double_circle"}
)

// delimiterPair is one recognized (opener, closer) shape delimiter. Openers
// are tried longest-first so e.g. "(((" is preferred over "((" over "(".
type delimiterPair struct {
	open, close string
	shape       Shape
}

// delimiterPairs is ordered longest-opener-first so matchOpener never picks
// a shorter prefix of a longer valid opener (e.g. "((" before "((("). "[/"
// and "[\\" are each listed twice, since Mermaid overloads them: the
// closer actually present is what tells trapezoid and parallelogram (and
// their mirrored variants) apart, not the opener.
var delimiterPairs = []delimiterPair{
	{"(((", ")))", ShapeDoubleCircle},
	{"([", "])", ShapeStadium},
	{"((", "))", ShapeCircle},
	{"[[", "]]", ShapeSubroutine},
	{"[(", ")]", ShapeCylindrical},
	{"[/", "/]", ShapeParallelogram},
	{"[/", "\\]", ShapeTrapezoid},
	{"[\\", "\\]", ShapeParallelogramAlt},
	{"[\\", "/]", ShapeTrapezoidAlt},
	{"{{", "}}", ShapeHexagon},
	{"[", "]", ShapeRectangle},
	{"(", ")", ShapeRoundedRect},
	{"{", "}", ShapeRhombus},
	{">", "]", ShapeAsymmetric},
}

// matchOpener reports the delimiterPair matching remaining's opener, trying
// longer openers before their shorter prefixes. "[/" and "[\\" each name
// two candidate pairs; when both match the opener, matchOpener looks past
// it for whichever candidate's closer appears first and picks that one,
// falling back to the first-listed candidate if neither closer is present
// (so the caller's "missing closing" diagnostic still has a delimiter to
// name).
func matchOpener(remaining string) (delimiterPair, bool) {
	var open string
	var candidates []delimiterPair
	for _, p := range delimiterPairs {
		if !strings.HasPrefix(remaining, p.open) {
			continue
		}
		if len(p.open) > len(open) {
			open = p.open
			candidates = nil
		}
		if p.open == open {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return delimiterPair{}, false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}

	after := remaining[len(open):]
	best, bestIdx := candidates[0], -1
	for _, p := range candidates {
		if idx := strings.Index(after, p.close); idx >= 0 && (bestIdx < 0 || idx < bestIdx) {
			best, bestIdx = p, idx
		}
	}
	return best, true
}

// unquoteLabel strips a single pair of surrounding double quotes, if
// present, leaving any other text untouched.
func unquoteLabel(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// statementBound returns the text from cur's current position up to (but
// not including) the next newline or ';', whichever comes first — the
// window a flow statement's shape/link scanning is confined to.
func statementBound(cur *lex.Cursor) string {
	rest := cur.Remaining()
	if i := strings.IndexAny(rest, "\n;"); i >= 0 {
		return rest[:i]
	}
	return rest
}
