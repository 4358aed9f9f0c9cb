package flow

import (
	"strings"

	"github.com/mermaidlint/mermaidlint/lex"
)

// LinkType identifies the connector between two nodes in an edge chain.
type LinkType struct{ tag string }

func (l LinkType) String() string { return l.tag }

var (
	LinkArrow       = LinkType{"arrow"}
	LinkOpen        = LinkType{"open"}
	LinkDotted      = LinkType{"dotted"}
	LinkDottedArrow = LinkType{"dotted_arrow"}
	LinkThick       = LinkType{"thick"}
	LinkThickArrow  = LinkType{"thick_arrow"}
	LinkInvisible   = LinkType{"invisible"}
)

// readLink attempts to consume a link token at the cursor's current
// position. It reports ok=false (consuming nothing) if the cursor isn't
// positioned at a recognized link opener.
//
// Beyond the fixed-shape tokens ("-->", "---", "-.->", ...), flow sources
// accept an inline-label form where arbitrary text sits between the link's
// open and close halves: "A-- some text -->B" or "A-. some text .->B". That
// text, trimmed, becomes the link's label.
func readLink(cur *lex.Cursor) (LinkType, string, bool, bool) {
	rest := statementBound(cur)

	switch {
	case strings.HasPrefix(rest, "~~~"):
		cur.ConsumeStr("~~~")
		return LinkInvisible, "", false, true

	case strings.HasPrefix(rest, "-.->"):
		cur.ConsumeStr("-.->")
		return LinkDottedArrow, "", false, true
	case strings.HasPrefix(rest, "-.-"):
		cur.ConsumeStr("-.-")
		return LinkDotted, "", false, true
	case strings.HasPrefix(rest, "-."):
		return readDelimitedLink(cur, rest, "-.", ".-", LinkDotted, LinkDottedArrow)

	case strings.HasPrefix(rest, "==>"):
		cur.ConsumeStr("==>")
		return LinkThickArrow, "", false, true
	case strings.HasPrefix(rest, "==="):
		cur.ConsumeStr("===")
		return LinkThick, "", false, true
	case strings.HasPrefix(rest, "=="):
		return readDelimitedLink(cur, rest, "==", "==", LinkThick, LinkThickArrow)

	case strings.HasPrefix(rest, "-->"):
		cur.ConsumeStr("-->")
		return LinkArrow, "", false, true
	case strings.HasPrefix(rest, "---"):
		cur.ConsumeStr("---")
		return LinkOpen, "", false, true
	case strings.HasPrefix(rest, "--"):
		return readDelimitedLink(cur, rest, "--", "--", LinkOpen, LinkArrow)
	}

	return LinkType{}, "", false, false
}

// readDelimitedLink consumes the "open label close[>]" inline-label form
// shared by the plain, dotted, and thick link families: open and close are
// the family's bare delimiter (e.g. "--"/"--"), bare is the link type when
// close is not followed by '>', and arrow is the link type when it is.
func readDelimitedLink(cur *lex.Cursor, rest, open, close string, bare, arrow LinkType) (LinkType, string, bool, bool) {
	afterOpen := rest[len(open):]
	idx := strings.Index(afterOpen, close)
	if idx < 0 {
		return LinkType{}, "", false, false
	}
	label := strings.TrimSpace(afterOpen[:idx])
	total := len(open) + idx + len(close)
	hasArrow := strings.HasPrefix(afterOpen[idx+len(close):], ">")
	if hasArrow {
		total++
	}
	cur.ConsumeStr(rest[:total])
	if hasArrow {
		return arrow, label, label != "", true
	}
	return bare, label, label != "", true
}

// readPipeLabel consumes a "|text|" edge label immediately following a
// link token, if present.
func readPipeLabel(cur *lex.Cursor) (string, bool) {
	if r, ok := cur.Peek(); !ok || r != '|' {
		return "", false
	}
	cur.Advance()
	start := cur.Offset()
	cur.AdvanceWhile(func(r rune) bool { return r != '|' && r != '\n' })
	label := cur.Source()[start:cur.Offset()]
	if r, ok := cur.Peek(); ok && r == '|' {
		cur.Advance()
	}
	return strings.TrimSpace(label), true
}
