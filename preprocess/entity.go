package preprocess

import (
	"regexp"
	"strings"
)

var (
	styleEntityRegex    = regexp.MustCompile(`style[^;]*:\S*#[^;]*;`)
	classDefEntityRegex = regexp.MustCompile(`classDef[^;]*:\S*#[^;]*;`)
	entityRefRegex      = regexp.MustCompile(`#(\w+);`)
	isAllDigits         = regexp.MustCompile(`^[0-9]+$`)
)

// EncodeEntities rewrites HTML-entity-shaped references (`#123;`, `#nbsp;`)
// into a sentinel scheme the diagram lexers treat as opaque text, so a
// style/classDef color value like `#f9f` is never mistaken for an entity
// reference or split on its embedded `#`. Call DecodeEntities on any text
// recovered from the parse tree before presenting it to a caller.
func EncodeEntities(text string) string {
	result := styleEntityRegex.ReplaceAllStringFunc(text, dropTrailingSemicolon)
	result = classDefEntityRegex.ReplaceAllStringFunc(result, dropTrailingSemicolon)

	result = entityRefRegex.ReplaceAllStringFunc(result, func(m string) string {
		inner := entityRefRegex.FindStringSubmatch(m)[1]
		if isAllDigits.MatchString(inner) {
			return "ﬂ°°" + inner + "¶ß"
		}
		return "ﬂ°" + inner + "¶ß"
	})

	return result
}

func dropTrailingSemicolon(m string) string {
	if len(m) == 0 {
		return m
	}
	return m[:len(m)-1]
}

// DecodeEntities reverses EncodeEntities's sentinel substitution.
func DecodeEntities(text string) string {
	text = strings.ReplaceAll(text, "ﬂ°°", "&#")
	text = strings.ReplaceAll(text, "ﬂ°", "&")
	text = strings.ReplaceAll(text, "¶ß", ";")
	return text
}
