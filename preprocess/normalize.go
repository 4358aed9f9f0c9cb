// Package preprocess implements the pipeline that turns raw user input into
// the source a classifier and parser can work with: line-ending
// normalization, frontmatter extraction, directive extraction, and comment
// stripping, run in that fixed order.
package preprocess

import (
	"regexp"
	"strings"
)

var (
	htmlTagRegex        = regexp.MustCompile(`<(\w+)([^>]*)>`)
	doubleQuoteAttrRegex = regexp.MustCompile(`="([^"]*)"`)
)

// NormalizeText converts CRLF/CR line endings to LF and rewrites
// double-quoted HTML attribute values inside inline tags to single-quoted,
// so they survive the diagram grammars' own use of double quotes for
// labels.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return htmlTagRegex.ReplaceAllStringFunc(text, func(tag string) string {
		groups := htmlTagRegex.FindStringSubmatch(tag)
		name, attrs := groups[1], groups[2]
		attrs = doubleQuoteAttrRegex.ReplaceAllString(attrs, "='$1'")
		return "<" + name + attrs + ">"
	})
}
