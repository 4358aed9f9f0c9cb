// Package linescan splits a processed source into byte-offset-tracked
// lines, the shared building block every per-kind statement parser in
// diagrams/* uses: most grammars treat a newline as the statement
// separator and recover from a bad statement by skipping to the next one.
package linescan

import "strings"

// Line is one line of source, with the byte offset (into the owning
// source string) of its first byte. Text excludes the line's trailing
// newline.
type Line struct {
	Text  string
	Start int
}

// Split breaks source into Lines, tracking each line's starting byte
// offset so callers can build Spans without rescanning.
func Split(source string) []Line {
	lines := make([]Line, 0, strings.Count(source, "\n")+1)
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lines = append(lines, Line{Text: source[start:i], Start: start})
			start = i + 1
		}
	}
	lines = append(lines, Line{Text: source[start:], Start: start})
	return lines
}

// TrimmedStart returns the line's text with leading ASCII space/tab
// trimmed, along with the byte offset the trimmed text now starts at.
func (l Line) TrimmedStart() (text string, offset int) {
	i := 0
	for i < len(l.Text) && (l.Text[i] == ' ' || l.Text[i] == '\t') {
		i++
	}
	return l.Text[i:], l.Start + i
}

// Trimmed returns the line's text with leading and trailing ASCII
// space/tab trimmed.
func (l Line) Trimmed() string {
	return strings.Trim(l.Text, " \t")
}

// IsBlank reports whether the line is empty once space/tab-trimmed.
func (l Line) IsBlank() bool {
	return l.Trimmed() == ""
}

// End returns the byte offset just past the line's text (not including
// its newline).
func (l Line) End() int {
	return l.Start + len(l.Text)
}
