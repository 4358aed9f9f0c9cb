package preprocess

import "strings"

// RemoveComments strips lines whose first non-whitespace characters are
// `%%` but not `%%{` (which is a directive, not a comment). A `%%` marker
// that appears mid-line is left untouched, since it is ordinary diagram
// text rather than a comment.
func RemoveComments(text string) string {
	lines := strings.Split(text, "\n")
	trailingNewline := strings.HasSuffix(text, "\n")
	if trailingNewline {
		lines = lines[:len(lines)-1]
	}

	var kept []string
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		isComment := strings.HasPrefix(trimmed, "%%") && !strings.HasPrefix(trimmed, "%%{")
		if !isComment {
			kept = append(kept, line)
		}
	}

	result := strings.Join(kept, "\n")
	if trailingNewline && result != "" {
		result += "\n"
	}
	return result
}
