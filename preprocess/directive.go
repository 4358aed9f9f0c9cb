package preprocess

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/mermaidlint/mermaidlint/config"
)

var directiveContentRegex = regexp.MustCompile(`^\s*(\w+)\s*(?::\s*(.*))?$`)

// DirectiveType classifies a %%{...}%% directive's leading keyword.
type DirectiveType struct {
	tag string
}

func (d DirectiveType) String() string { return d.tag }

var (
	DirectiveInit    = DirectiveType{"init"}
	DirectiveWrap    = DirectiveType{"wrap"}
	DirectiveUnknown = DirectiveType{"unknown"}
)

// directiveTypeFromString classifies a directive keyword. "init" and
// "initialize" both map to DirectiveInit; anything else is Unknown.
func directiveTypeFromString(s string) DirectiveType {
	switch strings.ToLower(s) {
	case "init", "initialize":
		return DirectiveInit
	case "wrap":
		return DirectiveWrap
	default:
		return DirectiveUnknown
	}
}

// Directive is a single parsed %%{...}%% block.
type Directive struct {
	Type DirectiveType
	// RawArgs is the directive's argument text, or empty if it carried none.
	RawArgs string
}

// DirectiveResult is the outcome of extracting every directive in a text.
type DirectiveResult struct {
	// Text is the input with every directive span removed.
	Text string
	// Config is the merged configuration from every init directive, in
	// source order (later directives win on overlapping fields).
	Config config.Configuration
	// Wrap reports whether any wrap directive was present.
	Wrap bool
}

type directiveSpan struct {
	start, end int
	content    string
}

func findDirectiveSpans(text string) []directiveSpan {
	var spans []directiveSpan
	pos := 0
	for pos < len(text) {
		rel := strings.Index(text[pos:], "%%{")
		if rel < 0 {
			break
		}
		start := pos + rel
		endRel := strings.Index(text[start:], "}%%")
		if endRel < 0 {
			pos = start + 3
			continue
		}
		end := start + endRel + 3
		content := text[start+3 : start+endRel]
		spans = append(spans, directiveSpan{start, end, content})
		pos = end
	}
	return spans
}

// ParseDirective parses a single directive given its full `%%{...}%%` text.
func ParseDirective(text string) (Directive, bool) {
	if !strings.HasPrefix(text, "%%{") || !strings.HasSuffix(text, "}%%") {
		return Directive{}, false
	}
	return parseDirectiveContent(text[3 : len(text)-3])
}

func parseDirectiveContent(content string) (Directive, bool) {
	groups := directiveContentRegex.FindStringSubmatch(content)
	if groups == nil {
		return Directive{}, false
	}

	directiveType := directiveTypeFromString(groups[1])
	rawArgs := strings.TrimSpace(groups[2])

	return Directive{Type: directiveType, RawArgs: rawArgs}, true
}

// ExtractDirectives finds every %%{...}%% directive, merges init directive
// configuration in source order, and returns the text with all directives
// removed.
func ExtractDirectives(text string) DirectiveResult {
	spans := findDirectiveSpans(text)

	result := DirectiveResult{}
	for _, span := range spans {
		directive, ok := parseDirectiveContent(span.content)
		if !ok {
			continue
		}
		switch directive.Type {
		case DirectiveInit:
			if directive.RawArgs == "" {
				continue
			}
			var cfg config.Configuration
			if err := json.Unmarshal([]byte(directive.RawArgs), &cfg); err == nil {
				result.Config = result.Config.Merge(cfg)
			}
		case DirectiveWrap:
			result.Wrap = true
		}
	}

	processed := text
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		processed = processed[:s.start] + processed[s.end:]
	}
	result.Text = processed

	return result
}

// RemoveDirectives strips every %%{...}%% span from text without
// interpreting its contents.
func RemoveDirectives(text string) string {
	spans := findDirectiveSpans(text)
	processed := text
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		processed = processed[:s.start] + processed[s.end:]
	}
	return processed
}
