package preprocess

import (
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/mermaidlint/mermaidlint/config"
)

var frontmatterRegex = regexp.MustCompile(`(?s)^-{3}\s*[\n\r](.*?)[\n\r]-{3}\s*[\n\r]+`)

// FrontmatterResult is the outcome of extracting a leading YAML frontmatter
// block.
type FrontmatterResult struct {
	// Text is the input with any frontmatter block stripped.
	Text string
	// Title is the frontmatter's "title" field, if present.
	Title string
	HasTitle bool
	// DisplayMode is the frontmatter's "displayMode" field, if present.
	DisplayMode string
	HasDisplayMode bool
	// Config is the configuration parsed from the frontmatter's "config"
	// field. Zero value if absent.
	Config config.Configuration
}

type frontmatterDoc struct {
	Title       string                `yaml:"title"`
	DisplayMode yaml.Node             `yaml:"displayMode"`
	Config      config.Configuration  `yaml:"config"`
}

// ExtractFrontmatter extracts and parses a leading `---`-delimited YAML
// block. Frontmatter must begin at offset zero; text with no frontmatter,
// or with frontmatter that fails to parse as a YAML mapping, is returned
// unchanged with a zero-value result.
func ExtractFrontmatter(text string) FrontmatterResult {
	loc := frontmatterRegex.FindStringSubmatchIndex(text)
	if loc == nil {
		return FrontmatterResult{Text: text}
	}

	yamlContent := text[loc[2]:loc[3]]
	matchEnd := loc[1]

	var doc frontmatterDoc
	if err := yaml.Unmarshal([]byte(yamlContent), &doc); err != nil {
		return FrontmatterResult{Text: text}
	}

	result := FrontmatterResult{Text: text[matchEnd:]}
	if doc.Title != "" {
		result.Title = doc.Title
		result.HasTitle = true
	}
	if doc.DisplayMode.Value != "" {
		result.DisplayMode = doc.DisplayMode.Value
		result.HasDisplayMode = true
	}
	result.Config = doc.Config

	return result
}
