package preprocess

import "github.com/mermaidlint/mermaidlint/config"

// Result is the outcome of running the full preprocessing pipeline.
type Result struct {
	// Code is the text ready for classification and parsing.
	Code string
	// Title is the frontmatter's title field, if present.
	Title string
	HasTitle bool
	// Config is the configuration merged from frontmatter and directives,
	// directive settings taking precedence on overlapping fields.
	Config config.Configuration
}

// Preprocessor runs the fixed four-stage pipeline: normalize, extract
// frontmatter, extract directives, remove comments.
type Preprocessor struct{}

// NewPreprocessor constructs a Preprocessor. It holds no state; there is
// nothing to configure.
func NewPreprocessor() Preprocessor {
	return Preprocessor{}
}

// Preprocess runs the full pipeline over raw input text.
func (Preprocessor) Preprocess(text string) Result {
	normalized := NormalizeText(text)

	frontmatter := ExtractFrontmatter(normalized)
	cfg := frontmatter.Config
	if frontmatter.HasDisplayMode {
		cfg.Gantt.DisplayMode = frontmatter.DisplayMode
	}

	directives := ExtractDirectives(frontmatter.Text)
	cfg = cfg.Merge(directives.Config)
	if directives.Wrap {
		cfg.Wrap = true
	}

	code := RemoveComments(directives.Text)

	return Result{
		Code:     code,
		Title:    frontmatter.Title,
		HasTitle: frontmatter.HasTitle,
		Config:   cfg,
	}
}
