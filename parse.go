package mermaidlint

import (
	"strings"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/classify"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diag"
	"github.com/mermaidlint/mermaidlint/kind"
	"github.com/mermaidlint/mermaidlint/location"
	"github.com/mermaidlint/mermaidlint/parser"
	"github.com/mermaidlint/mermaidlint/preprocess"
)

// Options configures a call to [Parse]. The zero value requests the
// default behavior: no base configuration, errors not suppressed.
type Options struct {
	// BaseConfig seeds the configuration merge before frontmatter and
	// directive settings are applied; it is the caller's fallback, not an
	// override, so document-level settings always win on overlap.
	BaseConfig config.Configuration
	// SuppressErrors is carried for API compatibility with the reference
	// implementation's ParseOptions. Parse never returns a Go error, so
	// there is nothing for this flag to suppress; it has no effect here.
	SuppressErrors bool
}

// ParseResult is the immutable outcome of a [Parse] call.
type ParseResult struct {
	OK             bool
	DiagramType    kind.DiagramKind
	HasDiagramType bool
	Config         config.Configuration
	Ast            *ast.Ast
	Diagnostics    []diag.Diagnostic
	Title          string
	HasTitle       bool
}

var dispatcher = parser.NewDispatcher()

// Parse runs the full pipeline over source: preprocess, classify, the
// entity-encoding side pass for flow-family kinds, then dispatch to the
// matched grammar. It never returns a Go error — every failure mode is a
// collected [diag.Diagnostic] on the returned ParseResult.
func Parse(source string, opts Options) ParseResult {
	pre := preprocess.NewPreprocessor().Preprocess(source)
	cfg := opts.BaseConfig.Merge(pre.Config)

	result := ParseResult{Config: cfg}
	if pre.HasTitle {
		result.Title = pre.Title
		result.HasTitle = true
	}

	if strings.TrimSpace(pre.Code) == "" {
		result.Diagnostics = []diag.Diagnostic{
			diag.NewDiagnostic(diag.EUnknownDiagram, diag.SeverityError, location.Empty(0), "source is empty").Build(),
		}
		return result
	}

	k, ok := classify.DetectType(pre.Code, cfg)
	if !ok {
		result.Diagnostics = []diag.Diagnostic{
			diag.NewDiagnostic(diag.EUnknownDiagram, diag.SeverityError, location.Empty(0), "could not classify diagram type").Build(),
		}
		return result
	}
	result.DiagramType = k
	result.HasDiagramType = true

	switch k {
	case kind.Error:
		result.Diagnostics = []diag.Diagnostic{
			diag.NewDiagnostic(diag.EParserError, diag.SeverityError, location.Empty(0), "source is the literal 'error'").WithKind(k).Build(),
		}
		return result
	case kind.BadFrontmatter:
		result.Diagnostics = []diag.Diagnostic{
			diag.NewDiagnostic(diag.EFrontmatterParseError, diag.SeverityError, location.Empty(0), "unterminated frontmatter block").WithKind(k).Build(),
		}
		return result
	}

	body := pre.Code
	if k.NeedsEntityEncoding() {
		body = preprocess.EncodeEntities(body)
	}

	tree, diagnostics := dispatcher.Dispatch(k, body, cfg)
	result.Ast = tree
	result.Diagnostics = diagnostics
	result.OK = tree != nil && !hasError(diagnostics)
	return result
}

// Validate reports whether source parses with no Error-severity diagnostic.
func Validate(source string, opts Options) bool {
	return Parse(source, opts).OK
}

// DetectType runs preprocessing and classification only, without parsing
// the body. It reports ok=false when the source is empty, whitespace-only,
// or matches no classifier rule.
func DetectType(source string) (kind.DiagramKind, bool) {
	pre := preprocess.NewPreprocessor().Preprocess(source)
	if strings.TrimSpace(pre.Code) == "" {
		return kind.DiagramKind{}, false
	}
	return classify.DetectType(pre.Code, pre.Config)
}

func hasError(diagnostics []diag.Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Severity() == diag.SeverityError {
			return true
		}
	}
	return false
}
