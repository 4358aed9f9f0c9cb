package mermaidlint

import (
	"encoding/json"

	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diag"
	"github.com/mermaidlint/mermaidlint/kind"
)

// wireParseResult is the JSON/YAML wire shape of a ParseResult: camelCase
// field names, optional fields omitted when empty, and no copy of the
// owned processed source (the Ast's source field is itself unexported and
// never reaches this struct).
type wireParseResult struct {
	OK          bool                 `json:"ok" yaml:"ok"`
	DiagramType string               `json:"diagramType,omitempty" yaml:"diagramType,omitempty"`
	Config      config.Configuration `json:"config" yaml:"config"`
	Ast         *ast.AstNode         `json:"ast,omitempty" yaml:"ast,omitempty"`
	Diagnostics []diag.Diagnostic    `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Title       string               `json:"title,omitempty" yaml:"title,omitempty"`
}

func (r ParseResult) toWire() wireParseResult {
	w := wireParseResult{
		OK:          r.OK,
		Config:      r.Config,
		Diagnostics: r.Diagnostics,
	}
	if r.HasDiagramType {
		w.DiagramType = r.DiagramType.String()
	}
	if r.Ast != nil {
		w.Ast = r.Ast.Root
	}
	if r.HasTitle {
		w.Title = r.Title
	}
	return w
}

// MarshalJSON implements json.Marshaler, producing the stable wire shape
// the CLI's `--format json` output uses.
func (r ParseResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toWire())
}

// MarshalYAML implements yaml.Marshaler via the same wire shape MarshalJSON
// uses.
func (r ParseResult) MarshalYAML() (interface{}, error) {
	return r.toWire(), nil
}

// UnmarshalJSON implements json.Unmarshaler, reconstructing a ParseResult
// from the wire shape a prior MarshalJSON produced. The reconstructed
// value has an empty Ast.source (the wire form never carries it), so its
// AstNode spans can still be read but cannot be re-sliced against source
// text.
func (r *ParseResult) UnmarshalJSON(data []byte) error {
	var w wireParseResult
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = ParseResult{
		OK:          w.OK,
		Config:      w.Config,
		Diagnostics: w.Diagnostics,
	}
	if w.DiagramType != "" {
		if k, ok := kindFromString(w.DiagramType); ok {
			r.DiagramType = k
			r.HasDiagramType = true
		}
	}
	if w.Ast != nil {
		r.Ast = ast.NewAst(w.Ast, "")
	}
	if w.Title != "" {
		r.Title = w.Title
		r.HasTitle = true
	}
	return nil
}

func kindFromString(s string) (kind.DiagramKind, bool) {
	for _, k := range kind.All() {
		if k.String() == s {
			return k, true
		}
	}
	return kind.DiagramKind{}, false
}
