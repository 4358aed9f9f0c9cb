// Package classify implements the diagram-type classifier: an ordered,
// case-insensitive match over the leading token of the processed source,
// consulting Configuration to disambiguate the legacy-vs-v2 renderer
// variants §4.4 describes.
package classify

import (
	"regexp"
	"strings"

	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/kind"
)

// rule pairs a case-insensitive matcher against the trimmed source's leading
// token with the kind it resolves to (possibly consulting cfg).
type rule struct {
	pattern *regexp.Regexp
	resolve func(cfg config.Configuration, matches []string) kind.DiagramKind
}

func fixed(k kind.DiagramKind) func(config.Configuration, []string) kind.DiagramKind {
	return func(config.Configuration, []string) kind.DiagramKind { return k }
}

// Every pattern anchors at the start of the (already trimmed) source and is
// matched case-insensitively. Order is normative: §4.4 requires the first
// matching rule to win.
var rules = []rule{
	// 1. Large-feature variants.
	{regexp.MustCompile(`(?i)^flowchart-elk\b`), fixed(kind.FlowchartElk)},
	{regexp.MustCompile(`(?i)^mindmap\b`), fixed(kind.Mindmap)},
	{regexp.MustCompile(`(?i)^architecture(-beta)?\b`), fixed(kind.Architecture)},

	// 2. C4 family.
	{regexp.MustCompile(`(?i)^C4(Context|Container|Component|Dynamic|Deployment)\b`), fixed(kind.C4)},

	// 3. kanban.
	{regexp.MustCompile(`(?i)^kanban\b`), fixed(kind.Kanban)},

	// 4. class family.
	{regexp.MustCompile(`(?i)^classDiagram-v2\b`), fixed(kind.ClassDiagram)},
	{regexp.MustCompile(`(?i)^classDiagram\b`), func(cfg config.Configuration, _ []string) kind.DiagramKind {
		if cfg.Class.DefaultRenderer == "dagre-wrapper" {
			return kind.ClassDiagram
		}
		return kind.Class
	}},

	// 5. single-introducer kinds.
	{regexp.MustCompile(`(?i)^erDiagram\b`), fixed(kind.Er)},
	{regexp.MustCompile(`(?i)^gantt\b`), fixed(kind.Gantt)},
	{regexp.MustCompile(`(?i)^info\b`), fixed(kind.Info)},
	{regexp.MustCompile(`(?i)^pie\b`), fixed(kind.Pie)},
	{regexp.MustCompile(`(?i)^requirement(Diagram)?\b`), fixed(kind.Requirement)},
	{regexp.MustCompile(`(?i)^sequenceDiagram\b`), fixed(kind.Sequence)},

	// 6. flowchart keyword.
	{regexp.MustCompile(`(?i)^flowchart\b`), func(cfg config.Configuration, _ []string) kind.DiagramKind {
		if cfg.Flowchart.DefaultRenderer == "elk" || cfg.Layout == "elk" {
			return kind.FlowchartElk
		}
		return kind.FlowchartV2
	}},

	// 7. graph keyword.
	{regexp.MustCompile(`(?i)^graph\b`), func(cfg config.Configuration, _ []string) kind.DiagramKind {
		switch {
		case cfg.Flowchart.DefaultRenderer == "elk" || cfg.Layout == "elk":
			return kind.FlowchartElk
		case cfg.Flowchart.DefaultRenderer == "dagre-wrapper":
			return kind.FlowchartV2
		default:
			return kind.Flowchart
		}
	}},

	// 8. timeline / gitGraph.
	{regexp.MustCompile(`(?i)^timeline\b`), fixed(kind.Timeline)},
	{regexp.MustCompile(`(?i)^gitGraph\b`), fixed(kind.GitGraph)},

	// 9. state family.
	{regexp.MustCompile(`(?i)^stateDiagram-v2\b`), fixed(kind.StateDiagram)},
	{regexp.MustCompile(`(?i)^stateDiagram\b`), func(cfg config.Configuration, _ []string) kind.DiagramKind {
		if cfg.State.DefaultRenderer == "dagre-wrapper" {
			return kind.StateDiagram
		}
		return kind.State
	}},

	// 10. remaining small grammars.
	{regexp.MustCompile(`(?i)^journey\b`), fixed(kind.Journey)},
	{regexp.MustCompile(`(?i)^quadrantChart\b`), fixed(kind.QuadrantChart)},
	{regexp.MustCompile(`(?i)^sankey(-beta)?\b`), fixed(kind.Sankey)},
	{regexp.MustCompile(`(?i)^packet(-beta)?\b`), fixed(kind.Packet)},
	{regexp.MustCompile(`(?i)^xychart(-beta)?\b`), fixed(kind.XyChart)},
	{regexp.MustCompile(`(?i)^block(-beta)?\b`), fixed(kind.Block)},
	{regexp.MustCompile(`(?i)^radar(-beta)?\b`), fixed(kind.Radar)},
	{regexp.MustCompile(`(?i)^treemap\b`), fixed(kind.Treemap)},
}

var errorLiteralRegex = regexp.MustCompile(`(?i)^error\s*$`)

// DetectType classifies processedSource, the output of the preprocessing
// pipeline, into a DiagramKind. It returns ok=false if nothing matches.
//
// The two pseudo-kinds are detected before the ordered rule table: an exact
// (case-insensitive) "error" literal resolves to [kind.Error], and a leading
// "---" — which only reaches the classifier when the preprocessor's
// frontmatter pass failed to find a closing delimiter — resolves to
// [kind.BadFrontmatter].
func DetectType(processedSource string, cfg config.Configuration) (kind.DiagramKind, bool) {
	trimmed := strings.TrimSpace(processedSource)
	if trimmed == "" {
		return kind.DiagramKind{}, false
	}

	if errorLiteralRegex.MatchString(trimmed) {
		return kind.Error, true
	}
	if strings.HasPrefix(trimmed, "---") {
		return kind.BadFrontmatter, true
	}

	for _, r := range rules {
		if m := r.pattern.FindStringSubmatch(trimmed); m != nil {
			return r.resolve(cfg, m), true
		}
	}

	return kind.DiagramKind{}, false
}
