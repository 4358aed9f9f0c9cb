package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mermaidlint/mermaidlint/classify"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/kind"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		src  string
		cfg  config.Configuration
		want kind.DiagramKind
	}{
		{"graph", "graph TD\nA-->B", config.Configuration{}, kind.Flowchart},
		{"graph dagre-wrapper", "graph TD", config.Configuration{Flowchart: config.FlowchartConfig{DefaultRenderer: "dagre-wrapper"}}, kind.FlowchartV2},
		{"graph elk layout", "graph TD", config.Configuration{Layout: "elk"}, kind.FlowchartElk},
		{"flowchart", "flowchart LR\nA-->B", config.Configuration{}, kind.FlowchartV2},
		{"flowchart elk", "flowchart LR", config.Configuration{Flowchart: config.FlowchartConfig{DefaultRenderer: "elk"}}, kind.FlowchartElk},
		{"flowchart-elk keyword", "flowchart-elk TD", config.Configuration{}, kind.FlowchartElk},
		{"sequence", "sequenceDiagram\nA->>B: hi", config.Configuration{}, kind.Sequence},
		{"classDiagram legacy", "classDiagram\nclass A", config.Configuration{}, kind.Class},
		{"classDiagram dagre-wrapper", "classDiagram", config.Configuration{Class: config.ClassConfig{DefaultRenderer: "dagre-wrapper"}}, kind.ClassDiagram},
		{"classDiagram-v2", "classDiagram-v2", config.Configuration{}, kind.ClassDiagram},
		{"stateDiagram legacy", "stateDiagram\n[*] --> A", config.Configuration{}, kind.State},
		{"stateDiagram-v2", "stateDiagram-v2", config.Configuration{}, kind.StateDiagram},
		{"er", "erDiagram\nA ||--o{ B : has", config.Configuration{}, kind.Er},
		{"gantt", "gantt\ntitle T", config.Configuration{}, kind.Gantt},
		{"pie", "pie showData\n\"A\": 10", config.Configuration{}, kind.Pie},
		{"journey", "journey\ntitle T", config.Configuration{}, kind.Journey},
		{"gitGraph", "gitGraph\ncommit", config.Configuration{}, kind.GitGraph},
		{"mindmap", "mindmap\nroot", config.Configuration{}, kind.Mindmap},
		{"kanban", "kanban\ncol1", config.Configuration{}, kind.Kanban},
		{"C4Context", "C4Context\ntitle T", config.Configuration{}, kind.C4},
		{"case insensitive", "GRAPH TD", config.Configuration{}, kind.Flowchart},
		{"leading whitespace", "\n\n  graph TD", config.Configuration{}, kind.Flowchart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classify.DetectType(tt.src, tt.cfg)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectTypePseudoKinds(t *testing.T) {
	k, ok := classify.DetectType("error", config.Configuration{})
	assert.True(t, ok)
	assert.Equal(t, kind.Error, k)

	k, ok = classify.DetectType("  ERROR  ", config.Configuration{})
	assert.True(t, ok)
	assert.Equal(t, kind.Error, k)

	k, ok = classify.DetectType("---\ntitle: no close", config.Configuration{})
	assert.True(t, ok)
	assert.Equal(t, kind.BadFrontmatter, k)
}

func TestDetectTypeNone(t *testing.T) {
	_, ok := classify.DetectType("not a diagram", config.Configuration{})
	assert.False(t, ok)

	_, ok = classify.DetectType("", config.Configuration{})
	assert.False(t, ok)

	_, ok = classify.DetectType("   \n  ", config.Configuration{})
	assert.False(t, ok)
}
