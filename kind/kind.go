// Package kind defines DiagramKind, the closed set of diagram kinds the
// classifier can return, including the two pseudo-kinds Error and
// BadFrontmatter that never reach a parser.
package kind

import (
	"encoding/json"
	"fmt"
)

// DiagramKind identifies the grammar a source belongs to.
//
// DiagramKind is a closed enumeration: every value a classifier can produce
// is declared here. There is no escape hatch for unrecognized diagrams —
// the classifier returns DiagramKind{} with ok=false instead of a new value.
type DiagramKind struct {
	slug string
}

// String returns the kind's stable slug, e.g. "flowchart-v2".
func (k DiagramKind) String() string {
	return k.slug
}

// IsZero reports whether k is the unset zero value.
func (k DiagramKind) IsZero() bool {
	return k.slug == ""
}

// MarshalJSON renders the kind as its slug string.
func (k DiagramKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.slug)
}

// UnmarshalJSON parses a kind from its slug string, reporting an error for
// a slug this closed enumeration does not declare.
func (k *DiagramKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, candidate := range All() {
		if candidate.slug == s {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("kind: unknown DiagramKind slug %q", s)
}

// MarshalYAML renders the kind as its slug string.
func (k DiagramKind) MarshalYAML() (interface{}, error) {
	return k.slug, nil
}

// UnmarshalYAML parses a kind from its slug string, reporting an error for
// a slug this closed enumeration does not declare.
func (k *DiagramKind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	for _, candidate := range All() {
		if candidate.slug == s {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("kind: unknown DiagramKind slug %q", s)
}

func k(slug string) DiagramKind {
	return DiagramKind{slug: slug}
}

// Pseudo-kinds: detected before the ordered classifier and never dispatched
// to a parser.
var (
	Error          = k("error")
	BadFrontmatter = k("---")
)

// Phase 1: core diagrams with full hand-written parsers.
var (
	Flowchart    = k("flowchart")
	FlowchartV2  = k("flowchart-v2")
	FlowchartElk = k("flowchart-elk")
	Sequence     = k("sequence")
	Class        = k("class")
	ClassDiagram = k("classDiagram")
	State        = k("state")
	StateDiagram = k("stateDiagram")
)

// Phase 2: additional diagrams. Er, Gantt, Journey, Pie and GitGraph have
// hand-written parsers; Requirement, XyChart and QuadrantChart route to the
// stub dispatcher and have no dedicated grammar.
var (
	Er          = k("er")
	Gantt       = k("gantt")
	Journey     = k("journey")
	Pie         = k("pie")
	GitGraph    = k("gitGraph")
	Requirement = k("requirement")
	XyChart       = k("xychart")
	QuadrantChart = k("quadrantChart")
)

// Phase 3: kinds the classifier recognizes but which route to the stub
// dispatcher — they have no dedicated grammar.
var (
	C4           = k("c4")
	Packet       = k("packet")
	Treemap      = k("treemap")
	Sankey       = k("sankey")
	Kanban       = k("kanban")
	Block        = k("block")
	Radar        = k("radar")
	Info         = k("info")
	Timeline     = k("timeline")
	Mindmap      = k("mindmap")
	Architecture = k("architecture")
)

// NeedsEntityEncoding reports whether k is a member of the flow family, the
// only kinds the entity-encoding side-pass applies to.
func (k DiagramKind) NeedsEntityEncoding() bool {
	return k == Flowchart || k == FlowchartV2 || k == FlowchartElk
}

// IsLargeFeature reports whether k is one of the "large feature" diagrams
// (heavier, separately maintained grammars in the reference implementation).
// This predicate is informational only; it does not change parsing here.
func (k DiagramKind) IsLargeFeature() bool {
	return k == FlowchartElk || k == Mindmap || k == Architecture
}

// UsesAltGrammar reports whether k belongs to the subset of diagrams built
// on the alternate (Langium-family) grammar toolchain in the reference
// implementation. This predicate is informational only and does not alter
// parsing here — see the Open Questions in the design notes.
func (k DiagramKind) UsesAltGrammar() bool {
	switch k {
	case Pie, Info, Packet, GitGraph, Radar, Architecture, Treemap:
		return true
	default:
		return false
	}
}

// All returns every declared DiagramKind, pseudo-kinds first, useful for
// exhaustive table-driven tests. The order is not exactly declaration
// order: Requirement and Pie appear at different positions.
func All() []DiagramKind {
	return []DiagramKind{
		Error, BadFrontmatter,
		Flowchart, FlowchartV2, FlowchartElk,
		Sequence, Class, ClassDiagram, State, StateDiagram,
		Er, Gantt, Journey, Requirement, GitGraph, XyChart, QuadrantChart,
		C4, Packet, Treemap, Sankey, Kanban, Block, Radar, Pie, Info, Timeline, Mindmap, Architecture,
	}
}
