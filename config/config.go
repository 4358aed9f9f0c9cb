// Package config implements Configuration, the sparsely-populated settings
// record threaded through preprocessing, classification, and every diagram
// parser.
package config

// Configuration is a shallow, sparsely-populated settings record.
//
// Every field defaults to its zero value ("unset"). [Configuration.Merge]
// lets an incoming record overwrite only the fields it actually sets —
// a right-biased merge, so applying base, then frontmatter, then directive
// settings in order yields the correct final configuration without any
// pass needing to know what an earlier pass already decided.
type Configuration struct {
	Flowchart FlowchartConfig `json:"flowchart,omitempty" yaml:"flowchart,omitempty"`
	Class     ClassConfig     `json:"class,omitempty" yaml:"class,omitempty"`
	State     StateConfig     `json:"state,omitempty" yaml:"state,omitempty"`
	Gantt     GanttConfig     `json:"gantt,omitempty" yaml:"gantt,omitempty"`
	// Wrap is a monotone flag: once true from any source, it stays true.
	Wrap bool `json:"wrap,omitempty" yaml:"wrap,omitempty"`
	// Layout is an opaque engine name; only "elk" is consulted by the
	// classifier.
	Layout string `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// FlowchartConfig holds flowchart-specific settings.
type FlowchartConfig struct {
	// DefaultRenderer is one of "dagre-d3", "dagre-wrapper", or "elk".
	DefaultRenderer string `json:"defaultRenderer,omitempty" yaml:"defaultRenderer,omitempty"`
}

// ClassConfig holds class-diagram-specific settings.
type ClassConfig struct {
	DefaultRenderer string `json:"defaultRenderer,omitempty" yaml:"defaultRenderer,omitempty"`
}

// StateConfig holds state-diagram-specific settings.
type StateConfig struct {
	DefaultRenderer string `json:"defaultRenderer,omitempty" yaml:"defaultRenderer,omitempty"`
}

// GanttConfig holds gantt-chart-specific settings.
type GanttConfig struct {
	DisplayMode string `json:"displayMode,omitempty" yaml:"displayMode,omitempty"`
}

// Merge overwrites fields in c with the fields other has set, and returns
// the result. c is not mutated.
//
// Merge is idempotent on equal inputs (merging a record into an identical
// copy of itself changes nothing) and is associative when two inputs touch
// disjoint fields, since each field is decided independently.
func (c Configuration) Merge(other Configuration) Configuration {
	out := c
	if other.Flowchart.DefaultRenderer != "" {
		out.Flowchart.DefaultRenderer = other.Flowchart.DefaultRenderer
	}
	if other.Class.DefaultRenderer != "" {
		out.Class.DefaultRenderer = other.Class.DefaultRenderer
	}
	if other.State.DefaultRenderer != "" {
		out.State.DefaultRenderer = other.State.DefaultRenderer
	}
	if other.Gantt.DisplayMode != "" {
		out.Gantt.DisplayMode = other.Gantt.DisplayMode
	}
	if other.Wrap {
		out.Wrap = true
	}
	if other.Layout != "" {
		out.Layout = other.Layout
	}
	return out
}
