package parser

import (
	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diag"
	"github.com/mermaidlint/mermaidlint/diagrams/class"
	"github.com/mermaidlint/mermaidlint/diagrams/er"
	"github.com/mermaidlint/mermaidlint/diagrams/flow"
	"github.com/mermaidlint/mermaidlint/diagrams/gantt"
	"github.com/mermaidlint/mermaidlint/diagrams/gitgraph"
	"github.com/mermaidlint/mermaidlint/diagrams/journey"
	"github.com/mermaidlint/mermaidlint/diagrams/pie"
	"github.com/mermaidlint/mermaidlint/diagrams/sequence"
	"github.com/mermaidlint/mermaidlint/diagrams/state"
	"github.com/mermaidlint/mermaidlint/diagrams/stub"
	"github.com/mermaidlint/mermaidlint/kind"
)

// Dispatcher maps a classified DiagramKind to the Diagram that parses it.
// Kinds the classifier can return but which have no dedicated grammar route
// to the stub dispatcher (§4.6): a single-node AST, no diagnostics.
type Dispatcher struct {
	parsers map[kind.DiagramKind]Diagram
}

// NewDispatcher builds the fixed kind -> parser table. The two pseudo-kinds
// (Error, BadFrontmatter) are never registered here: the orchestrator must
// handle them before reaching Dispatch.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{parsers: make(map[kind.DiagramKind]Diagram)}

	d.register(kind.Flowchart, Func(flow.ParseAs(kind.Flowchart)))
	d.register(kind.FlowchartV2, Func(flow.ParseAs(kind.FlowchartV2)))
	d.register(kind.FlowchartElk, Func(flow.ParseAs(kind.FlowchartElk)))
	d.register(kind.Sequence, sequence.New())
	d.register(kind.Class, class.New(kind.Class))
	d.register(kind.ClassDiagram, class.New(kind.ClassDiagram))
	d.register(kind.State, state.New(kind.State))
	d.register(kind.StateDiagram, state.New(kind.StateDiagram))
	d.register(kind.Er, er.New())
	d.register(kind.Gantt, gantt.New())
	d.register(kind.Journey, journey.New())
	d.register(kind.Pie, pie.New())
	d.register(kind.GitGraph, gitgraph.New())

	for _, k := range []kind.DiagramKind{
		kind.C4, kind.Packet, kind.Treemap, kind.Sankey, kind.Kanban,
		kind.Block, kind.Radar, kind.Info, kind.Timeline, kind.Mindmap,
		kind.Architecture, kind.Requirement, kind.XyChart, kind.QuadrantChart,
	} {
		d.register(k, stub.New(k))
	}

	return d
}

func (d *Dispatcher) register(k kind.DiagramKind, p Diagram) {
	d.parsers[k] = p
}

// Dispatch routes source to the parser registered for k. It panics if k is
// a pseudo-kind or otherwise unregistered — callers must only dispatch
// kinds returned by the classifier's ordered rule table, and the
// dispatcher registers a stub for every one of those.
func (d *Dispatcher) Dispatch(k kind.DiagramKind, source string, cfg config.Configuration) (*ast.Ast, []diag.Diagnostic) {
	p, ok := d.parsers[k]
	if !ok {
		panic("parser.Dispatch: no parser registered for kind " + k.String())
	}
	return p.Parse(source, cfg)
}
