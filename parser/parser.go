// Package parser defines the uniform interface every per-kind diagram
// grammar implements, and the dispatcher that routes a classified
// DiagramKind to its parser.
package parser

import (
	"github.com/mermaidlint/mermaidlint/ast"
	"github.com/mermaidlint/mermaidlint/config"
	"github.com/mermaidlint/mermaidlint/diag"
)

// Diagram is the uniform parser interface every diagram kind implements:
// consume the token stream built from source and emit an AST, collecting
// diagnostics along the way.
//
// Parse never returns a Go error. It returns the built Ast, and the
// diagnostics collected while building it; the caller (the orchestrator)
// decides ok by checking whether any diagnostic is Error-severity, per
// §4.6's "Ok(ast) only if no Error-severity diagnostic was recorded" rule.
// A parser must not report zero diagnostics while silently truncating the
// tree — if it gives up, it must record why.
type Diagram interface {
	Parse(source string, cfg config.Configuration) (*ast.Ast, []diag.Diagnostic)
}

// Func adapts a plain function to the Diagram interface.
type Func func(source string, cfg config.Configuration) (*ast.Ast, []diag.Diagnostic)

// Parse implements Diagram.
func (f Func) Parse(source string, cfg config.Configuration) (*ast.Ast, []diag.Diagnostic) {
	return f(source, cfg)
}

// Ok reports whether diagnostics contains no Error-severity entry.
func Ok(diagnostics []diag.Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Severity() == diag.SeverityError {
			return false
		}
	}
	return true
}
