// Package mermaidlint is a non-rendering linter and parser toolkit for
// Mermaid-family diagram notations.
//
// Given a source string, [Parse] runs the full pipeline: preprocessing
// (normalize, frontmatter, directives, comments), classification into one
// of a closed set of [kind.DiagramKind] values, an entity-encoding side
// pass for the flow family, and dispatch to a per-kind grammar that
// produces a uniform [ast.Ast] while collecting [diag.Diagnostic] values.
// The result is never a Go error: failures surface as diagnostics carrying
// byte spans and stable codes.
//
// # Architecture
//
//	Foundation tier (imports only other foundation packages):
//	  - location: spans, positions, line/column translation
//	  - diag: the closed diagnostic taxonomy and collector
//	  - config: the sparsely-populated, right-biased settings record
//	  - kind: the closed diagram-kind enumeration
//	  - ast: the uniform parse tree
//
//	Pipeline tier:
//	  - preprocess: the four-pass preprocessing pipeline
//	  - classify: the diagram-type classifier
//	  - lex: the shared span-preserving cursor
//	  - diagrams/*: one grammar per diagram kind
//	  - parser: the Diagram interface and kind -> parser dispatcher
//
//	Entry points:
//	  - this package: Parse, Validate, DetectType
//	  - cmd/mermaidlint: the CLI
package mermaidlint
