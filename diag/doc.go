// Package diag implements the diagnostic model shared by every diagram
// parser: a closed [Code] taxonomy, an ordered [Severity], an immutable
// [Diagnostic] value built through [NewDiagnostic], a [Collector] that
// gathers diagnostics during a single parse, and a [Renderer] that turns a
// Diagnostic into the three-line human-readable block callers see in text
// mode.
//
// A Diagnostic is never thrown as a Go error: it is collected. Parsers keep
// parsing after a local failure so a single pass can surface every problem
// it finds.
package diag
