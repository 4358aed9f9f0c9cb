// Package location provides byte-offset source positions for the diagram
// parsers: [Span], a half-open byte range over the processed source, and
// [Position], its human-readable (line, column) translation.
//
// Every Span indexes the *processed* source — the text produced by the
// preprocessing pipeline — never the raw input a caller supplied. Consumers
// that need to relate a Span back to a line of text must translate it with
// a [LineIndex] built over that same processed text.
package location
