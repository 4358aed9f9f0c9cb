package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mermaidlint/mermaidlint/diag"
	"github.com/mermaidlint/mermaidlint/location"
)

func TestRenderProducesThreeLineBlock(t *testing.T) {
	source := "graph TD\n    A --> B()\n"
	d := diag.NewDiagnostic(diag.EParserError, diag.SeverityError, location.NewSpan(20, 21), "empty shape body").Build()

	r := diag.NewRenderer(source, false)
	out := r.Render(d)

	assert.Contains(t, out, "error: [E301] empty shape body")
	assert.Contains(t, out, "--> 2:12")
	assert.Contains(t, out, "A --> B()")
	assert.Contains(t, out, "^")
}

func TestRenderOmitsContextForEmptySpan(t *testing.T) {
	d := diag.NewDiagnostic(diag.EUnknownDiagram, diag.SeverityError, location.Empty(0), "unrecognized diagram").Build()
	r := diag.NewRenderer("", false)
	out := r.Render(d)

	assert.NotContains(t, out, "|")
}

func TestRenderIncludesNotes(t *testing.T) {
	d := diag.NewDiagnostic(diag.EParserError, diag.SeverityError, location.Empty(0), "oops").
		WithNote("try again").
		Build()
	r := diag.NewRenderer("", false)
	out := r.Render(d)

	assert.Contains(t, out, "= note: try again")
}
