package kind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mermaidlint/mermaidlint/kind"
)

func TestString(t *testing.T) {
	assert.Equal(t, "flowchart", kind.Flowchart.String())
	assert.Equal(t, "sequence", kind.Sequence.String())
	assert.Equal(t, "classDiagram", kind.ClassDiagram.String())
}

func TestNeedsEntityEncoding(t *testing.T) {
	assert.True(t, kind.Flowchart.NeedsEntityEncoding())
	assert.True(t, kind.FlowchartV2.NeedsEntityEncoding())
	assert.False(t, kind.Sequence.NeedsEntityEncoding())
}

func TestUsesAltGrammar(t *testing.T) {
	assert.True(t, kind.Pie.UsesAltGrammar())
	assert.True(t, kind.Packet.UsesAltGrammar())
	assert.False(t, kind.Flowchart.UsesAltGrammar())
}

func TestIsZero(t *testing.T) {
	var z kind.DiagramKind
	assert.True(t, z.IsZero())
	assert.False(t, kind.Flowchart.IsZero())
}

func TestAllContainsEveryDeclaredKind(t *testing.T) {
	all := kind.All()
	assert.Len(t, all, 29)
}
