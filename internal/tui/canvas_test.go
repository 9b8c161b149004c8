package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joss/duml/internal/editor"
)

func TestClassBoxShape(t *testing.T) {
	cv := editor.ClassView{
		Name:   "Account",
		Fields: []editor.FieldView{{Name: "balance", Type: "int"}},
		Methods: []editor.MethodView{
			{Name: "deposit", ReturnType: "void", Signature: "deposit(int)"},
		},
	}

	lines := classBox(cv, false)
	// top border, field, separator, method, bottom border
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Account")
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.Contains(t, lines[1], "int balance")
	assert.Contains(t, lines[3], "deposit(int): void")
	assert.True(t, strings.HasPrefix(lines[4], "└"))

	// Every line is the same width
	width := len([]rune(lines[0]))
	for _, line := range lines {
		assert.Equal(t, width, len([]rune(line)))
	}
}

func TestClassBoxSelectedUsesDoubleBorder(t *testing.T) {
	lines := classBox(editor.ClassView{Name: "A"}, true)
	assert.True(t, strings.HasPrefix(lines[0], "╔"))
}

func TestClassBoxEmptyClass(t *testing.T) {
	lines := classBox(editor.ClassView{Name: "Empty"}, false)
	// just the two borders
	require.Len(t, lines, 2)
}

func TestRenderCanvasPlacesBoxes(t *testing.T) {
	snap := editor.Snapshot{
		Classes: []editor.ClassView{
			{Name: "A", X: 0, Y: 0},
			{Name: "B", X: 20, Y: 3},
		},
	}

	out := renderCanvas(snap, 60, 10, "")
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 10)

	assert.Contains(t, rows[0], "A")
	assert.Contains(t, rows[3], "B")
	assert.True(t, strings.Index(rows[3], "B") >= 20)
}

func TestRenderCanvasClipsOutOfBounds(t *testing.T) {
	snap := editor.Snapshot{
		Classes: []editor.ClassView{{Name: "Far", X: 500, Y: 500}},
	}

	out := renderCanvas(snap, 40, 8, "")
	assert.NotContains(t, out, "Far")
}

func TestRelationshipLegend(t *testing.T) {
	legend := relationshipLegend([]editor.RelationshipView{
		{Source: "Dog", Destination: "Animal", Type: "Inheritance"},
		{Source: "Bank", Destination: "Account", Type: "Aggregation"},
	})

	assert.Contains(t, legend, "Dog --|> Animal")
	assert.Contains(t, legend, "Bank o-- Account")
}
