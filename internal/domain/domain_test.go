package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"Account", true},
		{"snake_case_9", true},
		{"_", true},
		{"42", true},
		{"", false},
		{"  ", false},
		{"with space", false},
		{"hy-phen", false},
		{"dot.ted", false},
		{"emojié", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidIdentifier(tt.input), "input %q", tt.input)
	}
}

func TestSignatureOf(t *testing.T) {
	assert.Equal(t, "move()", SignatureOf("move", nil))
	assert.Equal(t, "move(int)", SignatureOf("move", []string{"int"}))
	assert.Equal(t, "move(int, int)", SignatureOf("move", []string{"int", "int"}))
}

func TestMethodIdentity(t *testing.T) {
	m := Method{
		Name:       "add",
		ReturnType: "int",
		Params: []Parameter{
			{Name: "a", Type: "int"},
			{Name: "b", Type: "float"},
		},
	}

	assert.Equal(t, []string{"int", "float"}, m.ParamTypes())
	assert.Equal(t, "add(int, float)", m.Signature())
	assert.True(t, m.SameSignature("add", []string{"int", "float"}))
	assert.False(t, m.SameSignature("add", []string{"float", "int"}), "order matters")
	assert.False(t, m.SameSignature("add", []string{"int"}))
	assert.False(t, m.SameSignature("sub", []string{"int", "float"}))

	require.NotNil(t, m.Param("b"))
	assert.Equal(t, "float", m.Param("b").Type)
	assert.Nil(t, m.Param("missing"))
}

func TestClassMethodLookup(t *testing.T) {
	c := Class{
		Name: "Calc",
		Methods: []Method{
			{Name: "add"},
			{Name: "add", Params: []Parameter{{Name: "a", Type: "int"}}},
			{Name: "reset"},
		},
	}

	require.NotNil(t, c.MethodAt(1))
	assert.Equal(t, "add()", c.MethodAt(1).Signature())
	assert.Nil(t, c.MethodAt(0), "positions are 1-based")
	assert.Nil(t, c.MethodAt(4))

	assert.Equal(t, 2, c.MethodPosition("add", []string{"int"}))
	assert.Equal(t, 3, c.MethodPosition("reset", nil))
	assert.Equal(t, 0, c.MethodPosition("add", []string{"float"}))

	assert.True(t, c.HasMethodSignature("add", nil, 0))
	assert.False(t, c.HasMethodSignature("add", nil, 1), "the method itself is excluded")
	assert.True(t, c.HasMethodSignature("add", []string{"int"}, 1))
}

func TestRelationshipTypeVocabulary(t *testing.T) {
	tests := []struct {
		typ   RelationshipType
		arrow string
		label string
	}{
		{Aggregation, "o--", "AGGREGATES"},
		{Composition, "*--", "COMPOSES"},
		{Inheritance, "--|>", "INHERITS"},
		{Realization, "..|>", "REALIZES"},
	}
	for _, tt := range tests {
		assert.True(t, tt.typ.Valid())
		assert.Equal(t, tt.arrow, tt.typ.Arrow())
		assert.Equal(t, tt.label, tt.typ.GraphLabel())
	}

	_, ok := ParseRelationshipType("Friendship")
	assert.False(t, ok)
	assert.False(t, RelationshipType("aggregation").Valid(), "case sensitive")

	parsed, ok := ParseRelationshipType("Composition")
	require.True(t, ok)
	assert.Equal(t, Composition, parsed)

	assert.Len(t, RelationshipTypes(), 4)
}

func TestDiagramClassLifecycle(t *testing.T) {
	d := NewDiagram()
	d.AddClass(&Class{Name: "A"})
	d.AddClass(&Class{Name: "B"})
	d.AddClass(&Class{Name: "C"})

	assert.Equal(t, []string{"A", "B", "C"}, d.ClassNames())
	require.NotNil(t, d.Class("B"))
	assert.Nil(t, d.Class("Z"))

	d.RemoveClass("B")
	assert.Equal(t, []string{"A", "C"}, d.ClassNames())
	assert.Nil(t, d.Class("B"))
}

func TestDiagramInsertAtPosition(t *testing.T) {
	d := NewDiagram()
	d.AddClass(&Class{Name: "A"})
	d.AddClass(&Class{Name: "C"})
	d.InsertClass(&Class{Name: "B"}, 1)
	d.InsertClass(&Class{Name: "Z"}, 0)
	assert.Equal(t, []string{"Z", "A", "B", "C"}, d.ClassNames())

	d.AddRelationship(Relationship{Source: "A", Destination: "B", Type: Aggregation})
	d.AddRelationship(Relationship{Source: "B", Destination: "C", Type: Inheritance})
	d.InsertRelationship(Relationship{Source: "A", Destination: "C", Type: Composition}, 1)

	rels := d.Relationships()
	require.Len(t, rels, 3)
	assert.Equal(t, Aggregation, rels[0].Type)
	assert.Equal(t, Composition, rels[1].Type)
	assert.Equal(t, Inheritance, rels[2].Type)
}

func TestDiagramRemoveClassCascades(t *testing.T) {
	d := NewDiagram()
	d.AddClass(&Class{Name: "A"})
	d.AddClass(&Class{Name: "B"})
	d.AddClass(&Class{Name: "C"})
	d.AddRelationship(Relationship{Source: "A", Destination: "B", Type: Aggregation})
	d.AddRelationship(Relationship{Source: "B", Destination: "C", Type: Inheritance})
	d.AddRelationship(Relationship{Source: "A", Destination: "C", Type: Composition})

	d.RemoveClass("B")

	rels := d.Relationships()
	require.Len(t, rels, 1)
	assert.Equal(t, "A", rels[0].Source)
	assert.Equal(t, "C", rels[0].Destination)
}

func TestDiagramRenameClassRewritesEndpoints(t *testing.T) {
	d := NewDiagram()
	d.AddClass(&Class{Name: "Old"})
	d.AddClass(&Class{Name: "Other"})
	d.AddRelationship(Relationship{Source: "Old", Destination: "Other", Type: Realization})
	d.AddRelationship(Relationship{Source: "Other", Destination: "Old", Type: Aggregation})
	d.AddRelationship(Relationship{Source: "Old", Destination: "Old", Type: Inheritance})

	d.RenameClass("Old", "New")

	assert.Nil(t, d.Class("Old"))
	require.NotNil(t, d.Class("New"))
	for _, r := range d.Relationships() {
		assert.NotEqual(t, "Old", r.Source)
		assert.NotEqual(t, "Old", r.Destination)
	}
	self := d.Relationship("New", "New")
	require.NotNil(t, self, "self-relationship endpoints both rewritten")
	assert.Equal(t, Inheritance, self.Type)
}

func TestDiagramRelationshipsDirected(t *testing.T) {
	d := NewDiagram()
	d.AddClass(&Class{Name: "A"})
	d.AddClass(&Class{Name: "B"})
	d.AddRelationship(Relationship{Source: "A", Destination: "B", Type: Aggregation})

	assert.NotNil(t, d.Relationship("A", "B"))
	assert.Nil(t, d.Relationship("B", "A"), "pairs are ordered")

	d.AddRelationship(Relationship{Source: "B", Destination: "A", Type: Composition})
	assert.Len(t, d.RelationshipsOf("A"), 2)
	assert.Len(t, d.RelationshipsOf("B"), 2)

	d.RemoveRelationship("A", "B")
	assert.Nil(t, d.Relationship("A", "B"))
	assert.NotNil(t, d.Relationship("B", "A"))
}

func TestDiagramReset(t *testing.T) {
	d := NewDiagram()
	d.AddClass(&Class{Name: "A"})
	d.AddRelationship(Relationship{Source: "A", Destination: "A", Type: Inheritance})

	d.Reset()

	assert.Empty(t, d.Classes())
	assert.Empty(t, d.Relationships())
}

func TestCheckClass(t *testing.T) {
	d := NewDiagram()
	d.AddClass(&Class{Name: "A"})

	ok, _ := d.CheckClass("A", ExpectPresent)
	assert.True(t, ok)

	ok, reason := d.CheckClass("A", ExpectAbsent)
	assert.False(t, ok)
	assert.Contains(t, reason, "already exists")

	ok, reason = d.CheckClass("B", ExpectPresent)
	assert.False(t, ok)
	assert.Contains(t, reason, "does not exist")
}

func TestCheckField(t *testing.T) {
	d := NewDiagram()
	d.AddClass(&Class{Name: "A", Fields: []Field{{Name: "x", Type: "int"}}})

	ok, _ := d.CheckField("A", "x", ExpectPresent)
	assert.True(t, ok)

	ok, reason := d.CheckField("A", "y", ExpectPresent)
	assert.False(t, ok)
	assert.Contains(t, reason, `field "y" does not exist`)

	ok, reason = d.CheckField("Missing", "x", ExpectPresent)
	assert.False(t, ok)
	assert.Contains(t, reason, `class "Missing" does not exist`)
}

func TestCheckMethodSignature(t *testing.T) {
	d := NewDiagram()
	d.AddClass(&Class{Name: "A", Methods: []Method{
		{Name: "run", Params: []Parameter{{Name: "n", Type: "int"}}},
	}})

	ok, _ := d.CheckMethodSignature("A", "run", []string{"int"}, ExpectPresent)
	assert.True(t, ok)

	ok, reason := d.CheckMethodSignature("A", "run", nil, ExpectPresent)
	assert.False(t, ok, "same name, different arity")
	assert.Contains(t, reason, "run()")

	ok, reason = d.CheckMethodSignature("A", "run", []string{"int"}, ExpectAbsent)
	assert.False(t, ok)
	assert.Contains(t, reason, "run(int)")
}

func TestCheckParameter(t *testing.T) {
	d := NewDiagram()
	d.AddClass(&Class{Name: "A", Methods: []Method{
		{Name: "run", Params: []Parameter{{Name: "n", Type: "int"}}},
	}})

	ok, _ := d.CheckParameter("A", 1, "n", ExpectPresent)
	assert.True(t, ok)

	ok, reason := d.CheckParameter("A", 2, "n", ExpectPresent)
	assert.False(t, ok)
	assert.Contains(t, reason, "no method at position 2")

	ok, reason = d.CheckParameter("A", 1, "m", ExpectPresent)
	assert.False(t, ok)
	assert.Contains(t, reason, `parameter "m" does not exist`)
}

func TestCheckRelationship(t *testing.T) {
	d := NewDiagram()
	d.AddClass(&Class{Name: "A"})
	d.AddClass(&Class{Name: "B"})
	d.AddRelationship(Relationship{Source: "A", Destination: "B", Type: Aggregation})

	ok, _ := d.CheckRelationship("A", "B", ExpectPresent)
	assert.True(t, ok)

	ok, reason := d.CheckRelationship("B", "A", ExpectPresent)
	assert.False(t, ok, "direction matters")
	assert.Contains(t, reason, "no relationship")

	ok, reason = d.CheckRelationship("A", "Ghost", ExpectAbsent)
	assert.False(t, ok, "endpoints must exist even when expecting absence")
	assert.Contains(t, reason, `class "Ghost" does not exist`)

	ok, reason = d.CheckRelationship("A", "B", ExpectAbsent)
	assert.False(t, ok)
	assert.Contains(t, reason, "already exists")
}
