package domain

// RelationshipType is the closed vocabulary of relationship kinds.
type RelationshipType string

const (
	Aggregation RelationshipType = "Aggregation"
	Composition RelationshipType = "Composition"
	Inheritance RelationshipType = "Inheritance"
	Realization RelationshipType = "Realization"
)

// relMeta provides per-type metadata (extend via map, not switch).
var relMeta = map[RelationshipType]struct {
	Arrow      string // canvas / console glyph, source side first
	GraphLabel string // edge label for the graph mirror
}{
	Aggregation: {"o--", "AGGREGATES"},
	Composition: {"*--", "COMPOSES"},
	Inheritance: {"--|>", "INHERITS"},
	Realization: {"..|>", "REALIZES"},
}

// Valid reports whether the type is in the fixed vocabulary.
func (t RelationshipType) Valid() bool {
	_, ok := relMeta[t]
	return ok
}

// Arrow returns the display glyph for this relationship type.
func (t RelationshipType) Arrow() string {
	if m, ok := relMeta[t]; ok {
		return m.Arrow
	}
	return "---"
}

// GraphLabel returns the edge label used by the graph mirror.
func (t RelationshipType) GraphLabel() string {
	if m, ok := relMeta[t]; ok {
		return m.GraphLabel
	}
	return "RELATES_TO"
}

// RelationshipTypes lists the vocabulary in display order.
func RelationshipTypes() []RelationshipType {
	return []RelationshipType{Aggregation, Composition, Inheritance, Realization}
}

// ParseRelationshipType resolves user text to a type; ok is false when
// the text is outside the vocabulary.
func ParseRelationshipType(s string) (RelationshipType, bool) {
	t := RelationshipType(s)
	return t, t.Valid()
}

// Relationship is a directed, typed edge between two classes. Endpoints
// reference classes by name; renaming a class rewrites them.
type Relationship struct {
	Source      string           `json:"source"`
	Destination string           `json:"destination"`
	Type        RelationshipType `json:"type"`
}
