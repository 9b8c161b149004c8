package editor

import (
	"github.com/joss/duml/internal/domain"
	"github.com/joss/duml/internal/event"
)

// AddRelationship creates a typed, directed relationship. Both endpoint
// classes must exist before anything is constructed; a class may relate
// to itself.
func (e *Editor) AddRelationship(source, destination, relType string) bool {
	if !e.validIdents(source, destination) {
		return false
	}
	t, ok := domain.ParseRelationshipType(relType)
	if !ok {
		return e.reject("unknown relationship type %q (expected one of %v)",
			relType, domain.RelationshipTypes())
	}
	if ok, reason := e.diagram.CheckRelationship(source, destination, domain.ExpectAbsent); !ok {
		return e.reject("%s", reason)
	}
	e.diagram.AddRelationship(domain.Relationship{Source: source, Destination: destination, Type: t})
	e.confirm("added %s relationship from %q to %q", t, source, destination)
	e.notify(event.RelationshipAdded, event.Payload{
		Source:      source,
		Destination: destination,
		Type:        string(t),
	})
	return true
}

// RestoreRelationship reinserts a previously captured relationship at
// its original 1-based position in the append order. Used by undo.
func (e *Editor) RestoreRelationship(pos int, rv RelationshipView) bool {
	if !e.validIdents(rv.Source, rv.Destination) {
		return false
	}
	t, ok := domain.ParseRelationshipType(rv.Type)
	if !ok {
		return e.reject("unknown relationship type %q (expected one of %v)",
			rv.Type, domain.RelationshipTypes())
	}
	if ok, reason := e.diagram.CheckRelationship(rv.Source, rv.Destination, domain.ExpectAbsent); !ok {
		return e.reject("%s", reason)
	}
	if pos < 1 || pos > len(e.diagram.Relationships())+1 {
		return e.reject("cannot restore a relationship at position %d", pos)
	}
	e.diagram.InsertRelationship(domain.Relationship{Source: rv.Source, Destination: rv.Destination, Type: t}, pos-1)
	e.confirm("restored %s relationship from %q to %q", t, rv.Source, rv.Destination)
	e.notify(event.RelationshipAdded, event.Payload{
		Source:      rv.Source,
		Destination: rv.Destination,
		Type:        string(t),
	})
	return true
}

// DeleteRelationship removes the relationship for the directed pair.
func (e *Editor) DeleteRelationship(source, destination string) bool {
	if !e.validIdents(source, destination) {
		return false
	}
	if ok, reason := e.diagram.CheckRelationship(source, destination, domain.ExpectPresent); !ok {
		return e.reject("%s", reason)
	}
	e.diagram.RemoveRelationship(source, destination)
	e.confirm("deleted relationship from %q to %q", source, destination)
	e.notify(event.RelationshipDeleted, event.Payload{Source: source, Destination: destination})
	return true
}

// RetypeRelationship changes a relationship's type. Requesting the
// current type, or a type outside the vocabulary, is rejected.
func (e *Editor) RetypeRelationship(source, destination, newType string) bool {
	if !e.validIdents(source, destination) {
		return false
	}
	t, ok := domain.ParseRelationshipType(newType)
	if !ok {
		return e.reject("unknown relationship type %q (expected one of %v)",
			newType, domain.RelationshipTypes())
	}
	if ok, reason := e.diagram.CheckRelationship(source, destination, domain.ExpectPresent); !ok {
		return e.reject("%s", reason)
	}
	r := e.diagram.Relationship(source, destination)
	if r.Type == t {
		return e.reject("relationship from %q to %q already has type %s", source, destination, t)
	}
	r.Type = t
	e.confirm("changed relationship from %q to %q to %s", source, destination, t)
	e.notify(event.RelationshipRetyped, event.Payload{
		Source:      source,
		Destination: destination,
		Type:        string(t),
	})
	return true
}
