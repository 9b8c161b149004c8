package editor

import (
	"github.com/joss/duml/internal/domain"
	"github.com/joss/duml/internal/event"
)

// AddClass creates an empty class.
func (e *Editor) AddClass(name string) bool {
	if !e.validIdents(name) {
		return false
	}
	if ok, reason := e.diagram.CheckClass(name, domain.ExpectAbsent); !ok {
		return e.reject("%s", reason)
	}
	e.diagram.AddClass(&domain.Class{Name: name})
	e.confirm("added class %q", name)
	e.notify(event.ClassAdded, event.Payload{Class: name})
	return true
}

// RenameClass renames a class and rewrites every relationship endpoint
// that referenced the old name. Renaming a class to its current name is
// rejected.
func (e *Editor) RenameClass(oldName, newName string) bool {
	if !e.validIdents(oldName, newName) {
		return false
	}
	if oldName == newName {
		return e.reject("class %q already has that name", oldName)
	}
	if ok, reason := e.diagram.CheckClass(oldName, domain.ExpectPresent); !ok {
		return e.reject("%s", reason)
	}
	if ok, reason := e.diagram.CheckClass(newName, domain.ExpectAbsent); !ok {
		return e.reject("%s", reason)
	}
	e.diagram.RenameClass(oldName, newName)
	e.confirm("renamed class %q to %q", oldName, newName)
	e.notify(event.ClassRenamed, event.Payload{Class: oldName, NewName: newName})
	return true
}

// RestoreClass reinserts a previously captured class at its original
// 1-based position in the diagram order, with its canvas position.
// Members and relationships are restored by their own operations. Used
// by undo, where a plain re-add would land at the tail and shift the
// diagram order.
func (e *Editor) RestoreClass(pos int, cv ClassView) bool {
	if !e.validIdents(cv.Name) {
		return false
	}
	if ok, reason := e.diagram.CheckClass(cv.Name, domain.ExpectAbsent); !ok {
		return e.reject("%s", reason)
	}
	if pos < 1 || pos > len(e.diagram.Classes())+1 {
		return e.reject("cannot restore a class at position %d", pos)
	}
	c := &domain.Class{Name: cv.Name, Position: domain.Position{X: cv.X, Y: cv.Y}}
	e.diagram.InsertClass(c, pos-1)
	e.confirm("restored class %q", cv.Name)
	e.notify(event.ClassAdded, event.Payload{Class: cv.Name})
	return true
}

// DeleteClass removes a class and cascades to every relationship that
// names it as source or destination.
func (e *Editor) DeleteClass(name string) bool {
	if !e.validIdents(name) {
		return false
	}
	if ok, reason := e.diagram.CheckClass(name, domain.ExpectPresent); !ok {
		return e.reject("%s", reason)
	}
	e.diagram.RemoveClass(name)
	e.confirm("deleted class %q", name)
	e.notify(event.ClassDeleted, event.Payload{Class: name})
	return true
}
