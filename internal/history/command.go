// Package history wraps every user-visible mutation as an undoable
// command and keeps the ordered, cursor-addressed record backing
// undo/redo.
package history

// Command is one undoable unit of work. Execute performs the forward
// action, capturing beforehand whatever pre-state its inverse needs.
// Undo is a pure inverse of that captured state; it never re-derives
// anything from the live model, whose shape may have shifted since.
type Command interface {
	Execute() bool
	Undo() bool
	// Label names the action for history display.
	Label() string
}
