package history

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/joss/duml/internal/editor"
)

// Entry is one executed command in the history.
type Entry struct {
	ID    string
	Label string
	At    time.Time

	cmd Command
}

// History is the ordered sequence of executed commands with a cursor at
// the most recently applied entry. Cursor -1 means nothing to undo.
type History struct {
	ed      *editor.Editor
	entries []Entry
	cursor  int
}

// New creates an empty history bound to an editor.
func New(ed *editor.Editor) *History {
	return &History{ed: ed, cursor: -1}
}

// Do runs a command. On success the redo tail past the cursor is
// discarded, the command is appended, and the cursor advances. A failed
// command is never recorded and the cursor stays put.
func (h *History) Do(cmd Command) bool {
	h.entries = h.entries[:h.cursor+1]
	if !cmd.Execute() {
		return false
	}
	h.entries = append(h.entries, Entry{
		ID:    ulid.Make().String(),
		Label: cmd.Label(),
		At:    time.Now(),
		cmd:   cmd,
	})
	h.cursor++
	return true
}

// Undo reverts the entry at the cursor. No-op when nothing was
// executed.
func (h *History) Undo() bool {
	if h.cursor < 0 {
		return false
	}
	h.ed.SetUndoRedo(true)
	defer h.ed.SetUndoRedo(false)
	if !h.entries[h.cursor].cmd.Undo() {
		return false
	}
	h.cursor--
	return true
}

// Redo re-applies the entry past the cursor. No-op when the cursor is
// already at the tail.
func (h *History) Redo() bool {
	if h.cursor >= len(h.entries)-1 {
		return false
	}
	h.ed.SetUndoRedo(true)
	defer h.ed.SetUndoRedo(false)
	if !h.entries[h.cursor+1].cmd.Execute() {
		return false
	}
	h.cursor++
	return true
}

// CanUndo reports whether an undo is available.
func (h *History) CanUndo() bool {
	return h.cursor >= 0
}

// CanRedo reports whether a redo is available.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the index of the most recently applied entry, -1 when
// fully undone.
func (h *History) Cursor() int {
	return h.cursor
}

// Entries returns the recorded entries for display.
func (h *History) Entries() []Entry {
	return h.entries
}

// Clear drops all entries. Called when a file is opened or the diagram
// is reset; history never spans documents.
func (h *History) Clear() {
	h.entries = nil
	h.cursor = -1
}
