// Package editor implements the mutation API over the diagram: one
// operation per user-visible action. Every operation validates, mutates
// the entity model, recomputes the snapshot, and notifies the bus.
// User-input mistakes never surface as errors; operations report a
// success flag and route the human-readable reason to the Messenger.
package editor

import (
	"strconv"

	"github.com/joss/duml/internal/domain"
	"github.com/joss/duml/internal/event"
)

// Editor owns exactly one diagram per session. All mutation runs to
// completion before the next begins; observers never see partial state.
type Editor struct {
	diagram  *domain.Diagram
	bus      *event.Bus
	msg      Messenger
	snapshot Snapshot

	loading  bool // bulk reconstruction from a saved file
	undoRedo bool // history replay in progress
}

// Option configures the editor.
type Option func(*Editor)

// WithBus sets the observer bus.
func WithBus(bus *event.Bus) Option {
	return func(e *Editor) { e.bus = bus }
}

// WithMessenger sets the message channel for confirmations and
// rejection reasons.
func WithMessenger(m Messenger) Option {
	return func(e *Editor) { e.msg = m }
}

// New creates an editor with an empty diagram.
func New(opts ...Option) *Editor {
	e := &Editor{
		diagram: domain.NewDiagram(),
		bus:     event.NewBus(),
		msg:     NopMessenger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.snapshot = takeSnapshot(e.diagram)
	return e
}

// Bus returns the observer bus.
func (e *Editor) Bus() *event.Bus {
	return e.bus
}

// SetLoading toggles bulk-load mode: confirmations are suppressed while
// structural events still fire.
func (e *Editor) SetLoading(v bool) {
	e.loading = v
}

// Loading reports whether a bulk load is in progress.
func (e *Editor) Loading() bool {
	return e.loading
}

// SetUndoRedo marks subsequent mutations as history replay so observers
// can tell them apart from fresh user actions.
func (e *Editor) SetUndoRedo(v bool) {
	e.undoRedo = v
}

// Reset clears the diagram ("new file").
func (e *Editor) Reset() {
	e.diagram.Reset()
	e.confirm("diagram cleared")
	e.notify(event.DiagramReset, event.Payload{})
}

// MoveClass updates a class's opaque canvas position.
func (e *Editor) MoveClass(name string, x, y int) bool {
	c := e.diagram.Class(name)
	if c == nil {
		return e.reject("class %q does not exist", name)
	}
	c.Position = domain.Position{X: x, Y: y}
	e.notify(event.ClassMoved, event.Payload{Class: name, X: x, Y: y})
	return true
}

// notify recomputes the snapshot and fans the event out. Runs only
// after the mutation has fully completed.
func (e *Editor) notify(kind event.Kind, payload event.Payload) {
	e.snapshot = takeSnapshot(e.diagram)
	e.bus.Notify(kind, payload, e.loading, e.undoRedo)
}

// reject routes a failure reason to the message channel and reports
// failure. Rejections are reported even during loading.
func (e *Editor) reject(format string, args ...any) bool {
	e.msg.Errorf(format, args...)
	return false
}

// confirm emits a user-facing confirmation unless a bulk load is in
// progress.
func (e *Editor) confirm(format string, args ...any) {
	if e.loading {
		return
	}
	e.msg.Infof(format, args...)
}

// validIdents syntax-checks every identifier argument up front.
func (e *Editor) validIdents(names ...string) bool {
	for _, n := range names {
		if !domain.ValidIdentifier(n) {
			return e.reject("invalid identifier %q: only letters, digits and underscore are allowed", n)
		}
	}
	return true
}

// methodByPos resolves a textual 1-based method position. The index
// must be a base-10 integer in [1, methodCount].
func (e *Editor) methodByPos(class, pos string) (*domain.Class, *domain.Method, int, bool) {
	c := e.diagram.Class(class)
	if c == nil {
		e.reject("class %q does not exist", class)
		return nil, nil, 0, false
	}
	n, err := strconv.Atoi(pos)
	if err != nil {
		e.reject("method position %q is not a number", pos)
		return nil, nil, 0, false
	}
	m := c.MethodAt(n)
	if m == nil {
		e.reject("class %q has no method at position %d", class, n)
		return nil, nil, 0, false
	}
	return c, m, n, true
}
