package event

// Observer reacts to diagram notifications. The loading flag marks bulk
// reconstruction from a saved file; isUndoRedo marks history replay.
type Observer interface {
	Update(kind Kind, payload Payload, loading, isUndoRedo bool)
}

// Bus is a per-session observer registry. Delivery is synchronous,
// un-batched, in registration order; by the time Notify returns every
// observer has reacted. Observers filter on Kind themselves.
type Bus struct {
	observers []Observer
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Attach registers an observer. Attaching one that is already
// registered is a no-op.
func (b *Bus) Attach(o Observer) {
	for _, reg := range b.observers {
		if reg == o {
			return
		}
	}
	b.observers = append(b.observers, o)
}

// Detach removes an observer; detaching an unregistered observer is a
// no-op.
func (b *Bus) Detach(o Observer) {
	for i, reg := range b.observers {
		if reg == o {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered observers.
func (b *Bus) Len() int {
	return len(b.observers)
}

// Notify fans the event out to every observer in registration order.
func (b *Bus) Notify(kind Kind, payload Payload, loading, isUndoRedo bool) {
	for _, o := range b.observers {
		o.Update(kind, payload, loading, isUndoRedo)
	}
}

// ObserverFunc adapts a plain function to the Observer interface.
// Attach compares observers by identity, so the adapter is a pointer
// type rather than a bare func.
type ObserverFunc struct {
	fn func(kind Kind, payload Payload, loading, isUndoRedo bool)
}

// NewObserverFunc wraps fn as an Observer.
func NewObserverFunc(fn func(kind Kind, payload Payload, loading, isUndoRedo bool)) *ObserverFunc {
	return &ObserverFunc{fn: fn}
}

// Update implements Observer.
func (o *ObserverFunc) Update(kind Kind, payload Payload, loading, isUndoRedo bool) {
	o.fn(kind, payload, loading, isUndoRedo)
}
