package editor

// Messenger is the message channel for user-facing text. Reasons sent
// here are not part of the programmatic contract; callers branch on the
// boolean the operations return.
type Messenger interface {
	// Infof reports a confirmation.
	Infof(format string, args ...any)
	// Errorf reports a rejection reason.
	Errorf(format string, args ...any)
}

// NopMessenger discards all messages. Default for embedding the editor
// in tests and services.
type NopMessenger struct{}

// Infof implements Messenger.
func (NopMessenger) Infof(format string, args ...any) {}

// Errorf implements Messenger.
func (NopMessenger) Errorf(format string, args ...any) {}
