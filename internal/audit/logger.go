// Package audit provides structured logging and auditing for duml operations.
package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joss/duml/internal/config"
)

// Logger provides audit logging capabilities.
type Logger struct {
	mu        sync.Mutex
	sessionID string
	diagram   string
	output    io.Writer
}

// LoggerOption configures the logger.
type LoggerOption func(*Logger)

// WithSession sets the session ID.
func WithSession(id string) LoggerOption {
	return func(l *Logger) {
		l.sessionID = id
	}
}

// WithDiagram sets the diagram name.
func WithDiagram(name string) LoggerOption {
	return func(l *Logger) {
		l.diagram = name
	}
}

// WithOutput sets the output writer.
func WithOutput(w io.Writer) LoggerOption {
	return func(l *Logger) {
		l.output = w
	}
}

// NewLogger creates a new audit logger.
func NewLogger(opts ...LoggerOption) *Logger {
	l := &Logger{
		sessionID: config.Env().SessionID,
		diagram:   config.Env().Diagram,
		output:    os.Stderr,
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.sessionID == "" {
		l.sessionID = fmt.Sprintf("sess-%d", time.Now().UnixNano())
	}

	return l
}

// Start begins tracking an operation.
func (l *Logger) Start(category Category, operation string) *AuditEvent {
	return &AuditEvent{
		EventID:   uuid.New().String(),
		Category:  category,
		Operation: operation,
		StartedAt: time.Now(),
		SessionID: l.sessionID,
		Diagram:   l.diagram,
	}
}

// StartWithCommand begins tracking a command operation.
func (l *Logger) StartWithCommand(category Category, operation, command string) *AuditEvent {
	event := l.Start(category, operation)
	event.Command = command
	return event
}

// Log writes a completed event to the output.
func (l *Logger) Log(event *AuditEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Ensure timing is set
	if event.CompletedAt.IsZero() {
		event.CompletedAt = time.Now()
		event.Duration = event.CompletedAt.Sub(event.StartedAt)
		event.DurationMs = event.Duration.Milliseconds()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	_, err = fmt.Fprintf(l.output, "%s\n", data)
	return err
}

// LogSuccess logs a successful operation.
func (l *Logger) LogSuccess(event *AuditEvent) error {
	event.Complete(StatusSuccess, nil)
	return l.Log(event)
}

// LogError logs a failed operation.
func (l *Logger) LogError(event *AuditEvent, err error) error {
	event.Complete(StatusError, err)
	return l.Log(event)
}

// LogWarning logs a warning.
func (l *Logger) LogWarning(event *AuditEvent, msg string) error {
	event.Complete(StatusWarning, nil)
	event.ErrorMessage = msg
	return l.Log(event)
}

// LogOp logs a complete operation in one call.
func (l *Logger) LogOp(category Category, operation string, status Status, err error) {
	event := l.Start(category, operation)
	event.Complete(status, err)
	_ = l.Log(event)
}

// SetDiagram updates the diagram context (call after open/new).
func (l *Logger) SetDiagram(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.diagram = name
}

// GetSessionID returns the current session ID.
func (l *Logger) GetSessionID() string {
	return l.sessionID
}

// Global logger instance
var (
	globalLogger *Logger
	globalOnce   sync.Once
)

// Global returns the global logger instance.
func Global() *Logger {
	globalOnce.Do(func() {
		globalLogger = NewLogger()
	})
	return globalLogger
}

// SetGlobal sets the global logger.
func SetGlobal(l *Logger) {
	globalLogger = l
}

// Op logs a quick operation using the global logger.
func Op(category Category, operation string, status Status, err error) {
	Global().LogOp(category, operation, status, err)
}
