// Package audit provides structured logging and auditing for duml operations.
package audit

import (
	"time"
)

// Category represents the type of operation being audited.
type Category string

const (
	CategoryDiagram  Category = "diagram"
	CategoryMember   Category = "member"
	CategoryRelation Category = "relation"
	CategoryHistory  Category = "history"
	CategorySession  Category = "session"
	CategoryStorage  Category = "storage"
	CategoryGraph    Category = "graph"
)

// Status represents the outcome of an operation.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusWarning Status = "warning"
)

// AuditEvent represents a single auditable operation.
type AuditEvent struct {
	EventID string `json:"event_id"`

	// Operation details
	Category  Category `json:"category"`
	Operation string   `json:"operation"`
	Command   string   `json:"command,omitempty"`

	// Result
	Status       Status `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`

	// Timing
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at,omitempty"`
	DurationMs  int64         `json:"duration_ms,omitempty"`
	Duration    time.Duration `json:"-"`

	// Session context
	SessionID string `json:"session_id,omitempty"`
	Diagram   string `json:"diagram,omitempty"`
}

// Complete finalizes the event with timing and status.
func (e *AuditEvent) Complete(status Status, err error) {
	e.CompletedAt = time.Now()
	e.Duration = e.CompletedAt.Sub(e.StartedAt)
	e.DurationMs = e.Duration.Milliseconds()
	e.Status = status

	if err != nil {
		e.ErrorMessage = err.Error()
		if status == "" {
			e.Status = StatusError
		}
	}
}
