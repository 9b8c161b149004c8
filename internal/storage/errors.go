package storage

import (
	"errors"
	"fmt"
)

// Common storage errors. The storage boundary is the one place a hard
// failure is allowed to surface; the diagram core never errors for
// user-input mistakes.
var (
	// ErrNotFound indicates the requested diagram does not exist.
	ErrNotFound = errors.New("diagram not found")

	// ErrParse indicates the persisted document could not be decoded.
	ErrParse = errors.New("unparseable diagram document")

	// ErrReplay indicates a decoded document violated the model
	// invariants while being replayed.
	ErrReplay = errors.New("diagram document rejected during replay")

	// ErrClosed indicates the registry has been closed.
	ErrClosed = errors.New("registry is closed")
)

// ParseError wraps ErrParse with the offending path.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// NewParseError creates a typed parse error.
func NewParseError(path string, err error) error {
	return &ParseError{Path: path, Err: err}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsParse checks if an error is a document parse error.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}
