package render

import (
	"fmt"
	"io"
	"os"
)

// Writer wraps an io.Writer with line-oriented formatting helpers for
// commands that print directly instead of building a string.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

// Stdout returns a Writer over os.Stdout.
func Stdout() *Writer {
	return NewWriter(os.Stdout)
}

// Println writes a formatted line.
func (w *Writer) Println(format string, args ...any) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Item writes an indented item line.
func (w *Writer) Item(format string, args ...any) {
	fmt.Fprintf(w.out, "  "+format+"\n", args...)
}

// BoolIcon returns the glyph for a success flag.
func BoolIcon(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}

// Truncate shortens a string to max length, marking the cut.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
