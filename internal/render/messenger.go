package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ConsoleMessenger writes operation feedback to a terminal. Errors get
// a red prefix when pretty output is on.
type ConsoleMessenger struct {
	out    io.Writer
	pretty bool
}

// NewConsoleMessenger creates a messenger writing to stdout.
func NewConsoleMessenger(pretty bool) *ConsoleMessenger {
	return &ConsoleMessenger{out: os.Stdout, pretty: pretty}
}

// NewConsoleMessengerTo creates a messenger writing to w.
func NewConsoleMessengerTo(w io.Writer, pretty bool) *ConsoleMessenger {
	return &ConsoleMessenger{out: w, pretty: pretty}
}

// Infof reports a successful operation.
func (m *ConsoleMessenger) Infof(format string, args ...any) {
	fmt.Fprintf(m.out, format+"\n", args...)
}

// Errorf reports a rejected operation.
func (m *ConsoleMessenger) Errorf(format string, args ...any) {
	if m.pretty {
		fmt.Fprintf(m.out, "%s %s\n", color.RedString("error:"), fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(m.out, "error: %s\n", fmt.Sprintf(format, args...))
}

// CaptureMessenger records messages for front ends that display the
// last operation result themselves.
type CaptureMessenger struct {
	Last    string
	IsError bool
}

// Infof records a success message.
func (m *CaptureMessenger) Infof(format string, args ...any) {
	m.Last = fmt.Sprintf(format, args...)
	m.IsError = false
}

// Errorf records a rejection message.
func (m *CaptureMessenger) Errorf(format string, args ...any) {
	m.Last = fmt.Sprintf(format, args...)
	m.IsError = true
}
