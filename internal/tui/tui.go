// Package tui provides the interactive diagram canvas using Bubble Tea.
// Classes render as boxes at their canvas positions; a command bar at
// the bottom accepts the same grammar as the shell.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joss/duml/internal/editor"
	"github.com/joss/duml/internal/render"
	"github.com/joss/duml/internal/shell"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	canvasStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))
)

// View represents the current view mode
type View int

const (
	ViewCanvas View = iota
	ViewHelp
)

// Model is the main TUI model
type Model struct {
	sh      *shell.Shell
	ed      *editor.Editor
	diagram string

	view     View
	selected int // index into snapshot classes
	output   string
	outErr   bool
	width    int
	height   int
	ready    bool
	quitting bool

	input textinput.Model
}

// New creates a new TUI model bound to an editing session.
func New(sh *shell.Shell, ed *editor.Editor, diagram string) Model {
	ti := textinput.New()
	ti.Placeholder = "command (help for reference)"
	ti.CharLimit = 200
	ti.Width = 60

	return Model{
		sh:      sh,
		ed:      ed,
		diagram: diagram,
		input:   ti,
	}
}

// Init initializes the TUI
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateCommandBar(msg)
		}
		return m.updateCanvasKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.Width = msg.Width - 6
	}

	return m, nil
}

func (m Model) updateCommandBar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	case "enter":
		line := m.input.Value()
		m.input.SetValue("")
		if strings.TrimSpace(line) == "" {
			return m, nil
		}
		res := m.sh.Exec(line)
		if res.Quit {
			m.quitting = true
			return m, tea.Quit
		}
		m.output = res.Output
		m.outErr = res.IsError
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateCanvasKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		if m.view == ViewHelp {
			m.view = ViewCanvas
		} else {
			m.view = ViewHelp
		}
		return m, nil
	case ":", "tab":
		m.input.Focus()
		return m, textinput.Blink
	case "u":
		m.runLine("undo")
	case "r":
		m.runLine("redo")
	case "s":
		m.runLine("save")
	case "n":
		if n := len(m.ed.Snapshot().Classes); n > 0 {
			m.selected = (m.selected + 1) % n
		}
	case "p":
		if n := len(m.ed.Snapshot().Classes); n > 0 {
			m.selected = (m.selected + n - 1) % n
		}
	case "up":
		m.moveSelected(0, -1)
	case "down":
		m.moveSelected(0, 1)
	case "left":
		m.moveSelected(-2, 0)
	case "right":
		m.moveSelected(2, 0)
	case "esc":
		m.view = ViewCanvas
	}
	return m, nil
}

// runLine executes a shell line and records its feedback.
func (m *Model) runLine(line string) {
	res := m.sh.Exec(line)
	m.output = res.Output
	m.outErr = res.IsError
	m.clampSelection()
}

func (m *Model) clampSelection() {
	n := len(m.ed.Snapshot().Classes)
	if n == 0 {
		m.selected = 0
	} else if m.selected >= n {
		m.selected = n - 1
	}
}

// moveSelected nudges the selected class on the canvas. The move goes
// through the shell so it lands in the undo history.
func (m *Model) moveSelected(dx, dy int) {
	classes := m.ed.Snapshot().Classes
	if m.selected >= len(classes) {
		return
	}
	cv := classes[m.selected]
	x, y := cv.X+dx, cv.Y+dy
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	m.runLine(fmt.Sprintf("class move %s %d %d", cv.Name, x, y))
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "\n  Loading..."
	}

	if m.view == ViewHelp {
		return m.viewHelp()
	}
	return m.viewCanvas()
}

func (m Model) viewCanvas() string {
	var b strings.Builder

	title := m.diagram
	if title == "" {
		title = "(unsaved)"
	}
	b.WriteString(titleStyle.Render("duml ─ "+title) + "\n")

	snap := m.ed.Snapshot()
	status := fmt.Sprintf("classes: %d │ relationships: %d", len(snap.Classes), len(snap.Relationships))
	b.WriteString(infoStyle.Render("  "+status) + "\n")

	var selected string
	if m.selected < len(snap.Classes) {
		selected = snap.Classes[m.selected].Name
	}

	canvasHeight := m.height - 10
	if canvasHeight < 5 {
		canvasHeight = 5
	}
	canvas := renderCanvas(snap, m.width-4, canvasHeight, selected)
	b.WriteString(canvasStyle.Width(m.width - 4).Render(canvas) + "\n")

	if len(snap.Relationships) > 0 {
		b.WriteString(infoStyle.Render("  "+relationshipLegend(snap.Relationships)) + "\n")
	}

	if m.output != "" {
		line := "  " + render.BoolIcon(!m.outErr) + " " + m.output
		if m.outErr {
			b.WriteString(errorStyle.Render(line) + "\n")
		} else {
			b.WriteString(infoStyle.Render(line) + "\n")
		}
	}

	if m.input.Focused() {
		b.WriteString("\n  " + m.input.View() + "\n")
		b.WriteString(helpStyle.Render("  enter: run │ esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("  :: command │ n/p: select │ arrows: move │ u/r: undo/redo │ s: save │ ?: help │ q: quit"))
	}

	return b.String()
}

func (m Model) viewHelp() string {
	help := `
  KEYS
    : or tab  Open the command bar
    n / p     Select next / previous class
    arrows    Move the selected class
    u / r     Undo / redo
    s         Save the diagram
    ?         Toggle help
    q         Quit

  COMMAND BAR
    The command bar accepts the same grammar as duml shell;
    type help there for the full command list.

  RELATIONSHIP ARROWS
    o--   Aggregation
    *--   Composition
    --|>  Inheritance
    ..|>  Realization
`
	return titleStyle.Render("Help") + "\n" + infoStyle.Render(help) + helpStyle.Render("\n  press ? to return")
}

// Run starts the TUI.
func Run(sh *shell.Shell, ed *editor.Editor, diagram string) error {
	p := tea.NewProgram(New(sh, ed, diagram), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
