// Package render provides output formatting for terminal consumption.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/joss/duml/internal/domain"
	"github.com/joss/duml/internal/editor"
	"github.com/joss/duml/internal/history"
)

// Renderer handles output formatting.
type Renderer struct {
	pretty bool
}

// New creates a new renderer.
func New(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// Classes formats the class list.
func (r *Renderer) Classes(snap editor.Snapshot) string {
	if len(snap.Classes) == 0 {
		return "No classes in diagram"
	}

	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Classes\n"))
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	}

	for _, cv := range snap.Classes {
		if r.pretty {
			fmt.Fprintf(&sb, "%s  %s\n", color.YellowString(cv.Name),
				color.HiBlackString("(%d fields, %d methods)", len(cv.Fields), len(cv.Methods)))
		} else {
			fmt.Fprintf(&sb, "%s fields=%d methods=%d\n", cv.Name, len(cv.Fields), len(cv.Methods))
		}
	}

	return sb.String()
}

// ClassDetail formats a single class with its members and relationships.
func (r *Renderer) ClassDetail(cv editor.ClassView, rels []editor.RelationshipView) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString(cv.Name) + "\n")
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	} else {
		sb.WriteString(cv.Name + "\n")
	}

	sb.WriteString("Fields:\n")
	if len(cv.Fields) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, fv := range cv.Fields {
		if r.pretty {
			fmt.Fprintf(&sb, "  %s %s\n", color.HiBlackString(fv.Type), fv.Name)
		} else {
			fmt.Fprintf(&sb, "  %s %s\n", fv.Type, fv.Name)
		}
	}

	sb.WriteString("Methods:\n")
	if len(cv.Methods) == 0 {
		sb.WriteString("  (none)\n")
	}
	for i, mv := range cv.Methods {
		ret := mv.ReturnType
		if ret == "" {
			ret = "void"
		}
		if r.pretty {
			fmt.Fprintf(&sb, "  %s %s %s\n", color.HiBlackString("%d.", i+1), color.GreenString(mv.Signature), color.HiBlackString(": "+ret))
		} else {
			fmt.Fprintf(&sb, "  %d. %s : %s\n", i+1, mv.Signature, ret)
		}
	}

	if len(rels) > 0 {
		sb.WriteString("Relationships:\n")
		for _, rv := range rels {
			r.formatRelationship(&sb, rv)
		}
	}

	return sb.String()
}

// Relationships formats the relationship list.
func (r *Renderer) Relationships(rels []editor.RelationshipView) string {
	if len(rels) == 0 {
		return "No relationships in diagram"
	}

	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Relationships\n"))
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	}

	for _, rv := range rels {
		r.formatRelationship(&sb, rv)
	}

	return sb.String()
}

func (r *Renderer) formatRelationship(sb *strings.Builder, rv editor.RelationshipView) {
	arrow := domain.RelationshipType(rv.Type).Arrow()

	if r.pretty {
		fmt.Fprintf(sb, "  %s %s %s  %s\n", rv.Source, color.MagentaString(arrow), rv.Destination,
			color.HiBlackString("(%s)", rv.Type))
	} else {
		fmt.Fprintf(sb, "  %s %s %s (%s)\n", rv.Source, arrow, rv.Destination, rv.Type)
	}
}

// History formats the undo history with the cursor position marked.
func (r *Renderer) History(entries []history.Entry, cursor int) string {
	if len(entries) == 0 {
		return "No history"
	}

	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("History\n"))
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	}

	for i, e := range entries {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		timeStr := e.At.Format("15:04:05")
		label := Truncate(e.Label, 60)
		if r.pretty {
			if i > cursor {
				label = color.HiBlackString(label)
			}
			fmt.Fprintf(&sb, "%s %s %s\n", marker, color.HiBlackString(timeStr), label)
		} else {
			fmt.Fprintf(&sb, "%s [%s] %s\n", marker, timeStr, label)
		}
	}

	return sb.String()
}

// Status formats the session status.
func (r *Renderer) Status(diagram string, classCount, relCount int, dirty bool) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("duml Status\n"))
		sb.WriteString(strings.Repeat("─", 40) + "\n")

		name := diagram
		if name == "" {
			name = color.HiBlackString("(none)")
		}
		fmt.Fprintf(&sb, "  Diagram:       %s\n", name)
		fmt.Fprintf(&sb, "  Classes:       %d\n", classCount)
		fmt.Fprintf(&sb, "  Relationships: %d\n", relCount)
		if dirty {
			fmt.Fprintf(&sb, "  Unsaved:       %s\n", color.YellowString("yes"))
		} else {
			fmt.Fprintf(&sb, "  Unsaved:       no\n")
		}
	} else {
		fmt.Fprintf(&sb, "diagram=%s classes=%d relationships=%d dirty=%v\n", diagram, classCount, relCount, dirty)
	}

	return sb.String()
}

// FormatDuration formats a duration in human-readable form.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}
