package tui

import (
	"fmt"
	"strings"

	"github.com/joss/duml/internal/domain"
	"github.com/joss/duml/internal/editor"
)

// Box-drawing sets. The selected class gets the double-line border.
var (
	singleBorder = [6]rune{'┌', '┐', '└', '┘', '─', '│'}
	doubleBorder = [6]rune{'╔', '╗', '╚', '╝', '═', '║'}
)

// classBox renders a class as plain-text lines so the grid compositor
// can place them cell by cell. Styling stays out of the box; ANSI
// sequences would break column arithmetic.
func classBox(cv editor.ClassView, selected bool) []string {
	border := singleBorder
	if selected {
		border = doubleBorder
	}

	var body []string
	for _, f := range cv.Fields {
		body = append(body, fmt.Sprintf("%s %s", f.Type, f.Name))
	}
	if len(cv.Fields) > 0 && len(cv.Methods) > 0 {
		body = append(body, "")
	}
	for _, mv := range cv.Methods {
		ret := mv.ReturnType
		if ret == "" {
			ret = "void"
		}
		body = append(body, fmt.Sprintf("%s: %s", mv.Signature, ret))
	}

	width := len([]rune(cv.Name)) + 4
	for _, line := range body {
		if w := len([]rune(line)) + 2; w > width {
			width = w
		}
	}

	h, v := string(border[4]), string(border[5])
	top := string(border[0]) + h + " " + cv.Name + " " +
		strings.Repeat(h, width-len([]rune(cv.Name))-3) + string(border[1])

	lines := []string{top}
	for _, line := range body {
		if line == "" {
			lines = append(lines, v+strings.Repeat("─", width)+v)
			continue
		}
		pad := width - len([]rune(line)) - 1
		lines = append(lines, v+" "+line+strings.Repeat(" ", pad)+v)
	}
	lines = append(lines, string(border[2])+strings.Repeat(h, width)+string(border[3]))
	return lines
}

// renderCanvas composites every class box onto a rune grid at its
// canvas position. Boxes outside the visible region are clipped; later
// classes paint over earlier ones when they overlap.
func renderCanvas(snap editor.Snapshot, width, height int, selected string) string {
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for _, cv := range snap.Classes {
		box := classBox(cv, cv.Name == selected)
		for dy, line := range box {
			y := cv.Y + dy
			if y < 0 || y >= height {
				continue
			}
			for dx, r := range []rune(line) {
				x := cv.X + dx
				if x < 0 || x >= width {
					continue
				}
				grid[y][x] = r
			}
		}
	}

	rows := make([]string, height)
	for i, row := range grid {
		rows[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(rows, "\n")
}

// relationshipLegend lists relationships in arrow notation on one line.
func relationshipLegend(rels []editor.RelationshipView) string {
	parts := make([]string, 0, len(rels))
	for _, rv := range rels {
		arrow := domain.RelationshipType(rv.Type).Arrow()
		parts = append(parts, fmt.Sprintf("%s %s %s", rv.Source, arrow, rv.Destination))
	}
	return strings.Join(parts, "   ")
}
