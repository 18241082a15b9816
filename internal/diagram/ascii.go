package diagram

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// DrawASCIISectionDiagram sketches the section on a character grid, widthChars
// columns wide, with the centroidal axes drawn through it.
func DrawASCIISectionDiagram(data SectionDiagramData, widthChars int) string {
	var sb strings.Builder
	if len(data.Polygons) == 0 {
		return ""
	}
	if widthChars < 10 {
		widthChars = 10
	}

	lo, hi := Bounds(data.Polygons)
	w, h := hi.X-lo.X, hi.Y-lo.Y
	if w <= 0 || h <= 0 {
		return ""
	}

	// Terminal cells are about twice as tall as they are wide
	cell := w / float64(widthChars)
	heightChars := int(h/(2*cell) + 0.5)
	if heightChars < 1 {
		heightChars = 1
	}
	dy := h / float64(heightChars)

	axisCol := int((data.Centroid.X - lo.X) / cell)
	axisRow := int((hi.Y - data.Centroid.Y) / dy)

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(data.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(data.Title)))))

	for row := 0; row < heightChars; row++ {
		y := hi.Y - (float64(row)+0.5)*dy
		sb.WriteString("  ")
		for col := 0; col < widthChars; col++ {
			x := lo.X + (float64(col)+0.5)*cell
			solid := Covered(data.Polygons, r2.Vec{X: x, Y: y})
			switch {
			case row == axisRow && col == axisCol:
				sb.WriteString("┼")
			case row == axisRow:
				sb.WriteString("─")
			case col == axisCol:
				sb.WriteString("│")
			case solid:
				sb.WriteString("█")
			default:
				sb.WriteString(" ")
			}
		}
		if row == axisRow {
			sb.WriteString(" x")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  %*s\n", axisCol+1, "y"))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ███ = Section material\n")
	sb.WriteString(fmt.Sprintf("  ┼   = Centroid at (%.2f, %.2f) %s\n", data.Centroid.X, data.Centroid.Y, data.Unit))
	sb.WriteString(fmt.Sprintf("  Extents: %.2f × %.2f %s\n", w, h, data.Unit))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-fills s with spaces to n runes; %-*s counts bytes.
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
