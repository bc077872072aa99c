package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cag-dev/ndcube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}

// renderPoint formats one point's state line: coordinates and orientation
// are green when they match the original, red when they do not.
func renderPoint(p ndcube.PointState) string {
	coordStyle := badStyle
	if p.InOriginalPosition() {
		coordStyle = goodStyle
	}
	orientStyle := badStyle
	if p.InOriginalOrientation() {
		orientStyle = goodStyle
	}

	return labelStyle.Render("Current coordinates: ") +
		coordStyle.Render(joinInts(p.Coords)) +
		labelStyle.Render("  Orientation: ") +
		orientStyle.Render(joinInts(p.Orientation)) +
		labelStyle.Render("  Original coordinates: ") +
		joinInts(p.Original)
}

// renderState formats the full cube state: one line per point plus the
// solved flag and unsolvedness.
func renderState(c *ndcube.Cube) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Current state:"))
	b.WriteString("\n")
	for _, p := range c.Points() {
		b.WriteString(renderPoint(p))
		b.WriteString("\n")
	}

	solved := "No"
	style := badStyle
	if c.IsSolved() {
		solved = "Yes"
		style = goodStyle
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Solved?"), style.Render(solved))
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Unsolvedness:"), c.Unsolvedness())
	return b.String()
}
