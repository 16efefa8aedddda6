package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Column describes one table column. Width 0 marks the flex column that
// absorbs the remaining width; every table has exactly one.
type Column struct {
	Title string
	Width int
}

const columnGap = 2

// columnWidths resolves fixed and flex widths for a total table width.
func columnWidths(columns []Column, width int) []int {
	widths := make([]int, len(columns))
	remaining := width - columnGap*(len(columns)-1)

	flex := -1
	for i, col := range columns {
		if col.Width == 0 {
			flex = i
			continue
		}
		widths[i] = col.Width
		remaining -= col.Width
	}
	if flex >= 0 {
		if remaining < 1 {
			remaining = 1
		}
		widths[flex] = remaining
	}
	return widths
}

// renderHeader renders the column titles.
func renderHeader(columns []Column, width int, style lipgloss.Style) string {
	widths := columnWidths(columns, width)
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = pad(col.Title, widths[i])
	}
	return style.Render(strings.Join(cells, strings.Repeat(" ", columnGap)))
}

// renderRow renders one row of cells. Cells may carry ANSI styling;
// truncation and padding are width-aware.
func renderRow(cells []string, columns []Column, width int) string {
	widths := columnWidths(columns, width)
	out := make([]string, len(cells))
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		out[i] = pad(cell, widths[i])
	}
	return strings.Join(out, strings.Repeat(" ", columnGap))
}

// pad truncates or right-pads a cell to an exact display width.
func pad(cell string, width int) string {
	if width < 1 {
		return ""
	}
	truncated := ansi.Truncate(cell, width, "…")
	gap := width - ansi.StringWidth(truncated)
	if gap > 0 {
		truncated += strings.Repeat(" ", gap)
	}
	return truncated
}
