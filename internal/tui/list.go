package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderList renders a browser's filtered items as a static table for
// non-interactive output. lipgloss strips the styling when stdout is
// not a terminal.
func RenderList(b Browser, width int) string {
	columns := b.Columns()

	lines := make([]string, 0, b.Len()+1)
	lines = append(lines, renderHeader(columns, width, lipgloss.NewStyle().Bold(true)))
	for i := 0; i < b.Len(); i++ {
		lines = append(lines, renderRow(b.Row(i), columns, width))
	}
	return strings.Join(lines, "\n")
}
