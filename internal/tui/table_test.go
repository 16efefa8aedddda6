package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestColumnWidths_FlexAbsorbsRemainder(t *testing.T) {
	columns := []Column{
		{Title: "ID", Width: 7},
		{Title: "Title", Width: 0},
		{Title: "Author", Width: 10},
	}

	widths := columnWidths(columns, 50)
	if widths[0] != 7 || widths[2] != 10 {
		t.Errorf("fixed widths = %v", widths)
	}
	// 50 total - 17 fixed - 4 gap
	if widths[1] != 29 {
		t.Errorf("flex width = %d, want 29", widths[1])
	}
}

func TestColumnWidths_NarrowTerminal(t *testing.T) {
	columns := []Column{
		{Title: "ID", Width: 7},
		{Title: "Title", Width: 0},
	}
	widths := columnWidths(columns, 5)
	if widths[1] < 1 {
		t.Errorf("flex width = %d, want at least 1", widths[1])
	}
}

func TestPad_TruncatesStyledCells(t *testing.T) {
	styled := "\x1b[32mhello world\x1b[0m"

	got := pad(styled, 8)
	if width := ansi.StringWidth(got); width != 8 {
		t.Errorf("display width = %d, want 8", width)
	}
	if !strings.Contains(got, "…") {
		t.Error("expected truncation ellipsis")
	}

	got = pad("hi", 5)
	if got != "hi   " {
		t.Errorf("pad(hi, 5) = %q", got)
	}
}

func TestRenderRow(t *testing.T) {
	columns := []Column{
		{Title: "ID", Width: 4},
		{Title: "Title", Width: 0},
	}
	row := renderRow([]string{"abcd", "a title"}, columns, 20)
	if width := ansi.StringWidth(row); width != 20 {
		t.Errorf("row width = %d, want 20: %q", width, row)
	}
	if !strings.HasPrefix(row, "abcd  ") {
		t.Errorf("row = %q", row)
	}
}
