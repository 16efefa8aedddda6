package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/radicle-dev/rad-tui/internal/keybinds"
)

const (
	// chromeLines is the vertical space around the table: header,
	// footer and shortcuts bar.
	chromeLines = 3

	// previewGutter separates the list from the preview pane.
	previewGutter = 3
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	if m.mode == ModeHelp {
		return m.renderHelp()
	}

	table := m.renderTable()

	var main string
	if m.browser.HasPreview() {
		main = lipgloss.JoinHorizontal(
			lipgloss.Top,
			table,
			m.renderPreviewPane(),
		)
	} else {
		main = table
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderFooter(),
		m.renderShortcuts(),
	)
}

// renderTable renders the header and the visible item rows.
func (m *Model) renderTable() string {
	width := m.width
	if m.browser.HasPreview() {
		width = m.width / 2
	}

	columns := m.browser.Columns()
	var lines []string
	lines = append(lines, renderHeader(columns, width, m.theme.Subtle.Bold(true)))

	start, end := m.list.Window()
	for i := start; i < end; i++ {
		row := renderRow(m.browser.Row(i), columns, width)
		if i == m.list.Index() && m.mode != ModeDetail {
			row = m.theme.Selected.Render(row)
		}
		lines = append(lines, row)
	}

	// Pad so the footer stays put while the list is short. Terminals
	// shorter than the chrome still get one content line.
	pageSize := m.height - chromeLines
	if pageSize < 1 {
		pageSize = 1
	}
	for len(lines) < pageSize+1 {
		lines = append(lines, "")
	}

	if m.loading && m.browser.Len() == 0 {
		lines[1] = m.theme.Subtle.Render("loading…")
	}

	return strings.Join(lines, "\n")
}

// renderPreviewPane renders the detail viewport with a focus border.
func (m *Model) renderPreviewPane() string {
	border := m.theme.Border
	if m.mode == ModeDetail {
		border = m.theme.FocusBorder
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(border.GetForeground()).
		PaddingLeft(1).
		Render(m.preview.View())
}

// renderFooter renders the search line while editing, otherwise the
// active filter, item count and scroll position.
func (m *Model) renderFooter() string {
	if m.mode == ModeSearch {
		return m.search.View()
	}

	left := m.search.Committed()
	if left != "" {
		left = m.theme.Subtle.Render("/" + left)
	}

	var problems []string
	if m.loadErr != nil {
		problems = append(problems, m.loadErr.Error())
	}
	if m.filterErr != nil {
		problems = append(problems, m.filterErr.Error())
	}
	if len(problems) > 0 {
		left = m.theme.Error.Render(strings.Join(problems, "; "))
	}

	count := fmt.Sprintf("%d %ss", m.browser.Len(), m.browser.Kind())
	right := m.theme.Subtle.Render(count + " · " + m.list.ScrollPercent())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderShortcuts renders the context keybindings on the bottom line.
func (m *Model) renderShortcuts() string {
	type shortcut struct {
		action keybinds.Action
		label  string
	}

	shortcuts := []shortcut{
		{keybinds.ActionSelect, "select"},
	}
	for _, op := range []shortcut{
		{keybinds.ActionEdit, "edit"},
		{keybinds.ActionCheckout, "checkout"},
		{keybinds.ActionComment, "comment"},
		{keybinds.ActionDelete, "delete"},
		{keybinds.ActionClear, "clear"},
	} {
		if _, ok := m.browser.Operation(op.action); ok {
			shortcuts = append(shortcuts, op)
		}
	}
	shortcuts = append(shortcuts,
		shortcut{keybinds.ActionOpenSearch, "search"},
		shortcut{keybinds.ActionOpenHelp, "help"},
		shortcut{keybinds.ActionQuit, "quit"},
	)

	var parts []string
	for _, s := range shortcuts {
		keys := m.registry.GetBinding(m.browser.Context(), s.action)
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, m.theme.Title.Render(keys[0])+" "+m.theme.Subtle.Render(s.label))
	}
	return strings.Join(parts, "  ")
}

// renderHelp renders the full-screen help overlay.
func (m *Model) renderHelp() string {
	title := m.theme.Title.Render("Help")
	footer := m.theme.Subtle.Render(fmt.Sprintf("%3.f%%", m.help.ScrollPercent()*100))

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border.GetForeground()).
		Padding(0, 1).
		Width(m.width - 2).
		Height(m.height - 3).
		Render(m.help.View())

	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}

// helpContent lists the active bindings and the search grammar.
func (m *Model) helpContent() string {
	var sb strings.Builder

	context := m.browser.Context()
	write := func(action keybinds.Action, label string) {
		keys := m.registry.GetBinding(context, action)
		if len(keys) == 0 {
			return
		}
		fmt.Fprintf(&sb, "  %-14s %s\n", strings.Join(keys, ", "), label)
	}

	sb.WriteString("Navigation\n")
	write(keybinds.ActionNavigateUp, "move up")
	write(keybinds.ActionNavigateDown, "move down")
	write(keybinds.ActionPageUp, "page up")
	write(keybinds.ActionPageDown, "page down")
	write(keybinds.ActionHalfPageUp, "half page up")
	write(keybinds.ActionHalfPageDown, "half page down")
	write(keybinds.ActionGoToTop, "go to first item")
	write(keybinds.ActionGoToBottom, "go to last item")

	sb.WriteString("\nActions\n")
	write(keybinds.ActionSelect, "select and exit")
	for _, op := range []struct {
		action keybinds.Action
		label  string
	}{
		{keybinds.ActionEdit, "edit"},
		{keybinds.ActionCheckout, "checkout"},
		{keybinds.ActionComment, "comment"},
		{keybinds.ActionDelete, "delete"},
		{keybinds.ActionClear, "clear"},
	} {
		if name, ok := m.browser.Operation(op.action); ok && op.action != keybinds.ActionSelect {
			write(op.action, name)
		}
	}
	write(keybinds.ActionYank, "copy id to clipboard")
	write(keybinds.ActionSwitchFocus, "focus preview")
	write(keybinds.ActionOpenSearch, "search")
	write(keybinds.ActionQuit, "quit")

	sb.WriteString("\nSearch grammar\n")
	sb.WriteString("  is:<state>           filter by state\n")
	sb.WriteString("  is:authored          items you authored\n")
	sb.WriteString("  is:assigned          items assigned to you\n")
	sb.WriteString("  authors:[<did>,…]    filter by author\n")
	sb.WriteString("  assignees:[<did>,…]  filter by assignee\n")
	sb.WriteString("  <text>               fuzzy match on titles\n")

	return sb.String()
}
