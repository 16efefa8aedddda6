package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/radicle-dev/rad-tui/internal/selection"
)

// Run drives the interface until the user selects or quits. The
// returned selection is nil when the user quit without selecting.
// Stdout belongs to the terminal; the caller writes the selection to
// stderr.
func Run(m *Model) (*selection.Selection, error) {
	program := tea.NewProgram(m, tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("terminal interface failed: %w", err)
	}

	model, ok := final.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model %T", final)
	}
	return model.Result(), nil
}
