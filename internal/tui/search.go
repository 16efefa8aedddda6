package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchState owns the search line. Keystrokes edit a buffer that is
// previewed live; enter commits the buffer, escape restores the last
// committed value. The committed value survives reopening the line.
type SearchState struct {
	input     textinput.Model
	committed string
	active    bool
}

// NewSearchState creates a search line pre-seeded with a committed
// value, typically translated from CLI flags.
func NewSearchState(committed string) *SearchState {
	input := textinput.New()
	input.Prompt = "/ "
	input.CharLimit = 0
	input.SetValue(committed)

	return &SearchState{
		input:     input,
		committed: committed,
	}
}

// Active reports whether the line has focus.
func (s *SearchState) Active() bool {
	return s.active
}

// Open focuses the line for editing, starting from the committed value.
func (s *SearchState) Open() tea.Cmd {
	s.active = true
	s.input.SetValue(s.committed)
	s.input.CursorEnd()
	return s.input.Focus()
}

// Apply commits the buffer and closes the line.
func (s *SearchState) Apply() {
	s.committed = s.input.Value()
	s.active = false
	s.input.Blur()
}

// Cancel discards the buffer, restores the committed value and closes
// the line.
func (s *SearchState) Cancel() {
	s.input.SetValue(s.committed)
	s.active = false
	s.input.Blur()
}

// Value returns the committed value, or the live buffer while editing.
func (s *SearchState) Value() string {
	if s.active {
		return s.input.Value()
	}
	return s.committed
}

// Committed returns the last applied value.
func (s *SearchState) Committed() string {
	return s.committed
}

// Update forwards a message to the text input while editing.
func (s *SearchState) Update(msg tea.Msg) tea.Cmd {
	if !s.active {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the line.
func (s *SearchState) View() string {
	return s.input.View()
}
