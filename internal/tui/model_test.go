package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/radicle-dev/rad-tui/internal/config"
	"github.com/radicle-dev/rad-tui/internal/keybinds"
	"github.com/radicle-dev/rad-tui/internal/selection"
)

// fakeBrowser serves string items, filtering by substring. A filter
// line containing "!" is rejected as malformed.
type fakeBrowser struct {
	items    []string
	filtered []string
	filter   string
	loads    int
}

func (f *fakeBrowser) Kind() string              { return "thing" }
func (f *fakeBrowser) Context() keybinds.Context { return keybinds.ContextIssues }
func (f *fakeBrowser) HasPreview() bool          { return true }

func (f *fakeBrowser) Load(ctx context.Context) error {
	f.loads++
	f.apply()
	return nil
}

func (f *fakeBrowser) SetFilter(line string) error {
	if strings.Contains(line, "!") {
		return errMalformed
	}
	f.filter = line
	f.apply()
	return nil
}

func (f *fakeBrowser) apply() {
	f.filtered = nil
	for _, item := range f.items {
		if strings.Contains(item, f.filter) {
			f.filtered = append(f.filtered, item)
		}
	}
}

func (f *fakeBrowser) Len() int          { return len(f.filtered) }
func (f *fakeBrowser) Columns() []Column { return []Column{{Title: "Item", Width: 0}} }
func (f *fakeBrowser) Row(i int) []string {
	return []string{f.filtered[i]}
}
func (f *fakeBrowser) ID(i int) string {
	return f.filtered[i]
}
func (f *fakeBrowser) Preview(i int, width int) string { return "preview of " + f.filtered[i] }

func (f *fakeBrowser) Operation(action keybinds.Action) (string, bool) {
	switch action {
	case keybinds.ActionSelect:
		return "show", true
	case keybinds.ActionEdit:
		return "edit", true
	default:
		return "", false
	}
}

var errMalformed = &malformedError{}

type malformedError struct{}

func (e *malformedError) Error() string { return "malformed filter" }

func newTestModel(t *testing.T, mode selection.Mode, initialFilter string) (*Model, *fakeBrowser) {
	t.Helper()

	browser := &fakeBrowser{items: []string{"alpha", "bravo", "charlie"}}
	m := New(Options{
		Browser:       browser,
		Registry:      keybinds.NewDefaultRegistry(),
		Theme:         NewTheme(config.DefaultSettings()),
		OutputMode:    mode,
		InitialFilter: initialFilter,
	})

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(itemsLoadedMsg{})
	return m, browser
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, key := range keys {
		var msg tea.KeyMsg
		switch key {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestModel_SelectReturnsOperation(t *testing.T) {
	m, _ := newTestModel(t, selection.ModeOperation, "")

	press(m, "j")
	cmd := press(m, "enter")

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	result := m.Result()
	if result == nil {
		t.Fatal("expected selection")
	}
	if result.Operation == nil || *result.Operation != "show" {
		t.Errorf("operation = %v, want show", result.Operation)
	}
	if len(result.IDs) != 1 || result.IDs[0] != "bravo" {
		t.Errorf("IDs = %v", result.IDs)
	}
}

func TestModel_OperationKey(t *testing.T) {
	m, _ := newTestModel(t, selection.ModeOperation, "")

	press(m, "e")
	result := m.Result()
	if result == nil || result.Operation == nil || *result.Operation != "edit" {
		t.Fatalf("result = %+v", result)
	}
	if result.IDs[0] != "alpha" {
		t.Errorf("IDs = %v", result.IDs)
	}
}

func TestModel_IDModeStripsOperation(t *testing.T) {
	m, _ := newTestModel(t, selection.ModeID, "")

	// Operation keys do nothing in id mode.
	press(m, "e")
	if m.Result() != nil {
		t.Fatal("operation key should be inert in id mode")
	}

	press(m, "enter")
	result := m.Result()
	if result == nil || result.Operation != nil || result.IDs[0] != "alpha" {
		t.Errorf("result = %+v", result)
	}
}

func TestModel_QuitWithoutSelection(t *testing.T) {
	m, _ := newTestModel(t, selection.ModeOperation, "")

	cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.Result() != nil {
		t.Errorf("result = %+v, want nil", m.Result())
	}
}

func TestModel_SearchFiltersLive(t *testing.T) {
	m, browser := newTestModel(t, selection.ModeOperation, "")

	press(m, "/")
	if m.mode != ModeSearch {
		t.Fatal("expected search mode")
	}

	press(m, "b")
	if len(browser.filtered) != 1 || browser.filtered[0] != "bravo" {
		t.Errorf("live filter = %v", browser.filtered)
	}

	// Escape restores the previous (empty) filter.
	press(m, "esc")
	if m.mode != ModeBrowse {
		t.Fatal("expected browse mode")
	}
	if len(browser.filtered) != 3 {
		t.Errorf("filter after cancel = %v", browser.filtered)
	}
}

func TestModel_SearchCommit(t *testing.T) {
	m, browser := newTestModel(t, selection.ModeOperation, "")

	press(m, "/", "a", "l", "enter")
	if m.mode != ModeBrowse {
		t.Fatal("expected browse mode")
	}
	if len(browser.filtered) != 1 || browser.filtered[0] != "alpha" {
		t.Errorf("filtered = %v", browser.filtered)
	}

	press(m, "enter")
	if result := m.Result(); result == nil || result.IDs[0] != "alpha" {
		t.Errorf("result = %+v", result)
	}
}

func TestModel_InitialFilterApplied(t *testing.T) {
	m, browser := newTestModel(t, selection.ModeOperation, "char")

	if len(browser.filtered) != 1 || browser.filtered[0] != "charlie" {
		t.Errorf("filtered = %v", browser.filtered)
	}
	if got := m.search.Committed(); got != "char" {
		t.Errorf("search line = %q", got)
	}
}

func TestModel_MalformedFilterKeepsItems(t *testing.T) {
	m, browser := newTestModel(t, selection.ModeOperation, "")

	press(m, "/", "!")
	if m.filterErr == nil {
		t.Error("expected filter error")
	}
	if len(browser.filtered) != 3 {
		t.Errorf("filtered = %v, want all items kept", browser.filtered)
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, selection.ModeOperation, "")

	press(m, "?")
	if m.mode != ModeHelp {
		t.Fatal("expected help mode")
	}
	if view := m.View(); !strings.Contains(view, "Search grammar") {
		t.Error("help should document the search grammar")
	}

	press(m, "q")
	if m.mode != ModeBrowse {
		t.Error("q should close help")
	}
}

func TestModel_GotoSequence(t *testing.T) {
	m, _ := newTestModel(t, selection.ModeOperation, "")

	press(m, "G")
	if got := m.list.Index(); got != 2 {
		t.Errorf("Index after G = %d", got)
	}
	press(m, "g", "g")
	if got := m.list.Index(); got != 0 {
		t.Errorf("Index after gg = %d", got)
	}
}

func TestModel_TinyTerminal(t *testing.T) {
	browser := &fakeBrowser{items: []string{"alpha"}}
	m := New(Options{
		Browser:    browser,
		Registry:   keybinds.NewDefaultRegistry(),
		Theme:      NewTheme(config.DefaultSettings()),
		OutputMode: selection.ModeOperation,
	})

	// Render while still loading on a terminal shorter than the chrome.
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 3})
	if view := m.View(); view == "" {
		t.Error("expected non-empty view")
	}

	m.Update(itemsLoadedMsg{})
	if view := m.View(); !strings.Contains(view, "alpha") {
		t.Errorf("item missing from view:\n%s", view)
	}
}

func TestModel_RefreshReloads(t *testing.T) {
	m, browser := newTestModel(t, selection.ModeOperation, "")
	loads := browser.loads

	_, cmd := m.Update(refreshMsg{})
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	// Drive the reload command by hand.
	m.Update(m.loadCmd()())
	if browser.loads != loads+1 {
		t.Errorf("loads = %d, want %d", browser.loads, loads+1)
	}
}
