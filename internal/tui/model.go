package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/radicle-dev/rad-tui/internal/keybinds"
	"github.com/radicle-dev/rad-tui/internal/selection"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeDetail
	ModeHelp
)

// Browser is the kind-specific half of the interface: the issue, patch
// and inbox browsers each provide their items, columns, preview and
// exit operations behind this interface, while Model owns navigation,
// search, help and selection.
type Browser interface {
	// Kind names the object kind for chrome ("issue", "patch", "notification").
	Kind() string

	// Context is the keybind context operations are resolved in.
	Context() keybinds.Context

	// Load fetches items from the node. Called off the UI goroutine.
	Load(ctx context.Context) error

	// SetFilter applies a search line. A parse error leaves the
	// previous filter in place.
	SetFilter(line string) error

	// Len is the filtered item count.
	Len() int

	// Columns describes the table.
	Columns() []Column

	// Row renders the filtered item at i as table cells.
	Row(i int) []string

	// ID returns the selectable id of the filtered item at i.
	ID(i int) string

	// HasPreview reports whether the browser renders a detail pane.
	HasPreview() bool

	// Preview renders the detail pane for the filtered item at i.
	Preview(i int, width int) string

	// Operation maps a keybind action to the operation returned to
	// the caller. ActionSelect maps to the default operation.
	Operation(action keybinds.Action) (string, bool)
}

// Messages exchanged with async commands.
type (
	itemsLoadedMsg struct{ err error }
	refreshMsg     struct{}
)

// Model is the bubbletea model shared by all browsers.
type Model struct {
	browser  Browser
	registry *keybinds.Registry
	theme    Theme

	// outputMode controls whether operations are returned or only ids.
	outputMode selection.Mode

	mode   Mode
	list   *ListState
	search *SearchState

	preview  viewport.Model
	help     viewport.Model

	width  int
	height int

	loading   bool
	loadErr   error
	filterErr error

	// refresh delivers storage-change signals from the watcher.
	refresh <-chan struct{}

	// result is the selection handed back to the invoking command,
	// nil when the user quit without selecting.
	result *selection.Selection
}

// Options configures a Model.
type Options struct {
	Browser    Browser
	Registry   *keybinds.Registry
	Theme      Theme
	OutputMode selection.Mode

	// InitialFilter pre-seeds the committed search line, typically
	// translated from CLI flags.
	InitialFilter string

	// Refresh, when non-nil, triggers reloads on storage changes.
	Refresh <-chan struct{}
}

// New creates the model. The browser's filter is applied before the
// first frame so flag-seeded filters never flash unfiltered content.
func New(opts Options) *Model {
	m := &Model{
		browser:    opts.Browser,
		registry:   opts.Registry,
		theme:      opts.Theme,
		outputMode: opts.OutputMode,
		list:       NewListState(20),
		search:     NewSearchState(opts.InitialFilter),
		preview:    viewport.New(80, 20),
		help:       viewport.New(80, 20),
		refresh:    opts.Refresh,
		loading:    true,
	}
	m.filterErr = m.browser.SetFilter(opts.InitialFilter)
	return m
}

// Result returns the selection made, or nil.
func (m *Model) Result() *selection.Selection {
	return m.result
}

// Init starts the initial load and arms the refresh listener.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCmd()}
	if m.refresh != nil {
		cmds = append(cmds, m.waitRefresh())
	}
	return tea.Batch(cmds...)
}

// loadCmd fetches items off the UI goroutine.
func (m *Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return itemsLoadedMsg{err: m.browser.Load(context.Background())}
	}
}

// waitRefresh blocks on the watcher channel.
func (m *Model) waitRefresh() tea.Cmd {
	refresh := m.refresh
	return func() tea.Msg {
		<-refresh
		return refreshMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case itemsLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		// Reapply the active filter over the fresh items.
		m.filterErr = m.browser.SetFilter(m.search.Value())
		m.list.SetLength(m.browser.Len())
		m.updatePreview()
		return m, nil

	case refreshMsg:
		if m.refresh != nil {
			return m, tea.Batch(m.loadCmd(), m.waitRefresh())
		}
		return m, m.loadCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses based on current mode
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Force quit works in every mode.
	if action, ok := m.registry.Match(keybinds.ContextGlobal, key); ok && action == keybinds.ActionQuitForce {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchKey(msg)
	case ModeHelp:
		return m.handleHelpKey(key)
	case ModeDetail:
		return m.handleDetailKey(key)
	default:
		return m.handleBrowseKey(key)
	}
}

// handleSearchKey edits the search line, previewing the filter live.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if action, ok := m.registry.Match(keybinds.ContextSearch, msg.String()); ok {
		switch action {
		case keybinds.ActionSearchApply:
			m.search.Apply()
			m.mode = ModeBrowse
			return m, nil
		case keybinds.ActionSearchCancel:
			m.search.Cancel()
			m.applyFilter()
			m.mode = ModeBrowse
			return m, nil
		}
	}

	cmd := m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

// handleHelpKey scrolls the help overlay.
func (m *Model) handleHelpKey(key string) (tea.Model, tea.Cmd) {
	action, matched, partial := m.registry.MatchMultiKey(keybinds.ContextHelp, key)
	if partial || !matched {
		return m, nil
	}

	switch action {
	case keybinds.ActionClose:
		m.mode = ModeBrowse
	case keybinds.ActionNavigateUp:
		m.help.ScrollUp(1)
	case keybinds.ActionNavigateDown:
		m.help.ScrollDown(1)
	case keybinds.ActionPageUp:
		m.help.PageUp()
	case keybinds.ActionPageDown:
		m.help.PageDown()
	case keybinds.ActionGoToTop:
		m.help.GotoTop()
	case keybinds.ActionGoToBottom:
		m.help.GotoBottom()
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return m, tea.Quit
	}
	return m, nil
}

// handleDetailKey scrolls the focused preview pane.
func (m *Model) handleDetailKey(key string) (tea.Model, tea.Cmd) {
	action, matched, partial := m.registry.MatchMultiKey(keybinds.ContextDetail, key)
	if partial || !matched {
		return m, nil
	}

	switch action {
	case keybinds.ActionSwitchFocus, keybinds.ActionClose:
		m.mode = ModeBrowse
	case keybinds.ActionNavigateUp:
		m.preview.ScrollUp(1)
	case keybinds.ActionNavigateDown:
		m.preview.ScrollDown(1)
	case keybinds.ActionPageUp:
		m.preview.PageUp()
	case keybinds.ActionPageDown:
		m.preview.PageDown()
	case keybinds.ActionHalfPageUp:
		m.preview.HalfViewUp()
	case keybinds.ActionHalfPageDown:
		m.preview.HalfViewDown()
	case keybinds.ActionGoToTop:
		m.preview.GotoTop()
	case keybinds.ActionGoToBottom:
		m.preview.GotoBottom()
	case keybinds.ActionOpenHelp:
		m.openHelp()
	case keybinds.ActionQuit:
		return m, tea.Quit
	}
	return m, nil
}

// handleBrowseKey drives the item list.
func (m *Model) handleBrowseKey(key string) (tea.Model, tea.Cmd) {
	action, matched, partial := m.registry.MatchMultiKey(m.browser.Context(), key)
	if partial || !matched {
		return m, nil
	}

	switch action {
	case keybinds.ActionQuit:
		return m, tea.Quit

	case keybinds.ActionNavigateUp:
		m.list.Navigate(-1)
		m.updatePreview()
	case keybinds.ActionNavigateDown:
		m.list.Navigate(1)
		m.updatePreview()
	case keybinds.ActionPageUp:
		m.list.Page(-1)
		m.updatePreview()
	case keybinds.ActionPageDown:
		m.list.Page(1)
		m.updatePreview()
	case keybinds.ActionHalfPageUp:
		m.list.HalfPage(-1)
		m.updatePreview()
	case keybinds.ActionHalfPageDown:
		m.list.HalfPage(1)
		m.updatePreview()
	case keybinds.ActionGoToTop:
		m.list.Top()
		m.updatePreview()
	case keybinds.ActionGoToBottom:
		m.list.Bottom()
		m.updatePreview()

	case keybinds.ActionOpenSearch:
		m.mode = ModeSearch
		return m, m.search.Open()

	case keybinds.ActionOpenHelp:
		m.openHelp()

	case keybinds.ActionSwitchFocus:
		if m.browser.HasPreview() && m.browser.Len() > 0 {
			m.mode = ModeDetail
		}

	case keybinds.ActionYank:
		if id := m.currentID(); id != "" {
			_ = clipboard.WriteAll(id)
		}

	default:
		return m.handleOperation(action)
	}
	return m, nil
}

// handleOperation turns an operation action into the exit selection.
func (m *Model) handleOperation(action keybinds.Action) (tea.Model, tea.Cmd) {
	id := m.currentID()
	if id == "" {
		return m, nil
	}

	operation, ok := m.browser.Operation(action)
	if !ok {
		return m, nil
	}

	if m.outputMode == selection.ModeID {
		// Id mode strips the operation; only confirm returns.
		if action != keybinds.ActionSelect {
			return m, nil
		}
		m.result = &selection.Selection{IDs: []string{id}}
		return m, tea.Quit
	}

	m.result = selection.New(operation, id)
	return m, tea.Quit
}

// applyFilter previews the live search line over the items.
func (m *Model) applyFilter() {
	m.filterErr = m.browser.SetFilter(m.search.Value())
	m.list.SetLength(m.browser.Len())
	m.updatePreview()
}

func (m *Model) currentID() string {
	if m.browser.Len() == 0 {
		return ""
	}
	return m.browser.ID(m.list.Index())
}

func (m *Model) updatePreview() {
	if !m.browser.HasPreview() {
		return
	}
	if m.browser.Len() == 0 {
		m.preview.SetContent("")
		return
	}
	m.preview.SetContent(m.browser.Preview(m.list.Index(), m.preview.Width))
	m.preview.GotoTop()
}

func (m *Model) openHelp() {
	m.help.SetContent(m.helpContent())
	m.help.GotoTop()
	m.mode = ModeHelp
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	// Header, footer and shortcuts each take a line.
	pageSize := height - chromeLines
	m.list.SetPageSize(pageSize)

	if m.browser.HasPreview() {
		m.preview.Width = width - width/2 - previewGutter
		m.preview.Height = pageSize
	}
	m.help.Width = width - 4
	m.help.Height = height - 4

	m.updatePreview()
}
