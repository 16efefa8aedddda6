package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal  Context = "global"  // Available everywhere
	ContextBrowser Context = "browser" // Shared by all item browsers
	ContextIssues  Context = "issues"  // Issue browser
	ContextPatches Context = "patches" // Patch browser
	ContextInbox   Context = "inbox"   // Notification browser
	ContextSearch  Context = "search"  // Search input line
	ContextDetail  Context = "detail"  // Preview pane focused
	ContextHelp    Context = "help"    // Help overlay
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit without a selection
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Navigation actions
	ActionNavigateUp     Action = "navigate_up"       // Move up one item
	ActionNavigateDown   Action = "navigate_down"     // Move down one item
	ActionPageUp         Action = "page_up"           // Move up one page
	ActionPageDown       Action = "page_down"         // Move down one page
	ActionHalfPageUp     Action = "half_page_up"      // Move up half page (ctrl+u)
	ActionHalfPageDown   Action = "half_page_down"    // Move down half page (ctrl+d)
	ActionGoToTop        Action = "go_to_top"         // Go to first item
	ActionGoToBottom     Action = "go_to_bottom"      // Go to last item
	ActionGoToTopPrepare Action = "go_to_top_prepare" // First 'g' in 'gg' sequence

	// Browser actions
	ActionSelect      Action = "select"       // Return the highlighted item (enter)
	ActionOpenSearch  Action = "open_search"  // Focus the search line
	ActionOpenHelp    Action = "open_help"    // Open help overlay
	ActionSwitchFocus Action = "switch_focus" // Switch between list and preview
	ActionYank        Action = "yank"         // Copy highlighted id to clipboard

	// Exit operations. Each maps to an operation the invoking command
	// performs after the interface exits; which ones are bound depends
	// on the browser kind.
	ActionEdit     Action = "edit"     // Issues, patches
	ActionCheckout Action = "checkout" // Patches
	ActionComment  Action = "comment"  // Patches
	ActionDelete   Action = "delete"   // Patches
	ActionClear    Action = "clear"    // Inbox

	// Search line actions. Editing inside the line is handled by the
	// text input itself; only the mode switches are bindable.
	ActionSearchApply  Action = "search_apply"  // Apply the search line
	ActionSearchCancel Action = "search_cancel" // Restore the previous line

	// Overlay actions
	ActionClose Action = "close" // Close the help overlay or preview focus
)

// knownActions lists every action a user configuration may bind.
var knownActions = map[Action]bool{
	ActionQuit:           true,
	ActionQuitForce:      true,
	ActionNavigateUp:     true,
	ActionNavigateDown:   true,
	ActionPageUp:         true,
	ActionPageDown:       true,
	ActionHalfPageUp:     true,
	ActionHalfPageDown:   true,
	ActionGoToTop:        true,
	ActionGoToBottom:     true,
	ActionGoToTopPrepare: true,
	ActionSelect:         true,
	ActionOpenSearch:     true,
	ActionOpenHelp:       true,
	ActionSwitchFocus:    true,
	ActionYank:           true,
	ActionEdit:           true,
	ActionCheckout:       true,
	ActionComment:        true,
	ActionDelete:         true,
	ActionClear:          true,
	ActionSearchApply:    true,
	ActionSearchCancel:   true,
	ActionClose:          true,
}

// knownContexts lists every context a user configuration may target.
var knownContexts = map[Context]bool{
	ContextGlobal:  true,
	ContextBrowser: true,
	ContextIssues:  true,
	ContextPatches: true,
	ContextInbox:   true,
	ContextSearch:  true,
	ContextDetail:  true,
	ContextHelp:    true,
}
