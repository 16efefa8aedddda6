package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerBrowserBindings(r)
	registerIssueBindings(r)
	registerPatchBindings(r)
	registerInboxBindings(r)
	registerSearchBindings(r)
	registerDetailBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "?", ActionOpenHelp)
}

// registerBrowserBindings sets up navigation shared by all browsers
func registerBrowserBindings(r *Registry) {
	r.Register(ContextBrowser, "q", ActionQuit)
	r.Register(ContextBrowser, "esc", ActionQuit)

	r.RegisterMultiple(ContextBrowser, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextBrowser, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextBrowser, "pgup", ActionPageUp)
	r.Register(ContextBrowser, "pgdown", ActionPageDown)
	r.Register(ContextBrowser, "ctrl+u", ActionHalfPageUp)
	r.Register(ContextBrowser, "ctrl+d", ActionHalfPageDown)
	r.Register(ContextBrowser, "g", ActionGoToTopPrepare)
	r.Register(ContextBrowser, "gg", ActionGoToTop)
	r.Register(ContextBrowser, "G", ActionGoToBottom)
	r.Register(ContextBrowser, "home", ActionGoToTop)
	r.Register(ContextBrowser, "end", ActionGoToBottom)

	r.Register(ContextBrowser, "enter", ActionSelect)
	r.Register(ContextBrowser, "/", ActionOpenSearch)
	r.Register(ContextBrowser, "tab", ActionSwitchFocus)
	r.Register(ContextBrowser, "y", ActionYank)
}

// registerIssueBindings sets up issue operations
func registerIssueBindings(r *Registry) {
	r.Register(ContextIssues, "e", ActionEdit)
}

// registerPatchBindings sets up patch operations
func registerPatchBindings(r *Registry) {
	r.Register(ContextPatches, "e", ActionEdit)
	r.Register(ContextPatches, "c", ActionCheckout)
	r.Register(ContextPatches, "m", ActionComment)
	r.Register(ContextPatches, "d", ActionDelete)
}

// registerInboxBindings sets up inbox operations
func registerInboxBindings(r *Registry) {
	r.Register(ContextInbox, "c", ActionClear)
}

// registerSearchBindings sets up the search line mode switches
func registerSearchBindings(r *Registry) {
	r.Register(ContextSearch, "enter", ActionSearchApply)
	r.Register(ContextSearch, "esc", ActionSearchCancel)
}

// registerDetailBindings sets up bindings while the preview is focused
func registerDetailBindings(r *Registry) {
	r.RegisterMultiple(ContextDetail, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextDetail, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextDetail, "pgup", ActionPageUp)
	r.Register(ContextDetail, "pgdown", ActionPageDown)
	r.Register(ContextDetail, "ctrl+u", ActionHalfPageUp)
	r.Register(ContextDetail, "ctrl+d", ActionHalfPageDown)
	r.Register(ContextDetail, "g", ActionGoToTopPrepare)
	r.Register(ContextDetail, "gg", ActionGoToTop)
	r.Register(ContextDetail, "G", ActionGoToBottom)
	r.Register(ContextDetail, "tab", ActionSwitchFocus)
	r.Register(ContextDetail, "esc", ActionClose)
	r.Register(ContextDetail, "q", ActionQuit)
}

// registerHelpBindings sets up bindings for the help overlay
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextHelp, "pgup", ActionPageUp)
	r.Register(ContextHelp, "pgdown", ActionPageDown)
	r.RegisterMultiple(ContextHelp, []string{"esc", "q", "?"}, ActionClose)
}
