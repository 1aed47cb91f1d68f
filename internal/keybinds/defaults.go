package keybinds

// NewDefaultRegistry creates a registry with the default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerExplorerBindings(r)
	registerContentBindings(r)
	registerTerminalBindings(r)
	registerSearchBindings(r)
	registerMenuBindings(r)
	registerQuickOpenBindings(r)

	return r
}

// Global bindings use modifiers or function keys so they never collide
// with typed text.
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "tab", ActionSwitchFocus)
	r.Register(ContextGlobal, "ctrl+p", ActionQuickOpen)
	r.Register(ContextGlobal, "ctrl+f", ActionOpenSearch)
	r.Register(ContextGlobal, "ctrl+t", ActionToggleTerminal)
	r.Register(ContextGlobal, "alt+t", ActionToggleTheme)
	r.Register(ContextGlobal, "alt+m", ActionToggleMaximized)
	r.Register(ContextGlobal, "alt+c", ActionBuyCoffee)
	r.Register(ContextGlobal, "f1", ActionOpenHelp)
	r.Register(ContextGlobal, "f10", ActionOpenMenu)
}

func registerExplorerBindings(r *Registry) {
	r.Register(ContextExplorer, "q", ActionQuit)
	r.RegisterMultiple(ContextExplorer, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextExplorer, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextExplorer, []string{"enter", " ", "l"}, ActionActivate)
	r.Register(ContextExplorer, "gg", ActionGoToTop)
	r.Register(ContextExplorer, "G", ActionGoToBottom)
	r.Register(ContextExplorer, "/", ActionOpenSearch)
	r.Register(ContextExplorer, "`", ActionToggleTerminal)
	r.Register(ContextExplorer, "T", ActionToggleTheme)
	r.Register(ContextExplorer, "c", ActionBuyCoffee)
	r.Register(ContextExplorer, "?", ActionOpenHelp)
	r.Register(ContextExplorer, "m", ActionOpenMenu)
	r.Register(ContextExplorer, "f", ActionToggleMaximized)
	r.Register(ContextExplorer, "p", ActionDownloadResume)
}

func registerContentBindings(r *Registry) {
	r.Register(ContextContent, "q", ActionQuit)
	r.RegisterMultiple(ContextContent, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextContent, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextContent, "pgup", ActionPageUp)
	r.Register(ContextContent, "pgdown", ActionPageDown)
	r.Register(ContextContent, "gg", ActionGoToTop)
	r.RegisterMultiple(ContextContent, []string{"G", "end"}, ActionGoToBottom)
	r.Register(ContextContent, "home", ActionGoToTop)
	r.Register(ContextContent, "s", ActionToggleSource)
	r.Register(ContextContent, "y", ActionCopyEmail)
	r.Register(ContextContent, "`", ActionToggleTerminal)
	r.Register(ContextContent, "T", ActionToggleTheme)
	r.Register(ContextContent, "c", ActionBuyCoffee)
	r.Register(ContextContent, "?", ActionOpenHelp)
	r.Register(ContextContent, "m", ActionOpenMenu)
	r.Register(ContextContent, "f", ActionToggleMaximized)
	r.Register(ContextContent, "p", ActionDownloadResume)
	r.RegisterMultiple(ContextContent, []string{"esc", "h"}, ActionFocusExplorer)
}

func registerTerminalBindings(r *Registry) {
	r.Register(ContextTerminal, "enter", ActionSubmit)
	r.Register(ContextTerminal, "esc", ActionFocusExplorer)
	r.Register(ContextTerminal, "pgup", ActionPageUp)
	r.Register(ContextTerminal, "pgdown", ActionPageDown)
}

func registerSearchBindings(r *Registry) {
	r.Register(ContextSearch, "enter", ActionSubmit)
	r.Register(ContextSearch, "esc", ActionCancel)
	r.Register(ContextSearch, "up", ActionNavigateUp)
	r.Register(ContextSearch, "down", ActionNavigateDown)
}

func registerMenuBindings(r *Registry) {
	r.RegisterMultiple(ContextMenu, []string{"esc", "q", "m"}, ActionCancel)
	r.RegisterMultiple(ContextMenu, []string{"left", "h"}, ActionMenuPrev)
	r.RegisterMultiple(ContextMenu, []string{"right", "l"}, ActionMenuNext)
	r.RegisterMultiple(ContextMenu, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextMenu, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextMenu, []string{"enter", " "}, ActionActivate)
}

func registerQuickOpenBindings(r *Registry) {
	r.Register(ContextQuickOpen, "esc", ActionCancel)
	r.Register(ContextQuickOpen, "enter", ActionActivate)
	r.RegisterMultiple(ContextQuickOpen, []string{"up", "ctrl+k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextQuickOpen, []string{"down", "ctrl+j"}, ActionNavigateDown)
}
