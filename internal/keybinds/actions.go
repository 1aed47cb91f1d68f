package keybinds

import "sort"

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the part of the UI in which keybindings are active
type Context string

const (
	ContextGlobal    Context = "global"     // Available everywhere
	ContextExplorer  Context = "explorer"   // File tree focused
	ContextContent   Context = "content"    // Editor pane focused
	ContextTerminal  Context = "terminal"   // Terminal prompt focused
	ContextSearch    Context = "search"     // Explorer search input
	ContextMenu      Context = "menu"       // Menu bar dropdown open
	ContextQuickOpen Context = "quick_open" // Quick open palette
)

// Contexts lists every context in display order
var Contexts = []Context{
	ContextGlobal,
	ContextExplorer,
	ContextContent,
	ContextTerminal,
	ContextSearch,
	ContextMenu,
	ContextQuickOpen,
}

// textContexts receive printable keys as input
var textContexts = map[Context]bool{
	ContextTerminal:  true,
	ContextSearch:    true,
	ContextQuickOpen: true,
}

// IsTextContext reports whether printable keys in context are typed text
func IsTextContext(context Context) bool {
	return textContexts[context]
}

const (
	// Application
	ActionQuit      Action = "quit"
	ActionQuitForce Action = "quit_force"

	// Navigation
	ActionNavigateUp     Action = "navigate_up"
	ActionNavigateDown   Action = "navigate_down"
	ActionPageUp         Action = "page_up"
	ActionPageDown       Action = "page_down"
	ActionGoToTop        Action = "go_to_top"
	ActionGoToTopPrepare Action = "go_to_top_prepare" // first 'g' of 'gg'
	ActionGoToBottom     Action = "go_to_bottom"
	ActionActivate       Action = "activate" // open file or toggle folder

	// Focus
	ActionSwitchFocus   Action = "switch_focus"
	ActionFocusExplorer Action = "focus_explorer"
	ActionFocusContent  Action = "focus_content"
	ActionFocusTerminal Action = "focus_terminal"

	// Overlays and inputs
	ActionOpenSearch Action = "open_search"
	ActionQuickOpen  Action = "quick_open"
	ActionOpenMenu   Action = "open_menu"
	ActionMenuNext   Action = "menu_next"
	ActionMenuPrev   Action = "menu_prev"
	ActionSubmit     Action = "submit"
	ActionCancel     Action = "cancel"

	// Portfolio operations
	ActionToggleTerminal  Action = "toggle_terminal"
	ActionToggleTheme     Action = "toggle_theme"
	ActionToggleMaximized Action = "toggle_maximized"
	ActionToggleSource    Action = "toggle_source"
	ActionOpenHelp        Action = "open_help"
	ActionBuyCoffee       Action = "buy_coffee"
	ActionCopyEmail       Action = "copy_email"
	ActionDownloadResume  Action = "download_resume"

	ActionNoOp Action = "noop"
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:            {ActionQuit, "Quit", "Application"},
	ActionQuitForce:       {ActionQuitForce, "Force quit", "Application"},
	ActionNavigateUp:      {ActionNavigateUp, "Move up", "Navigation"},
	ActionNavigateDown:    {ActionNavigateDown, "Move down", "Navigation"},
	ActionPageUp:          {ActionPageUp, "Page up", "Navigation"},
	ActionPageDown:        {ActionPageDown, "Page down", "Navigation"},
	ActionGoToTop:         {ActionGoToTop, "Go to top", "Navigation"},
	ActionGoToTopPrepare:  {ActionGoToTopPrepare, "Start go-to-top sequence", "Navigation"},
	ActionGoToBottom:      {ActionGoToBottom, "Go to bottom", "Navigation"},
	ActionActivate:        {ActionActivate, "Open file / toggle folder", "Navigation"},
	ActionSwitchFocus:     {ActionSwitchFocus, "Cycle focus", "Focus"},
	ActionFocusExplorer:   {ActionFocusExplorer, "Focus explorer", "Focus"},
	ActionFocusContent:    {ActionFocusContent, "Focus editor", "Focus"},
	ActionFocusTerminal:   {ActionFocusTerminal, "Focus terminal", "Focus"},
	ActionOpenSearch:      {ActionOpenSearch, "Search files", "Overlays"},
	ActionQuickOpen:       {ActionQuickOpen, "Quick open", "Overlays"},
	ActionOpenMenu:        {ActionOpenMenu, "Open menu bar", "Overlays"},
	ActionMenuNext:        {ActionMenuNext, "Next menu", "Overlays"},
	ActionMenuPrev:        {ActionMenuPrev, "Previous menu", "Overlays"},
	ActionSubmit:          {ActionSubmit, "Submit", "Overlays"},
	ActionCancel:          {ActionCancel, "Cancel", "Overlays"},
	ActionToggleTerminal:  {ActionToggleTerminal, "Toggle terminal", "Portfolio"},
	ActionToggleTheme:     {ActionToggleTheme, "Toggle theme", "Portfolio"},
	ActionToggleMaximized: {ActionToggleMaximized, "Toggle maximized", "Portfolio"},
	ActionToggleSource:    {ActionToggleSource, "Toggle source view", "Portfolio"},
	ActionOpenHelp:        {ActionOpenHelp, "Open help", "Portfolio"},
	ActionBuyCoffee:       {ActionBuyCoffee, "Buy me a coffee", "Portfolio"},
	ActionCopyEmail:       {ActionCopyEmail, "Copy email", "Portfolio"},
	ActionDownloadResume:  {ActionDownloadResume, "Download resume", "Portfolio"},
	ActionNoOp:            {ActionNoOp, "Ignore key", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is one the UI can dispatch
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

// KnownActions returns every action sorted by name
func KnownActions() []Action {
	actions := make([]Action, 0, len(actionInfos))
	for action := range actionInfos {
		actions = append(actions, action)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}
