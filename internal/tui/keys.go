package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mdkaif10/codefolio/internal/content"
	"github.com/mdkaif10/codefolio/internal/keybinds"
	"github.com/mdkaif10/codefolio/internal/resume"
	"go.uber.org/zap"
)

// handleKeyPress resolves a key in the current context and dispatches it.
// In text contexts unbound keys are typed into the focused input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	ctx := m.keyContext()
	key := msg.String()

	if keybinds.IsTextContext(ctx) {
		if action, ok := m.keybinds.Match(ctx, key); ok && action != keybinds.ActionNoOp {
			return m.dispatch(ctx, action)
		}
		return m.updateInput(ctx, msg)
	}

	action, complete, partial := m.keybinds.MatchMultiKey(ctx, key)
	if partial || !complete {
		return nil
	}
	return m.dispatch(ctx, action)
}

// updateInput forwards a key to the text input owned by ctx
func (m *Model) updateInput(ctx keybinds.Context, msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch ctx {
	case keybinds.ContextSearch:
		m.search, cmd = m.search.Update(msg)
		m.shell.Explorer().SetSearchQuery(m.search.Value())
	case keybinds.ContextTerminal:
		m.prompt, cmd = m.prompt.Update(msg)
	case keybinds.ContextQuickOpen:
		m.quick.input, cmd = m.quick.input.Update(msg)
		m.quick.refresh()
	}
	return cmd
}

// dispatch performs action in ctx
func (m *Model) dispatch(ctx keybinds.Context, action keybinds.Action) tea.Cmd {
	m.logger.Debug("key action", zap.String("context", string(ctx)), zap.String("action", string(action)))

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionNavigateUp, keybinds.ActionNavigateDown:
		delta := 1
		if action == keybinds.ActionNavigateUp {
			delta = -1
		}
		m.navigate(ctx, delta)

	case keybinds.ActionPageUp:
		m.scrollView(ctx).PageUp()
	case keybinds.ActionPageDown:
		m.scrollView(ctx).PageDown()

	case keybinds.ActionGoToTop:
		if ctx == keybinds.ContextExplorer {
			m.shell.Explorer().SetCursor(0)
		} else {
			m.contentView.GotoTop()
		}
	case keybinds.ActionGoToBottom:
		if ctx == keybinds.ContextExplorer {
			m.shell.Explorer().SetCursor(len(m.shell.Explorer().Rows()) - 1)
		} else {
			m.contentView.GotoBottom()
		}

	case keybinds.ActionActivate:
		return m.activate(ctx)

	case keybinds.ActionSwitchFocus:
		m.closeOverlays()
		m.cycleFocus()
	case keybinds.ActionFocusExplorer:
		m.setFocus(FocusExplorer)
	case keybinds.ActionFocusContent:
		m.setFocus(FocusContent)
	case keybinds.ActionFocusTerminal:
		if !m.shell.TerminalOpen() {
			m.shell.ToggleTerminal()
		}
		m.setFocus(FocusTerminal)

	case keybinds.ActionOpenSearch:
		m.closeOverlays()
		m.setFocus(FocusSearch)
	case keybinds.ActionQuickOpen:
		m.closeMenu()
		m.quick.show()
	case keybinds.ActionOpenMenu:
		m.quick.hide()
		m.openMenu(0)
	case keybinds.ActionMenuNext:
		m.stepMenu(1)
	case keybinds.ActionMenuPrev:
		m.stepMenu(-1)

	case keybinds.ActionSubmit:
		switch ctx {
		case keybinds.ContextTerminal:
			m.shell.Submit(m.prompt.Value())
			m.prompt.Reset()
		case keybinds.ContextSearch:
			m.setFocus(FocusExplorer)
		}

	case keybinds.ActionCancel:
		switch ctx {
		case keybinds.ContextSearch:
			m.search.SetValue("")
			m.shell.Explorer().SetSearchQuery("")
			m.setFocus(FocusExplorer)
		case keybinds.ContextMenu:
			m.closeMenu()
		case keybinds.ContextQuickOpen:
			m.quick.hide()
		}

	case keybinds.ActionToggleTerminal:
		m.shell.ToggleTerminal()
		if m.shell.TerminalOpen() {
			m.setFocus(FocusTerminal)
		} else if m.focus == FocusTerminal {
			m.setFocus(FocusExplorer)
		}
	case keybinds.ActionToggleTheme:
		m.shell.ToggleTheme()
		m.setStatusMessage("Theme: " + m.shell.Theme().String())
	case keybinds.ActionToggleMaximized:
		m.shell.ToggleMaximized()
		m.updateViewports()
	case keybinds.ActionToggleSource:
		m.showSource = !m.showSource
		m.contentView.GotoTop()
	case keybinds.ActionOpenHelp:
		m.shell.OpenHelp()
		m.setFocus(FocusTerminal)
	case keybinds.ActionBuyCoffee:
		m.shell.BuyCoffee()
		m.setStatusMessage(fmt.Sprintf("Thanks for the coffee! ☕ (Total: %d)", m.shell.CoffeeCount()))
	case keybinds.ActionCopyEmail:
		m.copyEmail()
	case keybinds.ActionDownloadResume:
		m.setStatusMessage("Exporting resume...")
		return m.exportResume()
	}

	return nil
}

func (m *Model) navigate(ctx keybinds.Context, delta int) {
	switch ctx {
	case keybinds.ContextMenu:
		if delta < 0 {
			m.menu.dropdown.MoveUp()
		} else {
			m.menu.dropdown.MoveDown()
		}
	case keybinds.ContextQuickOpen:
		m.quick.move(delta)
	case keybinds.ContextContent:
		if delta < 0 {
			m.contentView.ScrollUp(1)
		} else {
			m.contentView.ScrollDown(1)
		}
	default:
		m.shell.Explorer().Navigate(delta)
	}
}

// scrollView is the viewport paged in ctx
func (m *Model) scrollView(ctx keybinds.Context) *viewport.Model {
	if ctx == keybinds.ContextTerminal {
		return &m.terminalView
	}
	return &m.contentView
}

func (m *Model) activate(ctx keybinds.Context) tea.Cmd {
	switch ctx {
	case keybinds.ContextMenu:
		action := m.activateMenu()
		if action == "" {
			return nil
		}
		return m.dispatch(keybinds.ContextExplorer, action)

	case keybinds.ContextQuickOpen:
		name, ok := m.quick.selected()
		m.quick.hide()
		if !ok {
			return nil
		}
		return m.openFile(name)

	default:
		before := m.shell.Explorer().ActiveFile()
		m.shell.Explorer().Activate()
		if after := m.shell.Explorer().ActiveFile(); after != before {
			return m.fileOpened()
		}
	}
	return nil
}

// openFile makes name the active file and focuses the editor
func (m *Model) openFile(name string) tea.Cmd {
	m.shell.OpenFile(name)
	m.setFocus(FocusContent)
	return m.fileOpened()
}

// fileOpened resets the editor and starts the slide-in animation
func (m *Model) fileOpened() tea.Cmd {
	m.showSource = false
	m.contentView.GotoTop()
	m.fade = ContentFadeFrames
	return fadeTick()
}

func (m *Model) cycleFocus() {
	order := []Focus{FocusExplorer, FocusContent}
	if m.shell.TerminalOpen() {
		order = append(order, FocusTerminal)
	}
	next := FocusExplorer
	for i, f := range order {
		if f == m.focus {
			next = order[(i+1)%len(order)]
			break
		}
	}
	m.setFocus(next)
}

func (m *Model) closeOverlays() {
	m.keybinds.ClearMultiKeyState(m.keyContext())
	m.closeMenu()
	m.quick.hide()
}

func (m *Model) copyEmail() {
	kind := m.shell.Content().Kind
	if kind != content.KindContact && kind != content.KindAbout {
		m.setStatusMessage("Open contact.ts to copy the email address")
		return
	}
	if err := m.copyText(content.Email); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
		m.setStatusMessage(fmt.Sprintf("Failed to copy: %v", err))
		return
	}
	m.setStatusMessage("Copied " + content.Email + " to clipboard")
}

// exportResume writes the printable resume off the event loop
func (m *Model) exportResume() tea.Cmd {
	path := filepath.Join(m.resumeDir, resume.DefaultFileName(resume.FormatHTML))
	return func() tea.Msg {
		return resumeWrittenMsg{path: path, err: resume.Write(path, resume.FormatHTML)}
	}
}
