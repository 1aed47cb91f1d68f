package tui

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mdkaif10/codefolio/internal/app"
	"github.com/mdkaif10/codefolio/internal/keybinds"
	"go.uber.org/zap"
)

// Focus is the part of the window receiving keys
type Focus int

const (
	FocusExplorer Focus = iota
	FocusContent
	FocusTerminal
	FocusSearch
)

func (f Focus) String() string {
	switch f {
	case FocusContent:
		return "content"
	case FocusTerminal:
		return "terminal"
	case FocusSearch:
		return "search"
	default:
		return "explorer"
	}
}

// Model represents the TUI state
type Model struct {
	shell    *app.Shell
	keybinds *keybinds.Registry
	logger   *zap.Logger

	focus Focus
	menu  menuState
	quick quickOpen

	search       textinput.Model
	prompt       textinput.Model
	contentView  viewport.Model
	terminalView viewport.Model

	// Content pane
	showSource bool
	roleIndex  int
	fade       int // slide-in frames left after a file switch
	contentKey string
	termLines  int

	// Celebration
	confetti        *confetti
	confettiEnabled bool
	celebrations    *celebration
	rng             *rand.Rand

	resumeDir string
	copyText  func(string) error

	// UI state
	width     int
	height    int
	statusMsg string
}

type roleTickMsg time.Time

type fadeTickMsg time.Time

type resumeWrittenMsg struct {
	path string
	err  error
}

func roleTick() tea.Cmd {
	return tea.Tick(RoleRotateInterval, func(t time.Time) tea.Msg {
		return roleTickMsg(t)
	})
}

func fadeTick() tea.Cmd {
	return tea.Tick(ContentFadeInterval, func(t time.Time) tea.Msg {
		return fadeTickMsg(t)
	})
}

// Init starts the role rotation on the about page
func (m *Model) Init() tea.Cmd {
	return roleTick()
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyPress(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewports()

	case roleTickMsg:
		m.roleIndex++
		cmds = append(cmds, roleTick())

	case fadeTickMsg:
		if m.fade > 0 {
			m.fade--
		}
		if m.fade > 0 {
			cmds = append(cmds, fadeTick())
		}

	case confettiFrameMsg:
		if m.confetti != nil && m.confetti.step() {
			cmds = append(cmds, confettiTick())
		} else {
			m.confetti = nil
		}

	case resumeWrittenMsg:
		if msg.err != nil {
			m.logger.Error("resume export failed", zap.Error(msg.err))
			m.setStatusMessage(fmt.Sprintf("Resume export failed: %v", msg.err))
		} else {
			m.logger.Info("resume exported", zap.String("path", msg.path))
			m.setStatusMessage("Resume saved to " + msg.path)
		}
	}

	if m.celebrations.take() {
		cmds = append(cmds, m.startConfetti())
	}

	m.refreshContent()
	m.refreshTerminal()

	return m, tea.Batch(cmds...)
}

// View renders the window
func (m *Model) View() string {
	return m.renderMain()
}

// setStatusMessage sets the message shown in the status bar
func (m *Model) setStatusMessage(msg string) {
	m.statusMsg = msg
}

// startConfetti launches a burst; a running burst is replaced without
// starting a second tick loop
func (m *Model) startConfetti() tea.Cmd {
	if !m.confettiEnabled || m.width == 0 || m.height == 0 {
		return nil
	}
	running := m.confetti.alive()
	m.confetti = newConfetti(m.width, m.height, ConfettiParticles, m.rng)
	if running {
		return nil
	}
	return confettiTick()
}

// setFocus moves keyboard focus and updates the text inputs accordingly
func (m *Model) setFocus(f Focus) {
	m.keybinds.ClearMultiKeyState(m.keyContext())
	m.focus = f
	m.search.Blur()
	m.prompt.Blur()
	switch f {
	case FocusSearch:
		m.search.Focus()
	case FocusTerminal:
		m.prompt.Focus()
	}
}

// keyContext maps the current focus and overlays to a keybinding context
func (m *Model) keyContext() keybinds.Context {
	switch {
	case m.quick.open:
		return keybinds.ContextQuickOpen
	case m.menu.open:
		return keybinds.ContextMenu
	}
	switch m.focus {
	case FocusContent:
		return keybinds.ContextContent
	case FocusTerminal:
		return keybinds.ContextTerminal
	case FocusSearch:
		return keybinds.ContextSearch
	default:
		return keybinds.ContextExplorer
	}
}
