package tui

import (
	"math/rand/v2"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mdkaif10/codefolio/internal/app"
	"github.com/mdkaif10/codefolio/internal/keybinds"
	"go.uber.org/zap"
)

// Options configures the TUI
type Options struct {
	Keybinds  *keybinds.Registry // nil uses the defaults
	Logger    *zap.Logger
	Confetti  bool
	ResumeDir string // where "Download Resume" writes; defaults to the working directory
	Seed      uint64 // confetti randomness; zero seeds from the clock
}

// New creates a new TUI model around shell
func New(shell *app.Shell, opts Options) Model {
	registry := opts.Keybinds
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	resumeDir := opts.ResumeDir
	if resumeDir == "" {
		resumeDir = "."
	}

	search := textinput.New()
	search.Placeholder = "Search files..."
	search.Prompt = ""

	prompt := textinput.New()
	prompt.Prompt = "> "

	m := Model{
		shell:           shell,
		keybinds:        registry,
		logger:          logger,
		focus:           FocusExplorer,
		quick:           newQuickOpen(),
		search:          search,
		prompt:          prompt,
		contentView:     viewport.New(80, 20),
		terminalView:    viewport.New(80, TerminalHeight-2),
		confettiEnabled: opts.Confetti,
		celebrations:    &celebration{},
		rng:             rand.New(rand.NewPCG(seed, seed>>1)),
		resumeDir:       resumeDir,
		copyText:        clipboard.WriteAll,
	}

	shell.SetCelebration(m.celebrations.fire)
	if shell.TerminalOpen() {
		m.setFocus(FocusTerminal)
	}

	m.refreshContent()
	m.refreshTerminal()
	return m
}

// Run starts the TUI
func Run(shell *app.Shell, opts Options) error {
	m := New(shell, opts)

	// pointer since Update uses a pointer receiver
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
