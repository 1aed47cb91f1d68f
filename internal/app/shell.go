// Package app is the composition root: it owns the theme, the coffee count,
// the explorer and the terminal, and exposes the operations the UI and the
// CLI drive.
package app

import (
	"sync"

	"github.com/mdkaif10/codefolio/internal/content"
	"github.com/mdkaif10/codefolio/internal/explorer"
	"github.com/mdkaif10/codefolio/internal/prefs"
	"github.com/mdkaif10/codefolio/internal/terminal"
	"github.com/mdkaif10/codefolio/internal/types"
	"go.uber.org/zap"
)

// Option configures a Shell
type Option func(*Shell)

// WithCelebration sets the callback fired on every coffee purchase
func WithCelebration(fn func()) Option {
	return func(s *Shell) {
		s.celebrate = fn
	}
}

// WithLogger sets the shell logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Shell holds all mutable application state
type Shell struct {
	mu          sync.RWMutex
	theme       types.Theme
	coffeeCount int
	maximized   bool
	celebrate   func()

	prefs    *prefs.Store
	explorer *explorer.State
	terminal *terminal.Interpreter
	logger   *zap.Logger
}

// New loads preferences from store and builds a shell around them.
// A nil store keeps everything in memory.
func New(store *prefs.Store, opts ...Option) *Shell {
	s := &Shell{
		theme:    types.DefaultTheme,
		prefs:    store,
		explorer: explorer.NewState(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if store != nil {
		loaded := store.Load()
		s.theme = loaded.Theme
		s.coffeeCount = loaded.CoffeeCount
	}

	s.terminal = terminal.New(s)
	s.terminal.OnCelebrate(s.fireCelebration)

	s.logger.Debug("shell initialized",
		zap.String("theme", s.theme.String()),
		zap.Int("coffeeCount", s.coffeeCount))

	return s
}

// SetCelebration replaces the celebration callback
func (s *Shell) SetCelebration(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.celebrate = fn
}

// Theme returns the current theme
func (s *Shell) Theme() types.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme flips the theme and persists it
func (s *Shell) ToggleTheme() {
	s.mu.Lock()
	s.theme = s.theme.Toggled()
	theme := s.theme
	s.mu.Unlock()

	if s.prefs != nil {
		// failures are logged by the store
		_ = s.prefs.SaveTheme(theme)
	}
	s.logger.Debug("theme toggled", zap.String("theme", theme.String()))
}

// CoffeeCount returns the number of coffees bought
func (s *Shell) CoffeeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coffeeCount
}

// AddCoffee increments the coffee count, persists it and returns the new total
func (s *Shell) AddCoffee() int {
	s.mu.Lock()
	s.coffeeCount++
	n := s.coffeeCount
	s.mu.Unlock()

	if s.prefs != nil {
		_ = s.prefs.SaveCoffeeCount(n)
	}
	return n
}

// BuyCoffee is the status bar shortcut; it goes through the terminal's
// coffee command so both entry points share one path.
func (s *Shell) BuyCoffee() {
	s.terminal.Submit("coffee")
}

// Submit runs one terminal command
func (s *Shell) Submit(raw string) {
	s.terminal.Submit(raw)
}

// Terminal returns the interpreter
func (s *Shell) Terminal() *terminal.Interpreter {
	return s.terminal
}

// Explorer returns the explorer state
func (s *Shell) Explorer() *explorer.State {
	return s.explorer
}

// Content resolves the active file
func (s *Shell) Content() content.Block {
	return content.Resolve(s.explorer.ActiveFile())
}

// OpenFile makes id the active file
func (s *Shell) OpenFile(id string) {
	s.explorer.SelectFile(id)
	s.logger.Debug("file opened", zap.String("file", id))
}

// OpenHelp opens the terminal with the help block
func (s *Shell) OpenHelp() {
	s.terminal.Open()
}

// ToggleTerminal shows or hides the terminal panel
func (s *Shell) ToggleTerminal() {
	s.terminal.Toggle()
}

// TerminalOpen reports whether the terminal panel is visible
func (s *Shell) TerminalOpen() bool {
	return s.terminal.IsOpen()
}

// ToggleMaximized flips the maximized window flag
func (s *Shell) ToggleMaximized() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maximized = !s.maximized
}

// Maximized reports the maximized window flag
func (s *Shell) Maximized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maximized
}

// Preferences returns the in-memory preferences
func (s *Shell) Preferences() types.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return types.Preferences{Theme: s.theme, CoffeeCount: s.coffeeCount}
}

func (s *Shell) fireCelebration() {
	s.mu.RLock()
	fn := s.celebrate
	s.mu.RUnlock()

	if fn != nil {
		fn()
	}
}
