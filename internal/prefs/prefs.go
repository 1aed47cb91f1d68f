// Package prefs loads and saves the two persisted preferences (theme and
// coffee count). Writes are best-effort: a failure is logged and returned
// as a *WriteError for callers that care, but never retried.
package prefs

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mdkaif10/codefolio/internal/storage"
	"github.com/mdkaif10/codefolio/internal/types"
	"go.uber.org/zap"
)

// Storage keys
const (
	KeyTheme       = "theme"
	KeyCoffeeCount = "coffeeCount"
)

// ErrWriteFailed is the non-fatal failure class for preference writes
var ErrWriteFailed = errors.New("preference write failed")

// WriteError describes a failed best-effort write
type WriteError struct {
	Key   string
	Value string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%v: %s=%q: %v", ErrWriteFailed, e.Key, e.Value, e.Err)
}

// Unwrap exposes both the failure class and the backend error
func (e *WriteError) Unwrap() []error {
	return []error{ErrWriteFailed, e.Err}
}

// Store reads and writes preferences through a key-value backend
type Store struct {
	backend storage.Store
	logger  *zap.Logger
}

// New creates a preference store. A nil logger disables logging.
func New(backend storage.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backend: backend, logger: logger}
}

// Load reads both preferences; anything missing or unreadable keeps its default
func (s *Store) Load() types.Preferences {
	prefs := types.DefaultPreferences()

	if raw, ok := s.read(KeyTheme); ok {
		theme, err := types.ParseTheme(raw)
		if err != nil {
			s.logger.Warn("ignoring stored theme", zap.String("value", raw), zap.Error(err))
		} else {
			prefs.Theme = theme
		}
	}

	if raw, ok := s.read(KeyCoffeeCount); ok {
		count, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			s.logger.Warn("ignoring stored coffee count", zap.String("value", raw), zap.Error(err))
		case count < 0:
			s.logger.Warn("ignoring negative coffee count", zap.Int("value", count))
		default:
			prefs.CoffeeCount = count
		}
	}

	s.logger.Debug("preferences loaded",
		zap.String("theme", prefs.Theme.String()),
		zap.Int("coffeeCount", prefs.CoffeeCount))

	return prefs
}

// SaveTheme persists the theme
func (s *Store) SaveTheme(theme types.Theme) error {
	return s.write(KeyTheme, theme.String())
}

// SaveCoffeeCount persists the coffee count as a decimal string
func (s *Store) SaveCoffeeCount(count int) error {
	return s.write(KeyCoffeeCount, strconv.Itoa(count))
}

// read returns a non-empty stored value; read errors count as absent
func (s *Store) read(key string) (string, bool) {
	if s.backend == nil {
		return "", false
	}
	value, ok, err := s.backend.Get(key)
	if err != nil {
		s.logger.Warn("preference read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func (s *Store) write(key, value string) error {
	if s.backend == nil {
		return &WriteError{Key: key, Value: value, Err: errors.New("no storage backend")}
	}
	if err := s.backend.Set(key, value); err != nil {
		s.logger.Warn("preference write failed", zap.String("key", key), zap.Error(err))
		return &WriteError{Key: key, Value: value, Err: err}
	}
	return nil
}
