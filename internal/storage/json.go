package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mdkaif10/codefolio/internal/config"
	"github.com/mdkaif10/codefolio/internal/logging"
	"github.com/tidwall/jsonc"
	"go.uber.org/zap"
)

// ErrCorruptFile is returned by Get when the preferences file cannot be
// parsed. Set replaces such a file instead of failing.
var ErrCorruptFile = errors.New("corrupt preferences file")

// JSONStore persists values as a flat JSON object. The file is re-read on
// every Get so edits made outside the process are picked up, and comments
// are tolerated.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore creates a store backed by path. The file need not exist.
func NewJSONStore(path string) (*JSONStore, error) {
	if path == "" {
		return nil, fmt.Errorf("json store requires a file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), config.DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}
	return &JSONStore{path: path}, nil
}

// Get returns the value for key
func (s *JSONStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.readLocked()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Set stores value under key, rewriting the file atomically
func (s *JSONStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.readLocked()
	if errors.Is(err, ErrCorruptFile) {
		logging.L().Warn("discarding unreadable preferences file",
			zap.String("path", s.path), zap.Error(err))
		values, err = make(map[string]string), nil
	}
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, config.FilePermissions); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace preferences file: %w", err)
	}
	return nil
}

// Close is a no-op; every Set is flushed immediately
func (s *JSONStore) Close() error {
	return nil
}

// readLocked loads the file (must be called with lock held)
func (s *JSONStore) readLocked() (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	if len(data) == 0 {
		return values, nil
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), &values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptFile, s.path, err)
	}
	return values, nil
}
