// Package storage provides the key-value persistence boundary for
// preferences. Backends are interchangeable behind Store so the preference
// logic can be tested without a real database.
package storage

import (
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a string key-value store
type Store interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool, error)
	// Set stores value under key
	Set(key, value string) error
	// Close releases backend resources
	Close() error
}

// Open creates the store for backend, persisting to path when the backend
// needs a file
func Open(backend, path string) (Store, error) {
	switch backend {
	case "sqlite":
		return NewSQLiteStore(path)
	case "json":
		return NewJSONStore(path)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
