package prefs

import (
	"errors"
	"testing"

	"github.com/mdkaif10/codefolio/internal/storage"
	"github.com/mdkaif10/codefolio/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var errBackend = errors.New("disk full")

// failingStore fails every call
type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, errBackend }
func (failingStore) Set(string, string) error         { return errBackend }
func (failingStore) Close() error                     { return nil }

func TestLoad_Defaults(t *testing.T) {
	store := New(storage.NewMemoryStore(), nil)

	prefs := store.Load()

	if prefs.Theme != types.ThemeDark {
		t.Errorf("Theme = %v, want dark", prefs.Theme)
	}
	if prefs.CoffeeCount != 0 {
		t.Errorf("CoffeeCount = %d, want 0", prefs.CoffeeCount)
	}
}

func TestLoad_StoredValues(t *testing.T) {
	backend := storage.NewMemoryStore()
	backend.Set(KeyTheme, "light")
	backend.Set(KeyCoffeeCount, "12")

	prefs := New(backend, nil).Load()

	if prefs.Theme != types.ThemeLight {
		t.Errorf("Theme = %v, want light", prefs.Theme)
	}
	if prefs.CoffeeCount != 12 {
		t.Errorf("CoffeeCount = %d, want 12", prefs.CoffeeCount)
	}
}

func TestLoad_InvalidValuesKeepDefaults(t *testing.T) {
	tests := []struct {
		name   string
		theme  string
		coffee string
	}{
		{"empty strings", "", ""},
		{"garbage", "purple", "lots"},
		{"negative count", "dark", "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := storage.NewMemoryStore()
			backend.Set(KeyTheme, tt.theme)
			backend.Set(KeyCoffeeCount, tt.coffee)

			prefs := New(backend, nil).Load()

			if prefs != types.DefaultPreferences() {
				t.Errorf("Load() = %+v, want defaults", prefs)
			}
		})
	}
}

func TestLoad_ReadFailureKeepsDefaults(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := New(failingStore{}, zap.New(core))

	prefs := store.Load()

	if prefs != types.DefaultPreferences() {
		t.Errorf("Load() = %+v, want defaults", prefs)
	}
	if logs.FilterMessage("preference read failed").Len() != 2 {
		t.Errorf("expected 2 read failure logs, got %d", logs.Len())
	}
}

func TestSave_RoundTrip(t *testing.T) {
	backend := storage.NewMemoryStore()
	store := New(backend, nil)

	if err := store.SaveTheme(types.ThemeLight); err != nil {
		t.Fatalf("SaveTheme() error = %v", err)
	}
	if err := store.SaveCoffeeCount(5); err != nil {
		t.Fatalf("SaveCoffeeCount() error = %v", err)
	}

	raw, _, _ := backend.Get(KeyCoffeeCount)
	if raw != "5" {
		t.Errorf("stored coffeeCount = %q, want \"5\"", raw)
	}
	raw, _, _ = backend.Get(KeyTheme)
	if raw != "light" {
		t.Errorf("stored theme = %q, want \"light\"", raw)
	}

	prefs := store.Load()
	if prefs.Theme != types.ThemeLight || prefs.CoffeeCount != 5 {
		t.Errorf("Load() = %+v", prefs)
	}
}

func TestSave_FailureIsNonFatal(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := New(failingStore{}, zap.New(core))

	err := store.SaveCoffeeCount(3)
	if err == nil {
		t.Fatal("expected a write error")
	}
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("errors.Is(err, ErrWriteFailed) = false for %v", err)
	}
	if !errors.Is(err, errBackend) {
		t.Errorf("errors.Is(err, errBackend) = false for %v", err)
	}

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("error is not a *WriteError: %T", err)
	}
	if writeErr.Key != KeyCoffeeCount || writeErr.Value != "3" {
		t.Errorf("WriteError = %+v", writeErr)
	}
	if logs.FilterMessage("preference write failed").Len() != 1 {
		t.Errorf("expected one write failure log")
	}
}

func TestSave_NilBackend(t *testing.T) {
	store := New(nil, nil)

	if err := store.SaveTheme(types.ThemeDark); !errors.Is(err, ErrWriteFailed) {
		t.Errorf("SaveTheme() error = %v, want ErrWriteFailed", err)
	}
	if prefs := store.Load(); prefs != types.DefaultPreferences() {
		t.Errorf("Load() = %+v, want defaults", prefs)
	}
}
