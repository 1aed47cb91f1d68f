package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// backends returns one instance of every backend for shared behavior tests
func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqliteStore, err := NewSQLiteStore(filepath.Join(dir, "codefolio.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	jsonStore, err := NewJSONStore(filepath.Join(dir, "prefs.json"))
	if err != nil {
		t.Fatalf("NewJSONStore() error = %v", err)
	}

	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqliteStore,
		"json":   jsonStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStore_GetMissing(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			value, ok, err := store.Get("theme")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if ok || value != "" {
				t.Errorf("Get() = %q, %v; want empty, false", value, ok)
			}
		})
	}
}

func TestStore_SetThenGet(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set("theme", "light"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := store.Set("coffeeCount", "3"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := store.Set("coffeeCount", "4"); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}

			value, ok, err := store.Get("theme")
			if err != nil || !ok || value != "light" {
				t.Errorf("Get(theme) = %q, %v, %v", value, ok, err)
			}
			value, ok, err = store.Get("coffeeCount")
			if err != nil || !ok || value != "4" {
				t.Errorf("Get(coffeeCount) = %q, %v, %v", value, ok, err)
			}
		})
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codefolio.db")

	first, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Set("coffeeCount", "7"); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	value, ok, err := second.Get("coffeeCount")
	if err != nil || !ok || value != "7" {
		t.Errorf("Get(coffeeCount) after reopen = %q, %v, %v", value, ok, err)
	}
}

func TestJSONStore_ToleratesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	content := `{
	// edited by hand
	"theme": "light",
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatal(err)
	}

	value, ok, err := store.Get("theme")
	if err != nil || !ok || value != "light" {
		t.Errorf("Get(theme) = %q, %v, %v", value, ok, err)
	}
}

func TestJSONStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte(`{"theme": `), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := store.Get("theme"); !errors.Is(err, ErrCorruptFile) {
		t.Errorf("Get() error = %v, want ErrCorruptFile", err)
	}

	// the first write replaces the unreadable file
	if err := store.Set("coffeeCount", "4"); err != nil {
		t.Fatalf("Set() on corrupt file error = %v", err)
	}
	value, ok, err := store.Get("coffeeCount")
	if err != nil || !ok || value != "4" {
		t.Errorf("Get(coffeeCount) = %q, %v, %v", value, ok, err)
	}

	reopened, err := NewJSONStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if value, _, err := reopened.Get("coffeeCount"); err != nil || value != "4" {
		t.Errorf("after reopen Get(coffeeCount) = %q, %v", value, err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		backend string
		path    string
		wantErr error
	}{
		{"memory", "", nil},
		{"json", filepath.Join(dir, "prefs.json"), nil},
		{"sqlite", filepath.Join(dir, "codefolio.db"), nil},
		{"redis", "", ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			store, err := Open(tt.backend, tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Open() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			store.Close()
		})
	}
}
