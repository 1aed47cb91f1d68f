package keybinds

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseConfig_AllowsComments(t *testing.T) {
	data := []byte(`{
  // custom bindings
  "version": "1.0",
  "explorer": {
    "activate": "enter,o", /* trailing comma next */
  },
}`)

	config, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if config.Explorer["activate"] != "enter,o" {
		t.Errorf("explorer.activate = %q", config.Explorer["activate"])
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	if _, err := ParseConfig([]byte(`{"explorer": [1, 2]}`)); err == nil {
		t.Error("expected error for wrong section type")
	}
}

func TestApplyConfig_ReplacesActionKeys(t *testing.T) {
	r := NewDefaultRegistry()
	config := &Config{
		Explorer: map[string]string{"activate": "o, enter"},
		Global:   map[string]string{"toggle_theme": "f2"},
	}

	if err := ApplyConfig(r, config); err != nil {
		t.Fatalf("ApplyConfig error: %v", err)
	}

	if action, _ := r.Match(ContextExplorer, "o"); action != ActionActivate {
		t.Errorf("o = %q, want activate", action)
	}
	if hasBinding(r, ContextExplorer, "l") {
		t.Error("old activate key l should be unbound")
	}
	if action, _ := r.Match(ContextContent, "f2"); action != ActionToggleTheme {
		t.Errorf("f2 = %q, want toggle_theme", action)
	}
	if _, ok := r.bindings[ContextGlobal]["alt+t"]; ok {
		t.Error("alt+t should be replaced")
	}
}

func TestApplyConfig_UnknownActionRejected(t *testing.T) {
	r := NewDefaultRegistry()
	config := &Config{Content: map[string]string{"launch_rockets": "x"}}

	err := ApplyConfig(r, config)
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("ApplyConfig error = %v, want ErrUnknownAction", err)
	}
	if !strings.Contains(err.Error(), "content.launch_rockets") {
		t.Errorf("error should name the action: %v", err)
	}
	if hasBinding(r, ContextContent, "x") {
		t.Error("nothing should be applied when the config is rejected")
	}
}

func TestSplitKeys(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"enter", []string{"enter"}},
		{"enter, l ,o", []string{"enter", "l", "o"}},
		{" ,enter,l", []string{" ", "enter", "l"}},
		{",", []string{","}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := SplitKeys(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitKeys(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	r, err := LoadOrDefault(filepath.Join(t.TempDir(), "keybinds.json"))
	if err != nil {
		t.Fatalf("LoadOrDefault error: %v", err)
	}
	if action, _ := r.Match(ContextExplorer, "j"); action != ActionNavigateDown {
		t.Errorf("defaults not loaded: j = %q", action)
	}
}

func TestLoadOrDefault_AppliesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.json")
	content := `{"content": {"copy_email": "Y"}} // shout`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault error: %v", err)
	}
	if action, _ := r.Match(ContextContent, "Y"); action != ActionCopyEmail {
		t.Errorf("Y = %q, want copy_email", action)
	}
	if hasBinding(r, ContextContent, "y") {
		t.Error("y should no longer copy")
	}
}

func TestLoadOrDefault_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.json")
	if err := os.WriteFile(path, []byte(`{"global": {"nope": "x"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOrDefault(path); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("LoadOrDefault error = %v, want ErrUnknownAction", err)
	}
}

func TestExportDefaults_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "keybinds.json")
	if err := CreateExampleConfig(path); err != nil {
		t.Fatalf("CreateExampleConfig error: %v", err)
	}

	r, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault error: %v", err)
	}

	defaults := NewDefaultRegistry()
	if !reflect.DeepEqual(r.bindings, defaults.bindings) {
		t.Error("exported defaults do not reproduce the default registry")
	}
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.json")
	config := &Config{Version: ConfigVersion, Menu: map[string]string{"cancel": "esc"}}

	if err := SaveConfig(config, path); err != nil {
		t.Fatalf("SaveConfig error: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if loaded.Menu["cancel"] != "esc" || loaded.Version != ConfigVersion {
		t.Errorf("loaded = %+v", loaded)
	}
}
