package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mdkaif10/codefolio/internal/app"
	"github.com/mdkaif10/codefolio/internal/content"
	"github.com/mdkaif10/codefolio/internal/prefs"
	"github.com/mdkaif10/codefolio/internal/storage"
	"github.com/mdkaif10/codefolio/internal/terminal"
	"github.com/mdkaif10/codefolio/internal/types"
	"gopkg.in/yaml.v3"
)

func newShell(t *testing.T) (*app.Shell, *prefs.Store) {
	t.Helper()
	store := prefs.New(storage.NewMemoryStore(), nil)
	return app.New(store), store
}

func TestExec_Text(t *testing.T) {
	shell, _ := newShell(t)
	var out bytes.Buffer

	err := Exec(shell, ExecOptions{Commands: []string{"skills", "bogus"}, Output: &out})
	if err != nil {
		t.Fatalf("Exec() error: %v", err)
	}

	want := strings.Join([]string{
		terminal.WelcomeLine,
		"> skills",
		"Skills: JavaScript, Python, React, Node.js, MongoDB, Docker",
		"> bogus",
		terminal.UnknownCommand,
	}, "\n") + "\n"
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestExec_ReadsInputLines(t *testing.T) {
	shell, store := newShell(t)
	var out bytes.Buffer

	in := strings.NewReader("coffee\r\n\ncoffee\ntheme\n")
	if err := Exec(shell, ExecOptions{Input: in, Output: &out, OutputFormat: FormatJSON}); err != nil {
		t.Fatalf("Exec() error: %v", err)
	}

	var result ExecResult
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	if len(result.Commands) != 4 {
		t.Errorf("commands = %v, want 4 lines", result.Commands)
	}
	if result.Preferences.CoffeeCount != 2 {
		t.Errorf("coffee count = %d, want 2", result.Preferences.CoffeeCount)
	}
	if result.Preferences.Theme != types.ThemeLight {
		t.Errorf("theme = %s, want light", result.Preferences.Theme)
	}

	// persisted through the same store
	if got := store.Load(); got != result.Preferences {
		t.Errorf("stored = %+v, want %+v", got, result.Preferences)
	}
}

func TestExec_BlankLineIsACommand(t *testing.T) {
	shell, _ := newShell(t)
	var out bytes.Buffer

	if err := Exec(shell, ExecOptions{Input: strings.NewReader("help\n\nabout\n"), Output: &out}); err != nil {
		t.Fatalf("Exec() error: %v", err)
	}

	want := strings.Join([]string{
		terminal.WelcomeLine,
		"> help",
		"Available commands: about, skills, projects, contact, clear, theme, coffee",
		"> ",
		terminal.UnknownCommand,
		"> about",
		"MD KAIF - Aspiring Full Stack Developer",
		"Specializing in Cloud Technology and Information Security",
	}, "\n") + "\n"
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"help", []string{"help"}},
		{"help\n", []string{"help"}},
		{"a\r\n\nb\n", []string{"a", "", "b"}},
		{" theme \n", []string{" theme "}},
	}
	for _, tt := range tests {
		got, err := readLines(strings.NewReader(tt.input))
		if err != nil {
			t.Fatalf("readLines(%q) error: %v", tt.input, err)
		}
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("readLines(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExec_ClearEmptiesTranscript(t *testing.T) {
	shell, _ := newShell(t)
	var out bytes.Buffer

	if err := Exec(shell, ExecOptions{Commands: []string{"about", "clear"}, Output: &out, OutputFormat: FormatYAML}); err != nil {
		t.Fatalf("Exec() error: %v", err)
	}

	var result ExecResult
	if err := yaml.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not yaml: %v", err)
	}
	if len(result.Transcript) != 0 {
		t.Errorf("transcript = %v, want empty", result.Transcript)
	}
}

func TestExec_UnknownFormat(t *testing.T) {
	shell, _ := newShell(t)
	err := Exec(shell, ExecOptions{Commands: []string{"help"}, Output: &bytes.Buffer{}, OutputFormat: "xml"})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestCat_Formats(t *testing.T) {
	tests := []struct {
		name   string
		opts   CatOptions
		want   []string
		reject []string
	}{
		{
			name: "text",
			opts: CatOptions{File: "experience.ts"},
			want: []string{"Experience", "SDE Intern - ICM Guwahati (2024)"},
		},
		{
			name: "source",
			opts: CatOptions{File: "about_me.ts", OutputFormat: FormatSource},
			want: []string{"export const aboutMe"},
		},
		{
			name: "json",
			opts: CatOptions{File: "projects.ts", OutputFormat: FormatJSON},
			want: []string{`"kind": "projects"`, `"Chat Application"`},
		},
		{
			name: "yaml",
			opts: CatOptions{File: "contact.ts", OutputFormat: FormatYAML},
			want: []string{"kind: contact", "level: 90"},
		},
		{
			name: "placeholder",
			opts: CatOptions{File: ".gitignore"},
			want: []string{content.PlaceholderMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.opts.Output = &out
			if err := Cat(tt.opts); err != nil {
				t.Fatalf("Cat() error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestCat_UnknownFile(t *testing.T) {
	err := Cat(CatOptions{File: "secrets.ts", Output: &bytes.Buffer{}})
	if !errors.Is(err, ErrUnknownFile) {
		t.Errorf("Cat() error = %v, want ErrUnknownFile", err)
	}
}

func TestShowPrefs(t *testing.T) {
	p := types.Preferences{Theme: types.ThemeLight, CoffeeCount: 3}

	var text bytes.Buffer
	if err := ShowPrefs(&text, p, FormatText); err != nil {
		t.Fatalf("ShowPrefs() error: %v", err)
	}
	if text.String() != "theme: light\ncoffeeCount: 3\n" {
		t.Errorf("text = %q", text.String())
	}

	var js bytes.Buffer
	if err := ShowPrefs(&js, p, FormatJSON); err != nil {
		t.Fatalf("ShowPrefs() error: %v", err)
	}
	if !strings.Contains(js.String(), `"coffeeCount": 3`) {
		t.Errorf("json = %s", js.String())
	}
}

func TestResetPrefs(t *testing.T) {
	shell, store := newShell(t)
	shell.AddCoffee()
	shell.ToggleTheme()

	if err := ResetPrefs(store); err != nil {
		t.Fatalf("ResetPrefs() error: %v", err)
	}
	if got := store.Load(); got != types.DefaultPreferences() {
		t.Errorf("after reset = %+v, want defaults", got)
	}
}

func TestResetPrefs_RepairsCorruptJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte(`{"theme": `), 0644); err != nil {
		t.Fatal(err)
	}
	backend, err := storage.NewJSONStore(path)
	if err != nil {
		t.Fatal(err)
	}
	store := prefs.New(backend, nil)

	if err := ResetPrefs(store); err != nil {
		t.Fatalf("ResetPrefs() error: %v", err)
	}

	shell := app.New(store)
	shell.Submit("coffee")

	reloaded := prefs.New(backend, nil).Load()
	if reloaded.CoffeeCount != 1 {
		t.Errorf("coffee count after reload = %d, want 1", reloaded.CoffeeCount)
	}
}

func TestPlainText_About(t *testing.T) {
	out := PlainText(content.Resolve("about_me.ts"))
	for _, want := range []string{content.OwnerName, "Full Stack Developer | Cloud Technology Enthusiast", "GitHub: " + content.GitHubURL} {
		if !strings.Contains(out, want) {
			t.Errorf("PlainText missing %q", want)
		}
	}
}

func TestSelector_PickAndCancel(t *testing.T) {
	m := newSelector()
	if got := m.list.SelectedItem().(item).name; got != "about_me.ts" {
		t.Fatalf("initial selection = %q, want about_me.ts", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := next.(selectorModel)
	if result.choice != "experience.ts" {
		t.Errorf("choice = %q, want experience.ts", result.choice)
	}
	if cmd == nil {
		t.Error("enter should quit the selector")
	}

	cancelled, _ := newSelector().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cancelled.(selectorModel).choice != "" {
		t.Error("q should cancel without a choice")
	}
}
