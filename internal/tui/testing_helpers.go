package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mdkaif10/codefolio/internal/app"
	"github.com/mdkaif10/codefolio/internal/prefs"
	"github.com/mdkaif10/codefolio/internal/storage"
)

// CreateTestModel creates a sized Model over an in-memory preference store
func CreateTestModel(t *testing.T) *Model {
	t.Helper()
	return CreateTestModelWithOptions(t, Options{Seed: 1})
}

// CreateTestModelWithOptions creates a sized Model with custom options
func CreateTestModelWithOptions(t *testing.T, opts Options) *Model {
	t.Helper()

	shell := app.New(prefs.New(storage.NewMemoryStore(), nil))
	if opts.ResumeDir == "" {
		opts.ResumeDir = t.TempDir()
	}

	m := New(shell, opts)
	m.copyText = func(string) error { return nil }
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return &m
}

// sendKeys feeds keys to the model as if typed and returns the last command
func sendKeys(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, key := range keys {
		_, cmd = m.Update(keyMsg(key))
	}
	return cmd
}

// keyMsg builds the tea.KeyMsg whose String() is key
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "f10":
		return tea.KeyMsg{Type: tea.KeyF10}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if len(key) > 4 && key[:4] == "alt+" {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key[4:]), Alt: true}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// typeText feeds every rune of text as a separate key
func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
