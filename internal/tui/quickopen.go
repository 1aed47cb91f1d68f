package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mdkaif10/codefolio/internal/explorer"
)

// quickOpen is the ctrl+p file palette
type quickOpen struct {
	open    bool
	input   textinput.Model
	matches []explorer.Match
	cursor  int
}

func newQuickOpen() quickOpen {
	input := textinput.New()
	input.Placeholder = "Search files by name"
	input.Prompt = "> "
	return quickOpen{input: input}
}

func (q *quickOpen) show() {
	q.open = true
	q.input.SetValue("")
	q.input.Focus()
	q.refresh()
}

func (q *quickOpen) hide() {
	q.open = false
	q.input.Blur()
}

// refresh re-ranks the registry against the current input
func (q *quickOpen) refresh() {
	q.matches = explorer.QuickOpen(q.input.Value())
	if q.cursor >= len(q.matches) {
		q.cursor = len(q.matches) - 1
	}
	if q.cursor < 0 {
		q.cursor = 0
	}
}

func (q *quickOpen) move(delta int) {
	if len(q.matches) == 0 {
		return
	}
	q.cursor = (q.cursor + delta + len(q.matches)) % len(q.matches)
}

// selected returns the highlighted file name
func (q *quickOpen) selected() (string, bool) {
	if q.cursor < 0 || q.cursor >= len(q.matches) {
		return "", false
	}
	return q.matches[q.cursor].File.Name, true
}

// render draws the palette box
func (q *quickOpen) render(s styles) []string {
	var lines []string
	lines = append(lines, q.input.View())

	shown := q.matches
	if len(shown) > QuickOpenMaxRows {
		shown = shown[:QuickOpenMaxRows]
	}
	if len(shown) == 0 {
		lines = append(lines, s.subtle.Render("No matching files"))
	}
	for i, match := range shown {
		name := highlightMatches(match.File.Name, match.Indexes, s)
		line := "  " + name + " " + s.subtle.Render(match.File.Folder)
		if i == q.cursor {
			line = s.rowCursor.Render("> ") + name + " " + s.subtle.Render(match.File.Folder)
		}
		lines = append(lines, line)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.palette.Accent).
		Background(s.palette.Bar).
		Width(QuickOpenWidth).
		Render(strings.Join(lines, "\n"))
	return strings.Split(box, "\n")
}

// highlightMatches renders name with the fuzzy-matched runes emphasized
func highlightMatches(name string, indexes []int, s styles) string {
	if len(indexes) == 0 {
		return name
	}
	hit := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range []rune(name) {
		if hit[i] {
			b.WriteString(s.match.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
