package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mdkaif10/codefolio/internal/keybinds"
)

// dropdownOption is one entry of a menu dropdown
type dropdownOption struct {
	Label  string
	Action keybinds.Action
}

// dropdown is a floating list anchored under a menu title
type dropdown struct {
	Options []dropdownOption
	Cursor  int
	AnchorX int
	AnchorY int
}

// MoveUp moves the cursor up by one, wrapping to the bottom
func (d *dropdown) MoveUp() {
	if len(d.Options) == 0 {
		return
	}
	d.Cursor--
	if d.Cursor < 0 {
		d.Cursor = len(d.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top
func (d *dropdown) MoveDown() {
	if len(d.Options) == 0 {
		return
	}
	d.Cursor++
	if d.Cursor >= len(d.Options) {
		d.Cursor = 0
	}
}

// Selected returns the highlighted option
func (d *dropdown) Selected() (dropdownOption, bool) {
	if d.Cursor < 0 || d.Cursor >= len(d.Options) {
		return dropdownOption{}, false
	}
	return d.Options[d.Cursor], true
}

// Width is the visible width of every rendered line
func (d *dropdown) Width() int {
	widest := 0
	for _, option := range d.Options {
		widest = max(widest, ansi.StringWidth(option.Label))
	}
	// " > LABEL "
	return 3 + widest + 2
}

// Render returns the dropdown lines for spliceOverlay
func (d *dropdown) Render(p Palette) []string {
	total := d.Width()
	inner := total - 2

	normal := lipgloss.NewStyle().Background(p.Bar).Foreground(p.Text)
	selected := lipgloss.NewStyle().Background(p.Accent).Foreground(p.StatusFg)

	lines := make([]string, 0, len(d.Options))
	for i, option := range d.Options {
		marker := " "
		style := normal
		if i == d.Cursor {
			marker = ">"
			style = selected
		}

		text := marker + " " + option.Label
		if pad := inner - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		lines = append(lines, style.Render(" "+text+" "))
	}
	return lines
}
