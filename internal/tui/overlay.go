package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// spliceOverlay replaces the region of view starting at (x, y) with the
// overlay lines. Escape sequences on both sides of the overlay survive.
func spliceOverlay(view string, overlay []string, x, y int) string {
	if len(overlay) == 0 {
		return view
	}

	lines := strings.Split(view, "\n")
	for i, over := range overlay {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		lines[row] = spliceLine(lines[row], over, x)
	}
	return strings.Join(lines, "\n")
}

func spliceLine(line, over string, x int) string {
	if x < 0 {
		x = 0
	}
	width := ansi.StringWidth(line)

	var b strings.Builder
	prefix := ansi.Truncate(line, x, "")
	b.WriteString(prefix)
	if pad := x - ansi.StringWidth(prefix); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString("\x1b[0m")
	b.WriteString(over)
	b.WriteString("\x1b[0m")

	if end := x + ansi.StringWidth(over); end < width {
		b.WriteString(ansi.TruncateLeft(line, end, ""))
	}
	return b.String()
}
