package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mdkaif10/codefolio/internal/types"
)

// Palette holds the colors of one theme
type Palette struct {
	Background   lipgloss.Color
	Bar          lipgloss.Color // title, menu and tab bars
	TabBar       lipgloss.Color
	Text         lipgloss.Color
	Heading      lipgloss.Color
	Muted        lipgloss.Color
	Accent       lipgloss.Color
	Border       lipgloss.Color
	Highlight    lipgloss.Color // selected row background
	Star         lipgloss.Color
	TagBg        lipgloss.Color
	TagFg        lipgloss.Color
	TerminalBg   lipgloss.Color
	TerminalText lipgloss.Color
	StatusBg     lipgloss.Color
	StatusFg     lipgloss.Color
	Match        lipgloss.Color // fuzzy match characters
}

var darkPalette = Palette{
	Background:   "#1E1E2E",
	Bar:          "#1F2233",
	TabBar:       "#1F2233",
	Text:         "#CCCCCC",
	Heading:      "#FFFFFF",
	Muted:        "#8F8F8F",
	Accent:       "#007ACC",
	Border:       "#2A2D2E",
	Highlight:    "#2A2D2E",
	Star:         "#C4A000",
	TagBg:        "#4D4D4D",
	TagFg:        "#FFFFFF",
	TerminalBg:   "#1E1E2E",
	TerminalText: "#A6ADC8",
	StatusBg:     "#007ACC",
	StatusFg:     "#FFFFFF",
	Match:        "#FFD700",
}

var lightPalette = Palette{
	Background:   "#F3F3F3",
	Bar:          "#DDDDDD",
	TabBar:       "#ECECEC",
	Text:         "#333333",
	Heading:      "#1E1E2E",
	Muted:        "#616161",
	Accent:       "#007ACC",
	Border:       "#E7E7E7",
	Highlight:    "#DDDDDD",
	Star:         "#C4A000",
	TagBg:        "#4D4D4D",
	TagFg:        "#FFFFFF",
	TerminalBg:   "#FFFFFF",
	TerminalText: "#333333",
	StatusBg:     "#007ACC",
	StatusFg:     "#FFFFFF",
	Match:        "#B8860B",
}

// paletteFor returns the palette of theme
func paletteFor(theme types.Theme) Palette {
	if theme.IsDark() {
		return darkPalette
	}
	return lightPalette
}

// styles are the lipgloss styles derived from a palette
type styles struct {
	palette Palette

	titleBar   lipgloss.Style
	menuBar    lipgloss.Style
	menuActive lipgloss.Style
	searchBar  lipgloss.Style
	sidebar    lipgloss.Style
	section    lipgloss.Style
	row        lipgloss.Style
	rowActive  lipgloss.Style
	rowCursor  lipgloss.Style
	tabBar     lipgloss.Style
	content    lipgloss.Style
	heading    lipgloss.Style
	subtle     lipgloss.Style
	accent     lipgloss.Style
	star       lipgloss.Style
	tag        lipgloss.Style
	card       lipgloss.Style
	terminal   lipgloss.Style
	statusBar  lipgloss.Style
	match      lipgloss.Style
	focused    lipgloss.Style
}

func newStyles(p Palette) styles {
	return styles{
		palette: p,

		titleBar: lipgloss.NewStyle().
			Background(p.Bar).
			Foreground(p.Muted).
			Padding(0, 1),
		menuBar: lipgloss.NewStyle().
			Background(p.Bar).
			Foreground(p.Muted).
			Padding(0, 1),
		menuActive: lipgloss.NewStyle().
			Background(p.Accent).
			Foreground(p.StatusFg),
		searchBar: lipgloss.NewStyle().
			Background(p.Bar).
			Foreground(p.Text).
			Padding(0, 1),
		sidebar: lipgloss.NewStyle().
			Background(p.Background).
			Foreground(p.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(p.Border),
		section: lipgloss.NewStyle().
			Foreground(p.Muted).
			Bold(true),
		row: lipgloss.NewStyle().
			Foreground(p.Text),
		rowActive: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Bar),
		rowCursor: lipgloss.NewStyle().
			Foreground(p.Heading).
			Background(p.Highlight).
			Bold(true),
		tabBar: lipgloss.NewStyle().
			Background(p.TabBar).
			Foreground(p.Muted).
			Padding(0, 1),
		content: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(1, 3),
		heading: lipgloss.NewStyle().
			Foreground(p.Heading).
			Bold(true),
		subtle: lipgloss.NewStyle().
			Foreground(p.Muted),
		accent: lipgloss.NewStyle().
			Foreground(p.Accent),
		star: lipgloss.NewStyle().
			Foreground(p.Star),
		tag: lipgloss.NewStyle().
			Background(p.TagBg).
			Foreground(p.TagFg).
			Padding(0, 1),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		terminal: lipgloss.NewStyle().
			Background(p.TerminalBg).
			Foreground(p.TerminalText).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Border).
			Padding(0, 1),
		statusBar: lipgloss.NewStyle().
			Background(p.StatusBg).
			Foreground(p.StatusFg).
			Padding(0, 1),
		match: lipgloss.NewStyle().
			Foreground(p.Match).
			Bold(true),
		focused: lipgloss.NewStyle().
			BorderForeground(p.Accent),
	}
}
