package tui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mdkaif10/codefolio/internal/content"
	"github.com/mdkaif10/codefolio/internal/explorer"
	"github.com/mdkaif10/codefolio/internal/keybinds"
	"go.uber.org/zap"
)

// renderMain renders the editor window: chrome, sidebar, editor, terminal
// and status bar, then the floating overlays on top
func (m *Model) renderMain() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	s := newStyles(paletteFor(m.shell.Theme()))

	editor := []string{m.renderTabBar(s), m.contentView.View()}
	if m.shell.TerminalOpen() {
		editor = append(editor, m.renderTerminal(s))
	}
	editorColumn := lipgloss.JoinVertical(lipgloss.Left, editor...)

	body := editorColumn
	if !m.shell.Maximized() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(s), editorColumn)
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(s),
		m.renderMenuBar(s),
		m.renderSearchBar(s),
		body,
		m.renderStatusBar(s),
	)

	if m.menu.open && len(m.menu.dropdown.Options) > 0 {
		view = spliceOverlay(view, m.menu.dropdown.Render(s.palette), m.menu.dropdown.AnchorX, m.menu.dropdown.AnchorY)
	}
	if m.quick.open {
		box := m.quick.render(s)
		x := (m.width - ansi.StringWidth(box[0])) / 2
		view = spliceOverlay(view, box, x, ChromeLinesTop)
	}
	return m.confetti.render(view)
}

func (m *Model) renderTitleBar(s styles) string {
	glyph := "☀"
	if !m.shell.Theme().IsDark() {
		glyph = "☾"
	}
	inner := m.width - 2
	title := WindowTitle
	left := (inner - ansi.StringWidth(title)) / 2
	right := inner - left - ansi.StringWidth(title) - ansi.StringWidth(glyph)
	line := strings.Repeat(" ", max(left, 0)) + s.heading.Render(title) + strings.Repeat(" ", max(right, 1)) + glyph
	return s.titleBar.Width(m.width).MaxWidth(m.width).Render(line)
}

func (m *Model) renderMenuBar(s styles) string {
	titles := make([]string, 0, len(menuEntries))
	for i, entry := range menuEntries {
		if m.menu.open && m.menu.index == i {
			titles = append(titles, s.menuActive.Render(entry.Title))
			continue
		}
		titles = append(titles, entry.Title)
	}
	line := strings.Join(titles, strings.Repeat(" ", menuTitleGap))
	return s.menuBar.Width(m.width).MaxWidth(m.width).Render(line)
}

func (m *Model) renderSearchBar(s styles) string {
	label := s.subtle.Render("Search: ")
	if m.focus == FocusSearch {
		label = s.accent.Render("Search: ")
	}
	return s.searchBar.Width(m.width).MaxWidth(m.width).Render(label + m.search.View())
}

// renderSidebar draws OPEN EDITORS and the PORTFOLIO tree
func (m *Model) renderSidebar(s styles) string {
	width := SidebarWidth - 1 // right border
	ex := m.shell.Explorer()
	active := ex.ActiveFile()

	var lines []string
	lines = append(lines, s.section.Render(" EXPLORER"), "")
	lines = append(lines, s.section.Render(" OPEN EDITORS"))
	lines = append(lines, "   "+s.star.Render("★")+" "+fileIcon(active)+" "+s.row.Render(active))
	lines = append(lines, "")
	lines = append(lines, s.section.Render(" ▾ "+strings.ToUpper(explorer.RootFolder)))

	rows := ex.Rows()
	cursor := ex.Cursor()
	if len(rows) == 0 {
		lines = append(lines, s.subtle.Render("   No files match"))
	}
	for i, row := range rows {
		var text string
		if row.Kind == explorer.RowFolder {
			arrow := "▸"
			if row.Expanded {
				arrow = "▾"
			}
			text = "   " + arrow + " " + row.Name
		} else {
			text = "      " + fileIcon(row.Name) + " " + row.Name
		}
		text = ansi.Truncate(text, width, "…")
		if pad := width - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}

		switch {
		case i == cursor && m.focus == FocusExplorer:
			text = s.rowCursor.Render(text)
		case row.Kind == explorer.RowFile && row.Active:
			text = s.rowActive.Render(text)
		default:
			text = s.row.Render(text)
		}
		lines = append(lines, text)
	}

	height := m.bodyHeight()
	return s.sidebar.
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

// fileIcon is a short glyph for a file extension
func fileIcon(name string) string {
	switch path.Ext(name) {
	case ".ts":
		return "TS"
	case ".js":
		return "JS"
	case ".json":
		return "{}"
	default:
		return "··"
	}
}

func (m *Model) renderTabBar(s styles) string {
	name := m.shell.Explorer().ActiveFile()
	tab := s.star.Render("★") + " " + name
	if m.showSource {
		tab += s.subtle.Render("  (source)")
	}
	if m.focus == FocusContent {
		tab = s.accent.Render("▎") + tab
	} else {
		tab = " " + tab
	}
	return s.tabBar.Width(m.editorWidth()).MaxWidth(m.editorWidth()).Render(tab)
}

func (m *Model) renderTerminal(s styles) string {
	header := s.subtle.Render("TERMINAL")
	if m.focus == FocusTerminal {
		header = s.accent.Render("TERMINAL")
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.terminalView.View(), m.prompt.View())
	return s.terminal.
		Width(m.editorWidth()).
		Render(header + "\n" + body)
}

func (m *Model) renderStatusBar(s styles) string {
	left := fmt.Sprintf("◉ %s   ☕ %d", StatusBranch, m.shell.CoffeeCount())
	if m.statusMsg != "" {
		left += "   " + m.statusMsg
	}
	right := strings.Join([]string{StatusCursor, StatusSpaces, StatusEncoding, StatusLanguage}, "   ")
	if len(m.keybinds.GetBinding(keybinds.ContextGlobal, keybinds.ActionOpenHelp)) > 0 {
		hint := m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionOpenHelp)
		right = hint + ": Help   " + right
	}

	inner := m.width - 2
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(right)
	line := left + strings.Repeat(" ", max(gap, 1)) + right
	line = ansi.Truncate(line, inner, "…")
	return s.statusBar.Width(m.width).MaxWidth(m.width).Render(line)
}

// bodyHeight is the height between the top chrome and the status bar
func (m *Model) bodyHeight() int {
	return max(m.height-ChromeLinesTop-ChromeLinesBottom, 1)
}

// editorWidth is the width of the editor column
func (m *Model) editorWidth() int {
	if m.shell.Maximized() {
		return max(m.width, MinContentWidth)
	}
	return max(m.width-SidebarWidth, MinContentWidth)
}

// updateViewports sizes the content and terminal viewports to the window
func (m *Model) updateViewports() {
	if m.width == 0 || m.height == 0 {
		return
	}
	width := m.editorWidth()

	// terminal: top border, header line and prompt line around the transcript
	m.terminalView.Width = width - 2
	m.terminalView.Height = max(TerminalHeight-3, 1)

	height := m.bodyHeight() - TabBarLines
	if m.shell.TerminalOpen() {
		height -= TerminalHeight
	}
	m.contentView.Width = width
	m.contentView.Height = max(height, 1)
	m.prompt.Width = width - 6
	m.search.Width = max(m.width-12, 10)
}

// refreshContent re-renders the editor pane when anything it shows changed
func (m *Model) refreshContent() {
	m.updateViewports()

	block := m.shell.Content()
	role := 0
	if len(block.Roles) > 0 {
		role = m.roleIndex % len(block.Roles)
	}
	theme := m.shell.Theme()
	key := fmt.Sprintf("%s|%s|%t|%d|%d|%d", block.FileID, theme, m.showSource, role, m.contentView.Width, m.fade)
	if key == m.contentKey {
		return
	}
	m.contentKey = key

	s := newStyles(paletteFor(theme))
	var body string
	if m.showSource {
		body = m.renderSource(block)
	} else {
		body = s.content.Width(m.contentView.Width).Render(m.renderBlock(block, role, s))
	}
	if m.fade > 0 {
		body = strings.Repeat("\n", m.fade) + body
	}
	m.contentView.SetContent(body)
}

// renderSource shows the block as highlighted TypeScript with line numbers
func (m *Model) renderSource(block content.Block) string {
	src := content.Source(block)
	colored, err := content.Highlight(src, m.shell.Theme())
	if err != nil {
		m.logger.Debug("highlight failed", zap.Error(err))
	}

	s := newStyles(paletteFor(m.shell.Theme()))
	lines := strings.Split(strings.TrimRight(colored, "\n"), "\n")
	for i, line := range lines {
		lines[i] = s.subtle.Render(fmt.Sprintf("%4d │ ", i+1)) + line
	}
	return strings.Join(lines, "\n")
}

// renderBlock draws the readable view of a block
func (m *Model) renderBlock(block content.Block, role int, s styles) string {
	switch block.Kind {
	case content.KindAbout:
		return renderAbout(block, role, s)
	case content.KindExperience:
		return renderExperience(block, s)
	case content.KindProjects:
		return renderProjects(block, m.contentView.Width-6, s)
	case content.KindContact:
		return renderContact(block, s)
	default:
		return s.subtle.Render(block.Message)
	}
}

func renderAbout(block content.Block, role int, s styles) string {
	var b strings.Builder
	b.WriteString(s.subtle.Render("Hello, I'm") + "\n")
	b.WriteString(s.heading.Render(block.Name) + "\n")
	if len(block.Roles) > 0 {
		b.WriteString(s.accent.Render("> "+block.Roles[role]+"▌") + "\n")
	}
	b.WriteString("\n" + block.Bio + "\n\n")
	for _, link := range block.Links {
		fmt.Fprintf(&b, "%s  %s\n", s.tag.Render(link.Label), s.subtle.Render(link.Tooltip))
	}
	return b.String()
}

func renderExperience(block content.Block, s styles) string {
	var b strings.Builder
	b.WriteString(s.heading.Render(block.Heading) + "\n\n")
	for _, job := range block.Jobs {
		b.WriteString(s.accent.Render("● ") + s.heading.Render(job.Title) + "\n")
		b.WriteString("  " + s.subtle.Render(job.Company+" · "+job.Period) + "\n")
		b.WriteString("  " + job.Description + "\n\n")
	}
	return b.String()
}

func renderProjects(block content.Block, width int, s styles) string {
	cards := []string{s.heading.Render(block.Heading), ""}
	for _, project := range block.Projects {
		tags := make([]string, 0, len(project.Tech))
		for _, tech := range project.Tech {
			tags = append(tags, s.tag.Render(tech))
		}
		card := s.heading.Render(project.Title) + "\n" +
			strings.Join(tags, " ") + "\n" +
			project.Description
		cards = append(cards, s.card.Width(max(width-2, MinContentWidth)).Render(card))
	}
	return strings.Join(cards, "\n")
}

func renderContact(block content.Block, s styles) string {
	var b strings.Builder
	b.WriteString(s.heading.Render(block.Heading) + "\n\n")
	for _, link := range block.Links {
		b.WriteString(s.accent.Render("→ ") + link.Label + "\n")
	}
	b.WriteString(s.subtle.Render("  (y copies the email address)") + "\n\n")

	b.WriteString(s.heading.Render("Skills") + "\n\n")
	for _, skill := range block.Skills {
		b.WriteString(skillBar(skill, s) + "\n")
	}
	return b.String()
}

// skillBar draws a fixed-width level bar
func skillBar(skill content.Skill, s styles) string {
	filled := skill.Level * SkillBarWidth / 100
	filled = min(max(filled, 0), SkillBarWidth)
	bar := s.accent.Render(strings.Repeat("█", filled)) +
		s.subtle.Render(strings.Repeat("░", SkillBarWidth-filled))
	return fmt.Sprintf("%-12s %s %3d%%", skill.Name, bar, skill.Level)
}

// refreshTerminal syncs the transcript viewport, following new output
func (m *Model) refreshTerminal() {
	lines := m.shell.Terminal().Transcript()
	m.terminalView.SetContent(strings.Join(lines, "\n"))
	if len(lines) != m.termLines {
		m.terminalView.GotoBottom()
		m.termLines = len(lines)
	}
}
