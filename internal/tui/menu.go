package tui

import (
	"github.com/mdkaif10/codefolio/internal/keybinds"
)

// menuEntry is one title of the menu bar. Entries without options and
// without an action are decorative.
type menuEntry struct {
	Title   string
	Action  keybinds.Action // fired directly when the entry has no options
	Options func(m *Model) []dropdownOption
}

func (e menuEntry) interactive() bool {
	return e.Action != "" || e.Options != nil
}

var menuEntries = []menuEntry{
	{Title: "File", Options: fileMenuOptions},
	{Title: "Edit"},
	{Title: "Selection"},
	{Title: "View"},
	{Title: "Go"},
	{Title: "Run"},
	{Title: "Terminal", Options: terminalMenuOptions},
	{Title: "Help", Action: keybinds.ActionOpenHelp},
}

func fileMenuOptions(*Model) []dropdownOption {
	return []dropdownOption{
		{Label: "Download Resume", Action: keybinds.ActionDownloadResume},
		{Label: "Toggle Theme", Action: keybinds.ActionToggleTheme},
	}
}

func terminalMenuOptions(m *Model) []dropdownOption {
	label := "Open Terminal"
	if m.shell.TerminalOpen() {
		label = "Close Terminal"
	}
	return []dropdownOption{{Label: label, Action: keybinds.ActionToggleTerminal}}
}

// menuTitleGap separates titles in the menu bar
const menuTitleGap = 2

// menuTitleX returns the column of entry i in the menu bar
func menuTitleX(i int) int {
	x := 1 // bar padding
	for j := 0; j < i && j < len(menuEntries); j++ {
		x += len(menuEntries[j].Title) + menuTitleGap
	}
	return x
}

// menuState tracks the open menu
type menuState struct {
	open     bool
	index    int
	dropdown dropdown
}

// openMenu opens entry index; decorative entries are skipped forward
func (m *Model) openMenu(index int) {
	m.menu.open = true
	m.menu.index = index
	if !menuEntries[index].interactive() {
		m.stepMenu(1)
		return
	}
	m.loadMenuOptions()
}

// stepMenu moves to the next interactive entry in direction dir
func (m *Model) stepMenu(dir int) {
	n := len(menuEntries)
	i := m.menu.index
	for range n {
		i = (i + dir + n) % n
		if menuEntries[i].interactive() {
			break
		}
	}
	m.menu.index = i
	m.loadMenuOptions()
}

func (m *Model) loadMenuOptions() {
	entry := menuEntries[m.menu.index]
	m.menu.dropdown = dropdown{
		AnchorX: menuTitleX(m.menu.index),
		AnchorY: 2, // below title and menu bars
	}
	if entry.Options != nil {
		m.menu.dropdown.Options = entry.Options(m)
	}
}

func (m *Model) closeMenu() {
	m.menu = menuState{}
}

// activateMenu runs the selected option, or the entry's own action
func (m *Model) activateMenu() keybinds.Action {
	entry := menuEntries[m.menu.index]
	action := entry.Action
	if option, ok := m.menu.dropdown.Selected(); ok {
		action = option.Action
	}
	m.closeMenu()
	return action
}
