package tui

import "time"

// Layout
const (
	SidebarWidth      = 32 // explorer column including its border
	TerminalHeight    = 10 // terminal panel including border and prompt
	ChromeLinesTop    = 3  // title bar + menu bar + search bar
	ChromeLinesBottom = 1  // status bar
	TabBarLines       = 1
	MinContentWidth   = 20
	QuickOpenWidth    = 48
	QuickOpenMaxRows  = 9
	SkillBarWidth     = 30
)

// Animation
const (
	// RoleRotateInterval matches the typing animation cadence on the about page
	RoleRotateInterval = 2 * time.Second

	ConfettiParticles     = 100
	ConfettiFrameInterval = 50 * time.Millisecond
	ConfettiFrames        = 40
	ConfettiGravity       = 0.08
	ConfettiSpread        = 70 // degrees, centered on straight up

	// ContentFadeFrames animates the editor body after a file switch
	ContentFadeFrames   = 4
	ContentFadeInterval = 40 * time.Millisecond
)

// Status bar texts
const (
	StatusBranch   = "main"
	StatusCursor   = "Ln 1, Col 1"
	StatusSpaces   = "Spaces: 2"
	StatusEncoding = "UTF-8"
	StatusLanguage = "TypeScript"
	WindowTitle    = "MD KAIF - Portfolio"
)
