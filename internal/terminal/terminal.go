// Package terminal implements the toy command interpreter shown in the
// bottom panel. Every submitted line is echoed before its response.
package terminal

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mdkaif10/codefolio/internal/types"
)

// Prompt prefixes every echoed command
const Prompt = "> "

// WelcomeLine is the transcript's only line at startup
const WelcomeLine = `Welcome to MD KAIF's portfolio! Type "help" for a list of commands.`

// UnknownCommand is the response to anything the interpreter does not know
const UnknownCommand = `Command not recognized. Type "help" for available commands.`

// Commands lists the recognized commands in help order
var Commands = []string{"about", "skills", "projects", "contact", "clear", "theme", "coffee"}

var helpBlock = []string{
	"--- Help ---",
	"Welcome to MD KAIF's portfolio!",
	"Use the file explorer to navigate through different sections.",
	"Available terminal commands: help, about, skills, projects, contact, clear, theme, coffee",
	"Enjoy exploring!",
}

var responses = map[string][]string{
	"help": {"Available commands: about, skills, projects, contact, clear, theme, coffee"},
	"about": {
		"MD KAIF - Aspiring Full Stack Developer",
		"Specializing in Cloud Technology and Information Security",
	},
	"skills": {"Skills: JavaScript, Python, React, Node.js, MongoDB, Docker"},
	"projects": {
		"Projects:",
		"1. Student Management System",
		"2. Real-time Chat Application",
	},
	"contact": {
		"Email: Md.71.kaif@gmail.com",
		"LinkedIn: https://www.linkedin.com/in/md-kaif101/",
	},
}

// Environment is the state the interpreter reads and mutates outside its
// own transcript
type Environment interface {
	Theme() types.Theme
	ToggleTheme()
	AddCoffee() int
}

// Interpreter holds the transcript and the panel's open flag
type Interpreter struct {
	mu         sync.RWMutex
	env        Environment
	transcript []string
	open       bool
	celebrate  func()
}

// New returns an interpreter whose transcript holds the welcome line
func New(env Environment) *Interpreter {
	return &Interpreter{
		env:        env,
		transcript: []string{WelcomeLine},
	}
}

// OnCelebrate sets the hook fired after a coffee purchase. The hook runs
// without the interpreter lock held.
func (t *Interpreter) OnCelebrate(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.celebrate = fn
}

// Submit interprets one command line
func (t *Interpreter) Submit(raw string) {
	t.mu.Lock()
	t.appendLocked(Prompt + raw)

	var celebrate func()
	switch cmd := strings.ToLower(raw); cmd {
	case "clear":
		t.transcript = []string{}

	case "theme":
		current := t.env.Theme()
		t.env.ToggleTheme()
		t.appendLocked(fmt.Sprintf("Theme switched to %s", current.Toggled()))

	case "coffee":
		n := t.env.AddCoffee()
		t.appendLocked(fmt.Sprintf("Thanks for the coffee! ☕ (Total: %d)", n))
		celebrate = t.celebrate

	default:
		if lines, ok := responses[cmd]; ok {
			t.appendLocked(lines...)
		} else {
			t.appendLocked(UnknownCommand)
		}
	}
	t.mu.Unlock()

	if celebrate != nil {
		celebrate()
	}
}

// Open shows the panel and appends the help block
func (t *Interpreter) Open() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.open = true
	t.appendLocked(helpBlock...)
}

// Toggle flips panel visibility without touching the transcript
func (t *Interpreter) Toggle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.open = !t.open
}

func (t *Interpreter) IsOpen() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.open
}

// Transcript returns a copy of the transcript lines
func (t *Interpreter) Transcript() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lines := make([]string, len(t.transcript))
	copy(lines, t.transcript)
	return lines
}

func (t *Interpreter) appendLocked(lines ...string) {
	t.transcript = append(t.transcript, lines...)
}
