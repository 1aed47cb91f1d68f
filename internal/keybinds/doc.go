/*
Package keybinds provides customizable keyboard binding management.

# Contexts

Every focusable part of the UI has a context: explorer, content, terminal,
search, menu and quick_open. A key is resolved in the focused context first
and then in the global context. Terminal, search and quick_open are text
contexts: printable keys that are not bound there are typed into the input.

# Sequences

Doubled keys such as "gg" are sequences. MatchMultiKey holds the first key
until the second arrives. If the pair is not bound, the second key is
resolved on its own, so "g" followed by "tab" still switches focus.

# User configuration

~/.codefolio/keybinds.json overrides the defaults. The file is JSON with
comments allowed; each section maps an action to a comma-separated key list:

	{
	  // vim users
	  "explorer": { "activate": "enter,l,o" },
	  "global":   { "toggle_theme": "alt+t,f2" }
	}

Listing an action replaces its default keys in that section. Unknown
actions are rejected.
*/
package keybinds
