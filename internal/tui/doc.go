/*
Package tui implements the terminal user interface for codefolio.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: view state (focus, overlays, viewports, animations)
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

Domain state lives in app.Shell (theme, coffee count, explorer, terminal
interpreter); the model only holds what is specific to drawing it.

# Key Components

  - model.go: Model struct, Update loop and focus handling
  - init.go: New and Run
  - keys.go: Keyboard input handling and action dispatch
  - render.go: Window layout and content blocks
  - menu.go, dropdown.go: Menu bar and its dropdown overlays
  - quickopen.go: The ctrl+p fuzzy file palette
  - confetti.go: Particle burst started by the celebration hook
  - overlay.go: ANSI-aware splicing of overlays onto the rendered view

# Keybind System

Keys are resolved through keybinds.Registry by context. The context is the
open overlay (quick open, then menu) or else the focused pane. In text
contexts (search, terminal, quick open) keys without a binding are typed
into the focused input.

# Threading Model

Everything runs on Bubble Tea's event loop. Animations are tea.Tick
commands; the resume export runs as a command and reports back with a
message.
*/
package tui
