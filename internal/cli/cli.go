// Package cli implements the headless subcommands: running terminal
// commands, printing a resolved file and showing or resetting preferences.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mdkaif10/codefolio/internal/app"
	"github.com/mdkaif10/codefolio/internal/content"
	"github.com/mdkaif10/codefolio/internal/explorer"
	"github.com/mdkaif10/codefolio/internal/prefs"
	"github.com/mdkaif10/codefolio/internal/types"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSource = "ts"
)

// ErrUnknownFile is returned by Cat for names outside the file registry
var ErrUnknownFile = errors.New("unknown file")

// isInteractive checks if stdin is a terminal (not piped)
func isInteractive() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// ExecOptions contains options for running terminal commands headless
type ExecOptions struct {
	Commands     []string  // run in order; empty reads lines from Input
	Input        io.Reader // defaults to stdin
	Output       io.Writer // defaults to stdout
	OutputFormat string    // text, json, yaml
}

// ExecResult is what exec prints in structured formats
type ExecResult struct {
	Commands    []string          `json:"commands" yaml:"commands"`
	Transcript  []string          `json:"transcript" yaml:"transcript"`
	Preferences types.Preferences `json:"preferences" yaml:"preferences"`
}

// Exec submits each command to the shell's terminal and prints the
// resulting transcript
func Exec(shell *app.Shell, opts ExecOptions) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	commands := opts.Commands
	if len(commands) == 0 {
		in := opts.Input
		if in == nil {
			in = os.Stdin
		}
		lines, err := readLines(in)
		if err != nil {
			return fmt.Errorf("failed to read commands: %w", err)
		}
		commands = lines
	}

	for _, cmd := range commands {
		shell.Submit(cmd)
	}

	result := ExecResult{
		Commands:    commands,
		Transcript:  shell.Terminal().Transcript(),
		Preferences: shell.Preferences(),
	}

	output, err := formatOutput(result, opts.OutputFormat, func() string {
		return strings.Join(result.Transcript, "\n") + "\n"
	})
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = io.WriteString(out, output)
	return err
}

// readLines returns every line of r without its line ending. Blank lines
// are kept since they are commands too; the newline ending the last line
// does not start another one.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

// CatOptions contains options for printing a file
type CatOptions struct {
	File         string // empty picks interactively when stdin is a terminal
	Output       io.Writer
	OutputFormat string      // text, ts, json, yaml
	Theme        types.Theme // highlight style for ts when Color is set
	Color        bool
}

// Cat prints the resolved content of one registry file
func Cat(opts CatOptions) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	name := opts.File
	if name == "" {
		if !isInteractive() {
			return fmt.Errorf("no file given (expected one of: %s)", strings.Join(fileNames(), ", "))
		}
		picked, err := pickFile()
		if err != nil {
			return err
		}
		name = picked
	}

	if _, ok := explorer.Lookup(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFile, name)
	}
	block := content.Resolve(name)

	var output string
	var err error
	if opts.OutputFormat == FormatSource {
		output = content.Source(block)
		if opts.Color {
			// Highlight returns the plain source on failure
			output, _ = content.Highlight(output, opts.Theme)
		}
	} else {
		output, err = formatOutput(block, opts.OutputFormat, func() string { return PlainText(block) })
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
	}

	_, err = io.WriteString(out, output)
	return err
}

func fileNames() []string {
	files := explorer.Files()
	names := make([]string, len(files))
	for i, file := range files {
		names[i] = file.Name
	}
	return names
}

// ShowPrefs prints the stored preferences
func ShowPrefs(w io.Writer, p types.Preferences, format string) error {
	output, err := formatOutput(p, format, func() string {
		return fmt.Sprintf("theme: %s\ncoffeeCount: %d\n", p.Theme, p.CoffeeCount)
	})
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = io.WriteString(w, output)
	return err
}

// ResetPrefs writes the default preferences over the stored ones
func ResetPrefs(store *prefs.Store) error {
	defaults := types.DefaultPreferences()
	return errors.Join(
		store.SaveTheme(defaults.Theme),
		store.SaveCoffeeCount(defaults.CoffeeCount),
	)
}

// formatOutput renders v as json or yaml; text uses the given renderer
func formatOutput(v any, format string, text func() string) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case FormatText, "":
		return text(), nil

	default:
		return "", fmt.Errorf("unsupported output format %q (expected text, json or yaml)", format)
	}
}

// PlainText renders a block as readable text without styling
func PlainText(block content.Block) string {
	var sb strings.Builder

	switch block.Kind {
	case content.KindAbout:
		sb.WriteString(block.Name + "\n")
		sb.WriteString(strings.Join(block.Roles, " | ") + "\n\n")
		sb.WriteString(block.Bio + "\n\n")
		for _, link := range block.Links {
			fmt.Fprintf(&sb, "%s: %s\n", link.Label, link.URL)
		}

	case content.KindExperience:
		sb.WriteString(block.Heading + "\n\n")
		for _, job := range block.Jobs {
			fmt.Fprintf(&sb, "%s - %s (%s)\n  %s\n", job.Title, job.Company, job.Period, job.Description)
		}

	case content.KindProjects:
		sb.WriteString(block.Heading + "\n\n")
		for _, project := range block.Projects {
			fmt.Fprintf(&sb, "%s [%s]\n  %s\n", project.Title, strings.Join(project.Tech, ", "), project.Description)
		}

	case content.KindContact:
		sb.WriteString(block.Heading + "\n\n")
		for _, link := range block.Links {
			sb.WriteString(link.Label + "\n")
		}
		sb.WriteString("\nSkills\n")
		for _, skill := range block.Skills {
			fmt.Fprintf(&sb, "  %-12s %3d%%\n", skill.Name, skill.Level)
		}

	default:
		sb.WriteString(block.Message + "\n")
	}

	return sb.String()
}
