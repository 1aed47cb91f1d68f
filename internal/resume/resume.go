// Package resume builds a printable resume from the portfolio content.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mdkaif10/codefolio/internal/content"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Format is an output format
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ErrUnknownFormat is returned for formats other than md and html
var ErrUnknownFormat = errors.New("unknown resume format")

// ParseFormat accepts md, markdown and html
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// DefaultFileName returns the file name used when no output path is given
func DefaultFileName(format Format) string {
	return "MD_KAIF_resume." + string(format)
}

var (
	markdownOnce sync.Once
	markdown     goldmark.Markdown
)

func converter() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdown = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithXHTML()),
		)
	})
	return markdown
}

// Markdown renders the resume as GitHub-flavored markdown
func Markdown() string {
	about := content.Resolve("about_me.ts")
	experience := content.Resolve("experience.ts")
	projects := content.Resolve("projects.ts")
	contact := content.Resolve("contact.ts")

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", about.Name)
	fmt.Fprintf(&b, "_%s_\n\n", strings.Join(about.Roles, " · "))
	fmt.Fprintf(&b, "%s\n\n", about.Bio)
	for _, link := range about.Links {
		fmt.Fprintf(&b, "- [%s](%s)\n", link.Label, link.URL)
	}

	fmt.Fprintf(&b, "\n## %s\n\n", experience.Heading)
	for _, job := range experience.Jobs {
		fmt.Fprintf(&b, "### %s, %s\n\n", job.Title, job.Company)
		fmt.Fprintf(&b, "%s\n\n", job.Period)
		fmt.Fprintf(&b, "%s\n\n", job.Description)
	}

	fmt.Fprintf(&b, "## %s\n\n", projects.Heading)
	for _, project := range projects.Projects {
		fmt.Fprintf(&b, "### %s\n\n", project.Title)
		fmt.Fprintf(&b, "%s\n\n", project.Description)
		tags := make([]string, len(project.Tech))
		for i, tech := range project.Tech {
			tags[i] = "`" + tech + "`"
		}
		fmt.Fprintf(&b, "%s\n\n", strings.Join(tags, " "))
	}

	b.WriteString("## Skills\n\n")
	b.WriteString("| Skill | Level |\n|---|---|\n")
	for _, skill := range contact.Skills {
		fmt.Fprintf(&b, "| %s | %d%% |\n", skill.Name, skill.Level)
	}

	fmt.Fprintf(&b, "\n## %s\n\n", contact.Heading)
	for _, link := range contact.Links {
		fmt.Fprintf(&b, "- [%s](%s)\n", link.Label, link.URL)
	}

	return b.String()
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s - Resume</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; color: #333333; }
h1, h2 { color: #007ACC; }
table { border-collapse: collapse; }
td, th { border: 1px solid #DDDDDD; padding: 0.25rem 0.75rem; }
@media print { a { color: inherit; text-decoration: none; } }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML renders the resume as a standalone printable page
func HTML() (string, error) {
	var body bytes.Buffer
	if err := converter().Convert([]byte(Markdown()), &body); err != nil {
		return "", fmt.Errorf("failed to convert resume: %w", err)
	}
	return fmt.Sprintf(pageTemplate, html.EscapeString(content.OwnerName), body.String()), nil
}

// Render returns the resume in format
func Render(format Format) (string, error) {
	switch format {
	case FormatMarkdown:
		return Markdown(), nil
	case FormatHTML:
		return HTML()
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Write renders the resume in format to path, creating parent directories
func Write(path string, format Format) error {
	out, err := Render(format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create resume directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write resume: %w", err)
	}
	return nil
}
