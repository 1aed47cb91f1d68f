package resume

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"md", FormatMarkdown, false},
		{"Markdown", FormatMarkdown, false},
		{"html", FormatHTML, false},
		{"HTM", FormatHTML, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = (%q, %v)", tt.in, got, err)
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) error should wrap ErrUnknownFormat", tt.in)
		}
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown()

	for _, want := range []string{
		"# MD KAIF",
		"_Full Stack Developer · Cloud Technology Enthusiast · Information Security Specialist_",
		"- [GitHub](https://github.com/mdkaif10)",
		"## Experience",
		"### SDE Intern, ICM Guwahati",
		"### Chat Application",
		"`React` `Node.js` `MongoDB`",
		"| JavaScript | 90% |",
		"- [Md.71.kaif@gmail.com](mailto:Md.71.kaif@gmail.com)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q", want)
		}
	}

	if strings.Index(md, "## Experience") > strings.Index(md, "## Projects") {
		t.Error("experience should come before projects")
	}
}

func TestHTML(t *testing.T) {
	page, err := HTML()
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>MD KAIF - Resume</title>",
		"<h1>MD KAIF</h1>",
		"<table>",
		`<a href="https://www.linkedin.com/in/md-kaif101/">LinkedIn</a>`,
		"<code>Python</code>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("HTML() missing %q", want)
		}
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	mdPath := filepath.Join(dir, "out", DefaultFileName(FormatMarkdown))
	if err := Write(mdPath, FormatMarkdown); err != nil {
		t.Fatalf("Write(md) error: %v", err)
	}
	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != Markdown() {
		t.Error("written markdown differs from Markdown()")
	}

	htmlPath := filepath.Join(dir, "resume.html")
	if err := Write(htmlPath, FormatHTML); err != nil {
		t.Fatalf("Write(html) error: %v", err)
	}
	data, err = os.ReadFile(htmlPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Error("written html is not a page")
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := Write(path, "pdf"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write(pdf) error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written for an unknown format")
	}
}
