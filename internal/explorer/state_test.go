package explorer

import (
	"reflect"
	"strings"
	"testing"
)

func fileNames(t *testing.T, s *State, folder string) []string {
	t.Helper()
	var names []string
	for _, f := range s.ListFiles(folder) {
		names = append(names, f.Name)
	}
	return names
}

func TestNewState_Defaults(t *testing.T) {
	s := NewState()

	if got := s.ActiveFile(); got != "about_me.ts" {
		t.Errorf("ActiveFile() = %q, want about_me.ts", got)
	}
	if got := s.ExpandedFolders(); !reflect.DeepEqual(got, []string{"portfolio", "src"}) {
		t.Errorf("ExpandedFolders() = %v", got)
	}
	if got := s.SearchQuery(); got != "" {
		t.Errorf("SearchQuery() = %q, want empty", got)
	}
}

func TestListFiles_EmptyQueryReturnsFolderInOrder(t *testing.T) {
	s := NewState()

	got := fileNames(t, s, "src")
	want := []string{
		"about_me.ts", "experience.ts", "projects.ts", "contact.ts",
		".eslintrc.json", ".gitignore", "next.config.js", "package.json", "tsconfig.json",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListFiles(src) = %v, want %v", got, want)
	}

	if got := s.ListFiles("public"); len(got) != 0 {
		t.Errorf("ListFiles(public) = %v, want empty", got)
	}
	if got := s.ListFiles("nowhere"); len(got) != 0 {
		t.Errorf("ListFiles(nowhere) = %v, want empty", got)
	}
}

func TestListFiles_CaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"JSON", []string{".eslintrc.json", "package.json", "tsconfig.json"}},
		{"ts", []string{"about_me.ts", "experience.ts", "projects.ts", "contact.ts", "tsconfig.json"}},
		{"ConTact", []string{"contact.ts"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			s := NewState()
			s.SetSearchQuery(tt.query)

			got := fileNames(t, s, "src")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ListFiles(src) with %q = %v, want %v", tt.query, got, tt.want)
			}
			for _, name := range got {
				if !strings.Contains(strings.ToLower(name), strings.ToLower(tt.query)) {
					t.Errorf("%q does not contain %q", name, tt.query)
				}
			}
		})
	}
}

func TestToggleFolder_IsSelfInverse(t *testing.T) {
	for _, id := range []string{"src", "public", "portfolio", "not-a-folder", ""} {
		t.Run(id, func(t *testing.T) {
			s := NewState()
			before := s.ExpandedFolders()

			s.ToggleFolder(id)
			if s.IsExpanded(id) == contains(before, id) {
				t.Errorf("ToggleFolder(%q) did not flip membership", id)
			}

			s.ToggleFolder(id)
			if got := s.ExpandedFolders(); !reflect.DeepEqual(got, before) {
				t.Errorf("after double toggle = %v, want %v", got, before)
			}
		})
	}
}

func TestSelectFile_AcceptsAnyID(t *testing.T) {
	s := NewState()
	expanded := s.ExpandedFolders()

	for _, id := range []string{"experience.ts", "package.json", "ghost.ts", ""} {
		s.SelectFile(id)
		if got := s.ActiveFile(); got != id {
			t.Errorf("ActiveFile() = %q, want %q", got, id)
		}
	}

	if got := s.ExpandedFolders(); !reflect.DeepEqual(got, expanded) {
		t.Errorf("selection changed folder state: %v", got)
	}
}

func TestCollapsedFolderHidesButKeepsFiles(t *testing.T) {
	s := NewState()
	s.ToggleFolder("src")

	for _, row := range s.Rows() {
		if row.Kind == RowFile {
			t.Errorf("file row %q visible in collapsed folder", row.Name)
		}
	}
	if len(s.ListFiles("src")) != 9 {
		t.Error("collapsing a folder must not remove registry entries")
	}
}

func TestRows_Layout(t *testing.T) {
	s := NewState()
	rows := s.Rows()

	// src + 9 files + public + .next + node_modules
	if len(rows) != 13 {
		t.Fatalf("len(Rows()) = %d, want 13", len(rows))
	}
	if rows[0].Kind != RowFolder || rows[0].Name != "src" || !rows[0].Expanded {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].Name != "about_me.ts" || !rows[1].Active {
		t.Errorf("rows[1] = %+v", rows[1])
	}
	if rows[12].Name != "node_modules" || rows[12].Expanded {
		t.Errorf("rows[12] = %+v", rows[12])
	}
}

func TestNavigateAndActivate(t *testing.T) {
	s := NewState()

	// Wrap to the last row
	s.Navigate(-1)
	row, _ := s.CursorRow()
	if row.Name != "node_modules" {
		t.Errorf("after wrap, cursor on %q", row.Name)
	}

	// Back to top, then onto experience.ts
	s.Navigate(1)
	s.Navigate(2)
	row, _ = s.CursorRow()
	if row.Name != "experience.ts" {
		t.Fatalf("cursor on %q, want experience.ts", row.Name)
	}

	s.Activate()
	if got := s.ActiveFile(); got != "experience.ts" {
		t.Errorf("ActiveFile() = %q after Activate", got)
	}

	// Collapse src from its folder row; cursor must stay in range
	s.Navigate(-2)
	s.Activate()
	if s.IsExpanded("src") {
		t.Error("Activate on folder row should collapse it")
	}
	if s.Cursor() >= len(s.Rows()) {
		t.Errorf("cursor %d out of range", s.Cursor())
	}
}

func TestSearchClampsCursor(t *testing.T) {
	s := NewState()
	s.Navigate(9) // tsconfig.json
	s.SetSearchQuery("contact")

	if s.Cursor() >= len(s.Rows()) {
		t.Errorf("cursor %d out of range for %d rows", s.Cursor(), len(s.Rows()))
	}
}

func TestQuickOpen(t *testing.T) {
	all := QuickOpen("")
	if len(all) != len(Files()) {
		t.Fatalf("QuickOpen(\"\") returned %d matches", len(all))
	}
	if all[0].File.Name != "about_me.ts" {
		t.Errorf("first match = %q", all[0].File.Name)
	}

	matches := QuickOpen("exp")
	if len(matches) == 0 || matches[0].File.Name != "experience.ts" {
		t.Fatalf("QuickOpen(exp) = %+v", matches)
	}
	if len(matches[0].Indexes) != 3 {
		t.Errorf("matched indexes = %v", matches[0].Indexes)
	}

	if got := QuickOpen("qqq"); len(got) != 0 {
		t.Errorf("QuickOpen(qqq) = %+v, want none", got)
	}
}

func TestLookup(t *testing.T) {
	if f, ok := Lookup("package.json"); !ok || f.Folder != "src" {
		t.Errorf("Lookup(package.json) = %+v, %v", f, ok)
	}
	if _, ok := Lookup("ghost.ts"); ok {
		t.Error("Lookup(ghost.ts) should fail")
	}
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func TestSetCursor_Clamps(t *testing.T) {
	s := NewState()
	rows := len(s.Rows())

	s.SetCursor(3)
	if s.Cursor() != 3 {
		t.Errorf("Cursor() = %d, want 3", s.Cursor())
	}
	s.SetCursor(100)
	if s.Cursor() != rows-1 {
		t.Errorf("Cursor() = %d, want %d", s.Cursor(), rows-1)
	}
	s.SetCursor(-4)
	if s.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", s.Cursor())
	}
}
