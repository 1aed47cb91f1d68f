package explorer

import (
	"sort"
	"strings"
	"sync"

	"github.com/mdkaif10/codefolio/internal/types"
	"github.com/sahilm/fuzzy"
)

// RowKind distinguishes folder rows from file rows in the flattened tree
type RowKind int

const (
	RowFolder RowKind = iota
	RowFile
)

// Row is one visible line of the explorer tree
type Row struct {
	Kind     RowKind
	Name     string
	Folder   string // Parent folder for file rows; the folder itself for folder rows
	Expanded bool   // Folder rows only
	Active   bool   // File rows only
}

// Match is a quick-open result
type Match struct {
	File    types.VirtualFile
	Indexes []int // Matched character positions in File.Name
}

// State holds the explorer's mutable UI state: expanded folders, the active
// file, the search query and the keyboard cursor. Selection, expansion and
// search are independent axes; none of them touches the others.
type State struct {
	mu sync.RWMutex

	expanded    map[string]bool
	activeFile  string
	searchQuery string

	cursor int // Index into Rows()
}

// NewState creates the startup explorer state
func NewState() *State {
	return &State{
		expanded:   defaultExpanded(),
		activeFile: DefaultActiveFile,
	}
}

// ListFiles returns the files of folder matching the search query, in
// registry order
func (s *State) ListFiles(folder string) []types.VirtualFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listFilesLocked(folder)
}

// listFilesLocked filters the registry (must be called with lock held)
func (s *State) listFilesLocked(folder string) []types.VirtualFile {
	queryLower := strings.ToLower(s.searchQuery)
	var files []types.VirtualFile
	for _, file := range registry {
		if file.Folder != folder {
			continue
		}
		if queryLower != "" && !strings.Contains(strings.ToLower(file.Name), queryLower) {
			continue
		}
		files = append(files, file)
	}
	return files
}

// ToggleFolder flips the expansion of id. Unknown ids are accepted.
func (s *State) ToggleFolder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expanded[id] {
		delete(s.expanded, id)
	} else {
		s.expanded[id] = true
	}
	s.clampCursorLocked()
}

// IsExpanded reports whether id is in the expansion set
func (s *State) IsExpanded(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expanded[id]
}

// ExpandedFolders returns the expansion set, sorted
func (s *State) ExpandedFolders() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.expanded))
	for id := range s.expanded {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SelectFile makes id the active file. Any string is accepted.
func (s *State) SelectFile(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeFile = id
}

// ActiveFile returns the active file id
func (s *State) ActiveFile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeFile
}

// SetSearchQuery replaces the search filter
func (s *State) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
	s.clampCursorLocked()
}

// SearchQuery returns the current search filter
func (s *State) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// Rows returns the visible tree: every folder, followed by its filtered
// files when expanded
func (s *State) Rows() []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rowsLocked()
}

func (s *State) rowsLocked() []Row {
	var rows []Row
	for _, folder := range folders {
		expanded := s.expanded[folder]
		rows = append(rows, Row{Kind: RowFolder, Name: folder, Folder: folder, Expanded: expanded})
		if !expanded {
			continue
		}
		for _, file := range s.listFilesLocked(folder) {
			rows = append(rows, Row{
				Kind:   RowFile,
				Name:   file.Name,
				Folder: folder,
				Active: file.Name == s.activeFile,
			})
		}
	}
	return rows
}

// Cursor returns the index of the highlighted row
func (s *State) Cursor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor
}

// CursorRow returns the highlighted row
func (s *State) CursorRow() (Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.rowsLocked()
	if s.cursor < 0 || s.cursor >= len(rows) {
		return Row{}, false
	}
	return rows[s.cursor], true
}

// Navigate moves the cursor by delta rows (wraps around)
func (s *State) Navigate(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.rowsLocked())
	if count == 0 {
		return
	}

	s.cursor += delta

	// Wrap around (circular navigation)
	if s.cursor < 0 {
		s.cursor = count - 1
	} else if s.cursor >= count {
		s.cursor = 0
	}
}

// SetCursor moves the cursor to row i, clamped to the visible rows
func (s *State) SetCursor(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = i
	s.clampCursorLocked()
}

// Activate toggles the folder under the cursor or selects the file under it
func (s *State) Activate() {
	row, ok := s.CursorRow()
	if !ok {
		return
	}
	if row.Kind == RowFolder {
		s.ToggleFolder(row.Name)
		return
	}
	s.SelectFile(row.Name)
}

// clampCursorLocked keeps the cursor on a visible row (must be called with lock held)
func (s *State) clampCursorLocked() {
	count := len(s.rowsLocked())
	if s.cursor >= count {
		s.cursor = count - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// QuickOpen ranks every registry file against query with fuzzy matching.
// An empty query returns the registry in order.
func QuickOpen(query string) []Match {
	if query == "" {
		matches := make([]Match, len(registry))
		for i, file := range registry {
			matches[i] = Match{File: file}
		}
		return matches
	}

	names := make([]string, len(registry))
	for i, file := range registry {
		names[i] = file.Name
	}

	var matches []Match
	for _, result := range fuzzy.Find(query, names) {
		matches = append(matches, Match{
			File:    registry[result.Index],
			Indexes: result.MatchedIndexes,
		})
	}
	return matches
}
