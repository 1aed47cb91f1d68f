package explorer

import "github.com/mdkaif10/codefolio/internal/types"

// RootFolder is the workspace label; it starts expanded but has no files
const RootFolder = "portfolio"

// DefaultActiveFile is shown when the session starts
const DefaultActiveFile = "about_me.ts"

var registry = []types.VirtualFile{
	{Name: "about_me.ts", Folder: "src"},
	{Name: "experience.ts", Folder: "src"},
	{Name: "projects.ts", Folder: "src"},
	{Name: "contact.ts", Folder: "src"},
	{Name: ".eslintrc.json", Folder: "src"},
	{Name: ".gitignore", Folder: "src"},
	{Name: "next.config.js", Folder: "src"},
	{Name: "package.json", Folder: "src"},
	{Name: "tsconfig.json", Folder: "src"},
}

var folders = []string{"src", "public", ".next", "node_modules"}

// Files returns a copy of the static registry in display order
func Files() []types.VirtualFile {
	files := make([]types.VirtualFile, len(registry))
	copy(files, registry)
	return files
}

// Lookup returns the registry entry for name
func Lookup(name string) (types.VirtualFile, bool) {
	for _, file := range registry {
		if file.Name == name {
			return file, true
		}
	}
	return types.VirtualFile{}, false
}

// defaultExpanded is the expansion set at startup
func defaultExpanded() map[string]bool {
	return map[string]bool{
		RootFolder: true,
		"src":      true,
	}
}
