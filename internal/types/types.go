package types

import "fmt"

// Theme is the color scheme preference
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is used when no preference has been stored
const DefaultTheme = ThemeDark

// Toggled returns the other theme
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether the theme is the dark scheme
func (t Theme) IsDark() bool {
	return t != ThemeLight
}

// String returns the persisted literal
func (t Theme) String() string {
	return string(t)
}

// ParseTheme parses a persisted theme literal
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("invalid theme %q (expected dark or light)", s)
	}
}

// VirtualFile is a static explorer entry
type VirtualFile struct {
	Name   string `json:"name" yaml:"name"`
	Folder string `json:"folder" yaml:"folder"`
}

// Preferences holds the two persisted scalar preferences
type Preferences struct {
	Theme       Theme `json:"theme" yaml:"theme"`
	CoffeeCount int   `json:"coffeeCount" yaml:"coffeeCount"`
}

// DefaultPreferences returns the in-memory defaults
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:       DefaultTheme,
		CoffeeCount: 0,
	}
}
