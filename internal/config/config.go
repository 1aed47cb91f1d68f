package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

// Storage backends accepted in config.yaml and --storage
const (
	StorageSQLite = "sqlite"
	StorageJSON   = "json"
	StorageMemory = "memory"
)

var (
	// ConfigDir is the global configuration directory (~/.codefolio)
	ConfigDir string

	// DatabasePath is the SQLite database file holding preferences
	DatabasePath string

	// PrefsFile is the preference file used by the json storage backend
	PrefsFile string

	// SettingsFile is the YAML settings file
	SettingsFile string

	// KeybindsFile is the user keybinding override file
	KeybindsFile string

	// LogFile receives structured logs while the TUI owns the terminal
	LogFile string
)

// Settings is the content of config.yaml
type Settings struct {
	Storage      string `yaml:"storage"`
	LogLevel     string `yaml:"log_level"`
	Confetti     *bool  `yaml:"confetti,omitempty"`
	KeybindsFile string `yaml:"keybinds_file,omitempty"`
}

// DefaultSettings returns the settings used when config.yaml is absent
func DefaultSettings() Settings {
	enabled := true
	return Settings{
		Storage:  StorageSQLite,
		LogLevel: "info",
		Confetti: &enabled,
	}
}

// ConfettiEnabled returns whether the coffee celebration animation is shown
func (s Settings) ConfettiEnabled() bool {
	if s.Confetti == nil {
		return true
	}
	return *s.Confetti
}

// Validate checks the settings values
func (s Settings) Validate() error {
	switch s.Storage {
	case StorageSQLite, StorageJSON, StorageMemory:
	default:
		return fmt.Errorf("invalid storage backend %q (expected sqlite, json or memory)", s.Storage)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", s.LogLevel)
	}
	return nil
}

// Initialize sets up the configuration directory and files
// It creates ~/.codefolio/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitializeAt(filepath.Join(homeDir, ".codefolio"))
}

// InitializeAt sets the global paths relative to dir and creates it
func InitializeAt(dir string) error {
	ConfigDir = dir
	DatabasePath = filepath.Join(ConfigDir, "codefolio.db")
	PrefsFile = filepath.Join(ConfigDir, "prefs.json")
	SettingsFile = filepath.Join(ConfigDir, "config.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogFile = filepath.Join(ConfigDir, "codefolio.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	// Create default settings file if it doesn't exist
	if _, err := os.Stat(SettingsFile); os.IsNotExist(err) {
		data, err := yaml.Marshal(DefaultSettings())
		if err != nil {
			return fmt.Errorf("failed to marshal default settings: %w", err)
		}
		if err := os.WriteFile(SettingsFile, data, FilePermissions); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	return nil
}

// LoadSettings reads config.yaml, filling unset fields with defaults
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	var fileSettings Settings
	if err := yaml.Unmarshal(data, &fileSettings); err != nil {
		return settings, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if fileSettings.Storage != "" {
		settings.Storage = strings.ToLower(fileSettings.Storage)
	}
	if fileSettings.LogLevel != "" {
		settings.LogLevel = strings.ToLower(fileSettings.LogLevel)
	}
	if fileSettings.Confetti != nil {
		settings.Confetti = fileSettings.Confetti
	}
	if fileSettings.KeybindsFile != "" {
		settings.KeybindsFile = ExpandHome(fileSettings.KeybindsFile)
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}

	return settings, nil
}

// ExpandHome expands a leading ~/ to the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

// StoragePath returns the file backing the given storage backend
func StoragePath(backend string) string {
	switch backend {
	case StorageJSON:
		return PrefsFile
	case StorageSQLite:
		return DatabasePath
	default:
		return ""
	}
}
