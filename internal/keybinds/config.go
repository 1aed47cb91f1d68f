package keybinds

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
)

// ErrUnknownAction is returned when a config binds keys to an action the UI
// does not know
var ErrUnknownAction = errors.New("unknown action")

// ConfigVersion is written into exported configs
const ConfigVersion = "1.0"

// Config is the user's keybinding file. Each section maps an action to a
// comma-separated key list, e.g. "toggle_theme": "T,alt+t".
type Config struct {
	Version   string            `json:"version"`
	Global    map[string]string `json:"global,omitempty"`
	Explorer  map[string]string `json:"explorer,omitempty"`
	Content   map[string]string `json:"content,omitempty"`
	Terminal  map[string]string `json:"terminal,omitempty"`
	Search    map[string]string `json:"search,omitempty"`
	Menu      map[string]string `json:"menu,omitempty"`
	QuickOpen map[string]string `json:"quick_open,omitempty"`
}

// sections maps each context to its section of the config
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:    c.Global,
		ContextExplorer:  c.Explorer,
		ContextContent:   c.Content,
		ContextTerminal:  c.Terminal,
		ContextSearch:    c.Search,
		ContextMenu:      c.Menu,
		ContextQuickOpen: c.QuickOpen,
	}
}

func (c *Config) section(context Context) *map[string]string {
	switch context {
	case ContextGlobal:
		return &c.Global
	case ContextExplorer:
		return &c.Explorer
	case ContextContent:
		return &c.Content
	case ContextTerminal:
		return &c.Terminal
	case ContextSearch:
		return &c.Search
	case ContextMenu:
		return &c.Menu
	case ContextQuickOpen:
		return &c.QuickOpen
	}
	return nil
}

// ParseConfig decodes a keybinds.json document. Comments and trailing
// commas are allowed.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}
	return &config, nil
}

// LoadConfig loads keybinding configuration from a JSONC file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// SaveConfig writes config as indented JSON
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create keybinds directory: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// SplitKeys splits a comma-separated key list. A lone "," is the comma key.
func SplitKeys(list string) []string {
	if strings.TrimSpace(list) == "," {
		return []string{","}
	}
	var keys []string
	for _, key := range strings.Split(list, ",") {
		if key == " " {
			keys = append(keys, key)
			continue
		}
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// ApplyConfig applies user bindings over registry. An action listed in the
// config loses its previous keys in that context. Unknown actions are
// rejected before anything is applied.
func ApplyConfig(registry *Registry, config *Config) error {
	var unknown []string
	for context, section := range config.sections() {
		for actionStr := range section {
			if !IsKnownAction(Action(actionStr)) {
				unknown = append(unknown, fmt.Sprintf("%s.%s", context, actionStr))
			}
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %s", ErrUnknownAction, strings.Join(unknown, ", "))
	}

	for context, section := range config.sections() {
		for actionStr, keySpec := range section {
			action := Action(actionStr)
			registry.Unbind(context, action)
			registry.RegisterMultiple(context, SplitKeys(keySpec), action)
		}
	}
	return nil
}

// LoadOrDefault returns the default registry with the config at path
// applied. A missing file yields the defaults.
func LoadOrDefault(path string) (*Registry, error) {
	registry := NewDefaultRegistry()
	if path == "" {
		return registry, nil
	}

	config, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return registry, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
	}

	if err := ApplyConfig(registry, config); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}
	return registry, nil
}

// ExportRegistry converts registry into a Config with one entry per action
func ExportRegistry(registry *Registry) *Config {
	config := &Config{Version: ConfigVersion}

	for _, context := range Contexts {
		byAction := make(map[Action][]string)
		for _, binding := range registry.listContext(context) {
			byAction[binding.Action] = append(byAction[binding.Action], binding.Key)
		}
		if len(byAction) == 0 {
			continue
		}

		section := make(map[string]string, len(byAction))
		for action, keys := range byAction {
			section[string(action)] = strings.Join(keys, ",")
		}
		*config.section(context) = section
	}
	return config
}

// ExportDefaults returns the default bindings as a Config
func ExportDefaults() *Config {
	return ExportRegistry(NewDefaultRegistry())
}

const exampleHeader = `// codefolio keybindings
// Each section maps an action to a comma-separated list of keys.
// Listing an action replaces its default keys in that section.
`

// CreateExampleConfig writes the defaults to path with an explanatory header
func CreateExampleConfig(path string) error {
	data, err := json.MarshalIndent(ExportDefaults(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create keybinds directory: %w", err)
	}
	out := append([]byte(exampleHeader), data...)
	return os.WriteFile(path, append(out, '\n'), 0644)
}
