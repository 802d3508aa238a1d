// Package config reads the panel-side slice of the NovaSearch config file
// and knows the well-known per-user paths shared with the indexer daemon.
package config

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// DefaultKeyboardShortcut is used when the config file is absent or has no
// [ui] entry. Keybinder format.
const DefaultKeyboardShortcut = "<Super>space"

// Config is the subset of ~/.config/novasearch/config.toml this client
// cares about. The indexer daemon owns the rest of the file; unknown keys
// are ignored.
type Config struct {
	UI       UIConfig       `toml:"ui"`
	Database DatabaseConfig `toml:"database"`
}

// UIConfig holds the [ui] section.
type UIConfig struct {
	// KeyboardShortcut is in config format, e.g. "Super+Space".
	KeyboardShortcut string `toml:"keyboard_shortcut"`
}

// DatabaseConfig holds the [database] section.
type DatabaseConfig struct {
	// Path overrides the default index location when set.
	Path string `toml:"path"`
}

// Load parses the config file at path. A missing file is not an error; the
// zero Config stands in for it.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// Shortcut returns the configured hotkey converted to keybinder format,
// falling back to DefaultKeyboardShortcut.
func (c *Config) Shortcut() string {
	if c == nil || c.UI.KeyboardShortcut == "" {
		return DefaultKeyboardShortcut
	}
	if converted := ConvertShortcutFormat(c.UI.KeyboardShortcut); converted != "" {
		return converted
	}
	return DefaultKeyboardShortcut
}
