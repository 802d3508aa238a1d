package config

import (
	"os"
	"path/filepath"
)

// DatabasePath returns the well-known index location shared with the
// indexer daemon: ~/.local/share/novasearch/index.db (respecting
// XDG_DATA_HOME).
func DatabasePath() string {
	return filepath.Join(dataDir(), "index.db")
}

// ConfigPath returns ~/.config/novasearch/config.toml (respecting
// XDG_CONFIG_HOME).
func ConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(homeDir(), ".config")
	}
	return filepath.Join(dir, "novasearch", "config.toml")
}

func dataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "novasearch")
	}
	return filepath.Join(homeDir(), ".local", "share", "novasearch")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
