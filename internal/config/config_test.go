package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertShortcutFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Super+Space", "<Super>space"},
		{"Ctrl+Alt+F", "<Ctrl><Alt>f"},
		{"Control+Shift+S", "<Control><Shift>s"},
		{"Alt+Tab", "<Alt>tab"},
		{"F12", "f12"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertShortcutFormat(tt.in))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.UI.KeyboardShortcut)
	assert.Empty(t, cfg.Database.Path)
	assert.Equal(t, DefaultKeyboardShortcut, cfg.Shortcut())
}

func TestLoad_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[ui]
keyboard_shortcut = "Ctrl+Alt+F"

[database]
path = "/var/lib/novasearch/index.db"

[daemon]
scan_interval = 300
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ctrl+Alt+F", cfg.UI.KeyboardShortcut)
	assert.Equal(t, "/var/lib/novasearch/index.db", cfg.Database.Path)
	assert.Equal(t, "<Ctrl><Alt>f", cfg.Shortcut())
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nnot toml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestShortcut_Defaults(t *testing.T) {
	var nilCfg *Config
	assert.Equal(t, DefaultKeyboardShortcut, nilCfg.Shortcut())

	empty := &Config{}
	assert.Equal(t, DefaultKeyboardShortcut, empty.Shortcut())
}
