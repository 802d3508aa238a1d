package config

import "strings"

// modifierKeys are the modifier names recognized in config-format shortcuts.
var modifierKeys = []string{"Super", "Ctrl", "Control", "Alt", "Shift"}

// ConvertShortcutFormat translates a config-format shortcut such as
// "Ctrl+Alt+F" into the keybinder format "<Ctrl><Alt>f". Modifiers keep
// their spelling and are wrapped in angle brackets; the key itself is
// lowercased. Empty input yields "".
func ConvertShortcutFormat(shortcut string) string {
	if shortcut == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(shortcut, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if isModifier(part) {
			b.WriteString("<")
			b.WriteString(part)
			b.WriteString(">")
		} else {
			b.WriteString(strings.ToLower(part))
		}
	}
	return b.String()
}

func isModifier(part string) bool {
	for _, m := range modifierKeys {
		if strings.EqualFold(part, m) {
			return true
		}
	}
	return false
}
