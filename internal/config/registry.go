package config

import "strings"

// KeybindRegistry resolves pressed keys to action names and actions back to
// their bound keys. It is built once from a UserConfig and replaced
// wholesale on config reload.
type KeybindRegistry struct {
	keyToAction  map[string]string
	actionToKeys map[string][]string
}

// NewKeybindRegistry builds a registry from the given configuration.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		keyToAction:  make(map[string]string),
		actionToKeys: make(map[string][]string),
	}
	for _, section := range cfg.Keybindings.Sections() {
		for action, keys := range section.Actions {
			for _, key := range keys {
				r.keyToAction[normalizeKey(key)] = action
			}
			r.actionToKeys[action] = append(r.actionToKeys[action], keys...)
		}
	}
	return r
}

// GetAction returns the action bound to a key, or "" when the key is
// unbound.
func (r *KeybindRegistry) GetAction(key string) string {
	return r.keyToAction[normalizeKey(key)]
}

// GetKeys returns all keys bound to an action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionToKeys[action]
}

// GetKeysForDisplay returns the keys bound to an action as a single
// comma-separated string for help menus.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actionToKeys[action], ", ")
}

// normalizeKey lowercases modifier combinations while preserving the case of
// single-character keys, so "H" (shift+h) and "h" stay distinct but
// "Ctrl+A" matches "ctrl+a".
func normalizeKey(key string) string {
	if !strings.Contains(key, "+") {
		return key
	}
	parts := strings.Split(key, "+")
	for i, part := range parts {
		if len(part) > 1 || i < len(parts)-1 {
			parts[i] = strings.ToLower(part)
		}
	}
	return strings.Join(parts, "+")
}
