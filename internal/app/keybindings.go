package app

import (
	"slices"
	"strings"
)

// ---------------------------------------------------------------------------
// Action constants
// ---------------------------------------------------------------------------
//
// Each constant identifies a command reachable from the keyboard and from the
// F10 menu. A key press is looked up in keyToAction; anything without an
// action falls through to the text editor.
//
// Default key assignments are declared in defaultActionKeys. Users can
// override any assignment via the "keybindings" object in the settings file.
// ---------------------------------------------------------------------------

const (
	// actionNew clears the buffer, asking about unsaved changes first.
	actionNew = "file.new"

	// actionOpen prompts for a path and loads it into the window.
	actionOpen = "file.open"

	// actionSave writes to the current path, or prompts when there is none.
	actionSave = "file.save"

	// actionSaveAs always prompts for a destination.
	actionSaveAs = "file.save_as"

	actionUndo = "edit.undo"
	actionRedo = "edit.redo"

	// actionFind opens the find prompt.
	actionFind = "edit.find"

	// actionPaste inserts the system clipboard at the cursor.
	actionPaste = "edit.paste"

	// actionCopyAll copies the whole buffer to the system clipboard.
	actionCopyAll = "edit.copy_all"

	// actionTheme opens the shared theme dialog.
	actionTheme = "settings.theme"

	// actionFontSize opens the shared font size dialog.
	actionFontSize = "settings.font_size"

	// actionNewWindow opens another editor window.
	actionNewWindow = "window.new"

	// actionCloseWindow closes the focused window, asking about unsaved
	// changes first.
	actionCloseWindow = "window.close"

	actionNextWindow = "window.next"
	actionPrevWindow = "window.prev"

	// actionMenu opens the command menu.
	actionMenu = "menu.open"

	// actionHelp toggles the keyboard reference.
	actionHelp = "help.toggle"
)

// defaultActionKeys maps each action to its factory-default key bindings.
//
// Key strings use the Bubble Tea notation:
//   - Modifier keys: "ctrl+", "alt+", "shift+"
//   - Special keys: "enter", "esc", "tab", "pgup", "f1"
var defaultActionKeys = map[string][]string{
	actionNew:         {"ctrl+n"},
	actionOpen:        {"ctrl+o"},
	actionSave:        {"ctrl+s"},
	actionSaveAs:      {"alt+s", "f12"},
	actionUndo:        {"ctrl+z"},
	actionRedo:        {"ctrl+y"},
	actionFind:        {"ctrl+f"},
	actionPaste:       {"ctrl+v"},
	actionCopyAll:     {"alt+c"},
	actionTheme:       {"ctrl+t", "f2"},
	actionFontSize:    {"alt+f", "f3"},
	actionNewWindow:   {"alt+n"},
	actionCloseWindow: {"ctrl+w", "ctrl+q"},
	actionNextWindow:  {"alt+.", "ctrl+pgdown"},
	actionPrevWindow:  {"alt+,", "ctrl+pgup"},
	actionMenu:        {"f10"},
	actionHelp:        {"f1"},
}

// loadKeybindings initializes the bidirectional key↔action maps from the
// factory defaults and then the settings file overrides.
//
// Unknown action names are logged and ignored. An override replaces the
// action's whole default key set. When two actions claim one key the first
// action keeps it and a warning is logged.
func (m *Model) loadKeybindings(overrides map[string]string) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}
	for action, key := range overrides {
		m.applyKeybindingOverride(action, key)
	}
	m.rebuildActionKeyIndex()
}

// applyKeybindingOverride replaces one action's key set with key.
func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex builds keyToAction from keyForAction. Actions are
// visited in sorted order so conflicts resolve the same way on every run.
func (m *Model) rebuildActionKeyIndex() {
	m.keyToAction = map[string]string{}
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	for _, action := range actions {
		for _, key := range m.keyForAction[action] {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// normalizeKeyString converts a user-provided key string into the canonical
// lowercase form used by Bubble Tea.
//
// A single uppercase letter becomes "shift+<letter>" because Bubble Tea may
// report shifted letter keys as uppercase runes.
//
//	normalizeKeyString("Ctrl+S") → "ctrl+s"
//	normalizeKeyString(" Y ")    → "shift+y"
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey returns the action bound to key, or "".
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		return nil
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" || slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

func (m *Model) allActionKeys(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return strings.Join(keys, ", ")
}

var specialKeyLabels = map[string]string{
	"up":        "↑",
	"down":      "↓",
	"left":      "←",
	"right":     "→",
	"enter":     "Enter",
	"esc":       "Esc",
	"tab":       "Tab",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PgUp",
	"pgdown":    "PgDn",
	"space":     "Space",
	"backspace": "Backspace",
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		case "":
			// "alt++" splits into an empty trailing part.
			parts[i] = "+"
		default:
			if label, ok := specialKeyLabels[part]; ok {
				parts[i] = label
				continue
			}
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "+")
}
