package app

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, files ...string) *Model {
	t.Helper()
	m := New(Options{
		SettingsPath: filepath.Join(t.TempDir(), "settings.json"),
		Files:        files,
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

// newFocusedEditWindow returns a model whose active window holds value with
// the cursor at the end of the buffer and no edit history.
func newFocusedEditWindow(t *testing.T, value string) (*Model, *editorWindow) {
	t.Helper()
	m := newTestModel(t)
	w := m.activeWindow()
	w.setContent(value)
	w.setEditorValueAndCursorOffset(value, len([]rune(value)))
	return m, w
}

func press(m *Model, key tea.KeyType) {
	m.Update(tea.KeyMsg{Type: key})
}

func pressAlt(m *Model, r rune) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true})
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
