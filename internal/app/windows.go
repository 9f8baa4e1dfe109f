package app

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// newWindow creates a window, applies the current theme and font size,
// registers it, and focuses it.
func (m *Model) newWindow(root bool) *editorWindow {
	m.nextID++
	w := newEditorWindow(m.nextID, root, m.themes)
	w.ApplyTheme(m.settings.CurrentTheme)
	w.ApplyFontSize(m.settings.FontSize)
	w.setSize(m.width, m.bodyHeight())
	m.windows = append(m.windows, w)
	m.registry.Register(w.id, w)
	m.active = w.id
	appLog.Debug("opened window", "window", w.id, "root", root, "windows", m.registry.Len())
	return w
}

func (m *Model) window(id int) *editorWindow {
	for _, w := range m.windows {
		if w.id == id {
			return w
		}
	}
	return nil
}

func (m *Model) activeWindow() *editorWindow {
	return m.window(m.active)
}

// visibleWindows lists registered windows in the order they were opened.
func (m *Model) visibleWindows() []*editorWindow {
	ids := m.registry.IDs()
	out := make([]*editorWindow, 0, len(ids))
	for _, id := range ids {
		if w := m.window(id); w != nil {
			out = append(out, w)
		}
	}
	return out
}

// closeWindow unregisters w. The root window is only hidden; other windows
// are discarded. Closing the last registered window quits the program.
func (m *Model) closeWindow(w *editorWindow) tea.Cmd {
	visible := m.visibleWindows()
	index := slices.Index(visible, w)

	m.registry.Unregister(w.id)
	if w.root {
		w.hidden = true
	} else {
		m.windows = slices.DeleteFunc(m.windows, func(other *editorWindow) bool { return other == w })
	}
	appLog.Debug("closed window", "window", w.id, "root", w.root, "windows", m.registry.Len())

	if m.registry.IsEmpty() {
		return m.quit()
	}
	if m.active == w.id {
		remaining := m.visibleWindows()
		m.active = remaining[clamp(index, 0, len(remaining)-1)].id
	}
	return nil
}

// cycleWindow moves focus delta windows along the open order, wrapping.
func (m *Model) cycleWindow(delta int) {
	visible := m.visibleWindows()
	if len(visible) == 0 {
		return
	}
	index := slices.IndexFunc(visible, func(w *editorWindow) bool { return w.id == m.active })
	if index < 0 {
		index = 0
	}
	next := (index + delta + len(visible)) % len(visible)
	m.active = visible[next].id
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			appLog.Warn("close settings watcher", "error", err)
		}
		m.watcher = nil
	}
	return tea.Quit
}
