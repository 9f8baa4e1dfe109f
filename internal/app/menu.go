package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuEntry is one command in the F10 menu.
type menuEntry struct {
	group  string
	label  string
	action string
}

var menuEntries = []menuEntry{
	{"File", "New", actionNew},
	{"File", "Open…", actionOpen},
	{"File", "Save", actionSave},
	{"File", "Save As…", actionSaveAs},
	{"Edit", "Undo", actionUndo},
	{"Edit", "Redo", actionRedo},
	{"Edit", "Find…", actionFind},
	{"Edit", "Paste", actionPaste},
	{"Edit", "Copy All", actionCopyAll},
	{"Settings", "Theme…", actionTheme},
	{"Settings", "Font Size…", actionFontSize},
	{"Window", "New Window", actionNewWindow},
	{"Window", "Next Window", actionNextWindow},
	{"Window", "Previous Window", actionPrevWindow},
	{"Window", "Close Window", actionCloseWindow},
	{"Help", "Keyboard Reference", actionHelp},
}

func (w *editorWindow) openMenu() {
	w.openOverlay(overlayMenu)
	w.menuCursor = clamp(w.menuCursor, 0, len(menuEntries)-1)
}

func (m *Model) handleMenuKey(w *editorWindow, msg tea.KeyMsg) tea.Cmd {
	next, selectPressed, closePressed, handled := handlePopupListNav(msg, w.menuCursor, len(menuEntries))
	if !handled {
		if m.actionForKey(msg.String()) == actionMenu {
			w.closeOverlay()
		}
		return nil
	}
	w.menuCursor = next
	if closePressed {
		w.closeOverlay()
		return nil
	}
	if selectPressed {
		action := menuEntries[w.menuCursor].action
		w.closeOverlay()
		return m.runAction(w, action)
	}
	return nil
}

func (m *Model) renderMenuPopup(w *editorWindow, width, height int) string {
	innerWidth := max(24, min(DialogPopupWidth, width-4))
	visible := max(1, min(len(menuEntries), min(MenuPopupHeight, height-4)))
	start := clamp(w.menuCursor-visible+1, 0, max(0, len(menuEntries)-visible))

	lines := []string{titleStyle.Render("Menu")}
	group := ""
	for i := start; i < start+visible && i < len(menuEntries); i++ {
		entry := menuEntries[i]
		var name string
		if entry.group != group {
			group = entry.group
			name = fmt.Sprintf("%-9s%s", group, entry.label)
		} else {
			name = strings.Repeat(" ", 9) + entry.label
		}
		keys := m.primaryActionKey(entry.action, "")
		pad := max(1, innerWidth-lipgloss.Width(name)-lipgloss.Width(keys))
		line := truncate(name+strings.Repeat(" ", pad)+keys, innerWidth)
		if i == w.menuCursor {
			line = w.styles.selected.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, mutedStyle.Render("↑/↓ move  Enter run  Esc close"))

	popup := w.styles.popup.Width(innerWidth).Render(strings.Join(lines, "\n"))
	return w.place(width, height, popup)
}
