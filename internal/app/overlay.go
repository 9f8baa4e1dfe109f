package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var overlayRenderers = map[windowOverlay]func(*Model, *editorWindow, int, int) string{
	overlayFind:    (*Model).renderFindPopup,
	overlayPrompt:  (*Model).renderPromptPopup,
	overlayUnsaved: (*Model).renderUnsavedPopup,
	overlayNotice:  (*Model).renderNoticePopup,
	overlayMenu:    (*Model).renderMenuPopup,
}

func (m *Model) renderWindowOverlay(w *editorWindow, width, height int) string {
	if render, ok := overlayRenderers[w.overlay]; ok {
		return render(m, w, width, height)
	}
	return ""
}

// handleWindowOverlayKey routes a key to the window's active overlay. Window
// overlays are modal: nothing reaches the editor while one is open.
func (m *Model) handleWindowOverlayKey(w *editorWindow, msg tea.KeyMsg) tea.Cmd {
	switch w.overlay {
	case overlayFind:
		return w.handleFindKey(msg)
	case overlayPrompt:
		return m.handlePromptKey(w, msg)
	case overlayUnsaved:
		return m.handleUnsavedKey(w, msg)
	case overlayNotice:
		w.handleNoticeKey(msg)
	case overlayMenu:
		return m.handleMenuKey(w, msg)
	}
	return nil
}

// place centers a popup over the window body on the theme background.
func (w *editorWindow) place(width, height int, popup string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(w.colors.Background)))
}

// handlePopupListNav handles the shared up/down/select/close key patterns used by list popups.
// It returns (nextCursor, selectPressed, closePressed, handled).
func handlePopupListNav(msg tea.KeyMsg, cursor, count int) (int, bool, bool, bool) {
	key := msg.String()
	switch key {
	case "esc":
		return cursor, false, true, true
	case "up", "k", "ctrl+p":
		if count <= 0 {
			return 0, false, false, true
		}
		return clamp(cursor-1, 0, count-1), false, false, true
	case "down", "j", "ctrl+n":
		if count <= 0 {
			return 0, false, false, true
		}
		return clamp(cursor+1, 0, count-1), false, false, true
	case "enter":
		return cursor, true, false, true
	default:
		return cursor, false, false, false
	}
}
