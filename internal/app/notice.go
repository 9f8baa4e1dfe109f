package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// notice is a modal message with a single OK button, used for I/O errors.
type notice struct {
	title string
	body  string
}

func (w *editorWindow) showNotice(title, body string) {
	w.openOverlay(overlayNotice)
	w.notice = notice{title: title, body: body}
	w.status = title
}

func (w *editorWindow) handleNoticeKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter", "esc", " ":
		w.closeOverlay()
	}
}

func (m *Model) renderNoticePopup(w *editorWindow, width, height int) string {
	innerWidth := max(20, min(DialogPopupWidth, width-4))
	body := strings.Join([]string{
		errorStyle.Render(w.notice.title),
		lipgloss.NewStyle().Width(innerWidth).Render(w.notice.body),
		"",
		w.styles.selected.Render("[ OK ]"),
	}, "\n")
	popup := w.styles.popup.Width(innerWidth).Render(body)
	return w.place(width, height, popup)
}
