package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/landtext/internal/config"
)

// fontDialog is the single shared font size chooser.
type fontDialog struct {
	size   int
	cursor int
}

const (
	fontButtonApply = iota
	fontButtonCancel
)

var fontButtons = []string{"Apply", "Cancel"}

const fontSliderWidth = 25

// openFontDialog shows the font dialog, or focuses it when it is already
// open.
func (m *Model) openFontDialog() {
	if m.fontDialog != nil {
		m.focus = focusFontDialog
		if w := m.activeWindow(); w != nil {
			w.status = statusDialogFocused
		}
		return
	}
	m.fontDialog = &fontDialog{size: config.ClampFontSize(m.settings.FontSize)}
	m.focus = focusFontDialog
}

func (m *Model) closeFontDialog() {
	m.fontDialog = nil
	if m.focus == focusFontDialog {
		m.focus = focusWindow
	}
}

// handleFontDialogKey adjusts the slider with the arrow keys and moves
// between the buttons with Tab.
func (m *Model) handleFontDialogKey(msg tea.KeyMsg) tea.Cmd {
	d := m.fontDialog
	if d == nil {
		m.focus = focusWindow
		return nil
	}
	switch msg.String() {
	case "esc":
		m.closeFontDialog()
	case "left", "h", "-", "down", "j":
		d.size = config.ClampFontSize(d.size - 1)
	case "right", "l", "+", "=", "up", "k":
		d.size = config.ClampFontSize(d.size + 1)
	case "home":
		d.size = config.MinFontSize
	case "end":
		d.size = config.MaxFontSize
	case "tab", "shift+tab":
		d.cursor = (d.cursor + 1) % len(fontButtons)
	case "enter", " ":
		size := d.size
		if d.cursor == fontButtonApply {
			m.closeFontDialog()
			if err := m.applyFontSize(size); err != nil {
				m.reportSettingsError(err)
			}
			return nil
		}
		m.closeFontDialog()
	}
	return nil
}

func fontSlider(size int) string {
	span := config.MaxFontSize - config.MinFontSize
	pos := (size - config.MinFontSize) * (fontSliderWidth - 1) / span
	return strings.Repeat("━", pos) + "●" + strings.Repeat("─", fontSliderWidth-1-pos)
}

func (m *Model) renderFontDialog(w *editorWindow, width, height int) string {
	d := m.fontDialog
	innerWidth := max(30, min(DialogPopupWidth, width-4))
	buttons := make([]string, len(fontButtons))
	for i, label := range fontButtons {
		button := "[ " + label + " ]"
		if i == d.cursor {
			button = w.styles.selected.Render(button)
		}
		buttons[i] = button
	}
	body := strings.Join([]string{
		titleStyle.Render("Font Size"),
		fmt.Sprintf("%2d %s %2d", config.MinFontSize, fontSlider(d.size), config.MaxFontSize),
		fmt.Sprintf("Size: %d pt", d.size),
		"",
		strings.Join(buttons, " "),
		mutedStyle.Render("←/→ adjust  Tab button  Enter confirm  Esc close"),
	}, "\n")
	popup := w.styles.popup.Width(innerWidth).Render(body)
	return w.place(width, height, popup)
}
