package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/landtext/internal/theme"
)

// themeDialog is the single shared theme chooser. Rows are the three theme
// radios, then one row per customizable color, then the three buttons.
type themeDialog struct {
	selected theme.Name
	cursor   int
	picker   *colorPicker
	message  string
	failed   bool
}

const (
	themeButtonSaveColors = iota
	themeButtonApply
	themeButtonCancel
)

var themeButtons = []string{"Save Colors", "Apply Theme", "Cancel"}

func themeRadioRows() int { return len(theme.Names()) }

func themeColorRows() int { return len(theme.CustomizableKeys()) }

func themeButtonStart() int { return themeRadioRows() + themeColorRows() }

func themeDialogRows() int { return themeButtonStart() + len(themeButtons) }

// openThemeDialog shows the theme dialog, or focuses it when it is already
// open.
func (m *Model) openThemeDialog() {
	if m.themeDialog != nil {
		m.focus = focusThemeDialog
		if w := m.activeWindow(); w != nil {
			w.status = statusDialogFocused
		}
		return
	}
	m.themeDialog = &themeDialog{
		selected: m.settings.CurrentTheme,
		cursor:   int(m.settings.CurrentTheme),
	}
	m.focus = focusThemeDialog
}

func (m *Model) closeThemeDialog() {
	m.themeDialog = nil
	if m.focus == focusThemeDialog {
		m.focus = focusWindow
	}
}

func (m *Model) handleThemeDialogKey(msg tea.KeyMsg) tea.Cmd {
	d := m.themeDialog
	if d == nil {
		m.focus = focusWindow
		return nil
	}
	if d.picker != nil {
		return m.handleColorPickerKey(d, msg)
	}

	switch msg.String() {
	case "esc":
		m.closeThemeDialog()
	case "up", "k", "shift+tab":
		d.cursor = (d.cursor - 1 + themeDialogRows()) % themeDialogRows()
	case "down", "j", "tab":
		d.cursor = (d.cursor + 1) % themeDialogRows()
	case "left", "h":
		if d.cursor > themeButtonStart() {
			d.cursor--
		}
	case "right", "l":
		if d.cursor >= themeButtonStart() && d.cursor < themeDialogRows()-1 {
			d.cursor++
		}
	case "enter", " ":
		return m.activateThemeRow(d)
	}
	return nil
}

func (m *Model) activateThemeRow(d *themeDialog) tea.Cmd {
	switch {
	case d.cursor < themeRadioRows():
		d.selected = theme.Names()[d.cursor]
	case d.cursor < themeButtonStart():
		key := theme.CustomizableKeys()[d.cursor-themeRadioRows()]
		current, _ := m.themes.Custom().Get(key)
		d.picker = newColorPicker(key, current)
	default:
		switch d.cursor - themeButtonStart() {
		case themeButtonSaveColors:
			if err := m.persistSettings(); err != nil {
				appLog.Error("save custom colors", "path", m.settingsPath, "error", err)
				d.message, d.failed = "Could not save colors: "+err.Error(), true
				return nil
			}
			d.message, d.failed = "Custom theme colors saved!", false
		case themeButtonApply:
			name := d.selected
			m.closeThemeDialog()
			if err := m.applyTheme(name); err != nil {
				m.reportSettingsError(err)
			}
		case themeButtonCancel:
			m.closeThemeDialog()
		}
	}
	return nil
}

func (m *Model) renderThemeDialog(w *editorWindow, width, height int) string {
	d := m.themeDialog
	if d.picker != nil {
		return m.renderColorPicker(w, d.picker, width, height)
	}
	innerWidth := max(30, min(DialogPopupWidth, width-4))
	row := func(i int, text string) string {
		text = truncate(text, innerWidth)
		if i == d.cursor {
			return w.styles.selected.Render(text)
		}
		return text
	}

	lines := []string{titleStyle.Render("Select Theme")}
	for i, name := range theme.Names() {
		mark := "( )"
		if name == d.selected {
			mark = "(•)"
		}
		lines = append(lines, row(i, fmt.Sprintf(" %s %s", mark, name)))
	}

	lines = append(lines, "", titleStyle.Render("Custom Theme Colors"))
	custom := m.themes.Custom()
	for i, key := range theme.CustomizableKeys() {
		color, _ := custom.Get(key)
		label := row(themeRadioRows()+i, fmt.Sprintf(" %-22s %s", key.Label(), color))
		lines = append(lines, swatch(color)+" "+label)
	}

	buttons := make([]string, len(themeButtons))
	for i, label := range themeButtons {
		buttons[i] = row(themeButtonStart()+i, "[ "+label+" ]")
	}
	lines = append(lines, "", strings.Join(buttons, " "))

	if d.message != "" {
		style := mutedStyle
		if d.failed {
			style = errorStyle
		}
		lines = append(lines, style.Render(truncate(d.message, innerWidth)))
	}
	lines = append(lines, mutedStyle.Render("Enter select  Esc close  "+m.primaryActionKey(actionNextWindow, "Alt+.")+" back to editor"))

	popup := w.styles.popup.Width(innerWidth).Render(strings.Join(lines, "\n"))
	return w.place(width, height, popup)
}

// swatch renders a small block filled with color.
func swatch(color string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}
