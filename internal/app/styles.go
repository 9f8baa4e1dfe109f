package app

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/landtext/internal/theme"
)

var (
	popupStyle = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// windowStyles are the lipgloss styles derived from one window's profile.
// They are rebuilt whenever the window's theme changes.
type windowStyles struct {
	text     lipgloss.Style
	match    lipgloss.Style
	selected lipgloss.Style
	status   lipgloss.Style
	tab      lipgloss.Style
	popup    lipgloss.Style
}

func newWindowStyles(p theme.Profile) windowStyles {
	text := lipgloss.NewStyle().
		Background(lipgloss.Color(p.Background)).
		Foreground(lipgloss.Color(p.Foreground))
	status := lipgloss.NewStyle().
		Background(lipgloss.Color(p.StatusBackground)).
		Foreground(lipgloss.Color(p.StatusForeground))
	return windowStyles{
		text: text,
		match: lipgloss.NewStyle().
			Background(lipgloss.Color(findMatchColor)).
			Foreground(lipgloss.Color(theme.ContrastText(findMatchColor))),
		selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.SelectBackground)).
			Foreground(lipgloss.Color(p.SelectForeground)),
		status: status,
		tab:    status.Bold(true),
		popup:  popupStyle.BorderForeground(lipgloss.Color(p.SelectBackground)),
	}
}

// applyEditorTheme paints the textarea with a profile. The cursor line uses
// the selection colors since the terminal editor has no mouse selection.
func applyEditorTheme(editor *textarea.Model, p theme.Profile) {
	focused, blurred := textarea.DefaultStyles()

	text := lipgloss.NewStyle().
		Background(lipgloss.Color(p.Background)).
		Foreground(lipgloss.Color(p.Foreground))
	cursorLine := lipgloss.NewStyle().
		Background(lipgloss.Color(p.SelectBackground)).
		Foreground(lipgloss.Color(p.SelectForeground))

	focused.Base = text
	focused.Text = text
	focused.CursorLine = cursorLine
	focused.EndOfBuffer = text
	focused.Placeholder = text
	focused.Prompt = text

	blurred.Base = text
	blurred.Text = text
	blurred.CursorLine = text
	blurred.EndOfBuffer = text
	blurred.Placeholder = text
	blurred.Prompt = text

	editor.FocusedStyle = focused
	editor.BlurredStyle = blurred
	editor.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Caret))
	editor.Cursor.TextStyle = cursorLine
	editor.Prompt = ""
	editor.EndOfBufferCharacter = ' '
	editor.ShowLineNumbers = false
}
