package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/landtext/internal/theme"
)

// colorPicker chooses one custom color, either from a swatch grid or by
// typing a hex value.
type colorPicker struct {
	key          theme.Key
	grid         [][]string
	row, col     int
	input        textinput.Model
	inputFocused bool
	err          string
}

func newColorPicker(key theme.Key, current string) *colorPicker {
	input := textinput.New()
	input.Prompt = "Hex: "
	input.Placeholder = "#rrggbb"
	input.CharLimit = InputCharLimit
	input.SetValue(current)

	p := &colorPicker{
		key:   key,
		grid:  theme.Palette(PaletteRows, PaletteCols),
		input: input,
	}
	for r, cells := range p.grid {
		for c, color := range cells {
			if strings.EqualFold(color, current) {
				p.row, p.col = r, c
			}
		}
	}
	return p
}

func (p *colorPicker) gridColor() string {
	return p.grid[p.row][p.col]
}

func (p *colorPicker) move(dRow, dCol int) {
	p.row = clamp(p.row+dRow, 0, len(p.grid)-1)
	p.col = clamp(p.col+dCol, 0, len(p.grid[p.row])-1)
	p.input.SetValue(p.gridColor())
	p.err = ""
}

// handleColorPickerKey moves in the grid or edits the hex input. Tab switches
// between the two; Enter stores the color in the custom profile and marks
// Custom as the selected theme.
func (m *Model) handleColorPickerKey(d *themeDialog, msg tea.KeyMsg) tea.Cmd {
	p := d.picker
	switch msg.String() {
	case "esc":
		d.picker = nil
		return nil
	case "tab", "shift+tab":
		p.inputFocused = !p.inputFocused
		if p.inputFocused {
			p.input.CursorEnd()
			return p.input.Focus()
		}
		p.input.Blur()
		return nil
	case "enter":
		color := p.gridColor()
		if p.inputFocused {
			color = p.input.Value()
		}
		if err := m.themes.SetCustomField(p.key, color); err != nil {
			p.err = err.Error()
			return nil
		}
		stored, _ := m.themes.Custom().Get(p.key)
		d.picker = nil
		d.selected = theme.Custom
		d.message, d.failed = fmt.Sprintf("%s set to %s", p.key.Label(), stored), false
		return nil
	}

	if p.inputFocused {
		if shouldIgnoreInput(msg) {
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		p.err = ""
		return cmd
	}
	switch msg.String() {
	case "up", "k":
		p.move(-1, 0)
	case "down", "j":
		p.move(1, 0)
	case "left", "h":
		p.move(0, -1)
	case "right", "l":
		p.move(0, 1)
	}
	return nil
}

func (m *Model) renderColorPicker(w *editorWindow, p *colorPicker, width, height int) string {
	innerWidth := max(30, min(DialogPopupWidth, width-4))
	lines := []string{titleStyle.Render("Choose " + p.key.Label())}

	for r, cells := range p.grid {
		var b strings.Builder
		for c, color := range cells {
			cell := "  "
			if r == p.row && c == p.col && !p.inputFocused {
				cell = "<>"
			}
			b.WriteString(lipgloss.NewStyle().
				Background(lipgloss.Color(color)).
				Foreground(lipgloss.Color(theme.ContrastText(color))).
				Render(cell))
		}
		lines = append(lines, b.String())
	}

	p.input.Width = innerWidth - lipgloss.Width(p.input.Prompt) - 4
	preview := p.gridColor()
	if p.inputFocused {
		if normalized, err := theme.NormalizeColor(p.input.Value()); err == nil {
			preview = normalized
		}
	}
	lines = append(lines, "", swatch(preview)+" "+p.input.View())
	if p.err != "" {
		lines = append(lines, errorStyle.Render(truncate(p.err, innerWidth)))
	}
	lines = append(lines, mutedStyle.Render("Arrows pick  Tab hex input  Enter choose  Esc back"))

	popup := w.styles.popup.Width(innerWidth).Render(strings.Join(lines, "\n"))
	return w.place(width, height, popup)
}
