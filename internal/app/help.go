package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/treykane/landtext/internal/theme"
)

func (m *Model) toggleHelp() {
	if m.showHelp {
		m.showHelp = false
		return
	}
	m.showHelp = true
	m.help.Width = m.width
	m.help.Height = m.bodyHeight()
	m.help.SetContent(m.renderHelpContent())
	m.help.GotoTop()
}

func (m *Model) handleHelpKey(msg tea.KeyMsg, action string) tea.Cmd {
	if action == actionHelp {
		m.showHelp = false
		return nil
	}
	switch msg.String() {
	case "esc", "q":
		m.showHelp = false
		return nil
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return cmd
}

// helpMarkdown lists every command with its current key bindings.
func (m *Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# LandText\n\n")
	b.WriteString("A plain-text editor. Every window shares one theme and font size.\n\n")
	b.WriteString("## Commands\n\n| Command | Keys |\n| --- | --- |\n")
	for _, e := range menuEntries {
		fmt.Fprintf(&b, "| %s › %s | %s |\n", e.group, e.label, m.allActionKeys(e.action, "unbound"))
	}
	b.WriteString("\n## Editing\n\n")
	b.WriteString("- Arrows, Home/End and PgUp/PgDn move the cursor.\n")
	b.WriteString("- Tab inserts four spaces.\n")
	b.WriteString("- After a find, ↑/↓ scroll the highlights and Esc returns to editing.\n")
	b.WriteString("- Typing while highlights are shown clears them.\n\n")
	b.WriteString("## Dialogs\n\n")
	b.WriteString("The theme and font dialogs are shared by all windows. Switching windows " +
		"leaves them open; their key brings them back.\n")
	return b.String()
}

// renderHelpContent renders the help markdown with glamour, picking the dark
// or light style from the active window's background.
func (m *Model) renderHelpContent() string {
	md := m.helpMarkdown()
	style := "light"
	if w := m.activeWindow(); w != nil && theme.ContrastText(w.colors.Background) == "#ffffff" {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(20, m.width-4)),
	)
	if err != nil {
		appLog.Warn("create help renderer", "error", err)
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		appLog.Warn("render help", "error", err)
		return md
	}
	return out
}
