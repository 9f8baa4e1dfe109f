package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// MaxTabTitleWidth bounds one entry of the tab bar.
const MaxTabTitleWidth = 28

// View draws the tab bar, the active window's body, and its status bar.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	w := m.activeWindow()
	if w == nil {
		return ""
	}
	height := m.bodyHeight()
	body := w.styles.text.
		Width(m.width).MaxWidth(m.width).
		Height(height).MaxHeight(height).
		Render(m.renderBody(w, height))

	view := m.renderTabBar(w) + "\n" + body + "\n" + m.renderStatus(w)
	return padBlock(view, m.width, m.height)
}

func (m *Model) renderBody(w *editorWindow, height int) string {
	switch {
	case m.showHelp:
		return m.help.View()
	case m.focus == focusThemeDialog && m.themeDialog != nil:
		return m.renderThemeDialog(w, m.width, height)
	case m.focus == focusFontDialog && m.fontDialog != nil:
		return m.renderFontDialog(w, m.width, height)
	case w.overlay != overlayNone:
		return m.renderWindowOverlay(w, m.width, height)
	case len(w.marks) > 0:
		return w.markView.View()
	default:
		return displayBufferText(w.editor.View())
	}
}

// renderTabBar lists open windows in open order, plus markers for open
// dialogs that do not have focus.
func (m *Model) renderTabBar(active *editorWindow) string {
	var b strings.Builder
	for i, w := range m.visibleWindows() {
		label := fmt.Sprintf(" %d %s ", i+1, runewidth.Truncate(w.displayName(), MaxTabTitleWidth, "…"))
		if w.doc.Modified {
			label = strings.TrimSuffix(label, " ") + "* "
		}
		if w == active {
			b.WriteString(active.styles.selected.Render(label))
		} else {
			b.WriteString(active.styles.tab.Render(label))
		}
	}
	if m.themeDialog != nil && m.focus != focusThemeDialog {
		b.WriteString(active.styles.status.Render(" [Theme: " + m.primaryActionKey(actionTheme, "Ctrl+T") + "]"))
	}
	if m.fontDialog != nil && m.focus != focusFontDialog {
		b.WriteString(active.styles.status.Render(" [Font: " + m.primaryActionKey(actionFontSize, "Alt+F") + "]"))
	}
	bar := truncate(b.String(), m.width)
	if gap := m.width - lipgloss.Width(bar); gap > 0 {
		bar += active.styles.status.Render(strings.Repeat(" ", gap))
	}
	return bar
}

// renderStatus draws the per-window status bar: cursor position first, then
// the last message, the appearance settings, and the menu hint.
func (m *Model) renderStatus(w *editorWindow) string {
	segments := []string{w.statusText()}
	if w.status != "" {
		segments = append(segments, w.status)
	}
	segments = append(segments,
		fmt.Sprintf("%s %dpt", w.themeName, w.fontSize),
		m.primaryActionKey(actionMenu, "F10")+" Menu  "+m.primaryActionKey(actionHelp, "F1")+" Help",
	)
	line := " " + truncateWithEllipsis(strings.Join(segments, " | "), max(0, m.width-1))
	return w.styles.status.Width(m.width).MaxWidth(m.width).Render(line)
}
