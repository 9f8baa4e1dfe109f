package app

// The screen is three stacked bands: the window tab bar, the active window's
// body, and its status bar. Only the body height depends on the terminal.

// bodyHeight is the number of rows left for the editor or a popup.
func (m *Model) bodyHeight() int {
	return max(1, m.height-TabBarRows-StatusBarRows)
}

// updateLayout resizes every window, hidden ones included, after a terminal
// resize.
func (m *Model) updateLayout() {
	for _, w := range m.windows {
		w.setSize(m.width, m.bodyHeight())
	}
	m.help.Width = m.width
	m.help.Height = m.bodyHeight()
	if m.showHelp {
		m.help.SetContent(m.renderHelpContent())
	}
}
