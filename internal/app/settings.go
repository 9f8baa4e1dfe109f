package app

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/landtext/internal/config"
	"github.com/treykane/landtext/internal/theme"
)

// settingsChangedMsg reports that the settings file was written, possibly by
// another running editor.
type settingsChangedMsg struct{}

// waitForSettingsChange blocks on the watcher for the next burst of changes.
// It is re-issued after every settingsChangedMsg.
func (m *Model) waitForSettingsChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return settingsChangedMsg{}
	}
}

// currentSettings is the in-memory appearance record, including the live
// custom profile.
func (m *Model) currentSettings() config.Settings {
	s := m.settings
	custom := m.themes.Custom()
	s.CustomTheme = &custom
	return s
}

func (m *Model) persistSettings() error {
	return config.Save(m.settingsPath, m.currentSettings())
}

// applyTheme records name as the current theme, saves the settings file, and
// repaints every open window. Windows are repainted even when the save fails.
func (m *Model) applyTheme(name theme.Name) error {
	m.settings.CurrentTheme = name
	err := m.persistSettings()
	m.registry.BroadcastTheme(name)
	appLog.Debug("applied theme", "theme", name, "windows", m.registry.Len())
	return err
}

// applyFontSize is applyTheme for the font size.
func (m *Model) applyFontSize(size int) error {
	size = config.ClampFontSize(size)
	m.settings.FontSize = size
	err := m.persistSettings()
	m.registry.BroadcastFontSize(size)
	appLog.Debug("applied font size", "font_size", size, "windows", m.registry.Len())
	return err
}

func (m *Model) reportSettingsError(err error) {
	appLog.Error("save settings", "path", m.settingsPath, "error", err)
	if w := m.activeWindow(); w != nil {
		w.showNotice("Settings Error", err.Error())
	}
}

// reloadSettings applies a settings file changed on disk. Files that vanished
// or no longer parse are ignored so a half-written file never resets the
// editor to defaults.
func (m *Model) reloadSettings() {
	if _, err := os.Stat(m.settingsPath); err != nil {
		return
	}
	loaded, err := config.Load(m.settingsPath)
	if err != nil {
		appLog.Warn("reload settings", "path", m.settingsPath, "error", err)
		return
	}
	if loaded.Equal(m.currentSettings()) {
		return
	}
	if loaded.CustomTheme != nil {
		m.themes.SetCustom(*loaded.CustomTheme)
	}
	m.settings.CurrentTheme = loaded.CurrentTheme
	m.settings.FontSize = loaded.FontSize
	m.registry.BroadcastTheme(loaded.CurrentTheme)
	m.registry.BroadcastFontSize(loaded.FontSize)
	if w := m.activeWindow(); w != nil {
		w.status = statusSettingsReload
	}
	appLog.Debug("reloaded settings", "path", m.settingsPath, "theme", loaded.CurrentTheme, "font_size", loaded.FontSize)
}
