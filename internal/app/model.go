// Package app implements the LandText terminal UI on Bubble Tea.
//
// One Model holds every editor window. Only one window is drawn at a time;
// the tab bar lists the others. The theme and font dialogs belong to the
// Model, not to a window, so there is at most one of each for the whole
// process.
package app

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/landtext/internal/config"
	"github.com/treykane/landtext/internal/registry"
	"github.com/treykane/landtext/internal/theme"
)

// focusTarget is what receives keys that no window overlay claims.
type focusTarget int

const (
	focusWindow focusTarget = iota
	focusThemeDialog
	focusFontDialog
)

// Options configure a new Model.
type Options struct {
	// SettingsPath is the settings file; empty means config.Path().
	SettingsPath string
	// Files are opened at startup, the first in the root window and each
	// further one in a new window.
	Files []string
	// Watch reloads the settings file when another process changes it.
	Watch bool
}

// Model is the Bubble Tea model for the whole editor process.
type Model struct {
	settingsPath string
	settings     config.Settings
	themes       *theme.Registry
	registry     *registry.Registry

	windows []*editorWindow
	active  int
	nextID  int

	focus       focusTarget
	themeDialog *themeDialog
	fontDialog  *fontDialog

	showHelp bool
	help     viewport.Model

	keyForAction map[string][]string
	keyToAction  map[string]string

	watcher   *config.Watcher
	lastTitle string
	quitting  bool

	width  int
	height int
}

// New loads settings, builds the theme and window registries, and opens the
// root window plus one window per extra file.
func New(opts Options) *Model {
	path := opts.SettingsPath
	if path == "" {
		path = config.Path()
	}
	settings, err := config.Load(path)
	if err != nil {
		appLog.Warn("load settings, using defaults", "path", path, "error", err)
	}

	m := &Model{
		settingsPath: path,
		settings:     settings,
		themes:       theme.NewRegistry(settings.CustomTheme),
		registry:     registry.New(),
		help:         viewport.New(0, 0),
	}
	m.loadKeybindings(settings.Keybindings)

	root := m.newWindow(true)
	for i, file := range opts.Files {
		w := root
		if i > 0 {
			w = m.newWindow(false)
		}
		m.openDocument(w, file)
	}
	if len(opts.Files) > 1 {
		m.active = root.id
	}

	if opts.Watch {
		watcher, err := config.Watch(path)
		if err != nil {
			appLog.Warn("watch settings", "path", path, "error", err)
		} else {
			m.watcher = watcher
		}
	}
	return m
}

// Init starts the settings watcher and sets the terminal title.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.waitForSettingsChange(), m.syncTitle())
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
	case settingsChangedMsg:
		m.reloadSettings()
		cmd = m.waitForSettingsChange()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		if w := m.activeWindow(); w != nil && w.overlay == overlayNone {
			cmd = w.updateEditor(msg)
		}
	}
	if m.quitting {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.syncTitle())
}

// syncTitle sets the terminal title to the active window's title when it
// changed.
func (m *Model) syncTitle() tea.Cmd {
	w := m.activeWindow()
	if w == nil {
		return nil
	}
	title := w.title()
	if title == m.lastTitle {
		return nil
	}
	m.lastTitle = title
	return tea.SetWindowTitle(title)
}

// handleKey routes a key press to help, a focused dialog, the active
// window's overlay, a bound action, or the editor, in that order.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	w := m.activeWindow()
	if w == nil {
		return nil
	}
	action := m.actionForKey(msg.String())

	if m.showHelp {
		return m.handleHelpKey(msg, action)
	}

	switch m.focus {
	case focusThemeDialog, focusFontDialog:
		if action == actionNextWindow || action == actionPrevWindow {
			m.focus = focusWindow
			return m.runAction(w, action)
		}
		if m.focus == focusThemeDialog {
			return m.handleThemeDialogKey(msg)
		}
		return m.handleFontDialogKey(msg)
	}

	if w.overlay != overlayNone {
		return m.handleWindowOverlayKey(w, msg)
	}
	if action != "" {
		return m.runAction(w, action)
	}
	return w.handleEditorKey(msg)
}

// runAction performs one command on behalf of window w.
func (m *Model) runAction(w *editorWindow, action string) tea.Cmd {
	switch action {
	case actionNew:
		return m.requestDestructive(w, pendingNew)
	case actionOpen:
		return m.requestDestructive(w, pendingOpen)
	case actionSave:
		return m.save(w)
	case actionSaveAs:
		return w.openPrompt(promptSaveAs)
	case actionUndo:
		w.undoEditorChange()
	case actionRedo:
		w.redoEditorChange()
	case actionFind:
		return w.openFind()
	case actionPaste:
		w.pasteFromClipboard()
	case actionCopyAll:
		w.copyBufferToClipboard()
	case actionTheme:
		m.openThemeDialog()
	case actionFontSize:
		m.openFontDialog()
	case actionNewWindow:
		m.newWindow(false).status = "New window"
	case actionCloseWindow:
		return m.requestDestructive(w, pendingClose)
	case actionNextWindow:
		m.cycleWindow(1)
	case actionPrevWindow:
		m.cycleWindow(-1)
	case actionMenu:
		w.openMenu()
	case actionHelp:
		m.toggleHelp()
	}
	return nil
}
