package app

// Layout constants define the fixed rows and popup sizes of the UI.
const (
	// TabBarRows is the height of the window list shown above the editor.
	TabBarRows = 1

	// StatusBarRows is the height of the per-window status bar.
	StatusBarRows = 1

	// FindPopupWidth is the width of the find prompt.
	FindPopupWidth = 50

	// PromptPopupWidth is the width of the open / save-as path prompt.
	PromptPopupWidth = 64

	// DialogPopupWidth is the width of the theme, font, and unsaved dialogs.
	DialogPopupWidth = 48

	// MenuPopupHeight is the fixed height of the command menu.
	MenuPopupHeight = 20

	// MaxPromptCompletions caps the path candidates listed under the prompt.
	MaxPromptCompletions = 5
)

// Color picker grid size.
const (
	PaletteRows = 5
	PaletteCols = 12
)

// Input limits define maximum sizes for user input.
const (
	// InputCharLimit is the maximum number of characters allowed in the find
	// and hex inputs.
	InputCharLimit = 120

	// PathCharLimit bounds file paths typed into the path prompt.
	PathCharLimit = 4096
)

// findMatchColor is the highlight background used for find results.
const findMatchColor = "#ffff00"

// Status messages shared by several handlers.
const (
	statusReady          = "Ready"
	statusHighlightsOff  = "Highlights cleared"
	statusDialogFocused  = "Dialog already open"
	statusSettingsReload = "Settings reloaded"
)
