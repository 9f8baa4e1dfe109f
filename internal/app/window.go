package app

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/landtext/internal/config"
	"github.com/treykane/landtext/internal/document"
	"github.com/treykane/landtext/internal/find"
	"github.com/treykane/landtext/internal/theme"
)

// windowOverlay is the modal popup currently shown inside one window.
type windowOverlay int

const (
	overlayNone windowOverlay = iota
	overlayFind
	overlayPrompt
	overlayUnsaved
	overlayNotice
	overlayMenu
)

func (o windowOverlay) String() string {
	switch o {
	case overlayNone:
		return "none"
	case overlayFind:
		return "find"
	case overlayPrompt:
		return "prompt"
	case overlayUnsaved:
		return "unsaved"
	case overlayNotice:
		return "notice"
	case overlayMenu:
		return "menu"
	default:
		return fmt.Sprintf("overlay(%d)", int(o))
	}
}

// pendingAction is the destructive action waiting on the unsaved-changes
// decision or on a Save As prompt.
type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingNew
	pendingOpen
	pendingClose
)

// editorWindow is one document editing surface. It satisfies
// registry.Window so theme and font changes can be broadcast to it.
type editorWindow struct {
	id     int
	root   bool
	hidden bool

	themes *theme.Registry

	editor textarea.Model
	doc    document.Identity
	// savedContent is the buffer as last read or written, for the change
	// summary shown before discarding edits.
	savedContent string

	themeName theme.Name
	colors    theme.Profile
	fontSize  int
	styles    windowStyles

	// marks are the find highlights in rune offsets. While marks is non-empty
	// the body shows markView instead of the textarea.
	marks     []find.Span
	lastQuery string
	markView  viewport.Model
	markRow   int

	editorUndo             []editorSnapshot
	editorRedo             []editorSnapshot
	typingBurstActive      bool
	typingBurstLastInputAt time.Time

	overlay       windowOverlay
	findInput     textinput.Model
	prompt        filePrompt
	pending       pendingAction
	unsavedCursor int
	notice        notice
	menuCursor    int

	status        string
	width, height int
}

func newEditorWindow(id int, root bool, themes *theme.Registry) *editorWindow {
	editor := textarea.New()
	editor.Placeholder = ""
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.MaxWidth = 0
	editor.Focus()
	_ = editor.Cursor.SetMode(cursor.CursorStatic)

	findInput := textinput.New()
	findInput.Prompt = "Find: "
	findInput.Placeholder = "text to highlight"
	findInput.CharLimit = InputCharLimit

	w := &editorWindow{
		id:        id,
		root:      root,
		themes:    themes,
		editor:    editor,
		findInput: findInput,
		prompt:    newFilePrompt(),
		markView:  viewport.New(0, 0),
		status:    statusReady,
	}
	w.ApplyTheme(theme.Light)
	w.ApplyFontSize(config.DefaultFontSize)
	return w
}

// ApplyTheme repaints the window with the named profile as it is now. Later
// edits to the Custom profile are not seen until the theme is applied again.
func (w *editorWindow) ApplyTheme(name theme.Name) {
	w.themeName = name
	w.colors = w.themes.MustGet(name)
	w.styles = newWindowStyles(w.colors)
	applyEditorTheme(&w.editor, w.colors)
	w.refreshMarkView()
}

// ApplyFontSize records the point size. The terminal owns the glyph size, so
// the value is shown in the status bar and persisted rather than rendered.
func (w *editorWindow) ApplyFontSize(size int) {
	w.fontSize = size
}

func (w *editorWindow) setSize(width, height int) {
	w.width = max(0, width)
	w.height = max(1, height)
	w.editor.SetWidth(w.width)
	w.editor.SetHeight(w.height)
	w.markView.Width = w.width
	w.markView.Height = w.height
	w.refreshMarkView()
}

func (w *editorWindow) title() string {
	return w.doc.Title()
}

// displayName is the file's base name, or "Untitled".
func (w *editorWindow) displayName() string {
	if name := w.doc.DisplayName(); name != "" {
		return name
	}
	return "Untitled"
}

// statusText is the cursor position in the form shown by the status bar.
// Lines count from 1 and columns from 0.
func (w *editorWindow) statusText() string {
	return fmt.Sprintf("Line: %d, Column: %d", w.editor.Line()+1, w.cursorColumn())
}

// handleEditorKey forwards a key to the textarea and records the result for
// undo and for the modified flag.
func (w *editorWindow) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	if len(w.marks) > 0 {
		switch msg.String() {
		case "esc":
			w.clearMarks()
			w.status = statusHighlightsOff
			return nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			w.markView, cmd = w.markView.Update(msg)
			return cmd
		}
	}
	if shouldIgnoreInput(msg) {
		return nil
	}
	if msg.Paste {
		w.insertText(normalizeNewlines(string(msg.Runes)))
		return nil
	}

	before := w.captureEditorSnapshot()
	var cmd tea.Cmd
	if msg.Type == tea.KeyTab {
		w.insertAtCursor("\t")
	} else {
		w.editor, cmd = w.editor.Update(msg)
	}
	after := w.captureEditorSnapshot()
	w.recordTypingMutation(before, after, time.Now())
	w.noteContentChanged(before.value)
	return cmd
}

// updateEditor passes a non-key message, such as an asynchronous paste
// result, to the textarea.
func (w *editorWindow) updateEditor(msg tea.Msg) tea.Cmd {
	before := w.captureEditorSnapshot()
	var cmd tea.Cmd
	w.editor, cmd = w.editor.Update(msg)
	w.recordDiscreteEditMutation(before, w.captureEditorSnapshot())
	w.noteContentChanged(before.value)
	return cmd
}

// noteContentChanged marks the document modified and drops stale find marks
// when the buffer differs from previous.
func (w *editorWindow) noteContentChanged(previous string) {
	if w.text() == previous {
		return
	}
	w.clearMarks()
	w.doc.Modified = true
}

// setContent replaces the buffer and starts a fresh editing session.
func (w *editorWindow) setContent(content string) {
	w.setText(content)
	w.editor.Focus()
	w.moveCursorToStart()
	w.clearMarks()
	w.resetEditHistory()
}

func (w *editorWindow) resetDocument() {
	w.setContent("")
	w.doc = document.Identity{}
	w.savedContent = ""
	w.status = "New file"
}

// loadDocument shows a file's content with its line endings normalized to
// LF. The document stays clean until the user edits it.
func (w *editorWindow) loadDocument(path, content string) {
	w.setContent(normalizeNewlines(content))
	w.doc = document.Identity{Path: path}
	w.savedContent = w.text()
	w.status = "Opened " + w.doc.DisplayName()
}

// ---------------------------------------------------------------------------
// Cursor helpers
// ---------------------------------------------------------------------------

// cursorColumn is the cursor's rune column within its logical line.
func (w *editorWindow) cursorColumn() int {
	info := w.editor.LineInfo()
	return info.StartColumn + info.ColumnOffset
}

// currentEditorCursorOffset converts the textarea's (row, column) cursor into
// a rune offset from the start of the buffer.
func (w *editorWindow) currentEditorCursorOffset() int {
	value := w.editor.Value()
	lines := splitEditorLines(value)
	row := clamp(w.editor.Line(), 0, max(0, len(lines)-1))
	col := clamp(w.cursorColumn(), 0, len(lines[row]))

	offset := 0
	for i := 0; i < row; i++ {
		offset += len(lines[i]) + 1
	}
	return clamp(offset+col, 0, utf8.RuneCountInString(value))
}

// moveCursorToStart puts the cursor on the first rune of the buffer.
func (w *editorWindow) moveCursorToStart() {
	for w.editor.Line() > 0 {
		w.editor.CursorUp()
	}
	w.editor.CursorStart()
}

// setEditorValueAndCursorOffset replaces the buffer and places the cursor at
// a rune offset.
//
// The textarea only moves its cursor by line or within a line, so the offset
// is split into a row and column first. CursorUp steps through soft-wrapped
// rows too, which keeps the walk proportional to the rows between the end of
// the buffer and the target.
func (w *editorWindow) setEditorValueAndCursorOffset(value string, cursorOffset int) {
	lines := splitEditorLines(value)
	cursorOffset = clamp(cursorOffset, 0, utf8.RuneCountInString(value))

	row, col := 0, cursorOffset
	for row < len(lines)-1 && col > len(lines[row]) {
		col -= len(lines[row]) + 1
		row++
	}

	w.setText(value)
	w.editor.Focus()
	for w.editor.Line() > row {
		w.editor.CursorUp()
	}
	w.editor.SetCursor(col)
	// Scroll the textarea's viewport to the new cursor row.
	w.editor, _ = w.editor.Update(nil)
}

// ---------------------------------------------------------------------------
// Overlays
// ---------------------------------------------------------------------------

func (w *editorWindow) openOverlay(o windowOverlay) {
	if w.overlay == o {
		return
	}
	w.closeOverlay()
	w.overlay = o
}

// closeOverlay dismisses the active overlay and resets its state. The
// pending action is left alone; callers decide whether it survives.
func (w *editorWindow) closeOverlay() {
	switch w.overlay {
	case overlayFind:
		w.findInput.Blur()
	case overlayPrompt:
		w.prompt.input.Blur()
		w.prompt.completions = nil
	case overlayNotice:
		w.notice = notice{}
	case overlayUnsaved:
		w.unsavedCursor = 0
	}
	w.overlay = overlayNone
}
