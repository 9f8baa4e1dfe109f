package app

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// promptKind selects what the path prompt does on Enter.
type promptKind int

const (
	promptOpen promptKind = iota
	promptSaveAs
)

func (k promptKind) title() string {
	if k == promptSaveAs {
		return "Save As"
	}
	return "Open"
}

// filePrompt stands in for the native open / save-as dialogs: a path input
// with Tab completion against the filesystem.
type filePrompt struct {
	kind        promptKind
	input       textinput.Model
	completions []string
}

func newFilePrompt() filePrompt {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "path/to/file.txt"
	input.CharLimit = PathCharLimit
	return filePrompt{input: input}
}

func (w *editorWindow) openPrompt(kind promptKind) tea.Cmd {
	w.openOverlay(overlayPrompt)
	w.prompt.kind = kind
	w.prompt.completions = nil
	w.prompt.input.SetValue(w.promptDefault(kind))
	w.prompt.input.CursorEnd()
	return w.prompt.input.Focus()
}

// promptDefault pre-fills Save As with the current path and Open with the
// current file's directory.
func (w *editorWindow) promptDefault(kind promptKind) string {
	if !w.doc.HasPath() {
		return ""
	}
	if kind == promptSaveAs {
		return w.doc.Path
	}
	return filepath.Dir(w.doc.Path) + string(filepath.Separator)
}

// handlePromptKey drives the path prompt. Esc and a blank answer both
// cancel, which also drops any pending action. Any other answer is used
// exactly as typed, surrounding spaces included.
func (m *Model) handlePromptKey(w *editorWindow, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		w.closeOverlay()
		w.pending = pendingNone
		w.status = "Cancelled"
		return nil
	case "tab":
		w.completePromptPath()
		return nil
	case "enter":
		value := w.prompt.input.Value()
		kind := w.prompt.kind
		w.closeOverlay()
		if strings.TrimSpace(value) == "" {
			w.pending = pendingNone
			w.status = "Cancelled"
			return nil
		}
		path := expandHome(value)
		if kind == promptOpen {
			m.openDocument(w, path)
			return nil
		}
		return m.saveDocumentAs(w, path)
	}
	if shouldIgnoreInput(msg) {
		return nil
	}
	var cmd tea.Cmd
	w.prompt.input, cmd = w.prompt.input.Update(msg)
	w.prompt.completions = nil
	return cmd
}

// completePromptPath extends the typed path to the longest common prefix of
// the matching filesystem entries and lists the candidates.
func (w *editorWindow) completePromptPath() {
	typed := expandHome(w.prompt.input.Value())
	matches, err := filepath.Glob(typed + "*")
	if err != nil || len(matches) == 0 {
		w.prompt.completions = nil
		w.status = "No completions"
		return
	}
	sort.Strings(matches)

	completed := commonPrefix(matches)
	if len(matches) == 1 {
		if info, err := os.Stat(matches[0]); err == nil && info.IsDir() {
			completed += string(filepath.Separator)
		}
	}
	if len(completed) > len(typed) {
		w.prompt.input.SetValue(completed)
		w.prompt.input.CursorEnd()
	}

	w.prompt.completions = w.prompt.completions[:0]
	for _, match := range matches {
		if len(w.prompt.completions) == MaxPromptCompletions {
			break
		}
		w.prompt.completions = append(w.prompt.completions, filepath.Base(match))
	}
	if len(matches) > MaxPromptCompletions {
		w.prompt.completions = append(w.prompt.completions, "…")
	}
}

func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	for !utf8.ValidString(prefix) {
		prefix = prefix[:len(prefix)-1]
	}
	return prefix
}

func (m *Model) renderPromptPopup(w *editorWindow, width, height int) string {
	innerWidth := max(20, min(PromptPopupWidth, width-4))
	w.prompt.input.Width = innerWidth - lipgloss.Width(w.prompt.input.Prompt) - 1

	lines := []string{
		titleStyle.Render(w.prompt.kind.title()),
		w.prompt.input.View(),
	}
	for _, c := range w.prompt.completions {
		lines = append(lines, mutedStyle.Render("  "+truncate(c, innerWidth-2)))
	}
	lines = append(lines, mutedStyle.Render("Enter: confirm  Tab: complete  Esc: cancel"))

	popup := w.styles.popup.Width(innerWidth).Render(strings.Join(lines, "\n"))
	return w.place(width, height, popup)
}
