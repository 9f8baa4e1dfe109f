package app

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	unsavedSave = iota
	unsavedDiscard
	unsavedCancel
)

var unsavedChoices = []string{"Save", "Don't Save", "Cancel"}

// changeSummaryTimeout bounds the diff behind the unsaved dialog summary.
const changeSummaryTimeout = 200 * time.Millisecond

func (w *editorWindow) openUnsaved(action pendingAction) {
	w.openOverlay(overlayUnsaved)
	w.pending = action
	w.unsavedCursor = unsavedSave
}

// handleUnsavedKey moves between the three buttons. S, D/N and C pick a
// button directly; Esc is Cancel.
func (m *Model) handleUnsavedKey(w *editorWindow, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "shift+tab", "h":
		w.unsavedCursor = clamp(w.unsavedCursor-1, 0, len(unsavedChoices)-1)
	case "right", "tab", "l":
		w.unsavedCursor = clamp(w.unsavedCursor+1, 0, len(unsavedChoices)-1)
	case "s":
		return m.resolveUnsaved(w, unsavedSave)
	case "d", "n":
		return m.resolveUnsaved(w, unsavedDiscard)
	case "c", "esc":
		return m.resolveUnsaved(w, unsavedCancel)
	case "enter", " ":
		return m.resolveUnsaved(w, w.unsavedCursor)
	}
	return nil
}

// resolveUnsaved applies the user's answer. Save runs the pending action
// only after a successful write; a failed or cancelled save blocks it.
func (m *Model) resolveUnsaved(w *editorWindow, choice int) tea.Cmd {
	pending := w.pending
	w.closeOverlay()
	switch choice {
	case unsavedSave:
		if !w.doc.HasPath() {
			w.pending = pending
			return w.openPrompt(promptSaveAs)
		}
		w.pending = pendingNone
		if !m.writeDocument(w, w.doc.Path) {
			return nil
		}
		return m.runPending(w, pending)
	case unsavedDiscard:
		return m.runPending(w, pending)
	default:
		w.pending = pendingNone
		w.status = "Cancelled"
		return nil
	}
}

// changeSummary describes how far the buffer has drifted from the last
// saved or loaded content.
func (w *editorWindow) changeSummary() string {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = changeSummaryTimeout
	diffs := dmp.DiffMain(w.savedContent, w.text(), false)
	var added, removed int
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += n
		case diffmatchpatch.DiffDelete:
			removed += n
		}
	}
	if added == 0 && removed == 0 {
		return "No text differs from the saved copy."
	}
	return fmt.Sprintf("+%d / -%d characters since last save.", added, removed)
}

func (m *Model) renderUnsavedPopup(w *editorWindow, width, height int) string {
	innerWidth := max(20, min(DialogPopupWidth, width-4))
	buttons := make([]string, len(unsavedChoices))
	for i, label := range unsavedChoices {
		button := "[ " + label + " ]"
		if i == w.unsavedCursor {
			button = w.styles.selected.Render(button)
		}
		buttons[i] = button
	}
	body := strings.Join([]string{
		titleStyle.Render("Unsaved Changes"),
		"You have unsaved progress.",
		fmt.Sprintf("Save changes to %s?", w.displayName()),
		mutedStyle.Render(w.changeSummary()),
		"",
		strings.Join(buttons, " "),
	}, "\n")
	popup := w.styles.popup.Width(innerWidth).Render(body)
	return w.place(width, height, popup)
}
