package app

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// pasteFromClipboard reads text from the system clipboard and inserts it at
// the cursor as one undo step.
func (w *editorWindow) pasteFromClipboard() {
	value, err := clipboard.ReadAll()
	if err != nil {
		w.setStatusError("Clipboard paste failed", err)
		return
	}
	if value == "" {
		w.status = "Clipboard is empty"
		return
	}
	w.insertText(normalizeNewlines(value))
	w.status = "Pasted from clipboard"
}

// insertText inserts value at the cursor as one undo step.
func (w *editorWindow) insertText(value string) {
	before := w.captureEditorSnapshot()
	w.insertAtCursor(value)
	w.recordDiscreteEditMutation(before, w.captureEditorSnapshot())
	w.noteContentChanged(before.value)
}

// copyBufferToClipboard copies the whole buffer to the system clipboard.
func (w *editorWindow) copyBufferToClipboard() {
	content := w.text()
	if content == "" {
		w.status = "Nothing to copy"
		return
	}
	if err := clipboard.WriteAll(content); err != nil {
		w.setStatusError("Clipboard copy failed", err)
		return
	}
	w.status = fmt.Sprintf("Copied buffer (%d chars)", len([]rune(content)))
}
