package app

import (
	"time"
)

const typingBurstIdleWindow = 750 * time.Millisecond

// editorSnapshot captures the editor's text and cursor in rune-offset form.
type editorSnapshot struct {
	value        string
	cursorOffset int
}

func (w *editorWindow) captureEditorSnapshot() editorSnapshot {
	return editorSnapshot{
		value:        w.text(),
		cursorOffset: w.currentEditorCursorOffset(),
	}
}

func (w *editorWindow) restoreEditorSnapshot(snapshot editorSnapshot) {
	w.setEditorValueAndCursorOffset(snapshot.value, snapshot.cursorOffset)
}

func (w *editorWindow) resetEditHistory() {
	w.editorUndo = nil
	w.editorRedo = nil
	w.typingBurstActive = false
	w.typingBurstLastInputAt = time.Time{}
}

func (w *editorWindow) pushUndo(snapshot editorSnapshot) {
	w.editorUndo = append(w.editorUndo, snapshot)
	// Any forward mutation invalidates the redo chain.
	w.editorRedo = nil
}

func (w *editorWindow) finalizeTypingBurstBoundary() {
	w.typingBurstActive = false
	w.typingBurstLastInputAt = time.Time{}
}

func (w *editorWindow) recordDiscreteEditMutation(before, after editorSnapshot) {
	if before.value == after.value {
		return
	}
	w.finalizeTypingBurstBoundary()
	w.pushUndo(before)
}

// recordTypingMutation coalesces edits that arrive within
// typingBurstIdleWindow of each other into one undo step. Pure cursor motion
// is not recorded.
func (w *editorWindow) recordTypingMutation(before, after editorSnapshot, now time.Time) {
	if before.value == after.value {
		return
	}
	if !w.typingBurstActive || now.Sub(w.typingBurstLastInputAt) > typingBurstIdleWindow {
		w.pushUndo(before)
	}
	w.typingBurstActive = true
	w.typingBurstLastInputAt = now
}

func (w *editorWindow) undoEditorChange() {
	w.finalizeTypingBurstBoundary()
	if len(w.editorUndo) == 0 {
		w.status = "Nothing to undo"
		return
	}
	current := w.captureEditorSnapshot()
	last := w.editorUndo[len(w.editorUndo)-1]
	w.editorUndo = w.editorUndo[:len(w.editorUndo)-1]
	w.editorRedo = append(w.editorRedo, current)
	w.restoreEditorSnapshot(last)
	w.noteContentChanged(current.value)
	w.status = "Undid edit"
}

func (w *editorWindow) redoEditorChange() {
	w.finalizeTypingBurstBoundary()
	if len(w.editorRedo) == 0 {
		w.status = "Nothing to redo"
		return
	}
	current := w.captureEditorSnapshot()
	next := w.editorRedo[len(w.editorRedo)-1]
	w.editorRedo = w.editorRedo[:len(w.editorRedo)-1]
	w.editorUndo = append(w.editorUndo, current)
	w.restoreEditorSnapshot(next)
	w.noteContentChanged(current.value)
	w.status = "Redid edit"
}
