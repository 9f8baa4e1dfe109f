package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/landtext/internal/document"
)

// requestDestructive runs action right away on a clean buffer and asks about
// unsaved changes first on a modified one.
func (m *Model) requestDestructive(w *editorWindow, action pendingAction) tea.Cmd {
	if w.doc.Modified {
		w.openUnsaved(action)
		return nil
	}
	return m.runPending(w, action)
}

// runPending performs a destructive action once the buffer may be dropped.
func (m *Model) runPending(w *editorWindow, action pendingAction) tea.Cmd {
	w.pending = pendingNone
	switch action {
	case pendingNew:
		w.resetDocument()
	case pendingOpen:
		return w.openPrompt(promptOpen)
	case pendingClose:
		return m.closeWindow(w)
	}
	return nil
}

// save writes to the document's path, or asks for one first.
func (m *Model) save(w *editorWindow) tea.Cmd {
	if !w.doc.HasPath() {
		return w.openPrompt(promptSaveAs)
	}
	m.writeDocument(w, w.doc.Path)
	return nil
}

// saveDocumentAs writes to path and then resumes the action that was waiting
// on the save, if any. A failed write drops the pending action.
func (m *Model) saveDocumentAs(w *editorWindow, path string) tea.Cmd {
	path = document.WithDefaultExtension(path)
	pending := w.pending
	w.pending = pendingNone
	if !m.writeDocument(w, path) {
		return nil
	}
	if pending != pendingNone {
		return m.runPending(w, pending)
	}
	return nil
}

// writeDocument saves the buffer to path. On success the window adopts path
// and becomes unmodified; on failure a notice is shown and nothing changes.
func (m *Model) writeDocument(w *editorWindow, path string) bool {
	content := w.text()
	if err := document.Write(path, content); err != nil {
		appLog.Error("save document", "window", w.id, "path", path, "error", err)
		w.showNotice("Save Error", err.Error())
		return false
	}
	w.doc = document.Identity{Path: path}
	w.savedContent = content
	w.finalizeTypingBurstBoundary()
	w.status = "Saved " + w.doc.DisplayName()
	appLog.Debug("saved document", "window", w.id, "path", path)
	return true
}

// openDocument loads path into the window. A failed read leaves the buffer,
// path, and modified flag exactly as they were.
func (m *Model) openDocument(w *editorWindow, path string) {
	content, err := document.Read(path)
	if err != nil {
		appLog.Warn("open document", "window", w.id, "path", path, "error", err)
		w.showNotice("Open Error", err.Error())
		return
	}
	w.loadDocument(path, content)
	appLog.Debug("opened document", "window", w.id, "path", path)
}
