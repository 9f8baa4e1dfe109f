package app

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEditUndoRedoDiscreteInsert(t *testing.T) {
	m, w := newFocusedEditWindow(t, "hello")

	w.insertText(" world")
	if got := w.text(); got != "hello world" {
		t.Fatalf("expected inserted value, got %q", got)
	}

	press(m, tea.KeyCtrlZ)
	if got := w.text(); got != "hello" {
		t.Fatalf("expected undo to restore original value, got %q", got)
	}

	press(m, tea.KeyCtrlY)
	if got := w.text(); got != "hello world" {
		t.Fatalf("expected redo to reapply insert, got %q", got)
	}
}

func TestTypingBurstCoalescesIntoSingleUndoStep(t *testing.T) {
	m, w := newFocusedEditWindow(t, "x")

	typeText(m, "ab")

	if got := len(w.editorUndo); got != 1 {
		t.Fatalf("expected one undo snapshot for typing burst, got %d", got)
	}

	press(m, tea.KeyCtrlZ)
	if got := w.text(); got != "x" {
		t.Fatalf("expected undo to remove burst edits, got %q", got)
	}
}

func TestTypingBurstSplitsAfterIdleWindow(t *testing.T) {
	m, w := newFocusedEditWindow(t, "x")

	typeText(m, "a")
	w.typingBurstLastInputAt = time.Now().Add(-typingBurstIdleWindow - time.Millisecond)
	typeText(m, "b")

	if got := len(w.editorUndo); got != 2 {
		t.Fatalf("expected two undo snapshots after idle split, got %d", got)
	}

	press(m, tea.KeyCtrlZ)
	if got := w.text(); got != "xa" {
		t.Fatalf("expected first undo to remove only latest burst, got %q", got)
	}
}

func TestCursorMotionIsNotRecorded(t *testing.T) {
	m, w := newFocusedEditWindow(t, "abc")

	press(m, tea.KeyLeft)
	press(m, tea.KeyHome)

	if got := len(w.editorUndo); got != 0 {
		t.Fatalf("expected no undo snapshots for cursor motion, got %d", got)
	}
}

func TestRedoClearsAfterFreshEdit(t *testing.T) {
	m, w := newFocusedEditWindow(t, "x")

	typeText(m, "a")
	press(m, tea.KeyCtrlZ)
	if got := len(w.editorRedo); got == 0 {
		t.Fatal("expected redo stack to contain one snapshot after undo")
	}

	typeText(m, "b")
	if got := len(w.editorRedo); got != 0 {
		t.Fatalf("expected redo stack cleared after fresh edit, got %d entries", got)
	}
}

func TestUndoRestoresCursorOffset(t *testing.T) {
	m, w := newFocusedEditWindow(t, "one\ntwo")

	typeText(m, "!")
	press(m, tea.KeyCtrlZ)

	if got := w.currentEditorCursorOffset(); got != len("one\ntwo") {
		t.Fatalf("expected cursor restored to end of buffer, got offset %d", got)
	}
}

func TestEmptyHistoryReportsNothingToUndo(t *testing.T) {
	m, w := newFocusedEditWindow(t, "x")

	press(m, tea.KeyCtrlZ)
	if w.status != "Nothing to undo" {
		t.Fatalf("expected nothing-to-undo status, got %q", w.status)
	}
	press(m, tea.KeyCtrlY)
	if w.status != "Nothing to redo" {
		t.Fatalf("expected nothing-to-redo status, got %q", w.status)
	}
	if w.doc.Modified {
		t.Fatal("expected empty undo and redo to leave the document clean")
	}
}

func TestSaveEndsTypingBurst(t *testing.T) {
	m, w := newFocusedEditWindow(t, "x")
	w.doc.Path = filepath.Join(t.TempDir(), "note.txt")

	typeText(m, "a")
	press(m, tea.KeyCtrlS)
	if w.doc.Modified {
		t.Fatal("expected save to clear the modified flag")
	}

	typeText(m, "b")
	if got := len(w.editorUndo); got != 2 {
		t.Fatalf("expected typing after save to start a new undo step, got %d snapshots", got)
	}
}
