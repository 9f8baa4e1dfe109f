package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/landtext/internal/config"
	"github.com/treykane/landtext/internal/find"
	"github.com/treykane/landtext/internal/theme"
)

func TestNewOpensEachFileInItsOwnWindow(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	if err := os.WriteFile(first, []byte("one"), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("two"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}

	m := newTestModel(t, first, second)

	if got := m.registry.Len(); got != 2 {
		t.Fatalf("expected two windows, got %d", got)
	}
	root := m.activeWindow()
	if !root.root {
		t.Fatal("expected the root window to be active after startup")
	}
	if got := root.text(); got != "one" {
		t.Fatalf("expected root window to hold first file, got %q", got)
	}
	if got := m.visibleWindows()[1].text(); got != "two" {
		t.Fatalf("expected second window to hold second file, got %q", got)
	}
}

func TestTypingMarksDocumentModified(t *testing.T) {
	m := newTestModel(t)
	w := m.activeWindow()

	press(m, tea.KeyRight)
	if w.doc.Modified {
		t.Fatal("expected cursor movement to leave the document clean")
	}

	typeText(m, "hi")
	if !w.doc.Modified {
		t.Fatal("expected typing to mark the document modified")
	}
	if got := w.title(); got != "LandText *" {
		t.Fatalf("expected modified untitled title, got %q", got)
	}
}

func TestSaveAsPromptWritesFileWithDefaultExtension(t *testing.T) {
	m := newTestModel(t)
	w := m.activeWindow()
	typeText(m, "hello")

	press(m, tea.KeyCtrlS)
	if w.overlay != overlayPrompt || w.prompt.kind != promptSaveAs {
		t.Fatalf("expected save as prompt for untitled buffer, got overlay %v", w.overlay)
	}

	base := filepath.Join(t.TempDir(), "note")
	w.prompt.input.SetValue(base)
	press(m, tea.KeyEnter)

	want := base + ".txt"
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("expected saved content %q, got %q", "hello", string(data))
	}
	if w.doc.Path != want || w.doc.Modified {
		t.Fatalf("expected clean document at %q, got %+v", want, w.doc)
	}
	if got := w.title(); got != "LandText - note.txt" {
		t.Fatalf("expected title with file name, got %q", got)
	}
}

func TestOpenPromptLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("line one\nline two"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	m := newTestModel(t)
	w := m.activeWindow()

	press(m, tea.KeyCtrlO)
	if w.overlay != overlayPrompt || w.prompt.kind != promptOpen {
		t.Fatalf("expected open prompt on clean buffer, got overlay %v", w.overlay)
	}
	w.prompt.input.SetValue(path)
	press(m, tea.KeyEnter)

	if got := w.text(); got != "line one\nline two" {
		t.Fatalf("expected opened content, got %q", got)
	}
	if w.doc.Path != path || w.doc.Modified {
		t.Fatalf("expected clean document at %q, got %+v", path, w.doc)
	}
	if got := w.statusText(); got != "Line: 1, Column: 0" {
		t.Fatalf("expected cursor at buffer start, got %q", got)
	}
}

func TestOpenFailureLeavesBufferUntouched(t *testing.T) {
	m := newTestModel(t)
	w := m.activeWindow()
	typeText(m, "keep")

	m.openDocument(w, filepath.Join(t.TempDir(), "missing.txt"))

	if w.overlay != overlayNotice || w.notice.title != "Open Error" {
		t.Fatalf("expected open error notice, got overlay %v notice %+v", w.overlay, w.notice)
	}
	if got := w.text(); got != "keep" {
		t.Fatalf("expected buffer to survive failed open, got %q", got)
	}
	if w.doc.HasPath() || !w.doc.Modified {
		t.Fatalf("expected untitled modified document, got %+v", w.doc)
	}
}

func TestThemeBroadcastReachesEveryWindow(t *testing.T) {
	m := newTestModel(t)
	pressAlt(m, 'n')

	press(m, tea.KeyCtrlT)
	d := m.themeDialog
	if d == nil || m.focus != focusThemeDialog {
		t.Fatal("expected focused theme dialog")
	}
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	if d.selected != theme.Dark {
		t.Fatalf("expected Dark selected, got %v", d.selected)
	}
	d.cursor = themeButtonStart() + themeButtonApply
	press(m, tea.KeyEnter)

	if m.themeDialog != nil {
		t.Fatal("expected apply to close the dialog")
	}
	for _, w := range m.visibleWindows() {
		if w.themeName != theme.Dark || w.colors != theme.DarkProfile {
			t.Fatalf("expected window %d to use Dark, got %v", w.id, w.themeName)
		}
	}
	loaded, err := config.Load(m.settingsPath)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if loaded.CurrentTheme != theme.Dark {
		t.Fatalf("expected Dark persisted, got %v", loaded.CurrentTheme)
	}

	pressAlt(m, 'n')
	if got := m.activeWindow().themeName; got != theme.Dark {
		t.Fatalf("expected new window to open with Dark, got %v", got)
	}
}

func TestCustomColorChangeWaitsForApply(t *testing.T) {
	m := newTestModel(t)
	if err := m.applyTheme(theme.Custom); err != nil {
		t.Fatalf("apply custom: %v", err)
	}
	w := m.activeWindow()
	before := w.colors.Background

	press(m, tea.KeyCtrlT)
	d := m.themeDialog
	d.cursor = themeRadioRows()
	press(m, tea.KeyEnter)
	if d.picker == nil || d.picker.key != theme.KeyBackground {
		t.Fatal("expected background color picker")
	}
	press(m, tea.KeyTab)
	d.picker.input.SetValue("#123456")
	press(m, tea.KeyEnter)

	if d.picker != nil {
		t.Fatal("expected picker to close after choosing a color")
	}
	if d.selected != theme.Custom {
		t.Fatalf("expected Custom selected after color change, got %v", d.selected)
	}
	if got := m.themes.Custom().Background; got != "#123456" {
		t.Fatalf("expected custom background updated, got %q", got)
	}
	if w.colors.Background != before {
		t.Fatalf("expected window to keep %q until reapplied, got %q", before, w.colors.Background)
	}

	d.cursor = themeButtonStart() + themeButtonApply
	press(m, tea.KeyEnter)
	if got := w.colors.Background; got != "#123456" {
		t.Fatalf("expected reapplied custom background, got %q", got)
	}
}

func TestColorPickerRejectsInvalidHex(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyCtrlT)
	d := m.themeDialog
	d.cursor = themeRadioRows()
	press(m, tea.KeyEnter)
	press(m, tea.KeyTab)
	d.picker.input.SetValue("not-a-color")
	press(m, tea.KeyEnter)

	if d.picker == nil || d.picker.err == "" {
		t.Fatal("expected picker to stay open with an error")
	}
	if got := m.themes.Custom().Background; got == "not-a-color" {
		t.Fatalf("expected custom profile unchanged, got %q", got)
	}
}

func TestDialogsAreSingletons(t *testing.T) {
	m := newTestModel(t)
	pressAlt(m, 'n')

	press(m, tea.KeyCtrlT)
	d := m.themeDialog

	pressAlt(m, '.')
	if m.focus != focusWindow || m.themeDialog != d {
		t.Fatal("expected window switch to defocus but keep the theme dialog")
	}

	press(m, tea.KeyCtrlT)
	if m.themeDialog != d || m.focus != focusThemeDialog {
		t.Fatal("expected reopening to focus the existing theme dialog")
	}
	if got := m.activeWindow().status; got != statusDialogFocused {
		t.Fatalf("expected focus status, got %q", got)
	}

	press(m, tea.KeyEsc)
	if m.themeDialog != nil || m.focus != focusWindow {
		t.Fatal("expected esc to close the theme dialog")
	}
}

func TestFontDialogApplyPersistsAndBroadcasts(t *testing.T) {
	m := newTestModel(t)
	pressAlt(m, 'n')

	pressAlt(m, 'f')
	if m.fontDialog == nil || m.fontDialog.size != config.DefaultFontSize {
		t.Fatal("expected font dialog at the default size")
	}
	for i := 0; i < 6; i++ {
		press(m, tea.KeyRight)
	}
	press(m, tea.KeyEnter)

	for _, w := range m.visibleWindows() {
		if w.fontSize != 18 {
			t.Fatalf("expected window %d at 18pt, got %d", w.id, w.fontSize)
		}
	}
	loaded, err := config.Load(m.settingsPath)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if loaded.FontSize != 18 {
		t.Fatalf("expected 18 persisted, got %d", loaded.FontSize)
	}
}

func TestFontDialogClampsToRange(t *testing.T) {
	m := newTestModel(t)
	pressAlt(m, 'f')
	press(m, tea.KeyEnd)
	press(m, tea.KeyRight)
	if got := m.fontDialog.size; got != config.MaxFontSize {
		t.Fatalf("expected size clamped to %d, got %d", config.MaxFontSize, got)
	}
	press(m, tea.KeyHome)
	press(m, tea.KeyLeft)
	if got := m.fontDialog.size; got != config.MinFontSize {
		t.Fatalf("expected size clamped to %d, got %d", config.MinFontSize, got)
	}
}

func TestSettingsReloadAppliesExternalChange(t *testing.T) {
	m := newTestModel(t)
	pressAlt(m, 'n')

	external := config.Defaults()
	external.CurrentTheme = theme.Dark
	external.FontSize = 20
	if err := config.Save(m.settingsPath, external); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	m.Update(settingsChangedMsg{})

	for _, w := range m.visibleWindows() {
		if w.themeName != theme.Dark || w.fontSize != 20 {
			t.Fatalf("expected window %d at Dark 20pt, got %v %dpt", w.id, w.themeName, w.fontSize)
		}
	}
	if got := m.activeWindow().status; got != statusSettingsReload {
		t.Fatalf("expected reload status, got %q", got)
	}
}

func TestSettingsReloadIgnoresCorruptFile(t *testing.T) {
	m := newTestModel(t)
	if err := os.WriteFile(m.settingsPath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	m.Update(settingsChangedMsg{})

	if got := m.activeWindow().themeName; got != theme.Light {
		t.Fatalf("expected theme unchanged, got %v", got)
	}
}

func TestCloseWindowsHidesRootAndQuitsWhenEmpty(t *testing.T) {
	m := newTestModel(t)
	root := m.activeWindow()
	pressAlt(m, 'n')
	second := m.activeWindow()

	m.active = root.id
	press(m, tea.KeyCtrlW)
	if !root.hidden || m.registry.Contains(root.id) {
		t.Fatal("expected closed root window to be hidden and unregistered")
	}
	if m.window(root.id) == nil {
		t.Fatal("expected hidden root window to stay allocated")
	}
	if m.active != second.id || m.quitting {
		t.Fatalf("expected focus on remaining window, got active %d quitting %v", m.active, m.quitting)
	}

	press(m, tea.KeyCtrlW)
	if !m.quitting {
		t.Fatal("expected closing the last window to quit")
	}
	if m.window(second.id) != nil {
		t.Fatal("expected non-root window to be discarded")
	}
}

func TestUnsavedDontSaveClosesWindow(t *testing.T) {
	m := newTestModel(t)
	pressAlt(m, 'n')
	w := m.activeWindow()
	typeText(m, "draft")

	press(m, tea.KeyCtrlW)
	if w.overlay != overlayUnsaved || w.pending != pendingClose {
		t.Fatalf("expected unsaved prompt for close, got overlay %v pending %v", w.overlay, w.pending)
	}
	typeText(m, "d")

	if m.registry.Contains(w.id) {
		t.Fatal("expected discarded window to close")
	}
}

func TestUnsavedCancelKeepsWindow(t *testing.T) {
	m := newTestModel(t)
	w := m.activeWindow()
	typeText(m, "draft")

	press(m, tea.KeyCtrlN)
	press(m, tea.KeyEsc)

	if w.overlay != overlayNone || w.pending != pendingNone {
		t.Fatalf("expected cancelled prompt, got overlay %v pending %v", w.overlay, w.pending)
	}
	if got := w.text(); got != "draft" || !w.doc.Modified {
		t.Fatalf("expected modified draft kept, got %q", got)
	}
}

func TestFailedSaveBlocksClose(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	m := newTestModel(t)
	pressAlt(m, 'n')
	w := m.activeWindow()
	typeText(m, "draft")

	press(m, tea.KeyCtrlW)
	typeText(m, "s")
	if w.overlay != overlayPrompt || w.pending != pendingClose {
		t.Fatalf("expected save as prompt holding the close, got overlay %v pending %v", w.overlay, w.pending)
	}
	w.prompt.input.SetValue(filepath.Join(blocker, "draft.txt"))
	press(m, tea.KeyEnter)

	if !m.registry.Contains(w.id) {
		t.Fatal("expected failed save to keep the window open")
	}
	if w.overlay != overlayNotice || w.notice.title != "Save Error" {
		t.Fatalf("expected save error notice, got overlay %v", w.overlay)
	}
	if w.pending != pendingNone || !w.doc.Modified {
		t.Fatalf("expected pending dropped and buffer still modified, got %v %+v", w.pending, w.doc)
	}
}

func TestUnsavedSaveWritesThenRunsAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.txt")
	m := newTestModel(t)
	w := m.activeWindow()
	w.doc.Path = path
	typeText(m, "draft")

	press(m, tea.KeyCtrlN)
	typeText(m, "s")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "draft" {
		t.Fatalf("expected saved draft, got %q", string(data))
	}
	if w.doc.HasPath() || w.text() != "" {
		t.Fatalf("expected fresh untitled buffer after new, got %+v %q", w.doc, w.text())
	}
}

func TestFindHighlightsAndClears(t *testing.T) {
	m, w := newFocusedEditWindow(t, "abab")

	press(m, tea.KeyCtrlF)
	if w.overlay != overlayFind {
		t.Fatalf("expected find overlay, got %v", w.overlay)
	}
	typeText(m, "AB")
	press(m, tea.KeyEnter)

	if got := len(w.marks); got != 2 {
		t.Fatalf("expected 2 marks, got %d", got)
	}
	if !strings.HasPrefix(w.status, "2 matches") {
		t.Fatalf("expected match count status, got %q", w.status)
	}
	if got := w.currentEditorCursorOffset(); got != 4 {
		t.Fatalf("expected find to leave the cursor alone, got offset %d", got)
	}

	press(m, tea.KeyEsc)
	if len(w.marks) != 0 {
		t.Fatal("expected esc to clear highlights")
	}

	press(m, tea.KeyCtrlF)
	w.findInput.SetValue("")
	press(m, tea.KeyEnter)
	if len(w.marks) != 0 || w.status != statusHighlightsOff {
		t.Fatalf("expected empty query to clear, got %d marks status %q", len(w.marks), w.status)
	}
}

func TestEditingClearsHighlights(t *testing.T) {
	m, w := newFocusedEditWindow(t, "abab")
	w.applyFind("ab")

	typeText(m, "x")
	if len(w.marks) != 0 {
		t.Fatal("expected an edit to clear stale highlights")
	}
}

func TestRenderMarkedBufferReportsFirstMatchRow(t *testing.T) {
	st := newWindowStyles(theme.LightProfile)

	content, row := renderMarkedBuffer("one\ntwo\nthree", []find.Span{{Start: 8, End: 13}}, 10, st)
	if row != 2 {
		t.Fatalf("expected first match on row 2, got %d", row)
	}
	if got := strings.Count(content, "\n"); got != 2 {
		t.Fatalf("expected 3 rows, got %d", got+1)
	}

	content, row = renderMarkedBuffer("abcdef", []find.Span{{Start: 4, End: 5}}, 3, st)
	if row != 1 {
		t.Fatalf("expected wrapped match on row 1, got %d", row)
	}
	if got := strings.Count(content, "\n"); got != 1 {
		t.Fatalf("expected 2 wrapped rows, got %d", got+1)
	}
}

func TestPromptCompletion(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"alpha.txt", "alpine.txt", "beta.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	m := newTestModel(t)
	w := m.activeWindow()
	w.openPrompt(promptOpen)

	w.prompt.input.SetValue(filepath.Join(dir, "al"))
	press(m, tea.KeyTab)
	if got, want := w.prompt.input.Value(), filepath.Join(dir, "alp"); got != want {
		t.Fatalf("expected common prefix %q, got %q", want, got)
	}
	if got := len(w.prompt.completions); got != 2 {
		t.Fatalf("expected 2 candidates, got %d", got)
	}

	w.prompt.input.SetValue(filepath.Join(dir, "s"))
	press(m, tea.KeyTab)
	if got, want := w.prompt.input.Value(), filepath.Join(dir, "sub")+string(filepath.Separator); got != want {
		t.Fatalf("expected directory completion %q, got %q", want, got)
	}
}

func TestMenuRunsSelectedAction(t *testing.T) {
	m := newTestModel(t)
	w := m.activeWindow()

	press(m, tea.KeyF10)
	if w.overlay != overlayMenu {
		t.Fatalf("expected menu overlay, got %v", w.overlay)
	}
	for w.menuCursor < len(menuEntries)-1 && menuEntries[w.menuCursor].action != actionNewWindow {
		press(m, tea.KeyDown)
	}
	press(m, tea.KeyEnter)

	if got := m.registry.Len(); got != 2 {
		t.Fatalf("expected menu to open a second window, got %d", got)
	}
}

func TestViewShowsTabsAndStatus(t *testing.T) {
	m := newTestModel(t)
	pressAlt(m, 'n')
	typeText(m, "x")

	view := m.View()
	for _, want := range []string{"1 Untitled", "2 Untitled*", "Line: 1, Column: 1", "Light 12pt"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q, got %q", want, view)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyF1)
	if !m.showHelp {
		t.Fatal("expected help to open")
	}
	typeText(m, "q")
	if m.showHelp {
		t.Fatal("expected q to close help")
	}
	if got := m.activeWindow().text(); got != "" {
		t.Fatalf("expected help keys to stay out of the buffer, got %q", got)
	}
}

func TestEmptyFindClearsExistingHighlights(t *testing.T) {
	m, w := newFocusedEditWindow(t, "abab")
	w.applyFind("ab")
	if len(w.marks) != 2 {
		t.Fatalf("expected 2 marks before clearing, got %d", len(w.marks))
	}

	press(m, tea.KeyCtrlF)
	w.findInput.SetValue("")
	press(m, tea.KeyEnter)

	if len(w.marks) != 0 {
		t.Fatalf("expected empty query to clear highlights, got %d marks", len(w.marks))
	}
	if w.status != statusHighlightsOff {
		t.Fatalf("expected highlights-off status, got %q", w.status)
	}
}

func TestPromptKeepsPathAsTyped(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t)
	w := m.activeWindow()
	typeText(m, "spaced")

	w.openPrompt(promptSaveAs)
	w.prompt.input.SetValue(filepath.Join(dir, " spaced.txt "))
	press(m, tea.KeyEnter)

	if _, err := os.Stat(filepath.Join(dir, " spaced.txt ")); err != nil {
		t.Fatalf("expected file saved under the typed name: %v", err)
	}

	w.openPrompt(promptSaveAs)
	w.prompt.input.SetValue("   ")
	press(m, tea.KeyEnter)
	if w.status != "Cancelled" {
		t.Fatalf("expected blank answer to cancel, got status %q", w.status)
	}
}
