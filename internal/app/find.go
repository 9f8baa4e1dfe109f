package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/treykane/landtext/internal/find"
)

func (w *editorWindow) openFind() tea.Cmd {
	w.openOverlay(overlayFind)
	w.findInput.SetValue(w.lastQuery)
	w.findInput.CursorEnd()
	return w.findInput.Focus()
}

func (w *editorWindow) handleFindKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		w.closeOverlay()
		return nil
	case "enter":
		query := w.findInput.Value()
		w.closeOverlay()
		count := w.applyFind(query)
		switch {
		case query == "":
			w.status = statusHighlightsOff
		case count == 0:
			w.status = fmt.Sprintf("No matches for %q", query)
		default:
			w.status = fmt.Sprintf("%d matches for %q (Esc clears)", count, query)
		}
		return nil
	}
	if shouldIgnoreInput(msg) {
		return nil
	}
	var cmd tea.Cmd
	w.findInput, cmd = w.findInput.Update(msg)
	return cmd
}

// applyFind replaces the window's highlights with every case-insensitive
// match of query and scrolls the highlight view to the first one. An empty
// query only clears. It returns the number of matches.
func (w *editorWindow) applyFind(query string) int {
	w.lastQuery = query
	w.marks = find.All(w.text(), query)
	if len(w.marks) == 0 {
		w.marks = nil
		return 0
	}
	w.refreshMarkView()
	w.markView.SetYOffset(max(0, w.markRow-w.markView.Height/3))
	return len(w.marks)
}

func (w *editorWindow) clearMarks() {
	w.marks = nil
	w.markRow = 0
}

func (w *editorWindow) refreshMarkView() {
	if len(w.marks) == 0 {
		return
	}
	content, row := renderMarkedBuffer(w.text(), w.marks, w.width, w.styles)
	w.markView.SetContent(content)
	w.markRow = row
}

// renderMarkedBuffer soft-wraps text to width cells and paints the spans with
// the match style. It also returns the visual row holding the first match.
// Spans must be sorted and non-overlapping, as find.All returns them.
func renderMarkedBuffer(text string, spans []find.Span, width int, st windowStyles) (string, int) {
	width = max(1, width)
	var (
		rows     []string
		line     strings.Builder
		run      strings.Builder
		marked   bool
		cells    int
		firstRow = -1
		next     int
		offset   int
	)
	flushRun := func() {
		if run.Len() == 0 {
			return
		}
		style := st.text
		if marked {
			style = st.match
		}
		line.WriteString(style.Render(run.String()))
		run.Reset()
	}
	flushRow := func() {
		flushRun()
		if cells < width {
			line.WriteString(st.text.Render(strings.Repeat(" ", width-cells)))
		}
		rows = append(rows, line.String())
		line.Reset()
		cells = 0
	}

	for _, r := range text {
		for next < len(spans) && offset >= spans[next].End {
			next++
		}
		inMatch := next < len(spans) && offset >= spans[next].Start
		offset++

		if r == '\n' {
			flushRow()
			continue
		}
		glyph, cellWidth := string(r), runewidth.RuneWidth(r)
		switch {
		case r == '\t':
			glyph, cellWidth = "    ", 4
		case isSanitizedRune(r) && r != utf8.RuneError:
			glyph, cellWidth = string(controlPicture(r)), 1
		}
		if cells > 0 && cells+cellWidth > width {
			flushRow()
		}
		if inMatch != marked {
			flushRun()
			marked = inMatch
		}
		if inMatch && firstRow < 0 {
			firstRow = len(rows)
		}
		run.WriteString(glyph)
		cells += cellWidth
	}
	flushRow()
	return strings.Join(rows, "\n"), max(firstRow, 0)
}

func (m *Model) renderFindPopup(w *editorWindow, width, height int) string {
	innerWidth := max(10, min(FindPopupWidth, width-4))
	w.findInput.Width = innerWidth - lipgloss.Width(w.findInput.Prompt) - 1
	body := strings.Join([]string{
		titleStyle.Render("Find"),
		w.findInput.View(),
		mutedStyle.Render("Enter: highlight all  Esc: cancel"),
	}, "\n")
	popup := w.styles.popup.Width(innerWidth).Render(body)
	return w.place(width, height, popup)
}
