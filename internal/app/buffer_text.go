package app

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// The textarea sanitizes everything inserted into it: tabs become spaces,
// carriage returns become newlines, and other control characters and U+FFFD
// are dropped. Buffer text therefore crosses into the widget with those
// runes swapped for stand-ins from Supplementary Private Use Area-A and is
// swapped back on the way out. Each stand-in is one rune, so rune offsets
// are the same on both sides.

const (
	standInBase        = 0xF0000
	standInReplacement = 0xFFFFD
)

func isSanitizedRune(r rune) bool {
	return r == utf8.RuneError || (r != '\n' && unicode.IsControl(r))
}

func isStandIn(r rune) bool {
	return r == standInReplacement || (r >= standInBase && r <= standInBase+0x9F)
}

// encodeBufferText prepares text for the textarea.
func encodeBufferText(text string) string {
	if strings.IndexFunc(text, isSanitizedRune) < 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == utf8.RuneError:
			return standInReplacement
		case isSanitizedRune(r):
			return standInBase + r
		}
		return r
	}, text)
}

// decodeBufferText restores text read back from the textarea.
func decodeBufferText(text string) string {
	if strings.IndexFunc(text, isStandIn) < 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == standInReplacement:
			return utf8.RuneError
		case isStandIn(r):
			return r - standInBase
		}
		return r
	}, text)
}

// displayBufferText swaps stand-ins in rendered output for one-cell visible
// glyphs: Control Pictures for C0 and DEL, U+2426 for C1.
func displayBufferText(view string) string {
	if strings.IndexFunc(view, isStandIn) < 0 {
		return view
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == standInReplacement:
			return utf8.RuneError
		case isStandIn(r):
			return controlPicture(r - standInBase)
		}
		return r
	}, view)
}

func controlPicture(r rune) rune {
	switch {
	case r < 0x20:
		return 0x2400 + r
	case r == 0x7F:
		return 0x2421
	default:
		return 0x2426
	}
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
}

// text is the buffer content as the user sees it.
func (w *editorWindow) text() string {
	return decodeBufferText(w.editor.Value())
}

// setText replaces the textarea content with text, cursor at the end.
func (w *editorWindow) setText(text string) {
	w.editor.SetValue(encodeBufferText(text))
}

// insertAtCursor inserts text at the cursor without sanitizing it.
func (w *editorWindow) insertAtCursor(text string) {
	w.editor.InsertString(encodeBufferText(text))
}
