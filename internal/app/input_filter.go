package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Some terminals answer background-color queries with an OSC sequence that
// Bubble Tea delivers as ordinary runes. These helpers keep such replies out
// of the document buffer.

func isOSCBackgroundResponse(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}
	sequence := msg.String()
	if sequence == "" {
		return false
	}
	sequence = trimOSCSequenceSuffix(sequence)
	if !strings.Contains(sequence, "rgb:") {
		return false
	}
	if !strings.Contains(sequence, "\x1b") &&
		!strings.Contains(sequence, "11;rgb:") &&
		!strings.Contains(sequence, "1;rgb:") {
		return false
	}
	return hasRGBTriple(sequence)
}

// shouldIgnoreInput reports whether a rune message is terminal noise rather
// than typing. Bracketed pastes are always accepted.
func shouldIgnoreInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || msg.Paste {
		return false
	}
	if isOSCBackgroundResponse(msg) || containsControlRunes(msg.String()) {
		appLog.Debug("ignored terminal input", "sequence", msg.String())
		return true
	}
	return false
}

func trimOSCSequenceSuffix(sequence string) string {
	for _, suffix := range []string{"\x1b\\", "\a", "\\", "\x1b"} {
		if strings.HasSuffix(sequence, suffix) {
			return strings.TrimSuffix(sequence, suffix)
		}
	}
	return sequence
}

func containsControlRunes(sequence string) bool {
	for _, r := range sequence {
		switch {
		case r == '\n' || r == '\t':
			continue
		case r < 32 || r == 127:
			return true
		}
	}
	return false
}

func isHex(value string) bool {
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func hasRGBTriple(sequence string) bool {
	index := strings.Index(sequence, "rgb:")
	if index == -1 {
		return false
	}
	tail := sequence[index+len("rgb:"):]
	for i := 0; i < 3; i++ {
		component, rest := readHexComponent(tail)
		if len(component) < 4 || !isHex(component[:4]) {
			return false
		}
		if i < 2 {
			if rest == "" || rest[0] != '/' {
				return false
			}
			tail = rest[1:]
		}
	}
	return true
}

// readHexComponent splits the leading run of hex digits off sequence.
func readHexComponent(sequence string) (component, rest string) {
	end := strings.IndexFunc(sequence, func(r rune) bool { return !isHex(string(r)) })
	if end == -1 {
		return sequence, ""
	}
	return sequence[:end], sequence[end:]
}
