// Package find locates every case-insensitive occurrence of a query in a
// buffer.
//
// Offsets are rune offsets into the buffer. A match always spans exactly as
// many runes as the query has, so [Start, End) = [start, start+len(query)).
// Matches never overlap: scanning resumes at the end of the previous match,
// which means "ab" in "abab" yields two matches and "aa" in "aaa" yields one.
package find

import "unicode"

// Span is a half-open rune range [Start, End) within a buffer.
type Span struct {
	Start int
	End   int
}

// Len is the number of runes in the span.
func (s Span) Len() int { return s.End - s.Start }

// All returns the non-overlapping matches of query in text, in order.
// An empty query matches nothing.
func All(text, query string) []Span {
	needle := []rune(query)
	if len(needle) == 0 {
		return nil
	}
	haystack := []rune(text)

	var spans []Span
	for i := 0; i+len(needle) <= len(haystack); {
		if matchAt(haystack, needle, i) {
			spans = append(spans, Span{Start: i, End: i + len(needle)})
			i += len(needle)
			continue
		}
		i++
	}
	return spans
}

func matchAt(haystack, needle []rune, at int) bool {
	for j, r := range needle {
		if !equalFold(haystack[at+j], r) {
			return false
		}
	}
	return true
}

// equalFold compares two runes under simple Unicode case folding.
func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

// Position converts a rune offset into a 0-based line and column (both in
// runes). Offsets past the end clamp to the end of the text.
func Position(text string, offset int) (line, col int) {
	i := 0
	for _, r := range text {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
		i++
	}
	return line, col
}
