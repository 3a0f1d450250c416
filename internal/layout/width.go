package layout

import "github.com/mattn/go-runewidth"

const (
	escapeStart      = '\x1b'
	escapeTerminator = 'm'
)

// runeDisplayWidth reports how many terminal columns a rune occupies: 2 for
// East-Asian wide runes, 1 for the rest, 0 for runes with no defined width
// (control characters and the like), which pass through without consuming
// any column limit.
func runeDisplayWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

func isEscapeStart(r rune) bool {
	return r == escapeStart
}

// DisplayWidth measures text in terminal columns, logically excluding SGR
// escape sequences.
func DisplayWidth(text string) int {
	width := 0
	inEscape := false
	for _, r := range text {
		if inEscape {
			if r == escapeTerminator {
				inEscape = false
			}
			continue
		}
		if isEscapeStart(r) {
			inEscape = true
			continue
		}
		width += runeDisplayWidth(r)
	}
	return width
}

// StripEscapes removes SGR escape sequences, leaving only printable content.
func StripEscapes(text string) string {
	out := make([]rune, 0, len(text))
	inEscape := false
	for _, r := range text {
		if inEscape {
			if r == escapeTerminator {
				inEscape = false
			}
			continue
		}
		if isEscapeStart(r) {
			inEscape = true
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
