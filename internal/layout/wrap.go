package layout

import "strings"

// Wrap splits one logical line into physical segments whose display width
// (escape sequences excluded) stays within width columns. Escape sequences
// are carried through whole; a segment boundary never falls inside one.
//
// The flush happens strictly before the rune that would overflow is placed,
// so a rune wider than the whole width still lands on a fresh segment and
// produces an over-width segment instead of being dropped. The final
// segment is always flushed, so the result has at least one element even
// for an empty line.
func Wrap(line string, width int) []string {
	var result []string
	currentWidth := 0
	var segment strings.Builder

	inEscape := false
	for _, r := range line {
		if !inEscape && isEscapeStart(r) {
			inEscape = true
			segment.WriteRune(r)
			continue
		}
		if inEscape {
			if r == escapeTerminator {
				inEscape = false
			}
			segment.WriteRune(r)
			continue
		}

		if currentWidth+runeDisplayWidth(r) > width {
			result = append(result, segment.String())
			segment.Reset()
			currentWidth = 0
		}
		segment.WriteRune(r)
		currentWidth += runeDisplayWidth(r)
	}

	result = append(result, segment.String())
	return result
}
