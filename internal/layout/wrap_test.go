package layout

import (
	"reflect"
	"strings"
	"testing"
)

func TestWrapASCII(t *testing.T) {
	got := Wrap("Hello, world!", 5)
	want := []string{"Hello", ", wor", "ld!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap mismatch, got %q want %q", got, want)
	}
}

func TestWrapMixedWideRunes(t *testing.T) {
	// 世 costs two columns, so it cannot join ", " at 4+2 > 5.
	got := Wrap("Hello, 世界!", 5)
	want := []string{"Hello", ", 世", "界!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap mismatch, got %q want %q", got, want)
	}
}

func TestWrapKeepsEscapeSequencesIntact(t *testing.T) {
	got := Wrap("\x1b[31mHello, world!\x1b[0m", 5)
	want := []string{"\x1b[31mHello", ", wor", "ld!\x1b[0m"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap mismatch, got %q want %q", got, want)
	}
}

func TestWrapEmptyLine(t *testing.T) {
	got := Wrap("", 10)
	if len(got) != 1 || got[0] != "" {
		t.Fatalf("empty line should wrap to one empty segment, got %q", got)
	}
}

func TestWrapRuneWiderThanWidth(t *testing.T) {
	// The flush happens before the overflowing rune is placed, so the wide
	// rune lands on a fresh segment and is never dropped.
	got := Wrap("世", 1)
	want := []string{"", "世"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap mismatch, got %q want %q", got, want)
	}

	got = Wrap("a世", 1)
	want = []string{"a", "世"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap mismatch, got %q want %q", got, want)
	}
}

func TestWrapLossless(t *testing.T) {
	inputs := []string{
		"Hello, world!",
		"Hello, 世界!",
		"\x1b[31mHello, world!\x1b[0m",
		"\x1b[1m\x1b[4mmixed 世界 and ascii\x1b[0m tail",
		"",
		"ひらがなとカタカナと漢字",
	}
	for _, input := range inputs {
		for width := 1; width <= 8; width++ {
			joined := strings.Join(Wrap(input, width), "")
			if StripEscapes(joined) != StripEscapes(input) {
				t.Fatalf("Wrap(%q, %d) lost content: %q", input, width, joined)
			}
		}
	}
}

func TestWrapWidthBound(t *testing.T) {
	inputs := []string{
		"Hello, world!",
		"Hello, 世界!",
		"\x1b[31mHello, world!\x1b[0m",
	}
	for _, input := range inputs {
		for width := 2; width <= 8; width++ {
			for _, seg := range Wrap(input, width) {
				if w := DisplayWidth(seg); w > width {
					t.Fatalf("Wrap(%q, %d) produced segment %q of width %d", input, width, seg, w)
				}
			}
		}
	}
}

func TestWrapEscapeAtomicity(t *testing.T) {
	inputs := []string{
		"\x1b[31mHello, world!\x1b[0m",
		"a\x1b[1mb\x1b[0mc",
		"\x1b[38;5;208mlong colored run of text\x1b[0m",
	}
	for _, input := range inputs {
		for width := 1; width <= 6; width++ {
			for _, seg := range Wrap(input, width) {
				inEscape := false
				for _, r := range seg {
					if inEscape {
						if r == escapeTerminator {
							inEscape = false
						}
						continue
					}
					if isEscapeStart(r) {
						inEscape = true
					}
				}
				if inEscape {
					t.Fatalf("Wrap(%q, %d) split an escape sequence: %q", input, width, seg)
				}
			}
		}
	}
}

func TestDisplayWidthExcludesEscapes(t *testing.T) {
	if w := DisplayWidth("\x1b[31mab\x1b[0m"); w != 2 {
		t.Fatalf("DisplayWidth=%d want 2", w)
	}
	if w := DisplayWidth("世界"); w != 4 {
		t.Fatalf("DisplayWidth=%d want 4", w)
	}
}

func TestStripEscapes(t *testing.T) {
	if got := StripEscapes("\x1b[31mHello\x1b[0m 世界"); got != "Hello 世界" {
		t.Fatalf("StripEscapes mismatch, got %q", got)
	}
}
