package term

import (
	"bufio"
	"fmt"
	"unicode/utf8"
)

// EventKind enumerates the input events the pager acts on. Everything the
// terminal can produce but the pager does not handle arrives as
// EventUnsupported so callers can log the gap instead of losing it.
type EventKind int

const (
	EventUnsupported EventKind = iota
	EventScrollUp
	EventScrollDown
	EventQuit
	EventResize
)

type Event struct {
	Kind EventKind
	// Detail describes unsupported events for logging.
	Detail string
}

func unsupported(format string, args ...interface{}) Event {
	return Event{Kind: EventUnsupported, Detail: fmt.Sprintf(format, args...)}
}

const ctrlW = 0x17

// ReadKeyEvent decodes one key event from a raw-mode byte stream.
func ReadKeyEvent(reader *bufio.Reader) (Event, error) {
	b, err := reader.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch b {
	case 0x1b:
		return parseEscapeSequence(reader)
	case ctrlW:
		return Event{Kind: EventQuit}, nil
	}

	if b < utf8.RuneSelf {
		return unsupported("key %q", rune(b)), nil
	}

	// Multibyte rune: consume the continuation bytes so they do not get
	// mistaken for further key presses.
	buf := []byte{b}
	for !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
		next, err := reader.ReadByte()
		if err != nil {
			break
		}
		buf = append(buf, next)
	}
	r, _ := utf8.DecodeRune(buf)
	return unsupported("key %q", r), nil
}

func parseEscapeSequence(reader *bufio.Reader) (Event, error) {
	if reader.Buffered() == 0 {
		return unsupported("key escape"), nil
	}
	next, err := reader.ReadByte()
	if err != nil {
		return unsupported("key escape"), nil
	}

	switch next {
	case '[':
		return parseCSI(reader)
	case 'O':
		final, err := reader.ReadByte()
		if err != nil {
			return unsupported("key escape"), nil
		}
		return unsupported("key sequence ESC O %q", rune(final)), nil
	default:
		return unsupported("key sequence ESC %q", rune(next)), nil
	}
}

func parseCSI(reader *bufio.Reader) (Event, error) {
	seq := []byte{}
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return unsupported("truncated CSI sequence"), nil
		}
		seq = append(seq, b)
		if b >= 0x40 && b <= 0x7e {
			break
		}
		if len(seq) > 16 {
			break
		}
	}

	switch seq[len(seq)-1] {
	case 'A':
		return Event{Kind: EventScrollUp}, nil
	case 'B':
		return Event{Kind: EventScrollDown}, nil
	case 'M', 'm':
		// SGR mouse reports end in M/m.
		return unsupported("mouse"), nil
	case '~':
		return unsupported("key CSI %s", string(seq)), nil
	}
	return unsupported("key CSI %s", string(seq)), nil
}
