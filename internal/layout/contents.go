package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yomu-dev/yomu/internal/term"
)

// Segment is one physical, width-bounded piece of a logical line. Segments
// are immutable once produced by Update.
type Segment struct {
	// LineNumber is the 1-based logical line the segment came from.
	LineNumber int
	// Index is 0 for the first physical piece of a logical line and
	// increments per additional wrapped piece.
	Index int
	// Text may contain escape sequences.
	Text string
}

// Contents lays a document out as physical segments that fit the viewport
// width and renders the window of them selected by the vertical cursor.
type Contents struct {
	text     string
	segments []Segment

	width   int
	height  int
	originX int
	originY int

	// cursorX is reserved; horizontal scrolling is not supported.
	cursorX int
	cursorY int

	gutterWidth int
	lineCount   int
}

func NewContents(text string, width, height, originX, originY int) *Contents {
	return &Contents{
		text:    text,
		width:   width,
		height:  height,
		originX: originX,
		originY: originY,
	}
}

// Update rebuilds the segment buffer from the source text and the current
// viewport width. It fails when the viewport is too narrow to leave any
// columns for text next to the gutter.
func (c *Contents) Update() error {
	lines := splitLines(c.text)
	c.lineCount = len(lines)
	c.gutterWidth = len(strconv.Itoa(c.lineCount))

	wrapWidth := c.width - c.gutterWidth - 1
	if wrapWidth <= 0 {
		return fmt.Errorf("viewport width %d leaves no text columns beside a %d-column gutter", c.width, c.gutterWidth)
	}

	c.segments = c.segments[:0]
	for i, line := range lines {
		for j, piece := range Wrap(line, wrapWidth) {
			c.segments = append(c.segments, Segment{
				LineNumber: i + 1,
				Index:      j,
				Text:       piece,
			})
		}
	}
	return nil
}

// Resize updates the viewport dimensions and rebuilds the layout.
func (c *Contents) Resize(width, height int) error {
	c.width = width
	c.height = height
	return c.Update()
}

// Print draws the visible window of segments. The cursor is clamped first,
// in place; after Print returns, CursorY reports the authoritative scroll
// position.
//
// The gutter shows the line number, dimmed, only on the first segment of
// each logical line; wrapped continuations get blank columns of the same
// width. Segment text is passed through verbatim, embedded escape
// sequences included.
func (c *Contents) Print(rc *term.RenderContext) {
	rc.MoveTo(c.originX, c.originY)
	rc.ClearAll()

	c.clampCursor()

	start := c.cursorY
	end := c.cursorY + c.height
	currentY := 0
	for _, seg := range c.segments {
		if currentY < start || currentY >= end {
			currentY++
			continue
		}

		rc.MoveToColumn(c.originX)
		if seg.Index == 0 {
			rc.Dim()
			rc.Printf("%*d", c.gutterWidth, seg.LineNumber)
			rc.ResetStyle()
			rc.Print(" ")
		} else {
			rc.Spaces(c.gutterWidth + 1)
		}
		rc.Print(seg.Text)
		rc.Print("\n")

		currentY++
	}
}

// ScrollUp moves the window one physical line up, stopping at the top.
func (c *Contents) ScrollUp() {
	if c.cursorY > 0 {
		c.cursorY--
	}
}

// ScrollDown moves the window one physical line down. The ceiling depends
// on the current layout and is applied by the next Print.
func (c *Contents) ScrollDown() {
	c.cursorY++
}

// CursorY reports the vertical scroll offset, valid as of the last Print.
func (c *Contents) CursorY() int {
	return c.cursorY
}

// SegmentCount reports how many physical lines the layout produced.
func (c *Contents) SegmentCount() int {
	return len(c.segments)
}

// LineCount reports how many logical lines the source text has.
func (c *Contents) LineCount() int {
	return c.lineCount
}

func (c *Contents) clampCursor() {
	if len(c.segments) <= c.height {
		c.cursorY = 0
		return
	}
	maxCursorY := len(c.segments) - c.height
	if c.cursorY > maxCursorY {
		c.cursorY = maxCursorY
	}
	if c.cursorY < 0 {
		c.cursorY = 0
	}
}

// splitLines breaks the document into logical lines the way terminals
// count them: a trailing newline ends the last line rather than opening an
// empty one, and an empty document has no lines at all.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
