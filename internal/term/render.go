package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RenderContext owns a buffered terminal output stream and queues ANSI
// drawing commands on it. Nothing reaches the terminal until Flush.
type RenderContext struct {
	writer *bufio.Writer
}

func NewRenderContext(out io.Writer) *RenderContext {
	return &RenderContext{writer: bufio.NewWriter(out)}
}

func (rc *RenderContext) Print(s string) {
	_, _ = rc.writer.WriteString(s)
}

func (rc *RenderContext) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(rc.writer, format, args...)
}

// MoveTo positions the cursor at zero-based screen coordinates.
func (rc *RenderContext) MoveTo(x, y int) {
	rc.Printf("\x1b[%d;%dH", y+1, x+1)
}

// MoveToColumn positions the cursor at a zero-based column on the current row.
func (rc *RenderContext) MoveToColumn(x int) {
	rc.Printf("\x1b[%dG", x+1)
}

func (rc *RenderContext) ClearAll() {
	rc.Print("\x1b[2J")
}

func (rc *RenderContext) HideCursor() {
	rc.Print("\x1b[?25l")
}

func (rc *RenderContext) ShowCursor() {
	rc.Print("\x1b[?25h")
}

func (rc *RenderContext) EnterAltScreen() {
	rc.Print("\x1b[?1049h")
}

func (rc *RenderContext) LeaveAltScreen() {
	rc.Print("\x1b[?1049l")
}

func (rc *RenderContext) Dim() {
	rc.Print("\x1b[2m")
}

func (rc *RenderContext) Reverse() {
	rc.Print("\x1b[7m")
}

func (rc *RenderContext) ResetStyle() {
	rc.Print("\x1b[0m")
}

// Spaces writes n space characters.
func (rc *RenderContext) Spaces(n int) {
	if n <= 0 {
		return
	}
	rc.Print(strings.Repeat(" ", n))
}

// Flush drains the queue to the terminal. A write error anywhere in the
// frame surfaces here.
func (rc *RenderContext) Flush() error {
	return rc.writer.Flush()
}
