package term

import (
	"bufio"
	"errors"
	"os"
	"runtime"
	"sync"

	"golang.org/x/term"
)

// Hook for tests.
var termGetSize = term.GetSize

// Session owns the terminal for the lifetime of the pager: it enters the
// alternate screen and raw mode on open and guarantees the terminal is
// restored exactly once on release, no matter how the program unwinds.
type Session struct {
	input       *os.File
	reader      *bufio.Reader
	rc          *RenderContext
	restoreTerm *term.State
	releaseOnce sync.Once
}

// Open acquires the controlling terminal, switches to the alternate screen,
// enables raw mode and hides the cursor. Callers must arrange for Release
// to run on every exit path, usually via defer right after Open returns.
func Open() (*Session, error) {
	s := &Session{}

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		if runtime.GOOS != "windows" {
			return nil, err
		}
		tty = os.Stdin
	}
	s.input = tty
	s.reader = bufio.NewReader(tty)
	s.rc = NewRenderContext(tty)

	s.rc.EnterAltScreen()
	if err := s.rc.Flush(); err != nil {
		return nil, err
	}

	rawState, err := term.MakeRaw(int(s.input.Fd()))
	if err != nil {
		s.rc.LeaveAltScreen()
		_ = s.rc.Flush()
		return nil, err
	}
	s.restoreTerm = rawState

	s.rc.HideCursor()
	s.rc.ClearAll()
	if err := s.rc.Flush(); err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

// Release restores the terminal: show cursor, leave raw mode, leave the
// alternate screen, flush. It is safe to call more than once; only the
// first call does anything.
func (s *Session) Release() {
	s.releaseOnce.Do(func() {
		if s.rc != nil {
			s.rc.ShowCursor()
			_ = s.rc.Flush()
		}
		if s.input != nil && s.restoreTerm != nil {
			_ = term.Restore(int(s.input.Fd()), s.restoreTerm)
		}
		if s.rc != nil {
			s.rc.LeaveAltScreen()
			_ = s.rc.Flush()
		}
		if s.input != nil && s.input.Name() == "/dev/tty" {
			_ = s.input.Close()
		}
	})
}

// Render exposes the drawing context backed by the session terminal.
func (s *Session) Render() *RenderContext {
	return s.rc
}

// Size reports the terminal dimensions in columns and rows.
func (s *Session) Size() (int, int, error) {
	if s.input == nil {
		return 0, 0, errors.New("no terminal available")
	}
	return termGetSize(int(s.input.Fd()))
}
