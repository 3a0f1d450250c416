//go:build windows || plan9 || js || wasip1

package term

// StartKeyReader reads key events on a plain goroutine where select(2) is
// unavailable. The blocked read leaks until the process exits; stop only
// prevents further events from being delivered.
func (s *Session) StartKeyReader(done <-chan struct{}) (<-chan Event, <-chan error, func()) {
	events := make(chan Event, 8)
	errCh := make(chan error, 1)

	go func() {
		for {
			ev, err := ReadKeyEvent(s.reader)
			if err != nil {
				select {
				case errCh <- err:
				default:
				}
				return
			}
			select {
			case <-done:
				return
			case events <- ev:
			}
		}
	}()

	return events, errCh, func() {}
}
