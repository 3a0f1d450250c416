//go:build !windows && !plan9 && !js && !wasip1

package term

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// StartKeyReader decodes key events off the session terminal on a dedicated
// goroutine. The returned stop function unblocks the reader; closing done
// has the same effect.
func (s *Session) StartKeyReader(done <-chan struct{}) (<-chan Event, <-chan error, func()) {
	events := make(chan Event, 8)
	errCh := make(chan error, 1)
	if s.input == nil {
		errCh <- errors.New("no terminal input available")
		return events, errCh, func() {}
	}
	cancelR, cancelW, err := os.Pipe()
	if err != nil {
		errCh <- err
		return events, errCh, func() {}
	}
	stop := func() {
		_, _ = cancelW.Write([]byte{1})
		_ = cancelW.Close()
	}

	go func() {
		defer func() {
			_ = cancelR.Close()
		}()
		inputFd := int(s.input.Fd())
		cancelFd := int(cancelR.Fd())
		for {
			// A buffered partial sequence must be consumed before
			// blocking in select again.
			if s.reader.Buffered() == 0 {
				var readfds unix.FdSet
				fdSetAdd(&readfds, inputFd)
				fdSetAdd(&readfds, cancelFd)
				maxfd := inputFd
				if cancelFd > maxfd {
					maxfd = cancelFd
				}
				n, err := unix.Select(maxfd+1, &readfds, nil, nil, nil)
				if err == unix.EINTR {
					continue
				}
				if err != nil {
					select {
					case errCh <- err:
					default:
					}
					return
				}
				if n == 0 {
					continue
				}
				if fdSetHas(&readfds, cancelFd) {
					return
				}
				if !fdSetHas(&readfds, inputFd) {
					continue
				}
			}
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

	go func() {
		<-done
		_, _ = cancelW.Write([]byte{1})
		_ = cancelW.Close()
	}()

	return events, errCh, stop
}

func fdSetAdd(set *unix.FdSet, fd int) {
	if fd < 0 {
		return
	}
	set.Bits[fd/64] |= 1 << (uint(fd) % 64)
}

func fdSetHas(set *unix.FdSet, fd int) bool {
	if fd < 0 {
		return false
	}
	return set.Bits[fd/64]&(1<<(uint(fd)%64)) != 0
}
