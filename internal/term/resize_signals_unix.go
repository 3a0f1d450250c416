//go:build !windows && !plan9 && !js && !wasip1

package term

import (
	"os"
	"syscall"
)

// ResizeSignals lists the signals that indicate a terminal size change.
func ResizeSignals() []os.Signal {
	return []os.Signal{syscall.SIGWINCH}
}
