//go:build windows || plan9 || js || wasip1

package term

import "os"

// ResizeSignals is empty on platforms without SIGWINCH; the layout is still
// rebuilt on every key event, so a stale size corrects itself on input.
func ResizeSignals() []os.Signal {
	return nil
}
