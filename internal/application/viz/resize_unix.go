//go:build unix

package viz

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// notifyResize delivers terminal resize signals on ch
func notifyResize(ch chan<- os.Signal) {
	signal.Notify(ch, unix.SIGWINCH)
}
