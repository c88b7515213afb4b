//go:build unix

package interaction

import (
	"os"

	"golang.org/x/sys/unix"
)

// pollableInput duplicates fd in non-blocking mode so the runtime poller
// serves its reads and a read deadline can interrupt them. The returned
// release closes the duplicate and puts fd back into blocking mode.
func pollableInput(fd int) (*os.File, func() error, error) {
	dup, err := unix.Dup(fd)
	if err != nil {
		return nil, nil, err
	}
	if err := unix.SetNonblock(dup, true); err != nil {
		_ = unix.Close(dup)
		return nil, nil, err
	}

	file := os.NewFile(uintptr(dup), "stdin")
	release := func() error {
		closeErr := file.Close()
		if err := unix.SetNonblock(fd, false); err != nil {
			return err
		}
		return closeErr
	}
	return file, release, nil
}
