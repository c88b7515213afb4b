//go:build !unix

package interaction

import "os"

// pollableInput reads stdin directly; a pending read outlives Close here
func pollableInput(fd int) (*os.File, func() error, error) {
	return os.Stdin, nil, nil
}
