//go:build !unix

package viz

import "os"

// notifyResize is a no-op where the terminal sends no resize signal
func notifyResize(ch chan<- os.Signal) {}
