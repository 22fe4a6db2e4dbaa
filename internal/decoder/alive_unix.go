//go:build !windows

package decoder

import (
	"errors"
	"syscall"
)

// processAlive reports whether pid exists. A process owned by another user
// still counts.
func processAlive(pid int) bool {
	err := syscall.Kill(pid, 0)
	return err == nil || errors.Is(err, syscall.EPERM)
}
