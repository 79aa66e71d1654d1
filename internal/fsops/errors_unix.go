//go:build !windows

package fsops

import (
	"errors"
	"syscall"
)

// IsPathTooLong reports whether err was caused by a path exceeding the
// OS limit.
func IsPathTooLong(err error) bool {
	return errors.Is(err, syscall.ENAMETOOLONG)
}

// IsLocked reports whether err indicates the destination is held open by
// another process, typically a running instance of the application being
// upgraded.
func IsLocked(err error) bool {
	return errors.Is(err, syscall.ETXTBSY) || errors.Is(err, syscall.EBUSY)
}
