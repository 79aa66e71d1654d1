//go:build windows

package fsops

import (
	"errors"
	"syscall"
)

// Windows error codes for the failure modes we classify. These are the
// codes an open or truncate actually returns here; syscall.Errno.Is does
// not map any of them to the POSIX EBUSY/ENAMETOOLONG values.
const (
	errSharingViolation   = syscall.Errno(32)  // ERROR_SHARING_VIOLATION
	errLockViolation      = syscall.Errno(33)  // ERROR_LOCK_VIOLATION
	errFilenameExcedRange = syscall.Errno(206) // ERROR_FILENAME_EXCED_RANGE
)

// IsPathTooLong reports whether err was caused by a path exceeding the
// OS limit.
func IsPathTooLong(err error) bool {
	return errors.Is(err, errFilenameExcedRange) || errors.Is(err, syscall.ENAMETOOLONG)
}

// IsLocked reports whether err indicates the destination is held open by
// another process, typically a running instance of the application being
// upgraded.
func IsLocked(err error) bool {
	return errors.Is(err, errSharingViolation) || errors.Is(err, errLockViolation)
}
