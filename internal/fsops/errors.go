package fsops

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// IsPermission reports whether err was caused by insufficient filesystem
// permissions.
func IsPermission(err error) bool {
	return errors.Is(err, os.ErrPermission) || errors.Is(err, syscall.EACCES)
}

// IsNotExist reports whether err indicates a missing file or directory.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
