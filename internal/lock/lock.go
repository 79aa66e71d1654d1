// Package lock prevents two installer instances from mutating the same
// machine at once.
//
// The engine itself is not safe against concurrent runs, so the CLI takes
// a file lock before invoking it. The lock is advisory and released when
// the process exits.
package lock

import (
	"fmt"

	"github.com/gofrs/flock"
)

// InstallLock is a single-instance guard backed by a file lock.
type InstallLock struct {
	fl *flock.Flock
}

// New creates an InstallLock for the given lock file path.
func New(path string) *InstallLock {
	return &InstallLock{fl: flock.New(path)}
}

// Acquire attempts to take the lock without blocking. It fails when
// another installer instance already holds it.
func (l *InstallLock) Acquire() error {
	locked, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire install lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another installer instance is already running")
	}
	return nil
}

// Release releases the lock.
func (l *InstallLock) Release() error {
	return l.fl.Unlock()
}
