package engine

import "errors"

var (
	// ErrPermissionDenied indicates the install root is not writable by
	// the current user. Fatal.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrPathTooLong indicates a destination path exceeds the OS limit. Fatal.
	ErrPathTooLong = errors.New("path too long")

	// ErrSourceMissing indicates a packaged source file is absent. This is
	// a packaging defect and always fatal.
	ErrSourceMissing = errors.New("packaged source missing")

	// ErrDestinationLocked indicates a destination file is held open,
	// typically by a running instance of the application. The user can
	// close the application and re-run the install.
	ErrDestinationLocked = errors.New("destination file locked")

	// ErrShortcutFailed indicates shortcut creation failed. Non-fatal:
	// the shortcut is a convenience, not core functionality.
	ErrShortcutFailed = errors.New("shortcut creation failed")

	// ErrNotInstalled indicates no install receipt exists for the root.
	ErrNotInstalled = errors.New("not installed")

	// ErrUnknownTask indicates a selected task is not declared by the
	// package manifest.
	ErrUnknownTask = errors.New("unknown task")
)
