// Package engine provides the core orchestration for install, upgrade,
// and uninstall runs.
//
// The engine sequences the work of a run strictly: provision directories,
// purge stale state, stage files, resolve the shortcut, then optionally
// launch the application. Steps are never retried and never rolled back;
// each step is idempotent on its own, so recovery from a failed run is
// simply re-running the whole install.
//
// Key components:
//   - Engine: main orchestrator called by the CLI
//   - Install/Uninstall/Status: the three operations of a run
//   - Sentinel errors classifying fatal vs user-recoverable failures
package engine

import (
	"fmt"

	"github.com/csn-tools/etiqsetup/internal/clock"
	"github.com/csn-tools/etiqsetup/internal/fsops"
	"github.com/csn-tools/etiqsetup/internal/hash"
	"github.com/csn-tools/etiqsetup/internal/launch"
	"github.com/csn-tools/etiqsetup/internal/receipt"
	"github.com/csn-tools/etiqsetup/internal/shortcut"
)

// Run states. A run advances through them in order; any fatal step error
// moves it to StateFailed and aborts the remaining steps.
const (
	StateStart            = "start"
	StateDirectoriesReady = "directories_ready"
	StateStateMigrated    = "state_migrated"
	StateFilesStaged      = "files_staged"
	StateShortcutResolved = "shortcut_resolved"
	StateComplete         = "complete"
	StateFailed           = "failed"
)

// Step names reported on failure.
const (
	StepDirectories = "directories"
	StepMigrate     = "migrate"
	StepStage       = "stage"
	StepShortcut    = "shortcut"
	StepReceipt     = "receipt"
	StepLaunch      = "launch"
)

// Engine orchestrates install, uninstall, and status runs.
// It is the main API surface called by the CLI.
type Engine struct {
	fs        fsops.FS
	hasher    hash.Hasher
	clock     clock.Clock
	shortcuts shortcut.Manager
	launcher  launch.Launcher
	receipts  receipt.Store
}

// New creates a new Engine with the given dependencies.
func New(
	fs fsops.FS,
	hasher hash.Hasher,
	clk clock.Clock,
	shortcuts shortcut.Manager,
	launcher launch.Launcher,
	receipts receipt.Store,
) *Engine {
	return &Engine{
		fs:        fs,
		hasher:    hasher,
		clock:     clk,
		shortcuts: shortcuts,
		launcher:  launcher,
		receipts:  receipts,
	}
}

// classifyFS maps a low-level filesystem error to the matching sentinel
// error kind, preserving the original message.
func classifyFS(err error) error {
	switch {
	case fsops.IsPermission(err):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, err)
	case fsops.IsPathTooLong(err):
		return fmt.Errorf("%w: %s", ErrPathTooLong, err)
	case fsops.IsLocked(err):
		return fmt.Errorf("%w: %s", ErrDestinationLocked, err)
	default:
		return err
	}
}
