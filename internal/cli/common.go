package cli

import (
	"encoding/json"
	"os"

	"github.com/csn-tools/etiqsetup/internal/clock"
	"github.com/csn-tools/etiqsetup/internal/config"
	"github.com/csn-tools/etiqsetup/internal/engine"
	"github.com/csn-tools/etiqsetup/internal/fsops"
	"github.com/csn-tools/etiqsetup/internal/hash"
	"github.com/csn-tools/etiqsetup/internal/launch"
	"github.com/csn-tools/etiqsetup/internal/lock"
	"github.com/csn-tools/etiqsetup/internal/receipt"
	"github.com/csn-tools/etiqsetup/internal/shortcut"
)

// newEngine creates a new engine with real implementations of all
// dependencies.
func newEngine() *engine.Engine {
	fs := fsops.NewRealFS()
	return engine.New(
		fs,
		hash.NewSHA256Hasher(),
		&clock.RealClock{},
		shortcut.NewManager(),
		launch.NewProcessLauncher(),
		receipt.NewFileStore(fs),
	)
}

// acquireLock takes the single-instance install lock. The engine is not
// safe against concurrent runs, so every mutating command goes through
// this. The returned release function is a no-op on failure paths.
func acquireLock() (func(), error) {
	path, err := config.LockFilePath()
	if err != nil {
		return nil, err
	}
	l := lock.New(path)
	if err := l.Acquire(); err != nil {
		return nil, err
	}
	return func() {
		_ = l.Release()
	}, nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}
