// Package launch starts the installed application after a successful run.
//
// The launch is a fire-and-forget handoff: the child process is started,
// released, and never waited on, so the installer can exit immediately
// without supervising the application.
package launch

import (
	"fmt"
	"os/exec"
)

// Launcher spawns the installed application.
type Launcher interface {
	// Spawn starts the executable at path with dir as its working
	// directory and does not wait for it to exit.
	Spawn(path, dir string) error
}

// ProcessLauncher implements Launcher with os/exec.
type ProcessLauncher struct{}

// NewProcessLauncher creates a new ProcessLauncher.
func NewProcessLauncher() *ProcessLauncher {
	return &ProcessLauncher{}
}

// Spawn starts the process and releases it. The child's exit status is
// never observed.
func (l *ProcessLauncher) Spawn(path, dir string) error {
	cmd := exec.Command(path)
	cmd.Dir = dir

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", path, err)
	}

	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release process: %w", err)
	}
	return nil
}

// FakeLauncher implements Launcher in memory for testing.
type FakeLauncher struct {
	// Spawned records the paths passed to Spawn, in order.
	Spawned []string

	// Fail forces Spawn to return this error.
	Fail error
}

// NewFakeLauncher creates a new FakeLauncher.
func NewFakeLauncher() *FakeLauncher {
	return &FakeLauncher{}
}

// Spawn records the invocation.
func (l *FakeLauncher) Spawn(path, _ string) error {
	if l.Fail != nil {
		return l.Fail
	}
	l.Spawned = append(l.Spawned, path)
	return nil
}
