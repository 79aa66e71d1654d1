// Package config resolves the filesystem locations used by etiqsetup.
//
// The install root lives in a per-user data scope resolved through the
// XDG base directory spec, so no elevation is ever required. The root can
// be overridden per invocation (--root) or via the ETIQSETUP_ROOT
// environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ReceiptFileName is the name of the install receipt kept in the root.
const ReceiptFileName = ".install-receipt.json"

// Paths contains the filesystem paths for one install root.
type Paths struct {
	// Root is the install root for the application.
	Root string

	// Receipt is the path of the install receipt file.
	Receipt string
}

// ResolveRoot resolves the install root for the given application name.
// Priority: explicit override > ETIQSETUP_ROOT > per-user data directory.
func ResolveRoot(appName, override string) (*Paths, error) {
	root := override
	if root == "" {
		root = os.Getenv("ETIQSETUP_ROOT")
	}
	if root == "" {
		if appName == "" {
			return nil, fmt.Errorf("application name is required to resolve the install root")
		}
		root = filepath.Join(xdg.DataHome, appName)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve install root: %w", err)
	}

	return &Paths{
		Root:    abs,
		Receipt: filepath.Join(abs, ReceiptFileName),
	}, nil
}

// LockFilePath returns the path of the single-instance lock file, kept in
// the per-user state directory so that it survives an uninstall of the
// root itself.
func LockFilePath() (string, error) {
	dir := filepath.Join(xdg.StateHome, "etiqsetup")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create lock directory: %w", err)
	}
	return filepath.Join(dir, "install.lock"), nil
}
