package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/csn-tools/etiqsetup/internal/config"
	"github.com/csn-tools/etiqsetup/internal/manifest"
)

// Uninstall removes an existing install: the desktop shortcut (if one was
// created), the install root with everything under it, and the receipt.
func (e *Engine) Uninstall(ctx context.Context, req *UninstallRequest) (*UninstallResult, error) {
	m, err := manifest.Load(req.PackageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load package manifest: %w", err)
	}

	paths, err := config.ResolveRoot(m.App.Name, req.RootOverride)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve install root: %w", err)
	}

	rec, err := e.receipts.Load(paths.Receipt)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no receipt at %s", ErrNotInstalled, paths.Receipt)
		}
		return nil, fmt.Errorf("failed to load install receipt: %w", err)
	}

	result := &UninstallResult{Root: paths.Root}

	if rec.ShortcutCreated && m.Shortcut != nil {
		if err := e.shortcuts.Remove(m.Shortcut.DisplayName); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrShortcutFailed, err)
		}
		result.ShortcutRemoved = true
	}

	// The receipt lives inside the root, so this removes it too.
	if err := e.fs.RemoveAll(paths.Root); err != nil {
		return nil, classifyFS(err)
	}

	return result, nil
}
