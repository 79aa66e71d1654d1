package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/csn-tools/etiqsetup/internal/config"
	"github.com/csn-tools/etiqsetup/internal/manifest"
)

// Status reports the state of the install root from its receipt.
func (e *Engine) Status(ctx context.Context, req *StatusRequest) (*StatusResult, error) {
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
			return nil, fmt.Errorf("%w: %s", ErrNotInstalled, paths.Root)
		}
		return nil, fmt.Errorf("failed to load install receipt: %w", err)
	}

	return &StatusResult{Root: paths.Root, Receipt: rec}, nil
}
