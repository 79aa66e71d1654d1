package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/csn-tools/etiqsetup/internal/config"
	"github.com/csn-tools/etiqsetup/internal/fsops"
	"github.com/csn-tools/etiqsetup/internal/manifest"
	"github.com/csn-tools/etiqsetup/internal/planner"
	"github.com/csn-tools/etiqsetup/internal/receipt"
	"github.com/csn-tools/etiqsetup/internal/shortcut"
)

// Algorithm steps:
// 1. Load the package manifest and resolve the install root
// 2. Load the previous install receipt (if any)
// 3. Resolve selected tasks and build the plan
// 4. Execute: directories -> purge -> stage -> shortcut
// 5. Persist the new receipt
// 6. Launch the application (interactive runs only)
func (e *Engine) Install(ctx context.Context, req *InstallRequest) (*InstallResult, error) {
	m, err := manifest.Load(req.PackageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load package manifest: %w", err)
	}

	paths, err := config.ResolveRoot(m.App.Name, req.RootOverride)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve install root: %w", err)
	}

	prev, err := e.loadPrevReceipt(paths.Receipt)
	if err != nil {
		return nil, err
	}

	selected, err := resolveTasks(m, req.SelectedTasks)
	if err != nil {
		return nil, err
	}

	plan, err := planner.BuildInstallPlan(m, req.PackageDir, paths.Root, selected)
	if err != nil {
		return nil, fmt.Errorf("failed to build install plan: %w", err)
	}

	result := &InstallResult{
		Plan:       plan,
		Root:       paths.Root,
		FinalState: StateStart,
	}

	if req.DryRun {
		return result, nil
	}

	rec := receipt.New(m.App.ID, m.App.Name, m.App.Version, m.App.Publisher)
	rec.SelectedTasks = taskIDs(selected)
	if prev != nil {
		// Until the shortcut step says otherwise, the previous shortcut
		// state carries over: an unselected task never removes an
		// existing shortcut.
		rec.ShortcutCreated = prev.ShortcutCreated
	}

	fail := func(step string, err error) (*InstallResult, error) {
		result.FinalState = StateFailed
		result.FailedStep = step
		return result, err
	}

	// Step: provision directories
	if err := e.fs.MkdirAll(paths.Root, 0755); err != nil {
		return fail(StepDirectories, classifyFS(err))
	}
	for _, op := range plan.Operations {
		if op.Type != planner.OpEnsureDir {
			continue
		}
		if err := e.fs.MkdirAll(op.DestPath, 0755); err != nil {
			return fail(StepDirectories, classifyFS(err))
		}
	}
	result.FinalState = StateDirectoriesReady

	// Step: purge stale state. Deletion here is deliberate policy: the
	// new binary regenerates the data from scratch. Absence is success.
	for _, op := range plan.Operations {
		if op.Type != planner.OpPurge {
			continue
		}
		if err := e.executePurge(op); err != nil {
			return fail(StepMigrate, classifyFS(err))
		}
	}
	result.FinalState = StateStateMigrated

	// Step: stage files
	for _, op := range plan.Operations {
		switch op.Type {
		case planner.OpStageFile, planner.OpStageTree:
		default:
			continue
		}
		staged, err := e.executeStage(op, m, prev, rec)
		if err != nil {
			return fail(StepStage, err)
		}
		if staged {
			result.Staged = append(result.Staged, op.RelPath)
		} else {
			result.Skipped = append(result.Skipped, op.RelPath)
		}
	}
	result.FinalState = StateFilesStaged

	// Step: resolve shortcut. Failure is a warning, never fatal.
	for _, op := range plan.Operations {
		if op.Type != planner.OpCreateShortcut {
			continue
		}
		spec := shortcut.Spec{
			DisplayName: op.DisplayName,
			Target:      op.DestPath,
			WorkingDir:  paths.Root,
		}
		if err := e.shortcuts.Create(spec); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: %s", ErrShortcutFailed, err))
		} else {
			rec.ShortcutCreated = true
		}
	}
	result.FinalState = StateShortcutResolved

	rec.InstalledAt = e.clock.Now()
	if err := e.receipts.Save(paths.Receipt, rec); err != nil {
		return fail(StepReceipt, classifyFS(err))
	}
	result.Receipt = rec
	result.FinalState = StateComplete

	// Post-install launch: interactive runs only, spawn and do not wait.
	if m.PostInstall != nil && !(req.Silent && m.PostInstall.SkipIfSilent) {
		target := joinRoot(paths.Root, m.PostInstall.Command)
		if err := e.launcher.Spawn(target, paths.Root); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("failed to launch application: %s", err))
		} else {
			result.Launched = true
		}
	}

	return result, nil
}

// joinRoot resolves a manifest-relative path under the install root.
func joinRoot(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// loadPrevReceipt loads the previous receipt; a missing receipt means a
// fresh install and is not an error.
func (e *Engine) loadPrevReceipt(path string) (*receipt.InstallReceipt, error) {
	prev, err := e.receipts.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load install receipt: %w", err)
	}
	return prev, nil
}

// executePurge removes the stale state target. A missing target is a
// success outcome (first-time install).
func (e *Engine) executePurge(op planner.Operation) error {
	exists, err := e.fs.Exists(op.DestPath)
	if err != nil {
		return fmt.Errorf("failed to check stale state %s: %w", op.RelPath, err)
	}
	if !exists {
		return nil
	}
	if err := e.fs.RemoveAll(op.DestPath); err != nil {
		return fmt.Errorf("failed to purge %s: %w", op.RelPath, err)
	}
	return nil
}

// executeStage stages one file entry. Returns whether the entry was
// copied (false when skipped by the if-newer-version policy).
func (e *Engine) executeStage(op planner.Operation, m *manifest.Manifest, prev, rec *receipt.InstallReceipt) (bool, error) {
	if op.Policy == manifest.PolicyIfNewerVersion && prev != nil {
		if m.CompareVersion(prev.Version) <= 0 {
			// Installed version is already at least the packaged one.
			if prevRec, ok := prev.Files[op.RelPath]; ok {
				rec.Files[op.RelPath] = prevRec
			}
			return false, nil
		}
	}

	if op.Type == planner.OpStageTree {
		if err := e.fs.MirrorTree(op.SourcePath, op.DestPath); err != nil {
			return false, classifyStage(op, err)
		}
		rec.RecordFile(op.RelPath, "", e.clock.Now())
		return true, nil
	}

	if err := e.fs.CopyFile(op.SourcePath, op.DestPath); err != nil {
		return false, classifyStage(op, err)
	}

	checksum, err := e.hasher.HashFile(op.DestPath)
	if err != nil {
		return false, fmt.Errorf("failed to checksum %s: %w", op.RelPath, err)
	}
	rec.RecordFile(op.RelPath, checksum, e.clock.Now())
	return true, nil
}

// classifyStage maps a staging error to the matching sentinel kind. A
// missing source is a packaging defect; a locked destination is
// user-recoverable.
func classifyStage(op planner.Operation, err error) error {
	if fsops.IsNotExist(err) {
		return fmt.Errorf("%w: %s (%s)", ErrSourceMissing, op.SourcePath, err)
	}
	return classifyFS(err)
}

// resolveTasks merges the manifest's default task selection with the
// explicitly requested tasks and rejects unknown task IDs.
// taskIDs returns the resolved selection as a sorted slice, so receipts
// record default-selected tasks too and compare stably across runs.
func taskIDs(selected map[string]bool) []string {
	ids := make([]string, 0, len(selected))
	for id := range selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func resolveTasks(m *manifest.Manifest, requested []string) (map[string]bool, error) {
	selected := make(map[string]bool)
	for _, id := range m.DefaultTasks() {
		selected[id] = true
	}
	for _, id := range requested {
		if !m.HasTask(id) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTask, id)
		}
		selected[id] = true
	}
	return selected, nil
}
