// Package planner turns a package manifest into an ordered list of
// filesystem operations for the install engine to execute.
//
// Planning is pure: it never touches the filesystem. Gated behavior
// (shortcut creation) is resolved here with an explicit set-membership
// check on the selected tasks, so the resulting plan says exactly what
// will happen.
package planner

import (
	"fmt"
	"path/filepath"

	"github.com/csn-tools/etiqsetup/internal/manifest"
)

// BuildInstallPlan builds the ordered plan for one run: directories,
// stale-state purges, staged files, then (if the gating task is selected)
// the shortcut.
func BuildInstallPlan(m *manifest.Manifest, packageDir, root string, selectedTasks map[string]bool) (*InstallPlan, error) {
	plan := NewInstallPlan()

	for _, dir := range m.Dirs {
		plan.AddOperation(Operation{
			Type:     OpEnsureDir,
			DestPath: filepath.Join(root, filepath.FromSlash(dir)),
			RelPath:  dir,
		})
	}

	for _, rule := range m.StaleState {
		plan.AddOperation(Operation{
			Type:     OpPurge,
			DestPath: filepath.Join(root, filepath.FromSlash(rule.Path)),
			RelPath:  rule.Path,
		})
	}

	for _, entry := range m.Files {
		opType := OpStageFile
		if entry.Recursive {
			opType = OpStageTree
		}
		plan.AddOperation(Operation{
			Type:       opType,
			SourcePath: filepath.Join(packageDir, filepath.FromSlash(entry.Source)),
			DestPath:   filepath.Join(root, filepath.FromSlash(entry.Dest)),
			RelPath:    entry.Dest,
			Policy:     entry.Policy,
		})
	}

	if m.Shortcut != nil && m.Shortcut.EnabledByTask != "" {
		if !m.HasTask(m.Shortcut.EnabledByTask) {
			return nil, fmt.Errorf("shortcut references unknown task %q", m.Shortcut.EnabledByTask)
		}
		if selectedTasks[m.Shortcut.EnabledByTask] {
			plan.AddOperation(Operation{
				Type:        OpCreateShortcut,
				DestPath:    filepath.Join(root, filepath.FromSlash(m.Shortcut.Target)),
				RelPath:     m.Shortcut.Target,
				DisplayName: m.Shortcut.DisplayName,
			})
		}
	}

	return plan, nil
}
