package engine

import (
	"github.com/csn-tools/etiqsetup/internal/planner"
	"github.com/csn-tools/etiqsetup/internal/receipt"
)

// InstallResult represents the outcome of an install run.
type InstallResult struct {
	// Plan is the plan the run executed (or would execute, for dry runs)
	Plan *planner.InstallPlan

	// Root is the resolved install root
	Root string

	// FinalState is the state the run ended in
	FinalState string

	// FailedStep names the step a failed run died in (empty on success)
	FailedStep string

	// Staged lists the relative paths actually copied
	Staged []string

	// Skipped lists the relative paths skipped by overwrite policy
	Skipped []string

	// Warnings lists non-fatal problems collected during the run
	Warnings []string

	// Launched indicates whether the post-install launch was performed
	Launched bool

	// Receipt is the receipt persisted by a successful run
	Receipt *receipt.InstallReceipt
}

// UninstallResult represents the outcome of an uninstall run.
type UninstallResult struct {
	// Root is the install root that was removed
	Root string

	// ShortcutRemoved indicates whether a desktop shortcut was removed
	ShortcutRemoved bool
}

// StatusResult represents the state of an install root.
type StatusResult struct {
	// Root is the resolved install root
	Root string

	// Receipt is the persisted receipt
	Receipt *receipt.InstallReceipt
}
