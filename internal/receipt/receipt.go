// Package receipt persists the record of what an install run produced.
//
// The receipt is the authoritative record of the installed version and the
// files etiqsetup staged into an install root. It drives the
// if-newer-version overwrite policy, the status command, and uninstall.
// A missing receipt means a fresh machine.
package receipt

import "time"

// InstallReceipt records the outcome of the last successful install run.
type InstallReceipt struct {
	// AppID is the stable application identifier
	AppID string `json:"appId"`

	// AppName is the application display name
	AppName string `json:"appName"`

	// Version is the installed semantic version
	Version string `json:"version"`

	// Publisher is the publishing organization
	Publisher string `json:"publisher"`

	// InstalledAt is when the install run completed
	InstalledAt time.Time `json:"installedAt"`

	// Files maps staged destination paths (relative to the root) to
	// their records
	Files map[string]FileRecord `json:"files"`

	// ShortcutCreated indicates whether a desktop shortcut exists
	ShortcutCreated bool `json:"shortcutCreated"`

	// SelectedTasks is the list of optional tasks selected for the run
	SelectedTasks []string `json:"selectedTasks"`
}

// FileRecord describes one staged file.
type FileRecord struct {
	// Checksum is the SHA-256 hash of the staged file (empty for trees)
	Checksum string `json:"checksum,omitempty"`

	// StagedAt is when the file was staged
	StagedAt time.Time `json:"stagedAt"`
}

// New creates an empty receipt for the given application.
func New(appID, appName, version, publisher string) *InstallReceipt {
	return &InstallReceipt{
		AppID:     appID,
		AppName:   appName,
		Version:   version,
		Publisher: publisher,
		Files:     make(map[string]FileRecord),
	}
}

// RecordFile records a staged file.
func (r *InstallReceipt) RecordFile(relPath, checksum string, at time.Time) {
	r.Files[relPath] = FileRecord{Checksum: checksum, StagedAt: at}
}
