// Package manifest defines the package description consumed by the
// install engine.
//
// A manifest declares the application metadata, the files to stage, the
// directories to provision, the local state discarded on every upgrade,
// the optional user-selectable tasks, and the post-install launch command.
// It is loaded from a YAML file shipped alongside the payload; when no
// file is present, Default() describes the standard Etiquettes CSN layout.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/csn-tools/etiqsetup/internal/fsops"
)

// FileName is the name of the manifest file inside a package directory.
const FileName = "etiqsetup.yaml"

// Overwrite policies for file entries.
const (
	PolicyAlways         = "always"
	PolicyIfNewerVersion = "if-newer-version"
)

// Manifest describes one installable package.
type Manifest struct {
	App         App              `yaml:"app"`
	Dirs        []string         `yaml:"dirs"`
	Files       []FileEntry      `yaml:"files"`
	StaleState  []StaleStateRule `yaml:"stale_state"`
	Tasks       []TaskOption     `yaml:"tasks"`
	Shortcut    *ShortcutSpec    `yaml:"shortcut"`
	PostInstall *PostInstall     `yaml:"post_install"`
}

// App holds the application metadata.
type App struct {
	// ID is the stable application identifier (UUID).
	ID string `yaml:"id"`

	// Name is the display name of the application.
	Name string `yaml:"name"`

	// Version is the semantic version of this package.
	Version string `yaml:"version"`

	// Publisher is the publishing organization.
	Publisher string `yaml:"publisher"`
}

// FileEntry describes one file (or file tree) to stage into the install root.
type FileEntry struct {
	// Source is the path of the packaged content, relative to the package
	// directory.
	Source string `yaml:"source"`

	// Dest is the destination path relative to the install root.
	Dest string `yaml:"dest"`

	// Policy is the overwrite policy: "always" or "if-newer-version".
	Policy string `yaml:"policy"`

	// Recursive marks the entry as a directory tree to mirror.
	Recursive bool `yaml:"recursive"`
}

// StaleStateRule names local state that is deliberately discarded before
// staging. The deletion is unconditional; the new binary regenerates the
// state from scratch. This is intentional data loss, not a backup.
type StaleStateRule struct {
	// Path is the target path relative to the install root.
	Path string `yaml:"path"`
}

// TaskOption is a user-selectable optional installer behavior.
type TaskOption struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Default     bool   `yaml:"default"`
}

// ShortcutSpec describes the launch shortcut, created only when the
// owning task is selected.
type ShortcutSpec struct {
	// DisplayName is the user-facing shortcut name.
	DisplayName string `yaml:"display_name"`

	// Target is the executable path relative to the install root.
	Target string `yaml:"target"`

	// EnabledByTask is the ID of the task gating shortcut creation.
	EnabledByTask string `yaml:"enabled_by_task"`
}

// PostInstall describes the optional launch performed after a successful
// install. It is skipped entirely in silent mode.
type PostInstall struct {
	// Command is the executable path relative to the install root.
	Command string `yaml:"command"`

	// SkipIfSilent suppresses the launch for non-interactive runs.
	SkipIfSilent bool `yaml:"skip_if_silent"`
}

// Default returns the built-in manifest for the Etiquettes CSN package:
// the main executable (always overwritten), the template asset tree
// (additive mirror), an empty data directory for the application's own
// runtime use, and the purge of the previous install's database.
func Default() *Manifest {
	return &Manifest{
		App: App{
			ID:        "9f1c9e0a-31d4-4a5b-8c55-6d1c0e9f4ab7",
			Name:      "Etiquettes CSN",
			Version:   "1.0.0",
			Publisher: "CSN",
		},
		Dirs: []string{"data"},
		Files: []FileEntry{
			{Source: "EtiquettesCSN.exe", Dest: "EtiquettesCSN.exe", Policy: PolicyAlways},
			{Source: "src/app/templates", Dest: "src/app/templates", Policy: PolicyAlways, Recursive: true},
		},
		StaleState: []StaleStateRule{
			{Path: "data/app.db"},
		},
		Tasks: []TaskOption{
			{ID: "desktopicon", Description: "Créer une icône sur le Bureau", Default: false},
		},
		Shortcut: &ShortcutSpec{
			DisplayName:   "Etiquettes CSN",
			Target:        "EtiquettesCSN.exe",
			EnabledByTask: "desktopicon",
		},
		PostInstall: &PostInstall{
			Command:      "EtiquettesCSN.exe",
			SkipIfSilent: true,
		},
	}
}

// Load reads the manifest from packageDir. When no manifest file exists
// the built-in default is returned.
func Load(packageDir string) (*Manifest, error) {
	path := filepath.Join(packageDir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			m := Default()
			if err := m.Validate(); err != nil {
				return nil, err
			}
			return m, nil
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest for internal consistency.
func (m *Manifest) Validate() error {
	if m.App.Name == "" {
		return fmt.Errorf("manifest: app name is required")
	}
	if _, err := uuid.Parse(m.App.ID); err != nil {
		return fmt.Errorf("manifest: invalid app id %q: %w", m.App.ID, err)
	}
	if !semver.IsValid(canonicalVersion(m.App.Version)) {
		return fmt.Errorf("manifest: invalid version %q", m.App.Version)
	}

	for _, dir := range m.Dirs {
		if err := fsops.ValidateRelPath(dir); err != nil {
			return fmt.Errorf("manifest: dir %q: %w", dir, err)
		}
	}
	for _, f := range m.Files {
		if f.Source == "" {
			return fmt.Errorf("manifest: file entry with empty source")
		}
		if err := fsops.ValidateRelPath(f.Dest); err != nil {
			return fmt.Errorf("manifest: file dest %q: %w", f.Dest, err)
		}
		switch f.Policy {
		case PolicyAlways, PolicyIfNewerVersion:
		default:
			return fmt.Errorf("manifest: unknown overwrite policy %q for %s", f.Policy, f.Dest)
		}
	}
	for _, rule := range m.StaleState {
		if err := fsops.ValidateRelPath(rule.Path); err != nil {
			return fmt.Errorf("manifest: stale state path %q: %w", rule.Path, err)
		}
	}
	if m.Shortcut != nil {
		if m.Shortcut.DisplayName == "" {
			return fmt.Errorf("manifest: shortcut display name is required")
		}
		if err := fsops.ValidateRelPath(m.Shortcut.Target); err != nil {
			return fmt.Errorf("manifest: shortcut target %q: %w", m.Shortcut.Target, err)
		}
		if m.Shortcut.EnabledByTask != "" && !m.HasTask(m.Shortcut.EnabledByTask) {
			return fmt.Errorf("manifest: shortcut references unknown task %q", m.Shortcut.EnabledByTask)
		}
	}
	if m.PostInstall != nil {
		if err := fsops.ValidateRelPath(m.PostInstall.Command); err != nil {
			return fmt.Errorf("manifest: post-install command %q: %w", m.PostInstall.Command, err)
		}
	}

	return nil
}

// HasTask reports whether the manifest declares a task with the given ID.
func (m *Manifest) HasTask(id string) bool {
	for _, task := range m.Tasks {
		if task.ID == id {
			return true
		}
	}
	return false
}

// DefaultTasks returns the IDs of tasks selected by default.
func (m *Manifest) DefaultTasks() []string {
	var selected []string
	for _, task := range m.Tasks {
		if task.Default {
			selected = append(selected, task.ID)
		}
	}
	return selected
}

// CompareVersion compares the manifest version against another semantic
// version string. It returns -1, 0, or +1 following semver ordering.
func (m *Manifest) CompareVersion(other string) int {
	return semver.Compare(canonicalVersion(m.App.Version), canonicalVersion(other))
}

// canonicalVersion normalizes a version string for x/mod/semver, which
// expects a leading "v".
func canonicalVersion(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
