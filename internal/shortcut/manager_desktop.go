//go:build !windows

package shortcut

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// DesktopManager implements Manager with freedesktop .desktop entries in
// the current user's desktop directory.
type DesktopManager struct {
	// DesktopDir overrides the desktop directory (tests). Empty means the
	// XDG user desktop directory.
	DesktopDir string
}

// NewManager creates the platform shortcut manager.
func NewManager() Manager {
	return &DesktopManager{}
}

func (m *DesktopManager) desktopDir() string {
	if m.DesktopDir != "" {
		return m.DesktopDir
	}
	return xdg.UserDirs.Desktop
}

func (m *DesktopManager) entryPath(displayName string) string {
	return filepath.Join(m.desktopDir(), slug(displayName)+".desktop")
}

// Create writes the .desktop entry, replacing any existing one.
func (m *DesktopManager) Create(spec Spec) error {
	dir := m.desktopDir()
	if dir == "" {
		return fmt.Errorf("no desktop directory for the current user")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create desktop directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", spec.DisplayName)
	fmt.Fprintf(&b, "Exec=%q\n", spec.Target)
	if spec.WorkingDir != "" {
		fmt.Fprintf(&b, "Path=%s\n", spec.WorkingDir)
	}
	b.WriteString("Terminal=false\n")

	path := m.entryPath(spec.DisplayName)
	if err := os.WriteFile(path, []byte(b.String()), 0755); err != nil {
		return fmt.Errorf("failed to write desktop entry: %w", err)
	}
	return nil
}

// Remove deletes the .desktop entry if present.
func (m *DesktopManager) Remove(displayName string) error {
	err := os.Remove(m.entryPath(displayName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove desktop entry: %w", err)
	}
	return nil
}

// slug converts a display name to a safe file name.
func slug(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
