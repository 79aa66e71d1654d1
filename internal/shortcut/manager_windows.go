//go:build windows

package shortcut

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// WindowsManager implements Manager with .lnk files on the current user's
// desktop, created through the WScript.Shell COM object.
type WindowsManager struct {
	// DesktopDir overrides the desktop directory (tests). Empty means
	// %USERPROFILE%\Desktop.
	DesktopDir string
}

// NewManager creates the platform shortcut manager.
func NewManager() Manager {
	return &WindowsManager{}
}

func (m *WindowsManager) desktopDir() (string, error) {
	if m.DesktopDir != "" {
		return m.DesktopDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user profile: %w", err)
	}
	return filepath.Join(home, "Desktop"), nil
}

func linkPath(desktopDir, displayName string) string {
	return filepath.Join(desktopDir, displayName+".lnk")
}

// Create writes the .lnk file, replacing any existing one. CreateShortcut
// on an existing path loads it, so saving overwrites in place.
func (m *WindowsManager) Create(spec Spec) error {
	desktop, err := m.desktopDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(desktop, 0755); err != nil {
		return fmt.Errorf("failed to create desktop directory: %w", err)
	}

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		return fmt.Errorf("failed to initialize COM: %w", err)
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("failed to create WScript.Shell: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("failed to query IDispatch: %w", err)
	}
	defer shell.Release()

	linkVariant, err := oleutil.CallMethod(shell, "CreateShortcut", linkPath(desktop, spec.DisplayName))
	if err != nil {
		return fmt.Errorf("failed to create shortcut object: %w", err)
	}
	link := linkVariant.ToIDispatch()
	defer link.Release()

	if _, err := oleutil.PutProperty(link, "TargetPath", spec.Target); err != nil {
		return fmt.Errorf("failed to set target path: %w", err)
	}
	if spec.WorkingDir != "" {
		if _, err := oleutil.PutProperty(link, "WorkingDirectory", spec.WorkingDir); err != nil {
			return fmt.Errorf("failed to set working directory: %w", err)
		}
	}
	if _, err := oleutil.CallMethod(link, "Save"); err != nil {
		return fmt.Errorf("failed to save shortcut: %w", err)
	}

	return nil
}

// Remove deletes the .lnk file if present.
func (m *WindowsManager) Remove(displayName string) error {
	desktop, err := m.desktopDir()
	if err != nil {
		return err
	}
	err = os.Remove(linkPath(desktop, displayName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove shortcut: %w", err)
	}
	return nil
}
