// Package shortcut creates and removes the user-facing launch shortcut.
//
// Creation is gated upstream by the installer task selection; this package
// only knows how to materialize a shortcut for the current platform.
// Creating a shortcut that already exists replaces it, so re-running an
// install never duplicates shortcuts.
package shortcut

// Spec describes the shortcut to create on the current user's desktop.
type Spec struct {
	// DisplayName is the name shown to the user.
	DisplayName string

	// Target is the absolute path of the executable to launch.
	Target string

	// WorkingDir is the directory the target is started in.
	WorkingDir string
}

// Manager creates and removes desktop shortcuts.
type Manager interface {
	// Create materializes the shortcut, replacing any existing shortcut
	// with the same display name.
	Create(spec Spec) error

	// Remove deletes the shortcut with the given display name. A missing
	// shortcut is not an error.
	Remove(displayName string) error
}

// FakeManager implements Manager in memory for testing.
type FakeManager struct {
	// Created maps display names to the most recent spec.
	Created map[string]Spec

	// CreateCalls counts Create invocations.
	CreateCalls int

	// FailCreate forces Create to return this error.
	FailCreate error
}

// NewFakeManager creates a new FakeManager.
func NewFakeManager() *FakeManager {
	return &FakeManager{Created: make(map[string]Spec)}
}

// Create records the shortcut, replacing any prior spec.
func (m *FakeManager) Create(spec Spec) error {
	m.CreateCalls++
	if m.FailCreate != nil {
		return m.FailCreate
	}
	m.Created[spec.DisplayName] = spec
	return nil
}

// Remove forgets the shortcut.
func (m *FakeManager) Remove(displayName string) error {
	delete(m.Created, displayName)
	return nil
}
