package receipt

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/csn-tools/etiqsetup/internal/fsops"
)

// Store loads and saves install receipts.
type Store interface {
	// Load reads the receipt at path. Returns an error satisfying
	// os.IsNotExist when no receipt exists.
	Load(path string) (*InstallReceipt, error)

	// Save writes the receipt to path atomically.
	Save(path string, r *InstallReceipt) error

	// Remove deletes the receipt at path. Missing receipts are not an
	// error.
	Remove(path string) error
}

// FileStore implements Store with JSON files written through fsops.
type FileStore struct {
	fs fsops.FS
}

// NewFileStore creates a new FileStore.
func NewFileStore(fs fsops.FS) *FileStore {
	return &FileStore{fs: fs}
}

// Load reads the receipt at path.
func (s *FileStore) Load(path string) (*InstallReceipt, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var r InstallReceipt
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse install receipt: %w", err)
	}
	if r.Files == nil {
		r.Files = make(map[string]FileRecord)
	}
	return &r, nil
}

// Save writes the receipt to path atomically.
func (s *FileStore) Save(path string, r *InstallReceipt) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal install receipt: %w", err)
	}
	if err := s.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write install receipt: %w", err)
	}
	return nil
}

// Remove deletes the receipt at path.
func (s *FileStore) Remove(path string) error {
	err := s.fs.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove install receipt: %w", err)
	}
	return nil
}
