package cli

import (
	"testing"
)

func TestResolvePackageDir(t *testing.T) {
	t.Run("explicit flag wins", func(t *testing.T) {
		dir := t.TempDir()
		got, err := resolvePackageDir(dir)
		if err != nil {
			t.Fatalf("resolvePackageDir failed: %v", err)
		}
		if got != dir {
			t.Errorf("resolvePackageDir = %q, want %q", got, dir)
		}
	})

	t.Run("defaults to the installer directory", func(t *testing.T) {
		got, err := resolvePackageDir("")
		if err != nil {
			t.Fatalf("resolvePackageDir failed: %v", err)
		}
		if got == "" {
			t.Error("expected a non-empty package directory")
		}
	})
}

func TestPrintCount(t *testing.T) {
	if got := PrintCount(1, "file", "files"); got != "1 file" {
		t.Errorf("PrintCount(1) = %q", got)
	}
	if got := PrintCount(3, "file", "files"); got != "3 files" {
		t.Errorf("PrintCount(3) = %q", got)
	}
}
