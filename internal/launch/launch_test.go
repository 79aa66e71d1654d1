package launch

import (
	"errors"
	"testing"
)

func TestFakeLauncher(t *testing.T) {
	l := NewFakeLauncher()

	if err := l.Spawn("/root/app.exe", "/root"); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if len(l.Spawned) != 1 || l.Spawned[0] != "/root/app.exe" {
		t.Errorf("Spawned = %v", l.Spawned)
	}

	l.Fail = errors.New("boom")
	if err := l.Spawn("/root/app.exe", "/root"); err == nil {
		t.Error("expected forced failure")
	}
	if len(l.Spawned) != 1 {
		t.Errorf("failed spawn should not be recorded, got %v", l.Spawned)
	}
}

func TestProcessLauncher_MissingExecutable(t *testing.T) {
	l := NewProcessLauncher()
	if err := l.Spawn("/nonexistent/definitely-missing-binary", "/"); err == nil {
		t.Error("expected error for missing executable")
	}
}
