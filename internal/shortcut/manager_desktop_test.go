//go:build !windows

package shortcut

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDesktopManager_Create(t *testing.T) {
	dir := t.TempDir()
	m := &DesktopManager{DesktopDir: dir}

	spec := Spec{
		DisplayName: "Etiquettes CSN",
		Target:      "/home/user/.local/share/Etiquettes CSN/EtiquettesCSN.exe",
		WorkingDir:  "/home/user/.local/share/Etiquettes CSN",
	}

	if err := m.Create(spec); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	path := filepath.Join(dir, "etiquettes-csn.desktop")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected desktop entry at %s: %v", path, err)
	}

	content := string(data)
	if !strings.Contains(content, "Name=Etiquettes CSN") {
		t.Errorf("entry missing name: %s", content)
	}
	if !strings.Contains(content, "EtiquettesCSN.exe") {
		t.Errorf("entry missing target: %s", content)
	}
}

func TestDesktopManager_CreateReplaces(t *testing.T) {
	dir := t.TempDir()
	m := &DesktopManager{DesktopDir: dir}
	spec := Spec{DisplayName: "Etiquettes CSN", Target: "/a/app.exe"}

	if err := m.Create(spec); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	spec.Target = "/b/app.exe"
	if err := m.Create(spec); err != nil {
		t.Fatalf("second Create failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read desktop dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one shortcut, got %d", len(entries))
	}

	data, _ := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if !strings.Contains(string(data), "/b/app.exe") {
		t.Errorf("shortcut not replaced: %s", data)
	}
}

func TestDesktopManager_RemoveMissingIsSuccess(t *testing.T) {
	m := &DesktopManager{DesktopDir: t.TempDir()}
	if err := m.Remove("Etiquettes CSN"); err != nil {
		t.Errorf("Remove of missing shortcut should succeed, got: %v", err)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Etiquettes CSN", "etiquettes-csn"},
		{"App_2 (beta)", "app-2-beta"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
