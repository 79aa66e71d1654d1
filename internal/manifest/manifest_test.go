package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	m := Default()

	if err := m.Validate(); err != nil {
		t.Fatalf("default manifest should validate: %v", err)
	}

	if m.App.Name != "Etiquettes CSN" {
		t.Errorf("App.Name = %q", m.App.Name)
	}
	if len(m.StaleState) != 1 || m.StaleState[0].Path != "data/app.db" {
		t.Errorf("expected data/app.db purge rule, got %+v", m.StaleState)
	}
	if m.Shortcut == nil || m.Shortcut.EnabledByTask != "desktopicon" {
		t.Errorf("expected shortcut gated by desktopicon task, got %+v", m.Shortcut)
	}
	if len(m.DefaultTasks()) != 0 {
		t.Errorf("desktopicon should default to unselected, got %v", m.DefaultTasks())
	}
	if m.PostInstall == nil || !m.PostInstall.SkipIfSilent {
		t.Errorf("post-install launch should be skipped when silent, got %+v", m.PostInstall)
	}
}

func TestLoad(t *testing.T) {
	t.Run("falls back to default when file missing", func(t *testing.T) {
		m, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if m.App.Name != "Etiquettes CSN" {
			t.Errorf("expected default manifest, got app %q", m.App.Name)
		}
	})

	t.Run("parses manifest file", func(t *testing.T) {
		dir := t.TempDir()
		content := `
app:
  id: 9f1c9e0a-31d4-4a5b-8c55-6d1c0e9f4ab7
  name: Etiquettes CSN
  version: 2.1.0
  publisher: CSN
dirs:
  - data
files:
  - source: EtiquettesCSN.exe
    dest: EtiquettesCSN.exe
    policy: always
stale_state:
  - path: data/app.db
tasks:
  - id: desktopicon
    description: Créer une icône sur le Bureau
shortcut:
  display_name: Etiquettes CSN
  target: EtiquettesCSN.exe
  enabled_by_task: desktopicon
`
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write manifest: %v", err)
		}

		m, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if m.App.Version != "2.1.0" {
			t.Errorf("App.Version = %q, want 2.1.0", m.App.Version)
		}
		if len(m.Files) != 1 || m.Files[0].Policy != PolicyAlways {
			t.Errorf("unexpected files: %+v", m.Files)
		}
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte("app: ["), 0644); err != nil {
			t.Fatalf("failed to write manifest: %v", err)
		}
		if _, err := Load(dir); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Manifest { return Default() }

	tests := []struct {
		name   string
		mutate func(m *Manifest)
	}{
		{
			name:   "empty app name",
			mutate: func(m *Manifest) { m.App.Name = "" },
		},
		{
			name:   "invalid app id",
			mutate: func(m *Manifest) { m.App.ID = "not-a-uuid" },
		},
		{
			name:   "invalid version",
			mutate: func(m *Manifest) { m.App.Version = "latest" },
		},
		{
			name:   "absolute dir",
			mutate: func(m *Manifest) { m.Dirs = []string{"/var/data"} },
		},
		{
			name:   "traversal in file dest",
			mutate: func(m *Manifest) { m.Files[0].Dest = "../escape.exe" },
		},
		{
			name:   "unknown overwrite policy",
			mutate: func(m *Manifest) { m.Files[0].Policy = "maybe" },
		},
		{
			name:   "traversal in stale state path",
			mutate: func(m *Manifest) { m.StaleState[0].Path = "../../app.db" },
		},
		{
			name:   "shortcut references unknown task",
			mutate: func(m *Manifest) { m.Shortcut.EnabledByTask = "startmenu" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			if err := m.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestCompareVersion(t *testing.T) {
	m := Default()
	m.App.Version = "2.0.0"

	if got := m.CompareVersion("1.9.0"); got <= 0 {
		t.Errorf("CompareVersion(1.9.0) = %d, want > 0", got)
	}
	if got := m.CompareVersion("2.0.0"); got != 0 {
		t.Errorf("CompareVersion(2.0.0) = %d, want 0", got)
	}
	if got := m.CompareVersion("2.0.1"); got >= 0 {
		t.Errorf("CompareVersion(2.0.1) = %d, want < 0", got)
	}
}
