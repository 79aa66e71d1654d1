package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateRelPath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantError bool
	}{
		{
			name:      "valid relative path",
			path:      "src/app/templates",
			wantError: false,
		},
		{
			name:      "valid single file",
			path:      "EtiquettesCSN.exe",
			wantError: false,
		},
		{
			name:      "empty path",
			path:      "",
			wantError: true,
		},
		{
			name:      "current directory",
			path:      ".",
			wantError: true,
		},
		{
			name:      "absolute path",
			path:      "/etc/hosts",
			wantError: true,
		},
		{
			name:      "parent directory traversal",
			path:      "../etc/hosts",
			wantError: true,
		},
		{
			name:      "traversal in middle",
			path:      "data/../../../etc/hosts",
			wantError: true,
		},
		{
			name:      "path with dot prefix",
			path:      ".config/settings.ini",
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelPath(tt.path)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateRelPath(%q) error = %v, wantError %v", tt.path, err, tt.wantError)
			}
		})
	}
}

func TestRealFS_CopyFile(t *testing.T) {
	fs := NewRealFS()

	t.Run("copies file contents", func(t *testing.T) {
		tmp := t.TempDir()
		src := filepath.Join(tmp, "src.bin")
		dst := filepath.Join(tmp, "dst", "app.bin")

		if err := os.WriteFile(src, []byte("payload-v2"), 0644); err != nil {
			t.Fatalf("failed to write source: %v", err)
		}

		if err := fs.CopyFile(src, dst); err != nil {
			t.Fatalf("CopyFile failed: %v", err)
		}

		got, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("failed to read destination: %v", err)
		}
		if string(got) != "payload-v2" {
			t.Errorf("destination content = %q, want %q", got, "payload-v2")
		}
	})

	t.Run("replaces existing destination unconditionally", func(t *testing.T) {
		tmp := t.TempDir()
		src := filepath.Join(tmp, "src.bin")
		dst := filepath.Join(tmp, "dst.bin")

		if err := os.WriteFile(dst, []byte("old build"), 0644); err != nil {
			t.Fatalf("failed to write destination: %v", err)
		}
		if err := os.WriteFile(src, []byte("new build"), 0644); err != nil {
			t.Fatalf("failed to write source: %v", err)
		}

		if err := fs.CopyFile(src, dst); err != nil {
			t.Fatalf("CopyFile failed: %v", err)
		}

		got, _ := os.ReadFile(dst)
		if string(got) != "new build" {
			t.Errorf("destination content = %q, want %q", got, "new build")
		}
	})

	t.Run("fails on missing source", func(t *testing.T) {
		tmp := t.TempDir()
		err := fs.CopyFile(filepath.Join(tmp, "missing"), filepath.Join(tmp, "dst"))
		if err == nil {
			t.Fatal("expected error for missing source")
		}
		if !IsNotExist(err) {
			t.Errorf("expected not-exist classification, got: %v", err)
		}
	})

	t.Run("fails on directory source", func(t *testing.T) {
		tmp := t.TempDir()
		if err := fs.CopyFile(tmp, filepath.Join(tmp, "dst")); err == nil {
			t.Fatal("expected error for directory source")
		}
	})
}

func TestRealFS_MirrorTree(t *testing.T) {
	fs := NewRealFS()

	t.Run("mirrors nested tree", func(t *testing.T) {
		tmp := t.TempDir()
		src := filepath.Join(tmp, "templates")
		dst := filepath.Join(tmp, "root", "src", "app", "templates")

		mustWrite(t, filepath.Join(src, "label_62.zpl"), "zpl-a")
		mustWrite(t, filepath.Join(src, "attestation", "modele.docx"), "docx-b")

		if err := fs.MirrorTree(src, dst); err != nil {
			t.Fatalf("MirrorTree failed: %v", err)
		}

		assertContent(t, filepath.Join(dst, "label_62.zpl"), "zpl-a")
		assertContent(t, filepath.Join(dst, "attestation", "modele.docx"), "docx-b")
	})

	t.Run("does not delete extra destination files", func(t *testing.T) {
		tmp := t.TempDir()
		src := filepath.Join(tmp, "templates")
		dst := filepath.Join(tmp, "dst")

		mustWrite(t, filepath.Join(src, "shipped.txt"), "shipped")
		mustWrite(t, filepath.Join(dst, "user-added.txt"), "keep me")

		if err := fs.MirrorTree(src, dst); err != nil {
			t.Fatalf("MirrorTree failed: %v", err)
		}

		assertContent(t, filepath.Join(dst, "shipped.txt"), "shipped")
		assertContent(t, filepath.Join(dst, "user-added.txt"), "keep me")
	})

	t.Run("overwrites stale destination files", func(t *testing.T) {
		tmp := t.TempDir()
		src := filepath.Join(tmp, "templates")
		dst := filepath.Join(tmp, "dst")

		mustWrite(t, filepath.Join(src, "label.zpl"), "new")
		mustWrite(t, filepath.Join(dst, "label.zpl"), "old")

		if err := fs.MirrorTree(src, dst); err != nil {
			t.Fatalf("MirrorTree failed: %v", err)
		}

		assertContent(t, filepath.Join(dst, "label.zpl"), "new")
	})

	t.Run("is idempotent", func(t *testing.T) {
		tmp := t.TempDir()
		src := filepath.Join(tmp, "templates")
		dst := filepath.Join(tmp, "dst")

		mustWrite(t, filepath.Join(src, "a", "b.txt"), "b")

		if err := fs.MirrorTree(src, dst); err != nil {
			t.Fatalf("first MirrorTree failed: %v", err)
		}
		if err := fs.MirrorTree(src, dst); err != nil {
			t.Fatalf("second MirrorTree failed: %v", err)
		}

		assertContent(t, filepath.Join(dst, "a", "b.txt"), "b")
	})
}

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := NewRealFS()

	t.Run("writes new file", func(t *testing.T) {
		tmp := t.TempDir()
		path := filepath.Join(tmp, "receipt.json")

		if err := fs.AtomicWrite(path, []byte(`{"ok":true}`), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		assertContent(t, path, `{"ok":true}`)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		tmp := t.TempDir()
		path := filepath.Join(tmp, "receipt.json")

		if err := fs.AtomicWrite(path, []byte("data"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		entries, err := os.ReadDir(tmp)
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected 1 entry, got %d", len(entries))
		}
	})
}

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	tmp := t.TempDir()

	exists, err := fs.Exists(filepath.Join(tmp, "nope"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected missing path to report false")
	}

	mustWrite(t, filepath.Join(tmp, "yes"), "x")
	exists, err = fs.Exists(filepath.Join(tmp, "yes"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected existing path to report true")
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func assertContent(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	if string(got) != want {
		t.Errorf("%s content = %q, want %q", path, got, want)
	}
}
