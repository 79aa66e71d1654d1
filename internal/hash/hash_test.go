package hash

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSHA256Hasher_HashFile(t *testing.T) {
	hasher := NewSHA256Hasher()

	t.Run("known content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		got, err := hasher.HashFile(path)
		if err != nil {
			t.Fatalf("HashFile failed: %v", err)
		}

		// sha256("hello")
		want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
		if got != want {
			t.Errorf("HashFile = %s, want %s", got, want)
		}
	})

	t.Run("identical content hashes identically", func(t *testing.T) {
		dir := t.TempDir()
		a := filepath.Join(dir, "a.bin")
		b := filepath.Join(dir, "b.bin")
		for _, p := range []string{a, b} {
			if err := os.WriteFile(p, []byte("same build"), 0644); err != nil {
				t.Fatalf("failed to write: %v", err)
			}
		}

		hashA, err := hasher.HashFile(a)
		if err != nil {
			t.Fatalf("HashFile(a) failed: %v", err)
		}
		hashB, err := hasher.HashFile(b)
		if err != nil {
			t.Fatalf("HashFile(b) failed: %v", err)
		}
		if hashA != hashB {
			t.Errorf("hashes differ: %s vs %s", hashA, hashB)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := hasher.HashFile(filepath.Join(t.TempDir(), "missing")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestFakeHasher(t *testing.T) {
	hasher := NewFakeHasher()
	hasher.SetHash("/root/app.exe", "deadbeef")

	got, err := hasher.HashFile("/root/app.exe")
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if got != "deadbeef" {
		t.Errorf("HashFile = %s, want deadbeef", got)
	}

	got, _ = hasher.HashFile("/other")
	if got != "fakehash" {
		t.Errorf("default hash = %s, want fakehash", got)
	}
}
