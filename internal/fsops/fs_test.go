package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRealFS_Canonicalize(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	target := filepath.Join(dir, "target.txt")
	if err := os.WriteFile(target, []byte("data"), 0644); err != nil {
		t.Fatalf("failed to create target: %v", err)
	}

	link := filepath.Join(dir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	// The temp dir itself may live behind a symlink, so resolve the
	// expected path the same way.
	want, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatalf("failed to resolve target: %v", err)
	}

	got, err := fs.Canonicalize(link)
	if err != nil {
		t.Fatalf("Canonicalize(%q) error = %v", link, err)
	}
	if got != want {
		t.Errorf("Canonicalize(%q) = %q, want %q", link, got, want)
	}
}

func TestRealFS_CanonicalizeMissingPath(t *testing.T) {
	fs := NewRealFS()
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := fs.Canonicalize(missing)
	if err == nil {
		t.Fatalf("Canonicalize(%q) expected error, got nil", missing)
	}
	if !os.IsNotExist(err) {
		t.Errorf("Canonicalize(%q) error = %v, want not-exist", missing, err)
	}
}

func TestRealFS_RenameAndReadDir(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	oldPath := filepath.Join(dir, "old name.txt")
	if err := os.WriteFile(oldPath, []byte("data"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	newPath := filepath.Join(dir, "new_name.txt")
	if err := fs.Rename(oldPath, newPath); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "new_name.txt" {
		t.Errorf("ReadDir() = %v, want single entry new_name.txt", entries)
	}
}

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: path, want: true},
		{name: "existing directory", path: dir, want: true},
		{name: "missing path", path: filepath.Join(dir, "nope"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.Exists(tt.path)
			if err != nil {
				t.Fatalf("Exists(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
