package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// resetFlags restores flag defaults between executions, since the flag
// variables are package-level.
func resetFlags() {
	substChar = "_"
	recursive = false
	quiet = false
	suppressErrors = false
}

func TestRootCommand_FlagDefaults(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: "char", shorthand: "c", defValue: "_"},
		{name: "recursive", shorthand: "r", defValue: "false"},
		{name: "quiet", shorthand: "q", defValue: "false"},
		{name: "suppress-errors", shorthand: "s", defValue: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := rootCmd.Flags().Lookup(tt.name)
			if f == nil {
				t.Fatalf("flag %q not registered", tt.name)
			}
			if f.Shorthand != tt.shorthand {
				t.Errorf("flag %q shorthand = %q, want %q", tt.name, f.Shorthand, tt.shorthand)
			}
			if f.DefValue != tt.defValue {
				t.Errorf("flag %q default = %q, want %q", tt.name, f.DefValue, tt.defValue)
			}
		})
	}
}

func TestRootCommand_RenamesFile(t *testing.T) {
	defer resetFlags()

	dir := t.TempDir()
	path := filepath.Join(dir, "hello world.txt")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	rootCmd.SetArgs([]string{"-q", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "hello_world.txt")); err != nil {
		t.Errorf("expected renamed file to exist: %v", err)
	}
}

func TestRootCommand_CustomChar(t *testing.T) {
	defer resetFlags()

	dir := t.TempDir()
	path := filepath.Join(dir, "hello world.txt")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	rootCmd.SetArgs([]string{"-q", "-c", "-", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "hello-world.txt")); err != nil {
		t.Errorf("expected renamed file to exist: %v", err)
	}
}

func TestRootCommand_SuppressedSkipReportsNonZero(t *testing.T) {
	defer resetFlags()

	missing := filepath.Join(t.TempDir(), "does not exist")

	rootCmd.SetArgs([]string{"-q", "-s", missing})
	err := rootCmd.Execute()
	if !errors.Is(err, errSkipped) {
		t.Errorf("Execute() error = %v, want errSkipped", err)
	}
}

func TestRootCommand_RequiresArgs(t *testing.T) {
	defer resetFlags()

	rootCmd.SetArgs([]string{})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Execute() with no paths expected an error, got nil")
	}
}
