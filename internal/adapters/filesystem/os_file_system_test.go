package filesystem

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"desta/internal/ports"
)

// testHome points the user's home directory at a per-test temporary directory.
func testHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func TestExpandPath(t *testing.T) {
	home := testHome(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde with forward slash", "~/.desta-config.yaml", filepath.Join(home, ".desta-config.yaml")},
		{"tilde only", "~", home},
		{"relative path", "data/plain.bin", "data/plain.bin"},
		{"absolute path", "/tmp/plain.bin", "/tmp/plain.bin"},
		{"tilde inside name", "~backup", "~backup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath(%q) error: %v", tt.input, err)
			}
			if filepath.Clean(result) != filepath.Clean(tt.expected) {
				t.Errorf("expandPath(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestOsFileSystem_AllMethods_DenyEmptyPath(t *testing.T) {
	fs := ProvideOsFileSystem()

	if _, err := fs.ReadFile(""); err == nil {
		t.Error("ReadFile should reject an empty path")
	}
	if err := fs.WriteFile("", []byte("x"), ports.ReadWrite); err == nil {
		t.Error("WriteFile should reject an empty path")
	}
	if err := fs.EnsureDirExists(""); err == nil {
		t.Error("EnsureDirExists should reject an empty path")
	}
	if _, err := fs.FileExists(""); err == nil {
		t.Error("FileExists should reject an empty path")
	}
}

func TestOsFileSystem_ReadWriteRoundTrip(t *testing.T) {
	fs := ProvideOsFileSystem()
	testFile := filepath.Join(t.TempDir(), "nested", "cipher.bin")
	content := []byte{0x85, 0xe8, 0x13, 0x54, 0x0f, 0x0a, 0xb4, 0x05}

	if err := fs.WriteFile(testFile, content, ports.ReadAllWriteOwner); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	result, err := fs.ReadFile(testFile)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if !bytes.Equal(result, content) {
		t.Errorf("ReadFile = %x, expected %x", result, content)
	}
}

func TestOsFileSystem_ReadWriteConfigFileInHome(t *testing.T) {
	fs := ProvideOsFileSystem()
	home := testHome(t)
	content := []byte("logging:\n  level: debug\n")

	if err := fs.WriteFile("~/.desta-config.yaml", content, ports.ReadWrite); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	exists, err := fs.FileExists("~/.desta-config.yaml")
	if err != nil || !exists {
		t.Fatalf("FileExists = %v, %v; expected true, nil", exists, err)
	}
	onDisk, err := os.ReadFile(filepath.Join(home, ".desta-config.yaml"))
	if err != nil {
		t.Fatalf("config file not written to home: %v", err)
	}
	if !bytes.Equal(onDisk, content) {
		t.Errorf("config file = %q, expected %q", onDisk, content)
	}
}

func TestOsFileSystem_FileExists_ReturnsFalseForNonExistent(t *testing.T) {
	fs := ProvideOsFileSystem()

	exists, err := fs.FileExists(filepath.Join(t.TempDir(), "missing.bin"))
	if err != nil {
		t.Fatalf("FileExists error: %v", err)
	}
	if exists {
		t.Error("FileExists should return false for a missing file")
	}
}

func TestOsFileSystem_EnsureDirExists_CreatesParentDirectories(t *testing.T) {
	fs := ProvideOsFileSystem()
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := fs.EnsureDirExists(filepath.Join(dir, "file.bin")); err != nil {
		t.Fatalf("EnsureDirExists failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}

func TestOsFileSystem_WriteFile_AccessModes(t *testing.T) {
	fs := ProvideOsFileSystem()
	dir := t.TempDir()

	tests := []struct {
		name         string
		mode         ports.AccessMode
		expectedPerm os.FileMode
	}{
		{"ReadWrite", ports.ReadWrite, 0600},
		{"ReadWriteExecute", ports.ReadWriteExecute, 0700},
		{"ReadAllWriteOwner", ports.ReadAllWriteOwner, 0644},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFile := filepath.Join(dir, "mode-test-"+tt.name+".txt")

			err := fs.WriteFile(testFile, []byte("test"), tt.mode)
			if err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}

			info, err := os.Stat(testFile)
			if err != nil {
				t.Fatalf("Stat failed: %v", err)
			}

			// Check permissions (masking to get only permission bits)
			actualPerm := info.Mode().Perm()
			if actualPerm != tt.expectedPerm {
				t.Errorf("file permissions = %o, expected %o", actualPerm, tt.expectedPerm)
			}
		})
	}
}
