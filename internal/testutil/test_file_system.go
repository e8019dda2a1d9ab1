package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"desta/internal/ports"
)

// SandboxFileSystem implements ports.FileSystem inside a per-test temporary
// directory. Absolute and "~" paths are both mapped into the sandbox.
type SandboxFileSystem struct {
	baseDir string
}

var _ ports.FileSystem = (*SandboxFileSystem)(nil)

// NewSandboxFileSystem creates a sandbox that is removed when the test completes.
func NewSandboxFileSystem(t *testing.T) *SandboxFileSystem {
	t.Helper()
	return &SandboxFileSystem{baseDir: t.TempDir()}
}

// Path returns the real location of a sandboxed path.
func (f *SandboxFileSystem) Path(path string) string {
	cleanPath := filepath.Clean(strings.TrimPrefix(path, "~"))
	if filepath.IsAbs(cleanPath) {
		cleanPath = cleanPath[1:]
	}
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *SandboxFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.Path(path))
}

func (f *SandboxFileSystem) WriteFile(path string, content []byte, _ ports.AccessMode) error {
	if err := f.EnsureDirExists(path); err != nil {
		return err
	}
	return os.WriteFile(f.Path(path), content, 0600)
}

func (f *SandboxFileSystem) EnsureDirExists(path string) error {
	return os.MkdirAll(filepath.Dir(f.Path(path)), 0700)
}

func (f *SandboxFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(f.Path(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
