package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// MockPathProvider is a mock implementation for testing.
type MockPathProvider struct {
	ConfigRootFn func() (string, error)
	EnsureDirFn  func(path string, perm os.FileMode) error
}

func (m *MockPathProvider) ConfigRoot() (string, error) {
	if m.ConfigRootFn != nil {
		return m.ConfigRootFn()
	}
	return "", nil
}

func (m *MockPathProvider) EnsureDir(path string, perm os.FileMode) error {
	if m.EnsureDirFn != nil {
		return m.EnsureDirFn(path, perm)
	}
	return nil
}

func TestDefaultPathProvider_ConfigRoot(t *testing.T) {
	p := DefaultPathProvider{}
	dir, err := p.ConfigRoot()
	if err != nil {
		t.Fatalf("ConfigRoot returned error: %v", err)
	}
	if dir == "" {
		t.Error("ConfigRoot returned empty string")
	}
}

func TestDefaultPathProvider_EnsureDir(t *testing.T) {
	p := DefaultPathProvider{}
	testDir := filepath.Join(t.TempDir(), "test", "nested", "dir")

	if err := p.EnsureDir(testDir, 0755); err != nil {
		t.Fatalf("EnsureDir returned error: %v", err)
	}

	info, err := os.Stat(testDir)
	if err != nil {
		t.Fatalf("Failed to stat created directory: %v", err)
	}
	if !info.IsDir() {
		t.Error("EnsureDir did not create a directory")
	}
}

func TestSetAndResetProvider(t *testing.T) {
	defer ResetProvider()

	mock := &MockPathProvider{
		ConfigRootFn: func() (string, error) {
			return "", errors.New("permission denied")
		},
	}
	SetProvider(mock)

	if _, err := Provider.ConfigRoot(); err == nil {
		t.Error("Mocked ConfigRoot expected error, got nil")
	}

	ResetProvider()
	if _, ok := Provider.(DefaultPathProvider); !ok {
		t.Errorf("Provider after reset = %T, expected DefaultPathProvider", Provider)
	}
}
