// Package osutil abstracts OS-level path operations to enable testing.
package osutil

import "os"

// PathProvider abstracts OS-level operations for path resolution.
// Used to enable testing of error paths in the session, storage, and
// config path resolvers.
type PathProvider interface {
	ConfigRoot() (string, error)
	EnsureDir(path string, perm os.FileMode) error
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// ConfigRoot returns the root directory for user-specific configuration data.
func (DefaultPathProvider) ConfigRoot() (string, error) {
	return os.UserConfigDir()
}

// EnsureDir creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) EnsureDir(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level path provider instance.
// In production, this is DefaultPathProvider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}
