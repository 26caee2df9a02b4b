package fsutil

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name of the application used in paths
	AppName = "rtenv"
)

// DefaultRoot returns ~/.rtenv, the root used when RTENV_ROOT is not set.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+AppName), nil
}

// VersionsDir returns the directory holding one subdirectory per installed version.
func VersionsDir(root string) string {
	return filepath.Join(root, "versions")
}

// PrefixFor returns the install prefix for a version name.
func PrefixFor(root, versionName string) string {
	return filepath.Join(VersionsDir(root), versionName)
}

// BinDir returns the entry-point directory of an install prefix.
// Its presence is what marks a prefix as a completed installation.
func BinDir(prefix string) string {
	return filepath.Join(prefix, "bin")
}

// ShimsDir returns the directory holding generated shims.
func ShimsDir(root string) string {
	return filepath.Join(root, "shims")
}

// CacheDir returns the download cache directory handed to the builder when it exists.
func CacheDir(root string) string {
	return filepath.Join(root, "cache")
}
