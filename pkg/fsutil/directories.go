// Package fsutil provides the filesystem probes and helpers rtenv relies on.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates a directory and all necessary parent directories with default permissions if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DirModeDefault)
}

// EnsureFileDir creates the parent directory of a file path if it doesn't exist.
func EnsureFileDir(filePath string) error {
	return EnsureDir(filepath.Dir(filePath))
}

// DirExists reports whether path exists and is a directory. Symlinks are followed.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// RemoveTree recursively removes path. A missing path is not an error.
func RemoveTree(path string) error {
	if path == "" || path == string(filepath.Separator) {
		return fmt.Errorf("refusing to remove %q", path)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// ListDirs returns the names of the directories directly under path, sorted.
// A missing path yields an empty list.
func ListDirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
			continue
		}
		// versions may be symlinked in from elsewhere
		if entry.Type()&os.ModeSymlink != 0 && DirExists(filepath.Join(path, entry.Name())) {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}
