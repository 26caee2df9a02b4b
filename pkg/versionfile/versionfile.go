// Package versionfile answers which version is selected locally and globally.
package versionfile

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glorpus-work/rtenv/pkg/errors"
)

const (
	// LocalFileName is the per-project version file looked up from the working directory upwards.
	LocalFileName = ".rtenv-version"
	// GlobalFileName is the file under the root holding the global default.
	GlobalFileName = "version"
	// System names the runtime found on PATH outside of rtenv.
	System = "system"
)

// Lookup resolves selected versions for one root.
type Lookup struct {
	Root string
	// Dir is where the local lookup starts; the working directory when empty.
	Dir string
}

// New creates a lookup for root starting at the working directory.
func New(root string) *Lookup {
	return &Lookup{Root: root}
}

// Local returns the version named by the nearest local version file. It
// returns ErrNoVersion when no file is found or the nearest one is empty.
func (l *Lookup) Local() (string, error) {
	dir := l.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "failed to get working directory")
		}
		dir = wd
	}

	path, ok := findUp(dir, LocalFileName)
	if !ok {
		return "", errors.ErrNoVersion
	}
	name, err := ReadVersionFile(path)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", errors.Wrapf(errors.ErrNoVersion, "%s is empty", path)
	}
	return name, nil
}

// Selected returns the version in effect: override (the RTENV_VERSION value)
// when set, then the local version file, then the global default.
func (l *Lookup) Selected(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	name, err := l.Local()
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, errors.ErrNoVersion) {
		return "", err
	}
	return l.Global()
}

// Global returns the global default version, System when none is set.
func (l *Lookup) Global() (string, error) {
	name, err := ReadVersionFile(filepath.Join(l.Root, GlobalFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return System, nil
		}
		return "", err
	}
	if name == "" {
		return System, nil
	}
	return name, nil
}

// ReadVersionFile returns the first whitespace-separated word of a version file.
func ReadVersionFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read version file: %w", err)
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Split(bufio.ScanWords)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	return "", nil
}

func findUp(dir, name string) (string, bool) {
	dir = filepath.Clean(dir)
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
