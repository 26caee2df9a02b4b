// Package rehash keeps the shims directory in step with the installed versions
// and resolves the program a shim dispatches to.
package rehash

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/fsutil"
	"mvdan.cc/sh/v3/syntax"
)

// shimTemplate hands every shim invocation to "rtenv exec".
const shimTemplate = `#!/usr/bin/env bash
set -e
[ -n "$RTENV_DEBUG" ] && set -x

program="${0##*/}"

export RTENV_ROOT=%s
exec %s exec "$program" "$@"
`

// Rehasher regenerates shims for every program of every installed version.
type Rehasher struct {
	Root string
	// Executable is the rtenv binary the shims dispatch to.
	Executable string
}

// Stats summarizes one rehash.
type Stats struct {
	Written int
	Removed int
}

// New creates a rehasher dispatching to the running executable.
func New(root string) *Rehasher {
	exe, err := os.Executable()
	if err != nil {
		exe = fsutil.AppName
	}
	return &Rehasher{Root: root, Executable: exe}
}

// Rehash writes missing or outdated shims and removes shims whose program no
// longer exists in any version. An up-to-date shims directory is left untouched.
func (r *Rehasher) Rehash(ctx context.Context) error {
	stats, err := r.Sync(ctx)
	if err != nil {
		return err
	}
	logger.Debug("Rehashed shims", logger.Fields{
		"written": stats.Written,
		"removed": stats.Removed,
	})
	return nil
}

// Sync does the work of Rehash and reports what changed.
func (r *Rehasher) Sync(ctx context.Context) (Stats, error) {
	var stats Stats

	programs, err := r.Programs()
	if err != nil {
		return stats, err
	}

	shimsDir := fsutil.ShimsDir(r.Root)
	if err := fsutil.EnsureDir(shimsDir); err != nil {
		return stats, fmt.Errorf("failed to create shims directory: %w", err)
	}

	content, err := r.shim()
	if err != nil {
		return stats, err
	}
	wanted := make(map[string]struct{}, len(programs))
	for _, program := range programs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		wanted[program] = struct{}{}

		path := filepath.Join(shimsDir, program)
		if current, err := os.ReadFile(path); err == nil && bytes.Equal(current, content) && fsutil.IsExecutable(path) {
			continue
		}
		if err := fsutil.WriteFileAtomic(path, content, fsutil.FileModeExec); err != nil {
			return stats, err
		}
		stats.Written++
	}

	entries, err := os.ReadDir(shimsDir)
	if err != nil {
		return stats, fmt.Errorf("failed to read shims directory: %w", err)
	}
	for _, entry := range entries {
		if _, ok := wanted[entry.Name()]; ok || entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(shimsDir, entry.Name())); err != nil {
			return stats, fmt.Errorf("failed to remove stale shim %s: %w", entry.Name(), err)
		}
		stats.Removed++
	}
	return stats, nil
}

// Programs returns the sorted, de-duplicated names of all executables in the
// bin directories of installed versions.
func (r *Rehasher) Programs() ([]string, error) {
	versionsDir := fsutil.VersionsDir(r.Root)
	versions, err := fsutil.ListDirs(versionsDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, v := range versions {
		binDir := fsutil.BinDir(filepath.Join(versionsDir, v))
		entries, err := os.ReadDir(binDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", binDir, err)
		}
		for _, entry := range entries {
			if fsutil.IsExecutable(filepath.Join(binDir, entry.Name())) {
				seen[entry.Name()] = struct{}{}
			}
		}
	}

	programs := make([]string, 0, len(seen))
	for name := range seen {
		programs = append(programs, name)
	}
	sort.Strings(programs)
	return programs, nil
}

func (r *Rehasher) shim() ([]byte, error) {
	root, err := syntax.Quote(r.Root, syntax.LangBash)
	if err != nil {
		return nil, fmt.Errorf("cannot quote root %s: %w", r.Root, err)
	}
	executable, err := syntax.Quote(r.Executable, syntax.LangBash)
	if err != nil {
		return nil, fmt.Errorf("cannot quote executable %s: %w", r.Executable, err)
	}
	return []byte(fmt.Sprintf(shimTemplate, root, executable)), nil
}
