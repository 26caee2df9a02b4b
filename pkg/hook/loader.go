package hook

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/errors"
)

// HookFileExtensions lists the supported hook file extensions.
var HookFileExtensions = map[string]bool{
	".bash":  true,
	".sh":    true,
	".tengo": true,
}

// PhasedAction is an action together with the phase it was registered for.
type PhasedAction struct {
	Phase  Phase
	Action Action
}

// Discoverer lists hook scripts for a command. Each hook directory contributes
// <dir>/<command>/*.{bash,sh,tengo}, sorted by file name; directories are
// searched in order and a script reachable through several paths is listed once.
type Discoverer struct {
	Dirs []string
}

// Discover returns the hook script paths for command.
func (d *Discoverer) Discover(command string) ([]string, error) {
	seen := make(map[string]bool)
	var scripts []string

	for _, dir := range d.Dirs {
		if dir == "" {
			continue
		}
		commandDir := filepath.Join(dir, command)
		entries, err := os.ReadDir(commandDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(errors.ErrHookLoad, "failed to read hooks directory %s: %v", commandDir, err)
		}

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() || !HookFileExtensions[filepath.Ext(entry.Name())] {
				continue
			}
			names = append(names, entry.Name())
		}
		sort.Strings(names)

		for _, name := range names {
			path := filepath.Join(commandDir, name)
			key := path
			if resolved, err := filepath.EvalSymlinks(path); err == nil {
				key = resolved
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			scripts = append(scripts, path)
		}
	}
	return scripts, nil
}

// SplitHookPath splits a colon-separated hook path, dropping empty entries.
func SplitHookPath(hookPath string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(hookPath) {
		if strings.TrimSpace(dir) != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Manager discovers and loads the install hooks of one run.
type Manager struct {
	Discoverer *Discoverer
	IO         IO
}

// NewManager creates a hook manager searching dirs.
func NewManager(dirs []string, stdio IO) *Manager {
	return &Manager{Discoverer: &Discoverer{Dirs: dirs}, IO: stdio}
}

// Load discovers the install hook scripts and loads them into a fresh registry.
func (m *Manager) Load(ctx context.Context, definition string) (*Registry, error) {
	var paths []string
	if m.Discoverer != nil {
		var err error
		paths, err = m.Discoverer.Discover("install")
		if err != nil {
			return nil, err
		}
	}
	return m.LoadFiles(ctx, paths, definition)
}

// LoadFiles loads the given hook scripts, in order, into a fresh registry.
func (m *Manager) LoadFiles(ctx context.Context, paths []string, definition string) (*Registry, error) {
	registry := NewRegistry()

	for _, path := range paths {
		actions, err := m.loadFile(ctx, path, definition)
		if err != nil {
			return nil, err
		}
		for _, pa := range actions {
			if err := registry.Register(pa.Phase, pa.Action); err != nil {
				return nil, errors.Wrapf(errors.ErrHookLoad, "%s: %v", path, err)
			}
		}
		logger.Debug("Loaded hook script", logger.Fields{
			"path":    path,
			"actions": len(actions),
		})
	}
	return registry, nil
}

func (m *Manager) loadFile(ctx context.Context, path, definition string) ([]PhasedAction, error) {
	switch filepath.Ext(path) {
	case ".tengo":
		action, err := NewTengoAction(path)
		if err != nil {
			return nil, err
		}
		actions := make([]PhasedAction, 0, len(Phases))
		for _, phase := range Phases {
			actions = append(actions, PhasedAction{Phase: phase, Action: action.Bind(phase)})
		}
		return actions, nil
	case ".bash", ".sh":
		return LoadShellScript(ctx, path, definition, m.IO)
	default:
		logger.Debug("Skipping unsupported hook file", logger.Fields{"path": path})
		return nil, nil
	}
}
