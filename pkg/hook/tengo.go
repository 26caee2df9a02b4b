package hook

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/errors"
)

// Variables exposed to Tengo hook scripts.
const (
	tengoPhase       = "phase"
	tengoDefinition  = "definition"
	tengoVersionName = "version_name"
	tengoPrefix      = "prefix"
	tengoStatus      = "status"
	tengoErr         = "err"
)

// TengoAction runs a Tengo script for every phase. The script reads the
// current phase from `phase`; during the resolve phase, assigning
// `version_name` renames the install. Assigning a non-empty `err` fails the hook.
type TengoAction struct {
	path   string
	source []byte
}

// NewTengoAction reads and compiles a Tengo hook script so syntax errors surface at load time.
func NewTengoAction(path string) (*TengoAction, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrHookLoad, "failed to read hook script %s: %v", path, err)
	}

	action := &TengoAction{path: path, source: source}
	script, err := action.script(PhaseResolve, &Env{})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrHookLoad, "%s: %v", path, err)
	}
	if _, err := script.Compile(); err != nil {
		return nil, errors.Wrapf(errors.ErrHookLoad, "failed to compile hook script %s: %v", path, err)
	}
	return action, nil
}

// Name returns the script's file name.
func (a *TengoAction) Name() string {
	return filepath.Base(a.path)
}

// Bind returns the action as seen from a single phase.
func (a *TengoAction) Bind(phase Phase) Action {
	return Func(a.Name(), func(ctx context.Context, env *Env) error {
		return a.run(ctx, phase, env)
	})
}

func (a *TengoAction) script(phase Phase, env *Env) (*tengo.Script, error) {
	script := tengo.NewScript(a.source)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	vars := []struct {
		name  string
		value interface{}
	}{
		{tengoPhase, string(phase)},
		{tengoDefinition, env.Definition},
		{tengoVersionName, env.VersionName},
		{tengoPrefix, env.Prefix},
		{tengoStatus, env.Status},
		{tengoErr, ""},
	}
	for _, v := range vars {
		if err := script.Add(v.name, v.value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", v.name, err)
		}
	}
	return script, nil
}

func (a *TengoAction) run(ctx context.Context, phase Phase, env *Env) error {
	script, err := a.script(phase, env)
	if err != nil {
		return errors.Wrap(errors.ErrHookExecution, err.Error())
	}

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return errors.Wrapf(errors.ErrHookExecution, "%s: %v", a.path, err)
	}

	switch v := compiled.Get(tengoErr).Value().(type) {
	case error:
		return errors.Wrap(errors.ErrHookScript, v.Error())
	case string:
		if v != "" {
			return errors.Wrap(errors.ErrHookScript, v)
		}
	}

	if phase == PhaseResolve {
		if name := compiled.Get(tengoVersionName).String(); name != env.VersionName {
			logger.Debug("Hook renamed version", logger.Fields{
				"hook": a.Name(),
				"from": env.VersionName,
				"to":   name,
			})
			env.VersionName = name
		}
	}
	return nil
}
