// Package hook implements the install lifecycle extension points: an ordered
// registry of actions per phase and loaders for Tengo and shell hook scripts.
package hook

import "context"

// Phase identifies when an action runs during an install.
type Phase string

// Supported phases, in execution order.
const (
	// PhaseResolve runs before the install prefix is computed. It is the only
	// phase allowed to change the version name.
	PhaseResolve Phase = "resolve"
	// PhaseBefore runs after the conflict check, right before the build.
	PhaseBefore Phase = "before"
	// PhaseAfter runs after the build attempt, whatever its outcome.
	PhaseAfter Phase = "after"
)

// Phases lists every phase in execution order.
var Phases = []Phase{PhaseResolve, PhaseBefore, PhaseAfter}

func (p Phase) valid() bool {
	switch p {
	case PhaseResolve, PhaseBefore, PhaseAfter:
		return true
	}
	return false
}

// Env is the install state visible to hook actions.
type Env struct {
	Definition  string
	VersionName string
	Prefix      string // empty during PhaseResolve
	Status      int    // builder exit status; only meaningful during PhaseAfter
}

// Action is a single registered hook.
type Action interface {
	Name() string
	Run(ctx context.Context, env *Env) error
}

type funcAction struct {
	name string
	fn   func(ctx context.Context, env *Env) error
}

func (a funcAction) Name() string { return a.name }

func (a funcAction) Run(ctx context.Context, env *Env) error { return a.fn(ctx, env) }

// Func adapts a Go function to an Action.
func Func(name string, fn func(ctx context.Context, env *Env) error) Action {
	return funcAction{name: name, fn: fn}
}

// Rename returns a resolve-phase action that sets the version name.
func Rename(name, versionName string) Action {
	return Func(name, func(_ context.Context, env *Env) error {
		env.VersionName = versionName
		return nil
	})
}
