package hook

import (
	"context"

	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/errors"
)

// Registry holds the actions of one install run, per phase, in registration order.
// A Registry is built fresh for every run and is not safe for concurrent use.
type Registry struct {
	actions map[Phase][]Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[Phase][]Action)}
}

// Register appends an action to a phase.
func (r *Registry) Register(phase Phase, action Action) error {
	if !phase.valid() {
		return ErrUnsupportedPhase(phase)
	}
	if action == nil {
		return ErrNilAction
	}
	r.actions[phase] = append(r.actions[phase], action)
	return nil
}

// Actions returns a copy of the actions registered for a phase.
func (r *Registry) Actions(phase Phase) []Action {
	return append([]Action(nil), r.actions[phase]...)
}

// Len returns the number of actions registered for a phase.
func (r *Registry) Len(phase Phase) int {
	return len(r.actions[phase])
}

// Resolve runs the resolve phase and returns the final version name. Actions
// see the name left by the previous action.
func (r *Registry) Resolve(ctx context.Context, env Env) (string, error) {
	env.Prefix = ""
	if err := r.run(ctx, PhaseResolve, &env); err != nil {
		return "", err
	}
	if env.VersionName == "" {
		return "", ErrEmptyVersionName
	}
	return env.VersionName, nil
}

// Run executes the before or after phase. Each action gets its own copy of env,
// so nothing an action changes leaks into the install state.
func (r *Registry) Run(ctx context.Context, phase Phase, env Env) error {
	if phase == PhaseResolve {
		_, err := r.Resolve(ctx, env)
		return err
	}
	if !phase.valid() {
		return ErrUnsupportedPhase(phase)
	}
	for _, action := range r.actions[phase] {
		scoped := env
		if err := r.runAction(ctx, phase, action, &scoped); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) run(ctx context.Context, phase Phase, env *Env) error {
	for _, action := range r.actions[phase] {
		if err := r.runAction(ctx, phase, action, env); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) runAction(ctx context.Context, phase Phase, action Action, env *Env) error {
	logger.Debug("Running hook", logger.Fields{
		"phase":   string(phase),
		"hook":    action.Name(),
		"version": env.VersionName,
	})
	if err := action.Run(ctx, env); err != nil {
		return errors.Wrapf(err, "%s hook %s", phase, action.Name())
	}
	return nil
}
