package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/builder"
	"github.com/glorpus-work/rtenv/pkg/conflict"
	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/glorpus-work/rtenv/pkg/fsutil"
	"github.com/glorpus-work/rtenv/pkg/hook"
	"github.com/glorpus-work/rtenv/pkg/model"
)

// Environment variables exported to the builder.
const (
	EnvBuildPath = "RTENV_BUILD_BUILD_PATH"
	EnvCachePath = "RTENV_BUILD_CACHE_PATH"
	EnvVersion   = "RTENV_VERSION"
)

// systemVersion is the global default meaning "no rtenv version selected".
const systemVersion = "system"

// installRun is the state of one Run. It is created fresh for every call.
type installRun struct {
	definition       string
	versionName      string
	prefix           string
	prefixPreexisted bool
	opts             model.InstallOptions
	hooks            *hook.Registry
	committed        bool
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// Run performs one install. Build outcomes, including failures, are reported
// through the Result; the error is reserved for runs that stop before or
// around the build (usage, hook and collaborator failures) and carries its
// exit code.
func (o *Orchestrator) Run(ctx context.Context, req Request) (model.Result, error) {
	if err := o.validate(); err != nil {
		return model.Result{}, err
	}

	emit(o.Hooks, Event{Phase: "resolving", Msg: req.Definition})
	definition, err := o.resolveDefinition(req.Definition)
	if err != nil {
		return model.Result{}, err
	}

	run := &installRun{definition: definition, opts: req.Options}
	if err := o.prepare(ctx, run); err != nil {
		return model.Result{}, o.exitError(ctx, err)
	}

	decision, err := o.Conflicts.Resolve(ctx, run.prefix, run.opts)
	if err != nil {
		return model.Result{}, o.exitError(ctx, err)
	}
	switch decision {
	case conflict.Skip:
		emit(o.Hooks, Event{Phase: "done", ID: run.versionName, Msg: model.OutcomeSkipped.String()})
		return run.result(model.OutcomeSkipped, model.StatusSuccess), nil
	case conflict.Decline:
		emit(o.Hooks, Event{Phase: "done", ID: run.versionName, Msg: model.OutcomeDeclined.String()})
		return run.result(model.OutcomeDeclined, decision.ExitCode()), nil
	}

	// From here on the prefix may be mutated: every exit path that did not
	// commit removes what this run created.
	defer func() {
		if !run.committed {
			o.rollback(run)
		}
	}()

	env := o.buildEnv(run)

	emit(o.Hooks, Event{Phase: "hooks", ID: run.versionName, Msg: string(hook.PhaseBefore)})
	if err := run.hooks.Run(ctx, hook.PhaseBefore, run.hookEnv(0)); err != nil {
		return model.Result{}, o.exitError(ctx, err)
	}

	emit(o.Hooks, Event{Phase: "building", ID: run.versionName, Msg: run.prefix})
	status := o.Builder.Build(ctx, builder.Invocation{
		Definition: run.definition,
		Prefix:     run.prefix,
		Options:    run.opts,
		Env:        env,
	})
	outcome := model.ClassifyStatus(status, ctx.Err() != nil)
	result := run.result(outcome, status)
	if outcome == model.OutcomeInterrupted {
		result.ExitCode = model.InterruptStatus(ctx)
	}
	logger.Debug("Build finished", logger.Fields{
		"version": run.versionName,
		"status":  status,
		"outcome": outcome.String(),
	})

	if outcome == model.OutcomeDefinitionNotFound && o.Advisor != nil {
		fmt.Fprint(o.stderr(), o.Advisor.Advise(ctx, run.definition))
	}
	if outcome == model.OutcomeSuccess {
		run.committed = true
	}

	// an interrupted run still reports to its after hooks
	hookCtx := ctx
	if outcome == model.OutcomeInterrupted {
		hookCtx = context.WithoutCancel(ctx)
	}
	emit(o.Hooks, Event{Phase: "hooks", ID: run.versionName, Msg: string(hook.PhaseAfter)})
	if err := run.hooks.Run(hookCtx, hook.PhaseAfter, run.hookEnv(result.ExitCode)); err != nil {
		if outcome == model.OutcomeSuccess {
			return result, err
		}
		return result, errors.WithExitCode(err, result.ExitCode)
	}

	if outcome == model.OutcomeSuccess {
		if err := o.finalize(ctx, run); err != nil {
			return result, err
		}
	}

	emit(o.Hooks, Event{Phase: "done", ID: run.versionName, Msg: outcome.String()})
	return result, nil
}

func (o *Orchestrator) validate() error {
	switch {
	case o.Builder == nil:
		return errors.Wrap(errors.ErrNotConfigured, "builder")
	case o.Versions == nil:
		return errors.Wrap(errors.ErrNotConfigured, "version lookup")
	case o.Conflicts == nil:
		return errors.Wrap(errors.ErrNotConfigured, "conflict resolver")
	case o.Root == "":
		return errors.Wrap(errors.ErrNotConfigured, "root directory")
	}
	return nil
}

// resolveDefinition picks the explicit definition or falls back to the local version.
func (o *Orchestrator) resolveDefinition(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	local, err := o.Versions.Local()
	if err != nil || local == "" {
		logger.Debug("No local version", logger.Fields{"error": fmt.Sprint(err)})
		return "", fmt.Errorf("%w: %w", errors.ErrUsage, errors.ErrNoDefinition)
	}
	return local, nil
}

// prepare loads hooks, settles the version name and computes the prefix.
// The prefix is computed exactly once, after the resolve hooks ran.
func (o *Orchestrator) prepare(ctx context.Context, run *installRun) error {
	run.hooks = hook.NewRegistry()
	if o.HookLoader != nil {
		registry, err := o.HookLoader.Load(ctx, run.definition)
		if err != nil {
			return err
		}
		if registry != nil {
			run.hooks = registry
		}
	}

	name, err := run.hooks.Resolve(ctx, hook.Env{
		Definition:  run.definition,
		VersionName: model.VersionNameFor(run.definition),
	})
	if err != nil {
		return err
	}
	run.versionName = name
	run.prefix = fsutil.PrefixFor(o.Root, name)
	run.prefixPreexisted = fsutil.DirExists(run.prefix)

	logger.Debug("Resolved install target", logger.Fields{
		"definition": run.definition,
		"version":    run.versionName,
		"prefix":     run.prefix,
		"preexisted": run.prefixPreexisted,
	})
	return nil
}

// buildEnv returns the variables exported to the builder. A build root forces Keep.
func (o *Orchestrator) buildEnv(run *installRun) map[string]string {
	env := make(map[string]string)

	if run.opts.BuildRoot != "" {
		run.opts.Keep = true
		env[EnvBuildPath] = filepath.Join(run.opts.BuildRoot, run.versionName)
	}

	if o.CacheDir != "" {
		env[EnvCachePath] = o.CacheDir
	} else if cache := fsutil.CacheDir(o.Root); fsutil.DirExists(cache) {
		env[EnvCachePath] = cache
	}

	// builders that need a runtime of their own find the global default
	if o.getenv(EnvVersion) == "" {
		if global, err := o.Versions.Global(); err == nil && global != "" {
			env[EnvVersion] = global
		}
	}
	return env
}

// rollback removes the prefix unless it existed before this run.
func (o *Orchestrator) rollback(run *installRun) {
	if run.prefixPreexisted {
		logger.Debug("Keeping preexisting prefix", logger.Fields{"prefix": run.prefix})
		return
	}
	if !fsutil.DirExists(run.prefix) {
		return
	}

	emit(o.Hooks, Event{Phase: "rollback", ID: run.versionName, Msg: run.prefix})
	if err := fsutil.RemoveTree(run.prefix); err != nil {
		logger.Warn("Rollback failed", logger.Fields{
			"prefix": run.prefix,
			"error":  errors.Wrap(errors.ErrRollback, err.Error()).Error(),
		})
		return
	}
	logger.Debug("Removed partial installation", logger.Fields{"prefix": run.prefix})
}

// finalize rehashes and suggests making the new version the global default
// when none is configured yet.
func (o *Orchestrator) finalize(ctx context.Context, run *installRun) error {
	if o.Rehasher != nil {
		if err := o.Rehasher.Rehash(ctx); err != nil {
			return errors.Wrap(err, "failed to rehash")
		}
	}

	if o.getenv(EnvVersion) != "" {
		return nil
	}
	global, err := o.Versions.Global()
	if err != nil || global != systemVersion {
		return nil
	}
	fmt.Fprintf(o.stderr(), "\nNOTE: to activate this version as the new default, run: %s global %s\n",
		fsutil.AppName, run.versionName)
	return nil
}

// exitError attaches the interrupt exit code to errors caused by cancellation.
func (o *Orchestrator) exitError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return errors.WithExitCode(err, model.InterruptStatus(ctx))
	}
	return err
}

func (o *Orchestrator) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}

func (o *Orchestrator) getenv(key string) string {
	if o.Getenv == nil {
		return os.Getenv(key)
	}
	return o.Getenv(key)
}

func (run *installRun) hookEnv(status int) hook.Env {
	return hook.Env{
		Definition:  run.definition,
		VersionName: run.versionName,
		Prefix:      run.prefix,
		Status:      status,
	}
}

func (run *installRun) result(outcome model.Outcome, status int) model.Result {
	result := model.NewResult(outcome, status)
	result.VersionName = run.versionName
	result.Prefix = run.prefix
	return result
}
