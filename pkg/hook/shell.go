package hook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/errors"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Builtins available to shell hook scripts while they are sourced.
const (
	builtinBeforeInstall = "before_install"
	builtinAfterInstall  = "after_install"

	// reportVersionName is run once after sourcing to read VERSION_NAME back.
	reportVersionName = "__rtenv_report_version_name"
)

// Shell variables set for registered hook code.
const (
	varDefinition  = "DEFINITION"
	varVersionName = "VERSION_NAME"
	varPrefix      = "PREFIX"
	varStatus      = "STATUS"
)

// ShellScript is a sourced shell hook script. Code registered through
// before_install and after_install runs later in the same interpreter, so
// functions and variables defined by the script stay visible.
type ShellScript struct {
	path    string
	runner  *interp.Runner
	loading bool
	pending []shellRegistration
	renamed string
}

type shellRegistration struct {
	phase Phase
	code  string
}

// ShellAction is one code string registered by a shell hook script.
type ShellAction struct {
	script *ShellScript
	phase  Phase
	code   string
	index  int
}

// Name identifies the action by script, phase and registration index.
func (a *ShellAction) Name() string {
	return fmt.Sprintf("%s:%s_install#%d", filepath.Base(a.script.path), a.phase, a.index)
}

// Run evaluates the registered code with the install state exported.
func (a *ShellAction) Run(ctx context.Context, env *Env) error {
	assignments, err := shellAssignments(env)
	if err != nil {
		return errors.Wrap(errors.ErrHookExecution, err.Error())
	}

	program := assignments + a.code + "\n"
	file, err := syntax.NewParser().Parse(strings.NewReader(program), a.Name())
	if err != nil {
		return errors.Wrapf(errors.ErrHookScript, "failed to parse hook code: %v", err)
	}

	if err := a.script.runner.Run(ctx, file); err != nil {
		return shellError(err)
	}
	return nil
}

// LoadShellScript sources a shell hook script and returns the actions it
// registered, in registration order. Assigning VERSION_NAME while being
// sourced registers a resolve-phase rename.
func LoadShellScript(ctx context.Context, path, definition string, stdio IO) ([]PhasedAction, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrHookLoad, "failed to read hook script %s: %v", path, err)
	}

	file, err := syntax.NewParser().Parse(bytes.NewReader(source), path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrHookLoad, "failed to parse hook script %s: %v", path, err)
	}

	script := &ShellScript{path: path}
	env := append(scrubEnv(stdio.environ()), varDefinition+"="+definition)

	runner, err := interp.New(
		interp.StdIO(stdio.Stdin, stdio.Stdout, stdio.Stderr),
		interp.Env(expand.ListEnviron(env...)),
		interp.CallHandler(script.callHandler),
	)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrHookLoad, "failed to create interpreter for %s: %v", path, err)
	}
	script.runner = runner

	script.loading = true
	err = runner.Run(ctx, file)
	script.loading = false
	if err != nil {
		return nil, errors.Wrapf(errors.ErrHookLoad, "failed to source hook script %s: %v", path, shellError(err))
	}

	report, err := syntax.NewParser().Parse(strings.NewReader(reportVersionName+` "${`+varVersionName+`-}"`), path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrHookLoad, err.Error())
	}
	if err := runner.Run(ctx, report); err != nil {
		return nil, errors.Wrapf(errors.ErrHookLoad, "failed to inspect hook script %s: %v", path, shellError(err))
	}

	var actions []PhasedAction
	if script.renamed != "" {
		actions = append(actions, PhasedAction{
			Phase:  PhaseResolve,
			Action: Rename(filepath.Base(path)+":"+varVersionName, script.renamed),
		})
	}
	for i, reg := range script.pending {
		actions = append(actions, PhasedAction{
			Phase:  reg.phase,
			Action: &ShellAction{script: script, phase: reg.phase, code: reg.code, index: i},
		})
	}
	return actions, nil
}

func (s *ShellScript) callHandler(_ context.Context, args []string) ([]string, error) {
	if len(args) == 0 {
		return args, nil
	}

	var phase Phase
	switch args[0] {
	case reportVersionName:
		if len(args) > 1 {
			s.renamed = args[1]
		}
		return []string{"true"}, nil
	case builtinBeforeInstall:
		phase = PhaseBefore
	case builtinAfterInstall:
		phase = PhaseAfter
	default:
		return args, nil
	}

	if !s.loading {
		logger.Warn("Ignoring hook registration outside of script loading", logger.Fields{
			"hook":    filepath.Base(s.path),
			"builtin": args[0],
		})
		return []string{"true"}, nil
	}
	for _, code := range args[1:] {
		s.pending = append(s.pending, shellRegistration{phase: phase, code: code})
	}
	return []string{"true"}, nil
}

func shellAssignments(env *Env) (string, error) {
	values := []struct{ name, value string }{
		{varDefinition, env.Definition},
		{varVersionName, env.VersionName},
		{varPrefix, env.Prefix},
		{varStatus, strconv.Itoa(env.Status)},
	}

	var b strings.Builder
	for _, v := range values {
		quoted, err := syntax.Quote(v.value, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("cannot quote %s: %w", v.name, err)
		}
		fmt.Fprintf(&b, "export %s=%s\n", v.name, quoted)
	}
	return b.String(), nil
}

func shellError(err error) error {
	var status interp.ExitStatus
	if errors.As(err, &status) {
		// the script's own status becomes rtenv's
		return errors.WithExitCode(errors.Wrapf(errors.ErrHookScript, "exit status %d", uint8(status)), int(status))
	}
	return errors.Wrap(errors.ErrHookExecution, err.Error())
}

// scrubEnv drops variables a hook script could mistake for install state.
func scrubEnv(environ []string) []string {
	out := make([]string, 0, len(environ))
	for _, kv := range environ {
		if strings.HasPrefix(kv, varVersionName+"=") {
			continue
		}
		out = append(out, kv)
	}
	return out
}

// IO carries the standard streams and environment handed to hook scripts.
type IO struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Environ []string // defaults to os.Environ()
}

func (s IO) environ() []string {
	if s.Environ != nil {
		return s.Environ
	}
	return os.Environ()
}
