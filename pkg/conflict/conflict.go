// Package conflict decides what to do when the target prefix already holds an installation.
package conflict

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/fsutil"
	"github.com/glorpus-work/rtenv/pkg/model"
	"golang.org/x/term"
)

// Decision is the resolver's verdict for one prefix.
type Decision int

// Possible decisions.
const (
	Proceed Decision = iota
	Skip
	Decline
)

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case Skip:
		return "skip"
	case Decline:
		return "decline"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// ExitCode is the process exit status of a run that stops at this decision.
// Proceed has no exit code of its own and reports 0.
func (d Decision) ExitCode() int {
	if d == Decline {
		return 1
	}
	return 0
}

// Prompter asks the user to confirm overwriting an installation.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// Resolver applies the conflict policy.
type Resolver struct {
	Prompter    Prompter
	Interactive func() bool
	Stderr      io.Writer
	Command     string // used in user-facing messages, e.g. "rtenv"
}

// NewResolver creates a resolver prompting on the terminal attached to stdin.
func NewResolver(stdin *os.File, stderr io.Writer) *Resolver {
	return &Resolver{
		Prompter:    &TerminalPrompter{In: stdin, Out: stderr},
		Interactive: func() bool { return term.IsTerminal(int(stdin.Fd())) },
		Stderr:      stderr,
		Command:     fsutil.AppName,
	}
}

// Installed reports whether prefix holds a completed installation. Only the
// entry-point directory counts; an otherwise empty prefix is not a conflict.
func Installed(prefix string) bool {
	return fsutil.DirExists(fsutil.BinDir(prefix))
}

// Resolve decides whether the install into prefix proceeds, is skipped or is declined.
func (r *Resolver) Resolve(ctx context.Context, prefix string, opts model.InstallOptions) (Decision, error) {
	if !Installed(prefix) {
		return Proceed, nil
	}

	fields := logger.Fields{"prefix": prefix}
	switch {
	case opts.Force:
		logger.Debug("Overwriting existing installation", fields)
		return Proceed, nil
	case opts.SkipExisting:
		logger.Debug("Skipping existing installation", fields)
		return Skip, nil
	}

	r.printf("%s: %s already exists\n", r.command(), prefix)

	if r.Interactive == nil || !r.Interactive() || r.Prompter == nil {
		r.printf("%s: use --force to overwrite it or --skip-existing to keep it\n", r.command())
		return Decline, nil
	}

	ok, err := r.Prompter.Confirm(ctx, "continue with installation? (y/N) ")
	if err != nil {
		return Decline, err
	}
	if !ok {
		return Decline, nil
	}
	return Proceed, nil
}

func (r *Resolver) command() string {
	if r.Command == "" {
		return fsutil.AppName
	}
	return r.Command
}

func (r *Resolver) printf(format string, args ...interface{}) {
	if r.Stderr != nil {
		fmt.Fprintf(r.Stderr, format, args...)
	}
}

// Affirmative reports whether a prompt reply accepts: it must start with y or Y.
func Affirmative(reply string) bool {
	reply = strings.TrimSpace(reply)
	return strings.HasPrefix(reply, "y") || strings.HasPrefix(reply, "Y")
}
