// Package errors defines the sentinel errors shared across rtenv and the
// helpers used to wrap them and to carry process exit codes.
package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"syscall"
)

// Common error types.
var (
	// Usage errors.
	ErrUsage             = fmt.Errorf("usage error")
	ErrNoDefinition      = fmt.Errorf("no version definition given and no local version configured")
	ErrTooManyArguments  = fmt.Errorf("only one definition may be installed at a time")
	ErrConflictingListOp = fmt.Errorf("--list, --list-all and --version are mutually exclusive")

	// Install errors.
	ErrConflict      = fmt.Errorf("installation already exists")
	ErrNotConfigured = fmt.Errorf("collaborator is not configured")
	ErrRollback      = fmt.Errorf("failed to remove partial installation")

	// Version lookup errors.
	ErrNoVersion           = fmt.Errorf("no version configured")
	ErrVersionNotInstalled = fmt.Errorf("version not installed")
	ErrProgramNotFound     = fmt.Errorf("command not found")

	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrRelativeRoot      = fmt.Errorf("root directory must be an absolute path")
	ErrInvalidLogLevel   = fmt.Errorf("invalid log level")
	ErrInvalidFormat     = fmt.Errorf("invalid output format")
	ErrUnknownConfigKey  = fmt.Errorf("unknown configuration key")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")

	// Hook errors.
	ErrHookLoad      = fmt.Errorf("failed to load hook")
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
)

// ExitError carries a process exit code. An ExitError without a wrapped error
// represents a status that has already been reported (typically by the builder).
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// Silent reports whether the error has nothing left to tell the user.
func (e *ExitError) Silent() bool { return e.Err == nil }

// Interrupt is the cancellation cause recorded when a signal stops rtenv.
type Interrupt struct {
	Signal os.Signal
}

func (e *Interrupt) Error() string {
	return fmt.Sprintf("interrupted by %v", e.Signal)
}

// ExitCode follows the shell convention of 128 plus the signal number. A
// signal without a number reports as SIGINT.
func (e *Interrupt) ExitCode() int {
	if sig, ok := e.Signal.(syscall.Signal); ok {
		return 128 + int(sig)
	}
	return 128 + int(syscall.SIGINT)
}

// WithExitCode attaches an exit code to err. A nil err yields a silent ExitError.
func WithExitCode(err error, code int) error {
	return &ExitError{Code: code, Err: err}
}

// ExitCode returns the process exit code for err: 0 for nil, the carried code
// for an ExitError anywhere in the chain, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
