// Package builder runs the external build tool and its auxiliary queries.
package builder

import (
	"context"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/glorpus-work/rtenv/pkg/model"
)

// DefaultName is the builder executable looked up on PATH when none is configured.
const DefaultName = "rtenv-build"

// StatusNotStarted mirrors the shell convention for a command that could not be run.
const StatusNotStarted = 127

// DefaultGracePeriod is how long an interrupted builder gets to exit before it is killed.
const DefaultGracePeriod = 10 * time.Second

// Builder flags.
const (
	flagKeep        = "-k"
	flagVerbose     = "-v"
	flagPatch       = "-p"
	flagDefinitions = "--definitions"
	flagVersion     = "--version"
	argSeparator    = "--"
)

// Invocation is everything the builder needs for one build.
type Invocation struct {
	Definition string
	Prefix     string
	Options    model.InstallOptions
	Env        map[string]string // added to the inherited environment
}

// Args returns the builder argv (without the program name).
func (inv Invocation) Args() []string {
	var args []string
	if inv.Options.Keep {
		args = append(args, flagKeep)
	}
	if inv.Options.Verbose {
		args = append(args, flagVerbose)
	}
	if inv.Options.HasPatch {
		args = append(args, flagPatch)
	}
	args = append(args, inv.Definition, inv.Prefix)
	if len(inv.Options.ExtraArgs) > 0 {
		args = append(args, argSeparator)
		args = append(args, inv.Options.ExtraArgs...)
	}
	return args
}

// Client runs the builder executable. The child inherits the client's streams.
type Client struct {
	Path        string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	GracePeriod time.Duration
	Environ     func() []string
}

// NewClient creates a client for the builder at path (or DefaultName on PATH)
// wired to the process's standard streams.
func NewClient(path string) *Client {
	if path == "" {
		path = DefaultName
	}
	return &Client{
		Path:        path,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		GracePeriod: DefaultGracePeriod,
		Environ:     os.Environ,
	}
}

// Build runs the builder for inv and returns its exit status. It never fails:
// a builder that cannot be started reports StatusNotStarted.
func (c *Client) Build(ctx context.Context, inv Invocation) int {
	args := inv.Args()
	logger.Debug("Invoking builder", logger.Fields{
		"builder": c.Path,
		"args":    args,
	})

	cmd := c.command(ctx, args...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Env = mergeEnv(c.environ(), inv.Env)
	return c.status(cmd.Run())
}

// Version runs `builder --version` with output streamed and returns its exit status.
func (c *Client) Version(ctx context.Context) int {
	cmd := c.command(ctx, flagVersion)
	cmd.Stdout = c.Stdout
	return c.status(cmd.Run())
}

// ResolvedPath returns the absolute path of the builder executable.
func (c *Client) ResolvedPath() (string, error) {
	return exec.LookPath(c.Path)
}

func (c *Client) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Stderr = c.Stderr
	cmd.Env = c.environ()
	// give the builder the same chance to clean up as a terminal ^C would
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = c.gracePeriod()
	return cmd
}

func (c *Client) status(err error) int {
	if err == nil {
		return model.StatusSuccess
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
		return 1
	}

	logger.Error("Failed to run builder", logger.Fields{
		"builder": c.Path,
		"error":   err.Error(),
	})
	return StatusNotStarted
}

func (c *Client) gracePeriod() time.Duration {
	if c.GracePeriod <= 0 {
		return DefaultGracePeriod
	}
	return c.GracePeriod
}

func (c *Client) environ() []string {
	if c.Environ == nil {
		return os.Environ()
	}
	return c.Environ()
}

// mergeEnv overrides base with extra, keeping the output stable for logging and tests.
func mergeEnv(base []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return base
	}
	out := make([]string, 0, len(base)+len(extra))
	for _, kv := range base {
		name, _, _ := strings.Cut(kv, "=")
		if _, overridden := extra[name]; overridden {
			continue
		}
		out = append(out, kv)
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+"="+extra[k])
	}
	return out
}
