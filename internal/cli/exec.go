package cli

import (
	"os"
	"os/exec"

	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/config"
	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/glorpus-work/rtenv/pkg/rehash"
	"github.com/glorpus-work/rtenv/pkg/versionfile"
	"github.com/spf13/cobra"
)

// statusCommandNotFound is the shell's status for an unknown command.
const statusCommandNotFound = 127

// NewExecCmd creates the exec command that shims dispatch to.
func NewExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <program> [<args>...]",
		Short: "Run a program of the selected version",
		Long: `Run a program from the bin directory of the selected version.

The version comes from RTENV_VERSION, the nearest .rtenv-version file or the
global default, in that order. For the system version the program is looked
up on PATH, skipping the shims directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, args[0], args[1:])
		},
	}
	// everything after the program name belongs to the program
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runExec(cmd *cobra.Command, program string, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	root := cfg.Settings.Root

	version, err := versionfile.New(root).Selected(os.Getenv(config.EnvVersion))
	if err != nil {
		return err
	}
	path, err := rehash.Which(root, version, program, os.Getenv("PATH"))
	if err != nil {
		if errors.Is(err, errors.ErrProgramNotFound) {
			return errors.WithExitCode(err, statusCommandNotFound)
		}
		return err
	}
	logger.Debug("Dispatching program", logger.Fields{
		"program": program,
		"version": version,
		"path":    path,
	})

	child := exec.Command(path, args...)
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()
	child.Env = rehash.Environ(os.Environ(), root, version)

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				code = 1
			}
			return errors.WithExitCode(nil, code)
		}
		return errors.WithExitCode(err, statusCommandNotFound)
	}
	return nil
}
