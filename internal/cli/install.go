package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/advisor"
	"github.com/glorpus-work/rtenv/pkg/builder"
	"github.com/glorpus-work/rtenv/pkg/catalog"
	"github.com/glorpus-work/rtenv/pkg/config"
	"github.com/glorpus-work/rtenv/pkg/conflict"
	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/glorpus-work/rtenv/pkg/fsutil"
	"github.com/glorpus-work/rtenv/pkg/hook"
	"github.com/glorpus-work/rtenv/pkg/model"
	"github.com/glorpus-work/rtenv/pkg/orchestrator"
	"github.com/glorpus-work/rtenv/pkg/rehash"
	"github.com/glorpus-work/rtenv/pkg/versionfile"
	"github.com/spf13/cobra"
)

type installFlags struct {
	force        bool
	skipExisting bool
	keep         bool
	verbose      bool
	patch        bool
	list         bool
	listAll      bool
	version      bool
}

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var flags installFlags

	cmd := &cobra.Command{
		Use:   "install [flags] [<version>|<definition-file>] [-- <build-options>...]",
		Short: "Install a runtime version",
		Long: `Install a runtime version using the builder.

Without a version argument, the version named by the nearest .rtenv-version
file is installed. Options after "--" are passed to the builder unchanged.`,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, extra := splitArgs(cmd, args)
			return runInstall(cmd, flags, positional, extra)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Install even if the version appears to be installed already")
	cmd.Flags().BoolVarP(&flags.skipExisting, "skip-existing", "s", false, "Skip if the version appears to be installed already")
	cmd.Flags().BoolVarP(&flags.keep, "keep", "k", false, "Keep source tree in $RTENV_BUILD_ROOT after installation")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose mode: print compilation status to stdout")
	cmd.Flags().BoolVarP(&flags.patch, "patch", "p", false, "Apply a patch from stdin before building")
	cmd.Flags().BoolVarP(&flags.list, "list", "l", false, "List latest stable versions for each implementation")
	cmd.Flags().BoolVarP(&flags.listAll, "list-all", "L", false, "List all available versions, including outdated ones")
	cmd.Flags().BoolVar(&flags.version, "version", false, "Show version of the builder")

	return cmd
}

// splitArgs separates the positional arguments from those after "--".
func splitArgs(cmd *cobra.Command, args []string) ([]string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

func runInstall(cmd *cobra.Command, flags installFlags, positional, extra []string) error {
	listOps := 0
	for _, set := range []bool{flags.list, flags.listAll, flags.version} {
		if set {
			listOps++
		}
	}
	if listOps > 1 {
		return usageError(cmd, errors.ErrConflictingListOp)
	}
	if len(positional) > 1 {
		return usageError(cmd, errors.ErrTooManyArguments)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := builder.NewClient(cfg.Settings.Builder)
	ctx := cmd.Context()

	switch {
	case flags.list:
		return listLatest(ctx, client, cmd.OutOrStdout(), cmd.ErrOrStderr())
	case flags.listAll:
		return listAll(ctx, client, cmd.OutOrStdout())
	case flags.version:
		return showBuilderVersion(ctx, client, cmd.OutOrStdout())
	}

	definition := ""
	if len(positional) == 1 {
		definition = positional[0]
	}
	opts := model.InstallOptions{
		Force:        flags.force,
		SkipExisting: flags.skipExisting,
		Keep:         flags.keep,
		BuildRoot:    cfg.Settings.BuildRoot,
		Verbose:      flags.verbose,
		HasPatch:     flags.patch,
		ExtraArgs:    extra,
	}

	orch := newOrchestrator(cfg, client)
	result, err := orch.Run(ctx, orchestrator.Request{Definition: definition, Options: opts})
	if err != nil {
		if errors.Is(err, errors.ErrUsage) {
			return usageError(cmd, err)
		}
		return err
	}

	logger.Debug("Install finished", logger.Fields{
		"version": result.VersionName,
		"outcome": result.Outcome.String(),
		"status":  result.ExitCode,
	})
	if result.ExitCode != 0 {
		// the builder, advisor or conflict resolver already told the user why
		return errors.WithExitCode(nil, result.ExitCode)
	}
	return nil
}

// newOrchestrator wires the install collaborators for cfg.
func newOrchestrator(cfg *config.Config, client *builder.Client) *orchestrator.Orchestrator {
	root := cfg.Settings.Root
	return &orchestrator.Orchestrator{
		Root:     root,
		CacheDir: cfg.Settings.CacheDir,
		Builder:  client,
		Versions: versionfile.New(root),
		HookLoader: hook.NewManager(cfg.HookDirs(), hook.IO{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		}),
		Conflicts: conflict.NewResolver(os.Stdin, os.Stderr),
		Advisor:   advisor.New(client),
		Rehasher:  rehash.New(root),
		Stderr:    os.Stderr,
		Getenv:    os.Getenv,
		Hooks:     orchestrator.Hooks{OnEvent: logEvent},
	}
}

func listLatest(ctx context.Context, client *builder.Client, stdout, stderr io.Writer) error {
	defs, err := client.Definitions(ctx)
	if err != nil {
		return err
	}
	for _, name := range catalog.LatestStable(defs) {
		fmt.Fprintln(stdout, name)
	}
	fmt.Fprintln(stderr)
	printNote(stderr, "Only latest stable releases for each implementation are shown.")
	printNote(stderr, "Use '%s install --list-all / -L' to show all local versions.", fsutil.AppName)
	return nil
}

func listAll(ctx context.Context, client *builder.Client, stdout io.Writer) error {
	defs, err := client.Definitions(ctx)
	if err != nil {
		return err
	}
	for _, name := range defs {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

func showBuilderVersion(ctx context.Context, client *builder.Client, stdout io.Writer) error {
	client.Stdout = stdout
	if status := client.Version(ctx); status != 0 {
		return errors.WithExitCode(nil, status)
	}
	return nil
}

// usageError prints the command usage and fails with exit status 1.
func usageError(cmd *cobra.Command, err error) error {
	logger.Debug("Usage error", logger.Fields{"error": err.Error()})
	_ = cmd.Usage()
	return errors.WithExitCode(nil, 1)
}
