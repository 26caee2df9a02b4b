package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/rtenv/internal/cli"
	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	configPath string
	noColor    bool
	debug      bool
)

func main() {
	ctx, cancel := signalContext(os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}

// signalContext is cancelled by the first of signals to arrive, with an
// *errors.Interrupt naming it as the cause.
func signalContext(signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(context.Background())
	received := make(chan os.Signal, 1)
	signal.Notify(received, signals...)

	go func() {
		select {
		case sig := <-received:
			cancel(&errors.Interrupt{Signal: sig})
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(received)
		cancel(context.Canceled)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rtenv",
		Short: "Manage runtime versions",
		Long: `rtenv installs and manages multiple runtime versions side by side.
Builds are delegated to an external builder (rtenv-build by default).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.NoColor = &noColor
	cli.Debug = &debug

	cmd.AddCommand(
		cli.NewInstallCmd(),
		cli.NewExecCmd(),
		cli.NewRehashCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
