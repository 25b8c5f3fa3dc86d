// Package cmd provides the root command and CLI setup for scramble.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/scramble/internal/adapter"
	"github.com/mouse-blink/scramble/internal/controller"
	"github.com/mouse-blink/scramble/internal/domain"
	"github.com/mouse-blink/scramble/internal/domain/stages"
	m "github.com/mouse-blink/scramble/internal/model"
)

var fsAdapter adapter.SourceFSAdapter = adapter.NewLocalSourceFSAdapter()
var reportStore adapter.ReportStore = adapter.NewReportStore()
var syntaxChecker adapter.SyntaxChecker = adapter.NewTreeSitterChecker()
var diffRenderer adapter.DiffRenderer = adapter.NewLineDiffRenderer()
var configLoader adapter.ConfigLoader = adapter.NewYAMLConfigLoader()

// workflowFactory builds the workflow once the settings of a command are
// known. Tests replace it with a mock.
var workflowFactory = newWorkflow

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scramble [flags] <paths...>",
		Short: "Make Java and Kotlin sources messier on purpose",
		Long:  runLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScramble,
	}

	addPersistentFlags(cmd)
	addRunFlags(cmd)

	return cmd
}

func newWorkflow(cmd *cobra.Command, settings m.Settings) domain.Workflow {
	useTTY := controller.IsTTY(cmd.OutOrStdout()) && !settings.Verbose

	return domain.NewWorkflow(
		fsAdapter,
		reportStore,
		syntaxChecker,
		diffRenderer,
		controller.NewUI(cmd, useTTY),
		domain.NewScrambler(stages.NewRandom(settings.Seed)),
		newLogger(cmd.ErrOrStderr(), settings.Verbose),
	)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// An interrupt cancels the command context; workers stop after the file in progress.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
