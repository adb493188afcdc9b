// Package cmd provides the root command and CLI setup for tracecity.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/tracecity/internal/adapter"
	"github.com/mouse-blink/tracecity/internal/controller"
	"github.com/mouse-blink/tracecity/internal/domain"
	m "github.com/mouse-blink/tracecity/internal/model"
)

var logLevel = new(slog.LevelVar)
var logger *slog.Logger
var traceStore adapter.TraceStore
var sceneStore adapter.SceneStore
var traceWatcher adapter.TraceWatcher
var ui controller.UI
var workflow domain.Workflow

func init() {
	logLevel.Set(slog.LevelWarn)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	traceStore = adapter.NewLocalTraceStore(logger)
	sceneStore = adapter.NewLocalSceneStore()
	traceWatcher = adapter.NewLocalTraceWatcher(logger)
	workflow = domain.NewWorkflow(traceStore, sceneStore, traceWatcher, ui, logger)
}

var configFlag string
var verboseFlag bool
var noTTYFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracecity",
		Short: "Explore execution traces as a 3D city",
		Long: `Tracecity lays an execution trace out as a city: one building per
function, variable, loop and branch on a spiral, nested galaxies, bubbles
and trees for their bodies, and a memory plane of address nodes fed by
fountains from the variables that share them.

Traces are YAML or JSON files holding a list of events, or an object with
"events" and an optional "snapshot".`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}

			if noTTYFlag {
				useSimpleUI(cmd.Root())
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML file overriding the layout constants")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug details to stderr")
	cmd.PersistentFlags().BoolVar(&noTTYFlag, "no-tty", false, "print plain tables even on a terminal")

	return cmd
}

// useSimpleUI swaps an interactive UI for plain tables.
func useSimpleUI(root *cobra.Command) {
	if _, ok := ui.(*controller.TUI); !ok {
		return
	}

	ui = controller.NewSimpleUI(root)
	workflow = domain.NewWorkflow(traceStore, sceneStore, traceWatcher, ui, logger)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
