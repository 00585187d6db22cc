// Package cmd provides the root command and CLI setup for goracle.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/goracle/internal/adapter"
	"github.com/mouse-blink/goracle/internal/config"
	"github.com/mouse-blink/goracle/internal/controller"
	"github.com/mouse-blink/goracle/internal/domain"
)

// workflow and ui are built on first use so tests can replace them.
var workflow domain.Workflow
var ui controller.UI

var configFlag string
var toolFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goracle",
		Short: "Ask the Go oracle about the code at a source position",
		Long: `Goracle runs the Go oracle on the code at a position of a source file and
prints its answer with every file:line:col reference turned into a
navigation marker.

Positions are 1-based character positions, the way editors count them:
  goracle describe --file main.go --start 120
  goracle callers  --file main.go --line 14 --col 6
  goracle freevars --file main.go --start 120 --end 188

The analysis scope (packages or files) is asked for on the first query and
remembered for the rest of a session:
  goracle session`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), verboseFlag)

			if workflow != nil {
				return nil
			}

			return setup(cmd.Root())
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file (default goracle.yaml, goracle.yml or goracle.toml)")
	cmd.PersistentFlags().StringVar(&toolFlag, "tool", "", "analysis tool executable (overrides config and GORACLE_TOOL)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log tool invocations to stderr")

	return cmd
}

// setup wires the adapters, domain services and UI for a real session.
func setup(cmd *cobra.Command) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	if toolFlag != "" {
		cfg.Tool = toolFlag
	}

	useTTY := controller.IsTTY(os.Stdout)

	ui = controller.NewUI(cmd, useTTY, controller.Settings{
		MaxHeight:  cfg.PanelMaxHeight,
		Hyperlinks: cfg.HyperlinksEnabled(useTTY),
		Opener:     adapter.NewCommandEditorAdapter(cfg.Editor),
	})

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	encoder := domain.NewPositionEncoder(fsAdapter)
	suggester := domain.NewScopeSuggester(cfg.ScopeRules, fsAdapter, adapter.NewLocalGoFileAdapter())
	invoker := domain.NewInvoker(fsAdapter, adapter.NewLocalToolRunnerAdapter(), encoder, suggester, ui)

	workflow = domain.NewWorkflow(domain.NewSession(cfg), invoker, domain.NewAnnotator(cfg.Glyph), ui)

	slog.Debug("session ready", "tool", cfg.Tool, "goroot", cfg.GOROOT, "tty", useTTY)

	return nil
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
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
