// Package cli implements the quizzboi command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/app"
	"github.com/aliskhannn/quizzboi/internal/config"
	"github.com/aliskhannn/quizzboi/internal/logger"
)

// runtime carries state shared by all subcommands of one invocation.
type runtime struct {
	configDir string
	verbose   bool

	cfg    *config.Config
	logger *zap.Logger
	engine *app.Engine
}

// NewRootCommand builds the quizzboi command tree.
func NewRootCommand() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "quizzboi",
		Short: "A staged vocabulary quiz built from your own reading",
		Long: `quizzboi turns a vocabulary list and a text you read into
multiple-choice questions. Each question asks for the term, its reading
and its meaning in turn, and keeps streak statistics as you answer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			rt.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&rt.configDir, "config-dir", "", "directory containing config.yaml (default ./config)")
	root.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newIngestCommand(rt),
		newQuizCommand(rt),
		newStatsCommand(rt),
		newSettingsCommand(rt),
		newVocabCommand(rt),
		newResetCommand(rt),
		newBotCommand(rt),
	)

	return root
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

func (rt *runtime) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(rt.configDir)
	if err != nil {
		return err
	}
	rt.cfg = cfg

	// Long-running commands log normally; interactive ones only surface problems.
	var l *zap.Logger
	if cmd.Name() == "bot" || rt.verbose {
		l, err = logger.New(cfg)
	} else {
		l, err = logger.NewQuiet(cfg)
	}
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	rt.logger = l

	engine, err := app.New(cmd.Context(), cfg, l)
	if err != nil {
		return err
	}
	rt.engine = engine

	return nil
}

func (rt *runtime) teardown() {
	if rt.engine != nil {
		rt.engine.Close()
	}
	if rt.logger != nil {
		_ = rt.logger.Sync()
	}
}
