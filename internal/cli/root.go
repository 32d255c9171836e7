// Package cli wires configuration, logging, the park directory and its
// front ends (TUI, list, serve) behind cobra commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"parkgrip/internal/config"
	"parkgrip/internal/ui"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	configPath string
	source     string
	debug      bool
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "parkgrip",
		Short:        "Browse, search and filter local parks in the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ./"+config.DefaultFileName+")")
	cmd.PersistentFlags().StringVarP(&flags.source, "source", "s", "", "park dataset URL or file, overrides the config")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newInitCmd(flags))
	return cmd
}

func runTUI(ctx context.Context, flags *globalFlags) error {
	sess, err := openSession(flags)
	if err != nil {
		return err
	}
	defer sess.Close()

	dir := sess.Directory()
	model := ui.NewModel(ctx, dir, sess.cfg, sess.logger)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		sess.logger.Error("TUI exited with error", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
