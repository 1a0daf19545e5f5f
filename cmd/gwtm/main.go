// Package main provides the command-line interface for the gwtm application.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cameronehrlich/gwtm/pkg/config"
	"github.com/cameronehrlich/gwtm/pkg/fs"
	"github.com/cameronehrlich/gwtm/pkg/logger"
	"github.com/cameronehrlich/gwtm/pkg/manager"
)

var (
	configPath string
	debug      bool
)

// newManager builds a fully wired Manager from the resolved configuration.
func newManager() (manager.Manager, error) {
	cfg, err := config.NewManager(fs.NewFS()).LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	return manager.NewManager(manager.NewManagerParams{
		Config: cfg,
		Logger: logger.NewDefaultLogger(debug),
	}), nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "gwtm",
		Short: "Git WorkTree Manager",
		Long: `A CLI tool that wraps git worktree with sensible defaults: worktrees land ` +
			`under a configured root, get ignored automatically, and can be opened in ` +
			`an IDE or merged back with a single command.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Specify a custom config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"Enable debug output")

	rootCmd.AddCommand(
		createAddCmd(),
		createListCmd(),
		createRemoveCmd(),
		createSwitchCmd(),
		createOpenCmd(),
		createMergeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
