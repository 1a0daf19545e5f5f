package main

import "github.com/spf13/cobra"

func createOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open [path] [ide]",
		Short: "Open a worktree in an IDE",
		Long: `Open a worktree in the given IDE, or the configured default. Without a
path an interactive picker is shown.

Examples:
  gwtm open my-worktree
  gwtm open my-worktree androidstudio`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			mgr, err := newManager()
			if err != nil {
				return err
			}

			var path, ideName string
			if len(args) > 0 {
				path = args[0]
			}
			if len(args) > 1 {
				ideName = args[1]
			}
			return mgr.Open(path, ideName)
		},
	}
}
