package main

import "github.com/spf13/cobra"

func createRemoveCmd() *cobra.Command {
	var noPrune bool

	removeCmd := &cobra.Command{
		Use:   "remove <path>",
		Short: "Remove a worktree",
		Long: `Remove a worktree and prune stale worktree data afterwards.

Examples:
  gwtm remove my-worktree
  gwtm remove my-worktree --no-prune`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mgr, err := newManager()
			if err != nil {
				return err
			}
			return mgr.Remove(args[0], !noPrune)
		},
	}

	removeCmd.Flags().BoolVar(&noPrune, "no-prune", false,
		"Don't prune stale worktree data")

	return removeCmd
}
