package main

import "github.com/spf13/cobra"

func createMergeCmd() *cobra.Command {
	var targetBranch string

	mergeCmd := &cobra.Command{
		Use:   "merge <path>",
		Short: "Merge a worktree's branch back",
		Long: `Merge the branch checked out in a worktree into the target branch. The
worktree must be clean. Without --into, the current branch of the main
working directory is the target.

Examples:
  gwtm merge my-worktree
  gwtm merge my-worktree --into main`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mgr, err := newManager()
			if err != nil {
				return err
			}
			return mgr.MergeFrom(args[0], targetBranch)
		},
	}

	mergeCmd.Flags().StringVar(&targetBranch, "into", "",
		"Target branch to merge into (defaults to the current branch)")

	return mergeCmd
}
