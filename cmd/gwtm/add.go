package main

import (
	"github.com/spf13/cobra"

	"github.com/cameronehrlich/gwtm/pkg/manager"
)

func createAddCmd() *cobra.Command {
	var newBranch bool
	var fromIssue string

	addCmd := &cobra.Command{
		Use:   "add [path] [branch]",
		Short: "Add a new worktree",
		Long: `Add a new worktree. A relative or omitted path resolves under the default
worktree root, which is created and added to .gitignore on first use.

Examples:
  gwtm add my-worktree feature-x
  gwtm add -b my-worktree feature-x
  gwtm add --from-issue 42`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			mgr, err := newManager()
			if err != nil {
				return err
			}

			opts := manager.AddOpts{NewBranch: newBranch, FromIssue: fromIssue}
			if len(args) > 0 {
				opts.Path = args[0]
			}
			if len(args) > 1 {
				opts.Branch = args[1]
			}
			return mgr.Add(opts)
		},
	}

	addCmd.Flags().BoolVarP(&newBranch, "new-branch", "b", false,
		"Create the branch before checking it out")
	addCmd.Flags().StringVar(&fromIssue, "from-issue", "",
		"Derive a new branch from a GitHub issue (URL, owner/repo#N or number)")

	return addCmd
}
