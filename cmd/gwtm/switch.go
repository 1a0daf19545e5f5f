package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch [path]",
		Short: "Print the command to change into a worktree",
		Long: `Print the cd command for a worktree. A process cannot change its parent
shell's directory, so the command is printed for the user to run. Without a
path an interactive picker is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mgr, err := newManager()
			if err != nil {
				return err
			}

			var path string
			if len(args) > 0 {
				path = args[0]
			}
			cdCmd, err := mgr.Switch(path)
			if err != nil {
				return err
			}

			fmt.Println("To switch to the worktree, run:")
			fmt.Printf("  %s\n", cdCmd)
			return nil
		},
	}
}
