package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all worktrees",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			mgr, err := newManager()
			if err != nil {
				return err
			}

			entries, err := mgr.List()
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("No worktrees found.")
				return nil
			}
			for _, entry := range entries {
				if entry.Branch != "" {
					fmt.Printf("%s [%s]\n", entry.Path, entry.Branch)
				} else {
					fmt.Println(entry.Path)
				}
			}
			return nil
		},
	}
}
