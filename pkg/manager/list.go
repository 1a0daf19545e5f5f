package manager

import (
	"fmt"

	"github.com/cameronehrlich/gwtm/pkg/git"
)

// List returns all worktrees registered in the current repository, the main
// working directory included.
func (m *realManager) List() ([]git.WorktreeEntry, error) {
	if err := m.requireRepository(); err != nil {
		return nil, err
	}

	entries, err := m.git.ListWorktrees(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}
	return entries, nil
}
