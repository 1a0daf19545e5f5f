package manager

import "fmt"

// Remove removes a worktree. Pruning stale administrative data is best-effort
// and only attempted after a successful removal.
func (m *realManager) Remove(path string, prune bool) error {
	if err := m.requireRepository(); err != nil {
		return err
	}

	absPath, err := m.resolveWorktreePath(path, "")
	if err != nil {
		return err
	}

	if err := m.git.RemoveWorktree(".", absPath); err != nil {
		return fmt.Errorf("failed to remove worktree %s: %w", absPath, err)
	}
	m.logger.Logf("Removed worktree at %s", absPath)

	if prune {
		if err := m.git.PruneWorktrees("."); err != nil {
			m.logger.Warnf("failed to prune worktrees: %v", err)
		}
	}
	return nil
}
