package git

import "fmt"

// PruneWorktrees prunes stale worktree administrative data.
func (g *realGit) PruneWorktrees(workDir string) error {
	args := []string{"worktree", "prune"}
	res, err := run(workDir, true, args...)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", commandLine(args), err)
	}
	if res.exitCode != 0 {
		return fmt.Errorf("%w (command: %s, output: %s)",
			ErrCommandFailed, commandLine(args), res.stderr)
	}
	return nil
}
