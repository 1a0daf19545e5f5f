package git

import "fmt"

// RemoveWorktree removes the worktree at the given path from Git's tracking.
func (g *realGit) RemoveWorktree(workDir, worktreePath string) error {
	args := []string{"worktree", "remove", worktreePath}
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
