package git

import "fmt"

// AddWorktree creates a new worktree at the given path. With NewBranch set, a
// new branch is created from the current HEAD; with Branch alone, the existing
// branch is checked out; with neither, the worktree tracks the current HEAD.
func (g *realGit) AddWorktree(workDir string, params AddWorktreeParams) error {
	args := []string{"worktree", "add"}
	switch {
	case params.NewBranch && params.Branch != "":
		args = append(args, "-b", params.Branch, params.Path)
	case params.Branch != "":
		args = append(args, params.Path, params.Branch)
	default:
		args = append(args, params.Path)
	}

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
