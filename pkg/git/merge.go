package git

import "fmt"

// Merge merges a branch into the current branch and returns git's stdout.
// A non-zero exit indicates a conflict state; the repository is left in
// git's in-progress-merge state for manual resolution.
func (g *realGit) Merge(workDir, branch string) (string, error) {
	args := []string{"merge", branch}
	res, err := run(workDir, true, args...)
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", commandLine(args), err)
	}
	if res.exitCode != 0 {
		return res.stdout, fmt.Errorf("%w (command: %s, output: %s)",
			ErrCommandFailed, commandLine(args), res.stderr)
	}
	return res.stdout, nil
}
