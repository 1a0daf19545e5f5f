package git

import "fmt"

// Fetch fetches a branch from the given remote.
func (g *realGit) Fetch(workDir, remote, branch string) error {
	args := []string{"fetch", remote, branch}
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
