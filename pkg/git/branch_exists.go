package git

import (
	"fmt"
	"strings"
)

const defaultRemote = "origin"

// BranchExists checks if a branch exists locally or on the default remote.
func (g *realGit) BranchExists(workDir, branch string) (bool, error) {
	// Check local branches
	args := []string{"branch", "--list", branch}
	res, err := run(workDir, true, args...)
	if err != nil {
		return false, fmt.Errorf("failed to run %s: %w", commandLine(args), err)
	}
	if res.exitCode != 0 {
		return false, fmt.Errorf("%w (command: %s, output: %s)",
			ErrCommandFailed, commandLine(args), res.stderr)
	}
	if strings.TrimSpace(res.stdout) != "" {
		return true, nil
	}

	// Check remote-tracking branches
	args = []string{"branch", "-r", "--list", defaultRemote + "/" + branch}
	res, err = run(workDir, true, args...)
	if err != nil {
		return false, fmt.Errorf("failed to run %s: %w", commandLine(args), err)
	}
	if res.exitCode != 0 {
		return false, fmt.Errorf("%w (command: %s, output: %s)",
			ErrCommandFailed, commandLine(args), res.stderr)
	}
	return strings.TrimSpace(res.stdout) != "", nil
}
