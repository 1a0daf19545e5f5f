package git

import (
	"fmt"
	"strings"
)

// CurrentBranch returns the currently checked-out branch. On detached HEAD
// git prints nothing, so the empty string is returned without error.
func (g *realGit) CurrentBranch(workDir string) (string, error) {
	args := []string{"branch", "--show-current"}
	res, err := run(workDir, true, args...)
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", commandLine(args), err)
	}
	if res.exitCode != 0 {
		return "", fmt.Errorf("%w (command: %s, output: %s)",
			ErrCommandFailed, commandLine(args), res.stderr)
	}
	return strings.TrimSpace(res.stdout), nil
}
