package git

import (
	"fmt"
	"strings"
)

// RepositoryRoot returns the top-level directory of the repository containing workDir.
func (g *realGit) RepositoryRoot(workDir string) (string, error) {
	args := []string{"rev-parse", "--show-toplevel"}
	res, err := run(workDir, true, args...)
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", commandLine(args), err)
	}
	if res.exitCode != 0 {
		return "", fmt.Errorf("%w: %s", ErrNotARepository, res.stderr)
	}
	return strings.TrimSpace(res.stdout), nil
}
