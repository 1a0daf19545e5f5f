package git

import (
	"fmt"
	"strings"
)

// RemoteURL returns the URL of the given remote.
func (g *realGit) RemoteURL(workDir, remote string) (string, error) {
	args := []string{"remote", "get-url", remote}
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
