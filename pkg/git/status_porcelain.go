package git

import "fmt"

// StatusPorcelain returns `git status --porcelain` output for the given
// directory. Empty output means a clean working tree.
func (g *realGit) StatusPorcelain(workDir string) (string, error) {
	args := []string{"status", "--porcelain"}
	res, err := run(workDir, true, args...)
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", commandLine(args), err)
	}
	if res.exitCode != 0 {
		return "", fmt.Errorf("%w (command: %s, output: %s)",
			ErrCommandFailed, commandLine(args), res.stderr)
	}
	return res.stdout, nil
}
