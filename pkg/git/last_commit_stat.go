package git

import "fmt"

// LastCommitStat returns a diffstat summary of the latest commit.
func (g *realGit) LastCommitStat(workDir string) (string, error) {
	args := []string{"log", "-1", "--stat"}
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
