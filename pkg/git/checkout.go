package git

import "fmt"

// Checkout checks out a branch in the given directory. Output streams to the
// terminal so git's own progress and hints stay visible.
func (g *realGit) Checkout(workDir, branch string) error {
	args := []string{"checkout", branch}
	res, err := run(workDir, false, args...)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", commandLine(args), err)
	}
	if res.exitCode != 0 {
		return fmt.Errorf("%w (command: %s, exit code: %d)",
			ErrCommandFailed, commandLine(args), res.exitCode)
	}
	return nil
}
