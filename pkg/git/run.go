package git

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// result bundles the outcome of a single git invocation.
type result struct {
	exitCode int
	stdout   string
	stderr   string
}

// run spawns the git binary with the given argument vector and waits for it
// to complete. When captureOutput is false the child inherits the parent's
// stdout/stderr, which keeps interactive and progress output visible. A
// non-zero exit is reported through result.exitCode; the returned error is
// non-nil only when the process could not be started at all. No timeout and
// no retry: a hang in git hangs the caller.
func run(workDir string, captureOutput bool, args ...string) (result, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	if captureOutput {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	res := result{
		stdout: stdout.String(),
		stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.exitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}

	return res, nil
}

// commandLine renders an argument vector for error messages.
func commandLine(args []string) string {
	return "git " + strings.Join(args, " ")
}
