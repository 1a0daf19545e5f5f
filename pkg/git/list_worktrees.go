package git

import (
	"fmt"
	"strings"
)

// ListWorktrees lists worktrees using the human-readable format. The first
// whitespace-delimited field of each line is the path, the second (stripped
// of surrounding brackets) is the label; lines that don't split into at least
// two fields are skipped rather than failing the whole listing.
func (g *realGit) ListWorktrees(workDir string) ([]WorktreeEntry, error) {
	args := []string{"worktree", "list"}
	res, err := run(workDir, true, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", commandLine(args), err)
	}
	if res.exitCode != 0 {
		return nil, fmt.Errorf("%w (command: %s, output: %s)",
			ErrCommandFailed, commandLine(args), res.stderr)
	}

	return parseWorktreeList(res.stdout), nil
}

// parseWorktreeList parses plain `git worktree list` output.
func parseWorktreeList(output string) []WorktreeEntry {
	var entries []WorktreeEntry
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		entries = append(entries, WorktreeEntry{
			Path:   fields[0],
			Branch: strings.Trim(fields[1], "[]"),
		})
	}
	return entries
}
