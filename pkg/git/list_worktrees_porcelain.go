package git

import (
	"fmt"
	"strings"
)

// ListWorktreesPorcelain lists worktrees using the porcelain format. Branch
// references have their "refs/heads/" prefix stripped; detached worktrees
// yield an entry with an empty branch. Unrecognized line shapes are skipped.
func (g *realGit) ListWorktreesPorcelain(workDir string) ([]WorktreeEntry, error) {
	args := []string{"worktree", "list", "--porcelain"}
	res, err := run(workDir, true, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", commandLine(args), err)
	}
	if res.exitCode != 0 {
		return nil, fmt.Errorf("%w (command: %s, output: %s)",
			ErrCommandFailed, commandLine(args), res.stderr)
	}

	return parseWorktreeListPorcelain(res.stdout), nil
}

// parseWorktreeListPorcelain parses `git worktree list --porcelain` output.
// Each stanza starts with a "worktree " line; a following "branch " line
// names the checked-out ref.
func parseWorktreeListPorcelain(output string) []WorktreeEntry {
	var entries []WorktreeEntry
	var current *WorktreeEntry

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current = &WorktreeEntry{
				Path: strings.TrimSpace(strings.TrimPrefix(line, "worktree ")),
			}
		case strings.HasPrefix(line, "branch ") && current != nil:
			ref := strings.TrimSpace(strings.TrimPrefix(line, "branch "))
			current.Branch = strings.TrimPrefix(ref, "refs/heads/")
		}
	}
	flush()

	return entries
}
