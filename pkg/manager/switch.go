package manager

import (
	"fmt"
	"path/filepath"
)

// Switch validates the worktree path and returns the cd command to run. A
// child process cannot change its parent shell's directory, so the command is
// advisory. Without a path the user picks a worktree interactively.
func (m *realManager) Switch(path string) (string, error) {
	absPath, err := m.pickOrResolve(path)
	if err != nil {
		return "", err
	}

	exists, err := m.fs.Exists(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", absPath, err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrPathNotFound, absPath)
	}

	return fmt.Sprintf("cd %s", absPath), nil
}

// pickOrResolve resolves the path argument against the working directory,
// falling back to an interactive worktree picker when it is empty. Read-only:
// never creates the worktree root or touches .gitignore.
func (m *realManager) pickOrResolve(path string) (string, error) {
	if path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		return absPath, nil
	}

	entries, err := m.git.ListWorktrees(".")
	if err != nil {
		return "", fmt.Errorf("failed to list worktrees: %w", err)
	}
	entry, err := m.prompter.SelectWorktree(entries)
	if err != nil {
		return "", err
	}
	return entry.Path, nil
}
