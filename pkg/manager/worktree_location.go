package manager

import (
	"fmt"
	"path/filepath"
	"strings"
)

// gitignoreHeader precedes the worktree root entry appended to .gitignore.
const gitignoreHeader = "# gwtm worktrees"

// resolveWorktreePath turns the user-supplied path or branch into the
// absolute path of the worktree. Relative paths and bare branch names land
// under the default worktree root, which is created on first use.
func (m *realManager) resolveWorktreePath(pathInput, branch string) (string, error) {
	if pathInput == "" {
		if branch == "" {
			return "", ErrMissingTarget
		}
		root, err := m.ensureWorktreeRoot()
		if err != nil {
			return "", err
		}
		return filepath.Join(root, branch), nil
	}

	if filepath.IsAbs(pathInput) {
		return filepath.Clean(pathInput), nil
	}

	root, err := m.ensureWorktreeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, pathInput), nil
}

// ensureWorktreeRoot creates the default worktree root if missing and makes
// sure Git ignores it. Both steps are idempotent.
func (m *realManager) ensureWorktreeRoot() (string, error) {
	repoRoot, err := m.git.RepositoryRoot(".")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotAGitRepository, err)
	}

	root := m.config.WorktreeLocation
	if !filepath.IsAbs(root) {
		root = filepath.Join(repoRoot, root)
	}

	if err := m.fs.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("failed to create worktree root %s: %w", root, err)
	}

	if err := m.ensureIgnored(repoRoot, root); err != nil {
		return "", err
	}

	return root, nil
}

// ensureIgnored records the worktree root in the repository's .gitignore so
// nested worktrees never show up as untracked files. Roots outside the
// repository need no entry.
func (m *realManager) ensureIgnored(repoRoot, root string) error {
	rel, err := filepath.Rel(repoRoot, root)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil
	}
	entry := filepath.ToSlash(rel) + "/"

	gitignorePath := filepath.Join(repoRoot, ".gitignore")
	exists, err := m.fs.Exists(gitignorePath)
	if err != nil {
		return fmt.Errorf("failed to check .gitignore: %w", err)
	}

	if !exists {
		content := gitignoreHeader + "\n" + entry + "\n"
		if err := m.fs.WriteFile(gitignorePath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to create .gitignore: %w", err)
		}
		m.logger.Logf("Added %s to %s", entry, gitignorePath)
		return nil
	}

	content, err := m.fs.ReadFile(gitignorePath)
	if err != nil {
		return fmt.Errorf("failed to read .gitignore: %w", err)
	}
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == entry {
			return nil
		}
	}

	addition := "\n" + gitignoreHeader + "\n" + entry + "\n"
	if err := m.fs.AppendToFile(gitignorePath, []byte(addition), 0644); err != nil {
		return fmt.Errorf("failed to update .gitignore: %w", err)
	}
	m.logger.Logf("Added %s to %s", entry, gitignorePath)
	return nil
}
