package manager

import (
	"fmt"
	"path/filepath"

	"github.com/cameronehrlich/gwtm/pkg/git"
)

// Add creates a new worktree. A bare branch name is enough: the worktree then
// lands under the default worktree root, named after the branch.
func (m *realManager) Add(opts AddOpts) error {
	if err := m.requireRepository(); err != nil {
		return err
	}

	branch := opts.Branch
	newBranch := opts.NewBranch

	if opts.FromIssue != "" {
		info, err := m.forge.GetIssueInfo(opts.FromIssue)
		if err != nil {
			return fmt.Errorf("failed to fetch issue %s: %w", opts.FromIssue, err)
		}
		if branch == "" {
			branch = m.forge.GenerateBranchName(info)
		}
		newBranch = true
		m.logger.Logf("Issue #%d: %s", info.Number, info.Title)
	}

	path, err := m.resolveWorktreePath(opts.Path, branch)
	if err != nil {
		return err
	}

	if err := m.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", path, err)
	}

	params := git.AddWorktreeParams{Path: path, Branch: branch, NewBranch: newBranch}
	if err := m.git.AddWorktree(".", params); err != nil {
		return fmt.Errorf("%w: %v", ErrWorktreeCreation, err)
	}

	m.logger.Logf("Created worktree at %s", path)
	return nil
}
