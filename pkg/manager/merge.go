package manager

import (
	"fmt"
	"path/filepath"
	"strings"
)

// mergeRemote is the remote consulted for the target branch before merging.
const mergeRemote = "origin"

// MergeFrom merges the branch checked out in the given worktree into the
// target branch of the main working directory. The worktree must be clean;
// the merge itself happens in the current directory after checking out the
// target branch.
func (m *realManager) MergeFrom(worktreePath, targetBranch string) error {
	if err := m.requireRepository(); err != nil {
		return err
	}

	absPath, err := filepath.Abs(worktreePath)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", worktreePath, err)
	}
	exists, err := m.fs.Exists(absPath)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", absPath, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrPathNotFound, absPath)
	}

	branch, err := m.worktreeBranch(absPath)
	if err != nil {
		return err
	}

	status, err := m.git.StatusPorcelain(absPath)
	if err != nil {
		return fmt.Errorf("failed to check worktree status: %w", err)
	}
	if strings.TrimSpace(status) != "" {
		return fmt.Errorf("%w: %s, commit or stash them first", ErrDirtyWorktree, absPath)
	}

	branchExists, err := m.git.BranchExists(".", branch)
	if err != nil {
		return fmt.Errorf("failed to look up branch %s: %w", branch, err)
	}
	if !branchExists {
		return fmt.Errorf("%w: %s", ErrBranchNotFound, branch)
	}

	target := targetBranch
	if target == "" {
		target, err = m.git.CurrentBranch(".")
		if err != nil {
			return fmt.Errorf("failed to determine current branch: %w", err)
		}
		if target == "" {
			return ErrAmbiguousTarget
		}
	}

	if branch == target {
		return fmt.Errorf("%w: %s", ErrSameBranch, branch)
	}

	if err := m.git.Fetch(".", mergeRemote, target); err != nil {
		m.logger.Warnf("failed to fetch %s from %s: %v", target, mergeRemote, err)
	} else {
		m.logger.Debugf("fetched %s from %s", target, mergeRemote)
	}

	m.logger.Logf("Merging %s into %s", branch, target)
	if err := m.git.Checkout(".", target); err != nil {
		return fmt.Errorf("%w: %v", ErrCheckout, err)
	}

	output, err := m.git.Merge(".", branch)
	if err != nil {
		return fmt.Errorf("%w: %v, resolve conflicts and commit manually", ErrMergeConflict, err)
	}

	if strings.Contains(output, "Already up to date") {
		m.logger.Logf("%s is already up to date with %s", target, branch)
		return nil
	}

	m.logger.Logf("Merged %s into %s", branch, target)
	if stat, err := m.git.LastCommitStat("."); err == nil {
		m.logger.Logf("%s", stat)
	}
	return nil
}

// worktreeBranch looks up the branch checked out in the worktree at absPath
// via the porcelain worktree listing.
func (m *realManager) worktreeBranch(absPath string) (string, error) {
	entries, err := m.git.ListWorktreesPorcelain(".")
	if err != nil {
		return "", fmt.Errorf("failed to list worktrees: %w", err)
	}
	for _, entry := range entries {
		if filepath.Clean(entry.Path) != absPath {
			continue
		}
		if entry.Branch == "" {
			return "", fmt.Errorf("%w: %s has a detached HEAD", ErrBranchResolution, absPath)
		}
		return entry.Branch, nil
	}
	return "", fmt.Errorf("%w: no worktree registered at %s", ErrBranchResolution, absPath)
}
