package git

// WorktreeEntry describes a single registered worktree. Path is always
// absolute in git's listing output. Branch is empty for detached HEAD.
type WorktreeEntry struct {
	Path   string
	Branch string
}

// AddWorktreeParams contains parameters for AddWorktree.
type AddWorktreeParams struct {
	Path      string
	Branch    string
	NewBranch bool
}
