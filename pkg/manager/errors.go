package manager

import "errors"

// Error definitions for worktree management operations.
var (
	// ErrNotAGitRepository occurs when the current directory is not inside a
	// Git working tree.
	ErrNotAGitRepository = errors.New("not inside a git repository")

	// ErrMissingTarget occurs when neither a path nor a branch identifies the
	// worktree to operate on.
	ErrMissingTarget = errors.New("either a path or a branch must be provided")

	// ErrPathNotFound occurs when the named worktree path does not exist.
	ErrPathNotFound = errors.New("worktree path does not exist")

	// ErrWorktreeCreation occurs when git refuses to create the worktree.
	ErrWorktreeCreation = errors.New("failed to create worktree")

	// ErrBranchResolution occurs when no registered worktree matches the
	// given path, or the worktree has no branch checked out.
	ErrBranchResolution = errors.New("failed to resolve worktree branch")

	// ErrDirtyWorktree occurs when a worktree has uncommitted changes.
	ErrDirtyWorktree = errors.New("worktree has uncommitted changes")

	// ErrBranchNotFound occurs when the worktree branch exists neither
	// locally nor on the origin remote.
	ErrBranchNotFound = errors.New("branch not found")

	// ErrAmbiguousTarget occurs when no target branch is given and the main
	// working directory is in detached HEAD state.
	ErrAmbiguousTarget = errors.New("cannot determine target branch, HEAD is detached")

	// ErrSameBranch occurs when the source and target branch are identical.
	ErrSameBranch = errors.New("source and target branch are the same")

	// ErrCheckout occurs when checking out the target branch fails.
	ErrCheckout = errors.New("failed to check out target branch")

	// ErrMergeConflict occurs when the merge fails, typically on conflicts.
	ErrMergeConflict = errors.New("merge failed")
)
