package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// IsInsideWorkTree checks whether workDir is inside a Git working tree.
	IsInsideWorkTree(workDir string) bool

	// RepositoryRoot returns the top-level directory of the repository containing workDir.
	RepositoryRoot(workDir string) (string, error)

	// AddWorktree creates a new worktree at the given path.
	AddWorktree(workDir string, params AddWorktreeParams) error

	// ListWorktrees lists worktrees using the human-readable format.
	ListWorktrees(workDir string) ([]WorktreeEntry, error)

	// ListWorktreesPorcelain lists worktrees using the porcelain format.
	ListWorktreesPorcelain(workDir string) ([]WorktreeEntry, error)

	// RemoveWorktree removes the worktree at the given path from Git's tracking.
	RemoveWorktree(workDir, worktreePath string) error

	// PruneWorktrees prunes stale worktree administrative data.
	PruneWorktrees(workDir string) error

	// StatusPorcelain returns `git status --porcelain` output for the given directory.
	StatusPorcelain(workDir string) (string, error)

	// CurrentBranch returns the currently checked-out branch, empty on detached HEAD.
	CurrentBranch(workDir string) (string, error)

	// BranchExists checks if a branch exists locally or on the default remote.
	BranchExists(workDir, branch string) (bool, error)

	// Fetch fetches a branch from the given remote.
	Fetch(workDir, remote, branch string) error

	// Checkout checks out a branch, streaming output to the terminal.
	Checkout(workDir, branch string) error

	// Merge merges a branch into the current branch and returns git's stdout.
	Merge(workDir, branch string) (string, error)

	// LastCommitStat returns a diffstat summary of the latest commit.
	LastCommitStat(workDir string) (string, error)

	// RemoteURL returns the URL of the given remote.
	RemoteURL(workDir, remote string) (string, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
