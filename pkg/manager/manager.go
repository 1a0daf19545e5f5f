// Package manager implements the worktree orchestration logic: path
// resolution, gitignore bookkeeping and the add/list/remove/switch/open/merge
// operations, all delegating version control to the git binary.
package manager

import (
	"github.com/cameronehrlich/gwtm/pkg/config"
	"github.com/cameronehrlich/gwtm/pkg/forge"
	"github.com/cameronehrlich/gwtm/pkg/fs"
	"github.com/cameronehrlich/gwtm/pkg/git"
	"github.com/cameronehrlich/gwtm/pkg/ide"
	"github.com/cameronehrlich/gwtm/pkg/logger"
	"github.com/cameronehrlich/gwtm/pkg/prompt"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides worktree management functionality.
type Manager interface {
	// Add creates a new worktree.
	Add(opts AddOpts) error

	// List returns all registered worktrees.
	List() ([]git.WorktreeEntry, error)

	// Remove removes a worktree, optionally pruning stale metadata afterwards.
	Remove(path string, prune bool) error

	// Switch validates a worktree path and returns the shell command a user
	// should run to change into it. With an empty path the user picks one
	// interactively.
	Switch(path string) (string, error)

	// Open opens a worktree in the named IDE, or the configured default.
	Open(path, ideName string) error

	// MergeFrom merges the worktree's branch into the target branch, or the
	// current branch of the main working directory when no target is given.
	MergeFrom(worktreePath, targetBranch string) error

	// SetLogger sets the logger for this Manager instance.
	SetLogger(logger logger.Logger)
}

// AddOpts contains parameters for Add.
type AddOpts struct {
	// Path of the new worktree; resolved under the default worktree root
	// when relative or empty.
	Path string

	// Branch to check out, or to create with NewBranch.
	Branch string

	// NewBranch creates Branch from the current HEAD.
	NewBranch bool

	// FromIssue derives a new branch name from a forge issue reference.
	FromIssue string
}

// NewManagerParams contains parameters for creating a new Manager instance.
// Nil fields get real implementations.
type NewManagerParams struct {
	Config   *config.Config
	Git      git.Git
	FS       fs.FS
	IDE      ide.ManagerInterface
	Forge    forge.Forge
	Prompter prompt.Prompter
	Logger   logger.Logger
}

type realManager struct {
	config   *config.Config
	git      git.Git
	fs       fs.FS
	ide      ide.ManagerInterface
	forge    forge.Forge
	prompter prompt.Prompter
	logger   logger.Logger
}

// NewManager creates a new Manager instance.
func NewManager(params NewManagerParams) Manager {
	if params.Config == nil {
		params.Config = config.DefaultConfig()
	}
	if params.Git == nil {
		params.Git = git.NewGit()
	}
	if params.FS == nil {
		params.FS = fs.NewFS()
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}
	if params.IDE == nil {
		params.IDE = ide.NewManager(params.FS, params.Logger, params.Config.IDEPaths)
	}
	if params.Forge == nil {
		params.Forge = forge.NewGitHub(params.Git)
	}
	if params.Prompter == nil {
		params.Prompter = prompt.NewPrompter()
	}

	return &realManager{
		config:   params.Config,
		git:      params.Git,
		fs:       params.FS,
		ide:      params.IDE,
		forge:    params.Forge,
		prompter: params.Prompter,
		logger:   params.Logger,
	}
}

// SetLogger sets the logger for this Manager instance.
func (m *realManager) SetLogger(logger logger.Logger) {
	m.logger = logger
}

// requireRepository fails unless the current directory is inside a Git
// working tree.
func (m *realManager) requireRepository() error {
	if !m.git.IsInsideWorkTree(".") {
		return ErrNotAGitRepository
	}
	return nil
}
