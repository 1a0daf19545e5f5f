package prompt

import "errors"

var (
	// ErrNoWorktrees is returned when there is nothing to select from.
	ErrNoWorktrees = errors.New("no worktrees to select from")

	// ErrSelectionAborted is returned when the user quits without selecting.
	ErrSelectionAborted = errors.New("selection aborted")
)
