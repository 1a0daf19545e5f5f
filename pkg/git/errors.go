// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	// ErrCommandFailed is returned when the git binary exits non-zero.
	ErrCommandFailed = errors.New("git command failed")

	// ErrNotARepository is returned when a directory is not inside a Git working tree.
	ErrNotARepository = errors.New("not a git repository")
)
