package ide

import "errors"

var (
	// ErrIDENotInstalled is returned when an IDE is not installed on the system.
	ErrIDENotInstalled = errors.New("IDE not installed")

	// ErrUnsupportedIDE is returned when an IDE is not supported.
	ErrUnsupportedIDE = errors.New("unsupported IDE")

	// ErrNoProjectFound is returned when no openable project exists in the worktree.
	ErrNoProjectFound = errors.New("no project found")

	// ErrUnsupportedPlatform is returned when the IDE cannot be launched on this OS.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrIDEExecutionFailed is returned when IDE command execution fails.
	ErrIDEExecutionFailed = errors.New("failed to execute IDE command")
)
