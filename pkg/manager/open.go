package manager

import "fmt"

// Open opens the worktree in the named IDE. An empty IDE name falls back to
// the configured default; an empty path brings up the worktree picker.
func (m *realManager) Open(path, ideName string) error {
	absPath, err := m.pickOrResolve(path)
	if err != nil {
		return err
	}

	exists, err := m.fs.Exists(absPath)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", absPath, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrPathNotFound, absPath)
	}

	if ideName == "" {
		ideName = m.config.IDE
	}

	return m.ide.OpenIDE(ideName, absPath)
}
