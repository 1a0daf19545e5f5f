// Package ide provides interfaces and implementations for opening worktrees
// in supported IDEs.
package ide

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cameronehrlich/gwtm/pkg/fs"
	"github.com/cameronehrlich/gwtm/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=ide.go -destination=mocks/ide.gen.go -package=mocks

// IDE interface defines the methods that all IDE implementations must provide.
type IDE interface {
	// Name returns the name of the IDE
	Name() string

	// LocateProject finds the project to open inside the given worktree
	LocateProject(worktreePath string) (string, error)

	// Open opens the located project with the IDE at the given application path
	Open(appPath, projectPath string) error
}

// ManagerInterface defines the interface for IDE management.
type ManagerInterface interface {
	// OpenIDE opens the named IDE with the given worktree path
	OpenIDE(name, worktreePath string) error
	// SupportedIDEs returns the names of all registered IDEs
	SupportedIDEs() []string
}

// Manager manages IDE implementations and provides a unified interface.
type Manager struct {
	ides     map[string]IDE
	appPaths map[string]string
	fs       fs.FS
	logger   logger.Logger
}

// NewManager creates a new IDE manager with registered IDE implementations.
// appPaths maps lowercase IDE names to application paths from configuration.
func NewManager(fs fs.FS, logger logger.Logger, appPaths map[string]string) *Manager {
	m := &Manager{
		ides:     make(map[string]IDE),
		appPaths: appPaths,
		fs:       fs,
		logger:   logger,
	}

	// Register IDE implementations
	xcode := NewXcode(fs, logger)
	m.ides[xcode.Name()] = xcode

	androidStudio := NewAndroidStudio(fs, logger)
	m.ides[androidStudio.Name()] = androidStudio

	return m
}

// SupportedIDEs returns the names of all registered IDEs, sorted.
func (m *Manager) SupportedIDEs() []string {
	names := make([]string, 0, len(m.ides))
	for name := range m.ides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OpenIDE opens the named IDE with the given worktree path.
func (m *Manager) OpenIDE(name, worktreePath string) error {
	name = strings.ToLower(name)

	ide, exists := m.ides[name]
	if !exists {
		return fmt.Errorf("%w: %s (supported: %s)",
			ErrUnsupportedIDE, name, strings.Join(m.SupportedIDEs(), ", "))
	}

	appPath, configured := m.appPaths[name]
	if !configured {
		return fmt.Errorf("%w: %s (no path configured)", ErrIDENotInstalled, name)
	}
	installed, err := m.fs.Exists(appPath)
	if err != nil {
		return fmt.Errorf("failed to check IDE path %s: %w", appPath, err)
	}
	if !installed {
		return fmt.Errorf("%w: %s (not found at %s)", ErrIDENotInstalled, name, appPath)
	}

	projectPath, err := ide.LocateProject(worktreePath)
	if err != nil {
		return err
	}

	m.logger.Debugf("Opening %s with %s", projectPath, name)
	if err := ide.Open(appPath, projectPath); err != nil {
		return fmt.Errorf("%w: %s", err, name)
	}

	m.logger.Logf("Opened %s in %s", projectPath, name)
	return nil
}
