package ide

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/cameronehrlich/gwtm/pkg/fs"
	"github.com/cameronehrlich/gwtm/pkg/logger"
)

// XcodeName is the name identifier for the Xcode IDE.
const XcodeName = "xcode"

// Xcode represents the Xcode IDE implementation.
type Xcode struct {
	fs     fs.FS
	logger logger.Logger
	goos   string
}

// NewXcode creates a new Xcode IDE instance.
func NewXcode(fs fs.FS, logger logger.Logger) *Xcode {
	return &Xcode{
		fs:     fs,
		logger: logger,
		goos:   runtime.GOOS,
	}
}

// Name returns the name of the IDE.
func (x *Xcode) Name() string {
	return XcodeName
}

// LocateProject finds the Xcode workspace or project to open. An ios/
// subdirectory is preferred as the search root when present; workspaces win
// over plain projects.
func (x *Xcode) LocateProject(worktreePath string) (string, error) {
	searchPath := worktreePath
	iosDir := filepath.Join(worktreePath, "ios")
	if isDir, err := x.fs.IsDir(iosDir); err == nil && isDir {
		x.logger.Debugf("Found iOS directory at %s", iosDir)
		searchPath = iosDir
	}

	workspaces, err := x.fs.GlobRecursive(searchPath, "*.xcworkspace")
	if err != nil {
		return "", fmt.Errorf("failed to search for Xcode workspaces: %w", err)
	}
	if len(workspaces) > 0 {
		return workspaces[0], nil
	}

	projects, err := x.fs.GlobRecursive(searchPath, "*.xcodeproj")
	if err != nil {
		return "", fmt.Errorf("failed to search for Xcode projects: %w", err)
	}
	if len(projects) > 0 {
		return projects[0], nil
	}

	return "", fmt.Errorf("%w: no Xcode project or workspace in %s", ErrNoProjectFound, searchPath)
}

// Open opens the project in Xcode. Xcode exists only on macOS.
func (x *Xcode) Open(appPath, projectPath string) error {
	if x.goos != "darwin" {
		return fmt.Errorf("%w: Xcode is only supported on macOS", ErrUnsupportedPlatform)
	}

	if err := x.fs.ExecuteCommand("open", "-a", appPath, projectPath); err != nil {
		return fmt.Errorf("%w: open -a %s %s", ErrIDEExecutionFailed, appPath, projectPath)
	}
	return nil
}
