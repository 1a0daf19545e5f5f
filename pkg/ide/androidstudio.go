package ide

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/cameronehrlich/gwtm/pkg/fs"
	"github.com/cameronehrlich/gwtm/pkg/logger"
)

// AndroidStudioName is the name identifier for the Android Studio IDE.
const AndroidStudioName = "androidstudio"

// AndroidStudio represents the Android Studio IDE implementation.
type AndroidStudio struct {
	fs     fs.FS
	logger logger.Logger
	goos   string
}

// NewAndroidStudio creates a new Android Studio IDE instance.
func NewAndroidStudio(fs fs.FS, logger logger.Logger) *AndroidStudio {
	return &AndroidStudio{
		fs:     fs,
		logger: logger,
		goos:   runtime.GOOS,
	}
}

// Name returns the name of the IDE.
func (a *AndroidStudio) Name() string {
	return AndroidStudioName
}

// LocateProject picks the directory to open. An android/ subdirectory is
// preferred when present. Missing Android project indicators produce a
// warning, not an error: Android Studio opens plain directories fine.
func (a *AndroidStudio) LocateProject(worktreePath string) (string, error) {
	projectPath := worktreePath
	androidDir := filepath.Join(worktreePath, "android")
	if isDir, err := a.fs.IsDir(androidDir); err == nil && isDir {
		a.logger.Debugf("Found Android directory at %s", androidDir)
		projectPath = androidDir
	}

	if !a.hasProjectIndicators(projectPath) {
		a.logger.Warnf("No Android project files found in %s, opening the directory anyway", projectPath)
	}

	return projectPath, nil
}

// hasProjectIndicators reports whether the directory looks like an Android project.
func (a *AndroidStudio) hasProjectIndicators(projectPath string) bool {
	for _, pattern := range []string{"build.gradle", "AndroidManifest.xml", "*.java", "*.kt"} {
		matches, err := a.fs.GlobRecursive(projectPath, pattern)
		if err == nil && len(matches) > 0 {
			return true
		}
	}
	return false
}

// Open opens the project in Android Studio.
func (a *AndroidStudio) Open(appPath, projectPath string) error {
	switch a.goos {
	case "darwin":
		if err := a.fs.ExecuteCommand("open", "-a", appPath, projectPath); err != nil {
			return fmt.Errorf("%w: open -a %s %s", ErrIDEExecutionFailed, appPath, projectPath)
		}
		return nil
	case "linux", "windows":
		if err := a.fs.ExecuteCommand(appPath, projectPath); err != nil {
			return fmt.Errorf("%w: %s %s", ErrIDEExecutionFailed, appPath, projectPath)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, a.goos)
	}
}
