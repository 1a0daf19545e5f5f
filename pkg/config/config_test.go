//go:build unit

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cameronehrlich/gwtm/pkg/fs"
	fsmocks "github.com/cameronehrlich/gwtm/pkg/fs/mocks"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "xcode", cfg.IDE)
	assert.Equal(t, ".gwtm/worktrees", cfg.WorktreeLocation)
	assert.Equal(t, "/Applications/Xcode.app", cfg.IDEPaths["xcode"])
	assert.Equal(t, "/Applications/Android Studio.app", cfg.IDEPaths["androidstudio"])
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	path := writeConfigFile(t, `[defaults]
ide = androidstudio
worktree_location = /tmp/worktrees

[paths]
androidstudio = /opt/android-studio
`)

	manager := NewManager(fs.NewFS())
	cfg, err := manager.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "androidstudio", cfg.IDE)
	assert.Equal(t, "/tmp/worktrees", cfg.WorktreeLocation)
	assert.Equal(t, "/opt/android-studio", cfg.IDEPaths["androidstudio"])
	// Untouched defaults survive the merge
	assert.Equal(t, "/Applications/Xcode.app", cfg.IDEPaths["xcode"])
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	manager := NewManager(fs.NewFS())
	_, err := manager.LoadConfig(filepath.Join(t.TempDir(), "missing.gwtmrc"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigFileNotFound))
}

func TestLoadConfig_PartialFile(t *testing.T) {
	path := writeConfigFile(t, `[defaults]
worktree_location = trees
`)

	manager := NewManager(fs.NewFS())
	cfg, err := manager.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "trees", cfg.WorktreeLocation)
	// Unset keys keep their defaults
	assert.Equal(t, "xcode", cfg.IDE)
}

func TestLoadConfig_IDENameLowercased(t *testing.T) {
	path := writeConfigFile(t, `[defaults]
ide = XCode

[paths]
XCode = /custom/Xcode.app
`)

	manager := NewManager(fs.NewFS())
	cfg, err := manager.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "xcode", cfg.IDE)
	assert.Equal(t, "/custom/Xcode.app", cfg.IDEPaths["xcode"])
}

func TestLoadConfig_HomeDirectoryDotfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cwd, err := os.Getwd()
	require.NoError(t, err)

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Exists(filepath.Join(cwd, ConfigFileName)).Return(false, nil)
	mockFS.EXPECT().GetHomeDir().Return("/home/user", nil)
	mockFS.EXPECT().Exists(filepath.Join("/home/user", ConfigFileName)).Return(true, nil)
	mockFS.EXPECT().ReadFile(filepath.Join("/home/user", ConfigFileName)).
		Return([]byte("[defaults]\nide = androidstudio\n"), nil)

	manager := NewManager(mockFS)
	cfg, err := manager.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "androidstudio", cfg.IDE)
}

func TestLoadConfig_CurrentDirectoryDotfile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(`[defaults]
ide = androidstudio
`), 0644))

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(originalDir) }()

	manager := NewManager(fs.NewFS())
	cfg, err := manager.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "androidstudio", cfg.IDE)
}
