// Package config provides layered .gwtmrc configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/cameronehrlich/gwtm/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=config.go -destination=mocks/config.gen.go -package=mocks

// ConfigFileName is the dotfile consulted in the working and home directories.
const ConfigFileName = ".gwtmrc"

// Built-in defaults applied for any key the config file leaves unset.
const (
	DefaultIDE              = "xcode"
	DefaultWorktreeLocation = ".gwtm/worktrees"
)

// Config represents the application configuration. It is loaded once at
// startup and immutable for the process lifetime.
type Config struct {
	// IDE is the default IDE used by the open command.
	IDE string

	// WorktreeLocation is the default worktree root, relative to the
	// repository root unless absolute.
	WorktreeLocation string

	// IDEPaths maps lowercase IDE names to application/executable paths.
	IDEPaths map[string]string
}

// Manager interface provides configuration management functionality.
type Manager interface {
	// LoadConfig loads configuration, consulting the explicit path first,
	// then ./.gwtmrc, then ~/.gwtmrc; the first existing file wins.
	LoadConfig(explicitPath string) (*Config, error)
}

type realManager struct {
	fs fs.FS
}

// NewManager creates a new Manager instance.
func NewManager(fs fs.FS) Manager {
	return &realManager{fs: fs}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		IDE:              DefaultIDE,
		WorktreeLocation: DefaultWorktreeLocation,
		IDEPaths: map[string]string{
			"xcode":         "/Applications/Xcode.app",
			"androidstudio": "/Applications/Android Studio.app",
		},
	}
}

// LoadConfig loads configuration with layered lookup. A missing file at an
// explicitly requested path is an error; absent dotfiles fall through to the
// built-in defaults.
func (c *realManager) LoadConfig(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		exists, err := c.fs.Exists(explicitPath)
		if err != nil || !exists {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, explicitPath)
		}
		return c.parseConfigFile(explicitPath)
	}

	for _, location := range c.candidateLocations() {
		if exists, err := c.fs.Exists(location); err == nil && exists {
			return c.parseConfigFile(location)
		}
	}

	return DefaultConfig(), nil
}

// candidateLocations returns the dotfile lookup order.
func (c *realManager) candidateLocations() []string {
	var locations []string
	if cwd, err := os.Getwd(); err == nil {
		locations = append(locations, filepath.Join(cwd, ConfigFileName))
	}
	if home, err := c.fs.GetHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ConfigFileName))
	}
	return locations
}

// parseConfigFile parses a sectioned key=value config file, merging its
// values over the built-in defaults. Unknown keys are ignored.
func (c *realManager) parseConfigFile(path string) (*Config, error) {
	data, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParseFailed, path, err)
	}

	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParseFailed, path, err)
	}

	config := DefaultConfig()

	defaults := file.Section("defaults")
	if key := defaults.Key("ide"); key.String() != "" {
		config.IDE = strings.ToLower(key.String())
	}
	if key := defaults.Key("worktree_location"); key.String() != "" {
		config.WorktreeLocation = key.String()
	}

	for _, key := range file.Section("paths").Keys() {
		config.IDEPaths[strings.ToLower(key.Name())] = key.String()
	}

	return config, nil
}
