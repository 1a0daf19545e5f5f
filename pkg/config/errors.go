package config

import "errors"

// Configuration-specific error types.
var (
	// ErrConfigFileNotFound is returned when an explicitly requested config file is missing.
	ErrConfigFileNotFound = errors.New("config file not found")

	// ErrConfigParseFailed is returned when a config file cannot be parsed.
	ErrConfigParseFailed = errors.New("failed to parse config file")
)
