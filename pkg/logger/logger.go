// Package logger provides logging functionality for the GWTM application.
package logger

import (
	"fmt"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})

	// Debugf logs a formatted message only when debug output is enabled.
	Debugf(format string, args ...interface{})

	// Warnf logs a formatted warning message to stderr.
	Warnf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Debugf does nothing for noop logger.
func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}

// Warnf does nothing for noop logger.
func (n *noopLogger) Warnf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes to stdout.
type defaultLogger struct {
	mu    sync.Mutex
	debug bool
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger(debug bool) Logger {
	return &defaultLogger{debug: debug}
}

// Logf writes a formatted message to stdout with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Printf(format+"\n", args...)
}

// Debugf writes a formatted message to stdout when debug output is enabled.
func (d *defaultLogger) Debugf(format string, args ...interface{}) {
	if !d.debug {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Printf("DEBUG: "+format+"\n", args...)
}

// Warnf writes a formatted warning message to stderr.
func (d *defaultLogger) Warnf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(os.Stderr, "WARNING: "+format+"\n", args...)
}
