// Package logging builds the structured loggers used across moonpatrol.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Prefix is shown in front of every log line.
const Prefix = "moonpatrol"

// DefaultFile is where the terminal front end logs, since stderr belongs
// to the game screen.
const DefaultFile = "~/.moonpatrol/moonpatrol.log"

// New creates a logger writing to w at the given level name
// (debug, info, warn, error).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	})
	return logger, nil
}

// OpenFile opens path for appending, creating it and its parent
// directories. A leading ~ is expanded to the home directory.
func OpenFile(path string) (*os.File, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}
	return f, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// NewRunID returns a short identifier for one play session.
func NewRunID() string {
	return "r_" + uuid.NewString()[:8]
}

// WithRun returns a child logger tagging every line with the run id.
func WithRun(logger *log.Logger, runID string) *log.Logger {
	return logger.With("run", runID)
}
