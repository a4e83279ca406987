// Package logging configures the process logger. The TUI owns the terminal,
// so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls where logs go and how verbose they are.
type Config struct {
	Level string
	// File is the log destination. Empty disables logging.
	File string
	// Console writes human-readable lines instead of JSON.
	Console bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// ParseLevel maps a config level onto zerolog. Empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return parsed, nil
}

// New builds a logger from cfg. The returned closer releases the log file.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if cfg.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}

	var out io.Writer = file
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: file, NoColor: true, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Str("app", "nexus").Logger()
	return logger, file, nil
}

// Init replaces the process logger used by Component.
func Init(cfg Config) (io.Closer, error) {
	logger, closer, err := New(cfg)
	if err != nil {
		return closer, err
	}
	Set(logger)
	return closer, nil
}

// Set replaces the process logger.
func Set(logger zerolog.Logger) {
	mu.Lock()
	base = logger
	mu.Unlock()
}

// Component returns the process logger tagged with a component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}
