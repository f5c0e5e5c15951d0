// Package logging hands out leveled subsystem loggers that share one backend.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/decred/slog"
)

// Subsystem tags
const (
	SubsystemGame  = "GAME"
	SubsystemSync  = "SYNC"
	SubsystemAdmin = "ADMN"
	SubsystemHTTP  = "HTTP"
	SubsystemDisc  = "DISC"
	SubsystemStore = "STOR"
)

// Config holds configuration for the log backend
type Config struct {
	// Output defaults to stderr
	Output io.Writer

	// Level is parsed with slog.LevelFromString; unknown values fall back to info
	Level string
}

// Backend owns the writer and the loggers created from it
type Backend struct {
	backend *slog.Backend
	level   slog.Level

	mu      sync.Mutex
	loggers map[string]slog.Logger
}

// New creates a log backend
func New(cfg *Config) *Backend {
	out := io.Writer(os.Stderr)
	level := slog.LevelInfo
	if cfg != nil {
		if cfg.Output != nil {
			out = cfg.Output
		}
		if lvl, ok := slog.LevelFromString(cfg.Level); ok {
			level = lvl
		}
	}

	return &Backend{
		backend: slog.NewBackend(out),
		level:   level,
		loggers: make(map[string]slog.Logger),
	}
}

// Logger returns the logger for a subsystem, creating it on first use
func (b *Backend) Logger(subsystem string) slog.Logger {
	b.mu.Lock()
	defer b.mu.Unlock()

	if l, ok := b.loggers[subsystem]; ok {
		return l
	}
	l := b.backend.Logger(subsystem)
	l.SetLevel(b.level)
	b.loggers[subsystem] = l
	return l
}

// OrDisabled returns log, or slog.Disabled when log is nil
func OrDisabled(log slog.Logger) slog.Logger {
	if log == nil {
		return slog.Disabled
	}
	return log
}
