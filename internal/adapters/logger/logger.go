// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/ngtk/vim-flavor/internal/core/ports"
)

// messager is implemented by zerr errors, whose Message excludes the cause chain.
type messager interface {
	Message() string
}

// metadataer is implemented by zerr errors carrying key-value context.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a new Logger writing to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, nil)),
	}
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(NewPrettyHandler(w, nil))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain, one cause per line.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(formatError(err))
}

func formatError(err error) string {
	messages, meta := unwindError(err)
	if len(messages) == 0 {
		messages = []string{err.Error()}
	}

	head := "Error: " + messages[0]
	for _, key := range slices.Sorted(maps.Keys(meta)) {
		head += fmt.Sprintf(" %s=%v", key, meta[key])
	}

	lines := []string{head}
	for i, msg := range messages[1:] {
		if i == 0 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msg)
	}
	return strings.Join(lines, "\n")
}

// unwindError walks single-cause chains collecting messages and metadata.
// Joined errors are rendered whole, one line per joined error.
func unwindError(err error) ([]string, map[string]any) {
	var messages []string
	meta := make(map[string]any)
	for current := err; current != nil; {
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				messages = append(messages, strings.Split(e.Error(), "\n")...)
			}
			break
		}
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		if msg := m.Message(); msg != "" {
			messages = append(messages, msg)
		}
		if md, ok := current.(metadataer); ok {
			for k, v := range md.Metadata() {
				if _, seen := meta[k]; !seen {
					meta[k] = v
				}
			}
		}
		current = errors.Unwrap(current)
	}
	return messages, meta
}
