// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/mutrun/internal/core/ports"
)

// messager is implemented by zerr errors, which can report their own
// message without the wrapped chain.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty output to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination, keeping the current mode.
// A nil writer selects stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandler())
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.newHandler())
}

func (l *Logger) newHandler() slog.Handler {
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
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

// Error logs an error together with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatChain(err))
}

// formatChain renders err as a headline followed by its causes.
func formatChain(err error) string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}

	var lines []string
	for i, msg := range messages {
		parts := strings.Split(msg, "\n")
		switch i {
		case 0:
			lines = append(lines, "Error: "+parts[0])
			for _, p := range parts[1:] {
				lines = append(lines, "       "+p)
			}
		default:
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    → "+parts[0])
			for _, p := range parts[1:] {
				lines = append(lines, "      "+p)
			}
		}
	}
	return strings.Join(lines, "\n")
}
