// Package shell runs external processes.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/mutrun/internal/core/domain"
	"go.trai.ch/mutrun/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner that mirrors output to logger.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run starts cmd, waits for it and returns its captured output.
//
// Only a failure to start or a cancelled ctx is returned as an error. A
// process that ran and exited non-zero is reported through the exit code.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (*domain.Invocation, error) {
	if cmd.Path == "" {
		return nil, domain.ErrEmptyCommand
	}

	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...) //nolint:gosec // commands come from the layout
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	var stdoutLog, stderrLog *logWriter
	if cmd.Mirror {
		stdoutLog = &logWriter{logger: r.logger, level: "info"}
		stderrLog = &logWriter{logger: r.logger, level: "warn"}
		c.Stdout = io.MultiWriter(&stdout, stdoutLog)
		c.Stderr = io.MultiWriter(&stderr, stderrLog)
	}

	err := c.Run()

	if stdoutLog != nil {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}

	inv := &domain.Invocation{
		Tool:   cmd.Path,
		Args:   cmd.Args,
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	// A child killed on cancellation did not finish; its exit status is meaningless.
	if ctxErr := ctx.Err(); ctxErr != nil && err != nil {
		return nil, ctxErr
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			inv.ExitCode = exitErr.ExitCode()
			return inv, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCommandLaunchFailed.Error()), "command", cmd.String())
	}

	return inv, nil
}

// logWriter forwards complete lines of process output to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line without a newline.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}
