// Package vcs reads the set of modified files from a version-control client.
package vcs

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.trai.ch/mutrun/internal/core/domain"
	"go.trai.ch/mutrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	errStatusExit    = zerr.New("status command exited with non-zero status")
	errStatusEncoded = zerr.New("status output is not valid UTF-8")
)

// StatusReader implements ports.ChangeSetReader by parsing status output.
type StatusReader struct {
	runner ports.CommandRunner
	layout domain.Layout
}

// NewStatusReader creates a StatusReader running layout.StatusCommand.
func NewStatusReader(runner ports.CommandRunner, layout domain.Layout) *StatusReader {
	return &StatusReader{runner: runner, layout: layout}
}

// ReadChangeSet runs the status command once and parses its listing.
//
// A client that is missing, fails, or prints undecodable output yields a
// fallback change set. Only cancellation of ctx is returned as an error.
func (r *StatusReader) ReadChangeSet(ctx context.Context) (domain.ChangeSet, error) {
	cmd := domain.Command{
		Path: r.layout.StatusCommand[0],
		Args: r.layout.StatusCommand[1:],
		Dir:  r.layout.Root,
	}

	inv, err := r.runner.Run(ctx, cmd)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.ChangeSet{}, ctxErr
	}
	if err != nil {
		return domain.FallbackChangeSet(err), nil
	}
	if !inv.Success() {
		return domain.FallbackChangeSet(zerr.With(zerr.With(errStatusExit, "command", cmd.String()), "exit_code", inv.ExitCode)), nil
	}
	if !utf8.Valid(inv.Stdout) {
		return domain.FallbackChangeSet(zerr.With(errStatusEncoded, "command", cmd.String())), nil
	}

	return domain.NewChangeSet(ParseStatus(string(inv.Stdout), r.layout.StatusWidth)), nil
}

// ParseStatus strips the fixed-width status code from each line of a status
// listing. Blank lines and lines holding nothing but a status code are
// dropped; order and duplicates are kept.
func ParseStatus(out string, width int) []string {
	var files []string
	for line := range strings.SplitSeq(out, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if len(line) <= width {
			continue
		}
		files = append(files, line[width:])
	}
	return files
}
