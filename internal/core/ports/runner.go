package ports

import (
	"context"

	"go.trai.ch/mutrun/internal/core/domain"
)

// CommandRunner starts an external process and waits for it.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd to completion and captures its output.
	//
	// It returns an error only if the process could not be started. A
	// non-zero exit status is reported through Invocation.ExitCode.
	Run(ctx context.Context, cmd domain.Command) (*domain.Invocation, error)
}

// ToolInvoker runs executables from the isolated-environment directory.
type ToolInvoker interface {
	// Invoke runs tool with args. The tool is never looked up in PATH.
	// Launch failures are errors; exit statuses are not.
	Invoke(ctx context.Context, tool string, args []string) (*domain.Invocation, error)
}
