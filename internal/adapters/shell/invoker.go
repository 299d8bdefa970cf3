package shell

import (
	"context"

	"go.trai.ch/mutrun/internal/core/domain"
	"go.trai.ch/mutrun/internal/core/ports"
	"go.trai.ch/zerr"
)

// Invoker implements ports.ToolInvoker for the isolated-environment directory.
type Invoker struct {
	runner ports.CommandRunner
	layout domain.Layout
}

// NewInvoker creates an Invoker resolving tools through layout.
func NewInvoker(runner ports.CommandRunner, layout domain.Layout) *Invoker {
	return &Invoker{runner: runner, layout: layout}
}

// Invoke runs tool from the isolated environment in the working-copy root.
func (i *Invoker) Invoke(ctx context.Context, tool string, args []string) (*domain.Invocation, error) {
	cmd := domain.Command{
		Path:   i.layout.ToolPath(tool),
		Args:   args,
		Dir:    i.layout.Root,
		Mirror: true,
	}

	inv, err := i.runner.Run(ctx, cmd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrToolLaunchFailed.Error()), "tool", tool)
	}

	inv.Tool = tool
	return inv, nil
}
