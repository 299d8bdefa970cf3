// Package app implements the application layer for mutrun.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/mutrun/internal/adapters/fs"
	"go.trai.ch/mutrun/internal/adapters/shell"
	"go.trai.ch/mutrun/internal/adapters/vcs"
	"go.trai.ch/mutrun/internal/core/domain"
	"go.trai.ch/mutrun/internal/core/ports"
	"go.trai.ch/mutrun/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       ports.CommandRunner
	logger       ports.Logger
	cwd          string
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, runner ports.CommandRunner, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		logger:       log,
		cwd:          ".",
	}
}

// WithDir sets the directory the config file and working copy are looked up from.
// This is primarily used for testing.
func (a *App) WithDir(dir string) *App {
	a.cwd = dir
	return a
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Options holds the settings shared by every command.
type Options struct {
	// ConfigPath is the layout file. Empty selects domain.ConfigFileName.
	ConfigPath string

	// Out receives listings. Nil selects stdout.
	Out io.Writer
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Options
}

// Run type-checks, invalidates the caches of changed files, runs their tests
// and invalidates again.
//
// A test runner that ran and failed is reported as a bare *domain.ExitError.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	layout, err := a.loadLayout(opts.Options)
	if err != nil {
		return err
	}

	result, err := a.newOrchestrator(layout).Run(ctx)
	if err != nil {
		return errors.Join(domain.ErrRunFailed, err)
	}

	if !result.Tests.Success() {
		return &domain.ExitError{Tool: result.Tests.Tool, Code: result.Tests.ExitCode}
	}
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Options
}

// Clean removes the cache artifacts of changed files and prints each one removed.
func (a *App) Clean(ctx context.Context, opts CleanOptions) error {
	layout, err := a.loadLayout(opts.Options)
	if err != nil {
		return err
	}

	plan, err := a.newOrchestrator(layout).Plan(ctx)
	if err != nil {
		return err
	}
	if plan.ChangeSet.Fallback {
		a.logger.Warn("version control unavailable, nothing to clean")
	}

	removed, err := fs.NewInvalidator(layout, a.logger).Invalidate(plan.CacheArtifacts)
	w := opts.out()
	for _, path := range removed {
		_, _ = fmt.Fprintln(w, path)
	}
	return err
}

// PlanOptions configuration for the Plan method.
type PlanOptions struct {
	Options
}

// Plan prints what a run would invalidate and test, without side effects.
func (a *App) Plan(ctx context.Context, opts PlanOptions) error {
	layout, err := a.loadLayout(opts.Options)
	if err != nil {
		return err
	}

	plan, err := a.newOrchestrator(layout).Plan(ctx)
	if err != nil {
		return err
	}

	w := opts.out()
	if plan.ChangeSet.Fallback {
		_, _ = fmt.Fprintf(w, "changed (version control unavailable: %v):\n", plan.ChangeSet.Reason)
	} else {
		_, _ = fmt.Fprintln(w, "changed:")
	}
	printList(w, plan.ChangeSet.Files)
	_, _ = fmt.Fprintln(w, "invalidate:")
	printList(w, plan.CacheArtifacts)
	_, _ = fmt.Fprintln(w, "test:")
	printList(w, plan.TestFiles)
	return nil
}

func printList(w io.Writer, items []string) {
	for _, item := range items {
		_, _ = fmt.Fprintln(w, "  "+item)
	}
}

func (a *App) loadLayout(opts Options) (domain.Layout, error) {
	layout, err := a.configLoader.Load(a.cwd, opts.ConfigPath)
	if err != nil {
		return domain.Layout{}, zerr.Wrap(err, "failed to load configuration")
	}
	return layout, nil
}

func (a *App) newOrchestrator(layout domain.Layout) *orchestrator.Orchestrator {
	return orchestrator.New(
		layout,
		vcs.NewStatusReader(a.runner, layout),
		fs.NewCacheLocator(layout),
		fs.NewTestLocator(layout),
		fs.NewInvalidator(layout, a.logger),
		shell.NewInvoker(a.runner, layout),
		a.logger,
	)
}
