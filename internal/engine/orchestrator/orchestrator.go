// Package orchestrator sequences a type check, cache invalidation and a test run.
package orchestrator

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/mutrun/internal/core/domain"
	"go.trai.ch/mutrun/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator drives one run through its fixed sequence of states.
type Orchestrator struct {
	layout      domain.Layout
	changes     ports.ChangeSetReader
	caches      ports.CacheLocator
	tests       ports.TestLocator
	invalidator ports.CacheInvalidator
	tools       ports.ToolInvoker
	logger      ports.Logger
}

// New creates a new Orchestrator for the given layout.
func New(
	layout domain.Layout,
	changes ports.ChangeSetReader,
	caches ports.CacheLocator,
	tests ports.TestLocator,
	invalidator ports.CacheInvalidator,
	tools ports.ToolInvoker,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		layout:      layout,
		changes:     changes,
		caches:      caches,
		tests:       tests,
		invalidator: invalidator,
		tools:       tools,
		logger:      logger,
	}
}

// Plan reads the change set and derives the cache artifacts and test files
// for it. It does not touch the filesystem beyond lookups.
func (o *Orchestrator) Plan(ctx context.Context) (domain.Plan, error) {
	cs, err := o.changes.ReadChangeSet(ctx)
	if err != nil {
		return domain.Plan{}, err
	}

	plan := domain.Plan{ChangeSet: cs}
	for _, file := range cs.Files {
		if artifact, ok := o.caches.LocateCache(file); ok {
			plan.CacheArtifacts = append(plan.CacheArtifacts, artifact)
		}
	}
	for _, file := range cs.Files {
		if test, ok := o.tests.LocateTest(file); ok {
			plan.TestFiles = append(plan.TestFiles, test)
		}
	}
	return plan, nil
}

// Run executes the full sequence.
//
// A test runner that could not be launched is reported only after the second
// invalidation. A test runner that ran and failed is not an error; callers
// inspect RunResult.Tests.
func (o *Orchestrator) Run(ctx context.Context) (*domain.RunResult, error) {
	state := o.newRunState(ctx)

	for state.current != domain.StateDone {
		if err := state.step(); err != nil {
			return nil, zerr.With(err, "state", state.current.String())
		}
	}

	state.result.State = domain.StateDone
	if state.launchErr != nil {
		return nil, zerr.With(state.launchErr, "state", domain.StateTesting.String())
	}
	return state.result, nil
}

type runState struct {
	o       *Orchestrator
	ctx     context.Context
	current domain.State
	result  *domain.RunResult

	// launchErr is held until the cache has been invalidated a second time.
	launchErr error
}

func (o *Orchestrator) newRunState(ctx context.Context) *runState {
	return &runState{
		o:       o,
		ctx:     ctx,
		current: domain.StateTypeChecking,
		result:  &domain.RunResult{},
	}
}

func (s *runState) step() error {
	switch s.current {
	case domain.StateTypeChecking:
		if err := s.typeCheck(); err != nil {
			return err
		}
		s.current = domain.StatePreInvalidating
	case domain.StatePreInvalidating:
		plan, err := s.o.Plan(s.ctx)
		if err != nil {
			return err
		}
		if plan.ChangeSet.Fallback {
			s.o.logger.Warn("version control unavailable, continuing with no changes")
		}
		s.result.Plan = plan
		if err := s.invalidate(); err != nil {
			return err
		}
		s.current = domain.StateTesting
	case domain.StateTesting:
		s.runTests()
		s.current = domain.StatePostInvalidating
	case domain.StatePostInvalidating:
		if err := s.invalidate(); err != nil {
			return err
		}
		s.current = domain.StateDone
	case domain.StateDone:
	}
	return nil
}

func (s *runState) typeCheck() error {
	tool := s.o.layout.TypeChecker
	inv, err := s.o.tools.Invoke(s.ctx, tool.Tool, tool.Args)
	if err != nil {
		return zerr.Wrap(err, domain.ErrTypeCheckFailed.Error())
	}
	s.result.TypeCheck = inv
	if !inv.Success() {
		s.o.logger.Warn(fmt.Sprintf("%s exited with status %d, continuing", tool.Tool, inv.ExitCode))
	}
	return nil
}

func (s *runState) runTests() {
	tool := s.o.layout.TestRunner
	args := append(slices.Clone(tool.Args), s.result.Plan.TestFiles...)
	inv, err := s.o.tools.Invoke(s.ctx, tool.Tool, args)
	if err != nil {
		s.launchErr = zerr.Wrap(err, domain.ErrTestRunFailed.Error())
		return
	}
	s.result.Tests = inv
}

// invalidate removes the planned cache artifacts. Both invalidation states
// pass the same slice.
func (s *runState) invalidate() error {
	_, err := s.o.invalidator.Invalidate(s.result.Plan.CacheArtifacts)
	return err
}
